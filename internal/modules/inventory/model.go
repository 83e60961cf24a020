package inventory

import (
	"time"

	"github.com/google/uuid"
)

// RiderInventory is the on-hand quantity a rider carries for one product.
// Incremented by distributions, decremented only by committed POS
// transactions. Quantity never goes negative.
type RiderInventory struct {
	ID        uuid.UUID `json:"id"`
	RiderID   uuid.UUID `json:"rider_id"`
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	UpdatedAt time.Time `json:"updated_at"`

	// Joined product snapshot for inventory listings.
	ProductName string  `json:"product_name,omitempty"`
	ProductSKU  string  `json:"product_sku,omitempty"`
	Price       float64 `json:"price,omitempty"`
}

// Distribution is an append-only record of a warehouse-to-rider transfer.
type Distribution struct {
	ID            uuid.UUID `json:"id"`
	RiderID       uuid.UUID `json:"rider_id"`
	ProductID     uuid.UUID `json:"product_id"`
	Quantity      int       `json:"quantity"`
	DistributedBy uuid.UUID `json:"distributed_by"`
	CreatedAt     time.Time `json:"created_at"`
}

// DistributeRequest is the payload for moving stock to a rider.
type DistributeRequest struct {
	RiderID       string `json:"rider_id"`
	ProductID     string `json:"product_id"`
	Quantity      int    `json:"quantity"`
	DistributedBy string `json:"distributed_by"`
}
