package warehouse

import (
	"time"

	"github.com/google/uuid"
)

// Stock is the central warehouse on-hand level for one product.
// Distinct from rider-held inventory, which lives in the inventory module.
type Stock struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	MinStock  int       `json:"min_stock"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpsertStockRequest sets the warehouse level for a product.
type UpsertStockRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	MinStock  int    `json:"min_stock"`
}
