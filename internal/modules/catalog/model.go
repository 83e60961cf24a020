package catalog

import (
	"time"

	"github.com/google/uuid"
)

// Category groups products in the master catalog.
type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Product is an item in the master catalog. SKU is unique across the system.
// Cost and price are whole-rupiah amounts.
type Product struct {
	ID         uuid.UUID  `json:"id"`
	SKU        string     `json:"sku"`
	Name       string     `json:"name"`
	Cost       float64    `json:"cost"`
	Price      float64    `json:"price"`
	CategoryID *uuid.UUID `json:"category_id,omitempty"`
	IsActive   bool       `json:"is_active"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
