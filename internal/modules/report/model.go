package report

import (
	"time"

	"github.com/google/uuid"
)

// Transaction is the report view of a committed sale: the header plus
// nested items with their product snapshots, and the rider's display name.
type Transaction struct {
	ID                uuid.UUID          `json:"id"`
	TransactionNumber string             `json:"transaction_number"`
	RiderID           uuid.UUID          `json:"rider_id"`
	RiderName         string             `json:"rider_name,omitempty"`
	TotalAmount       float64            `json:"total_amount"`
	TaxAmount         float64            `json:"tax_amount"`
	FinalAmount       float64            `json:"final_amount"`
	PaymentMethod     string             `json:"payment_method"`
	CreatedAt         time.Time          `json:"created_at"`
	Items             []*TransactionItem `json:"items,omitempty"`
}

// TransactionItem is one sold line within a report transaction.
type TransactionItem struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	ProductSKU  string    `json:"product_sku"`
	Quantity    int       `json:"quantity"`
	Subtotal    float64   `json:"subtotal"`
}

// ProductSales is an aggregated per-product sales row.
type ProductSales struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	ProductSKU  string    `json:"product_sku"`
	Quantity    int       `json:"quantity"`
	TotalAmount float64   `json:"total_amount"`
}

// Summary holds the headline numbers for a set of transactions.
type Summary struct {
	TotalAmount        float64        `json:"total_amount"`
	TotalTransactions  int            `json:"total_transactions"`
	AverageAmount      float64        `json:"average_amount"`
	TopSellingProducts []ProductSales `json:"top_selling_products"`
}

// SalesReport is the full report payload: the summary plus the transactions
// it was derived from. Spreadsheet exporters consume this as-is.
type SalesReport struct {
	From         time.Time      `json:"from"`
	To           time.Time      `json:"to"`
	RiderID      string         `json:"rider_id,omitempty"`
	Summary      Summary        `json:"summary"`
	Transactions []*Transaction `json:"transactions"`
}
