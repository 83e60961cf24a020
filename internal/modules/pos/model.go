package pos

import (
	"time"

	"github.com/google/uuid"
)

// PaymentMethod represents how a POS transaction was paid.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "CASH"
	PaymentCard     PaymentMethod = "CARD"
	PaymentQRIS     PaymentMethod = "QRIS"
	PaymentTransfer PaymentMethod = "TRANSFER"
)

// Transaction records a completed rider sale. Immutable once committed;
// there is no update or void path.
type Transaction struct {
	ID                uuid.UUID          `json:"id"`
	TransactionNumber string             `json:"transaction_number"`
	RiderID           uuid.UUID          `json:"rider_id"`
	TotalAmount       float64            `json:"total_amount"`
	TaxAmount         float64            `json:"tax_amount"`
	FinalAmount       float64            `json:"final_amount"`
	PaymentMethod     PaymentMethod      `json:"payment_method"`
	Currency          string             `json:"currency"`
	Items             []*TransactionItem `json:"items,omitempty"`
	CreatedAt         time.Time          `json:"created_at"`
}

// TransactionItem is one sold line. Product name, SKU, and price are
// snapshots taken at sale time so later catalog edits do not rewrite
// history.
type TransactionItem struct {
	ID            uuid.UUID `json:"id"`
	TransactionID uuid.UUID `json:"transaction_id"`
	ProductID     uuid.UUID `json:"product_id"`
	ProductName   string    `json:"product_name"`
	ProductSKU    string    `json:"product_sku"`
	PriceAtTime   float64   `json:"price_at_time"`
	Quantity      int       `json:"quantity"`
	Subtotal      float64   `json:"subtotal"`
}

// RiderStock is one product a rider currently carries, with the catalog
// snapshot the cart prices from.
type RiderStock struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	ProductSKU  string    `json:"product_sku"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
}

// CheckoutLine is one requested cart line in a checkout call.
type CheckoutLine struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CheckoutRequest is the payload for committing a sale.
type CheckoutRequest struct {
	// RequestID is an optional idempotency key; a repeated ID is rejected
	// with ErrDuplicateRequest.
	RequestID     string         `json:"request_id,omitempty"`
	RiderID       string         `json:"rider_id"`
	Lines         []CheckoutLine `json:"lines"`
	PaymentMethod string         `json:"payment_method"`
}
