package pos

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCart rejects a checkout with no lines.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrInsufficientStock is the sentinel wrapped by InsufficientStockError.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrDuplicateTransactionNumber is returned when a generated transaction
	// number collides and the retry budget is exhausted.
	ErrDuplicateTransactionNumber = errors.New("duplicate transaction number")

	// ErrDuplicateRequest rejects a checkout whose request ID was already seen.
	ErrDuplicateRequest = errors.New("duplicate request")

	// ErrCommitFailed wraps a persistence failure during checkout. The whole
	// write was rolled back; the caller may retry with the same cart.
	ErrCommitFailed = errors.New("transaction commit failed")
)

// InsufficientStockError names the product whose requested quantity exceeds
// the rider's on-hand inventory.
type InsufficientStockError struct {
	ProductID   string
	ProductName string
	Requested   int
	Available   int
}

func (e *InsufficientStockError) Error() string {
	name := e.ProductName
	if name == "" {
		name = e.ProductID
	}
	return fmt.Sprintf("insufficient stock for %s: requested %d, available %d",
		name, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }
