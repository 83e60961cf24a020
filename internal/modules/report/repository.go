package report

import (
	"context"
	"time"
)

// Repository fetches committed transactions with nested items for reporting.
type Repository interface {
	// ListTransactions returns transactions created within [from, to]
	// inclusive, newest first, optionally filtered to one rider.
	ListTransactions(ctx context.Context, from, to time.Time, riderID string) ([]*Transaction, error)
}
