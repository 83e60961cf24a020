package report

import (
	"context"
	"fmt"
	"time"
)

// Service defines sales reporting business logic.
type Service interface {
	// GenerateSalesReport fetches the transactions in the range and derives
	// the summary. riderID empty means all riders.
	GenerateSalesReport(ctx context.Context, from, to time.Time, riderID string) (*SalesReport, error)
}

type service struct{ repo Repository }

// NewService creates a new report service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) GenerateSalesReport(ctx context.Context, from, to time.Time, riderID string) (*SalesReport, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("invalid date range: to precedes from")
	}
	txs, err := s.repo.ListTransactions(ctx, from, to, riderID)
	if err != nil {
		return nil, fmt.Errorf("fetch transactions: %w", err)
	}
	return &SalesReport{
		From:         from,
		To:           to,
		RiderID:      riderID,
		Summary:      Summarize(txs),
		Transactions: txs,
	}, nil
}
