package pos

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fahrizalfarid/rider-pos-backend/internal/modules/tax"
	"github.com/fahrizalfarid/rider-pos-backend/pkg/events"
	"github.com/fahrizalfarid/rider-pos-backend/pkg/metrics"
)

// maxNumberAttempts bounds transaction-number regeneration on collision.
const maxNumberAttempts = 3

// Service defines POS checkout business logic.
type Service interface {
	// Checkout validates the requested cart against the rider's current
	// inventory, applies the tax policy active at commit time, and persists
	// the sale atomically. Nothing is applied on failure.
	Checkout(ctx context.Context, req CheckoutRequest) (*Transaction, error)

	GetTransaction(ctx context.Context, id string) (*Transaction, error)
	GetTransactionByNumber(ctx context.Context, number string) (*Transaction, error)
	ListRiderTransactions(ctx context.Context, riderID string) ([]*Transaction, error)
}

type service struct {
	repo        Repository
	taxes       tax.Service
	idempotency IdempotencyStore
	publisher   events.Publisher
	metrics     *metrics.POSMetrics
}

// NewService creates a new POS service. metrics may be nil in tests.
func NewService(repo Repository, taxes tax.Service, idempotency IdempotencyStore,
	publisher events.Publisher, m *metrics.POSMetrics) Service {
	return &service{
		repo:        repo,
		taxes:       taxes,
		idempotency: idempotency,
		publisher:   publisher,
		metrics:     m,
	}
}

func (s *service) Checkout(ctx context.Context, req CheckoutRequest) (*Transaction, error) {
	if len(req.Lines) == 0 {
		return nil, ErrEmptyCart
	}
	riderID, err := uuid.Parse(req.RiderID)
	if err != nil {
		return nil, fmt.Errorf("invalid rider_id: %w", err)
	}
	method := PaymentMethod(strings.ToUpper(req.PaymentMethod))
	switch method {
	case PaymentCash, PaymentCard, PaymentQRIS, PaymentTransfer:
	default:
		return nil, fmt.Errorf("invalid payment_method: %s (allowed: CASH, CARD, QRIS, TRANSFER)", req.PaymentMethod)
	}
	for _, line := range req.Lines {
		if line.Quantity < 1 {
			return nil, fmt.Errorf("quantity must be at least 1 for product %s", line.ProductID)
		}
	}

	if req.RequestID != "" {
		ok, err := s.idempotency.SetIdempotency(ctx, "checkout:"+req.RequestID)
		if err != nil {
			return nil, fmt.Errorf("idempotency check failed: %w", err)
		}
		if !ok {
			return nil, ErrDuplicateRequest
		}
	}

	// Re-validate every line against current inventory; stock may have moved
	// since the caller built its cart. The SQL decrement guard is the
	// authoritative check, this one fails fast with a named product.
	stock, err := s.repo.ListRiderStock(ctx, req.RiderID)
	if err != nil {
		return nil, fmt.Errorf("fetch rider inventory: %w", err)
	}
	cart := NewCart(req.RiderID, stock)
	for _, line := range req.Lines {
		if err := cart.AddItem(line.ProductID, line.Quantity); err != nil {
			s.countInsufficient(err)
			return nil, err
		}
	}

	// Tax policy as of commit time, not cart-build time.
	policy, err := s.taxes.GetActivePolicy(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch tax policy: %w", err)
	}
	subtotal := cart.Subtotal()
	taxAmount, finalAmount := tax.Compute(subtotal, policy)

	t := &Transaction{
		ID:            uuid.New(),
		RiderID:       riderID,
		TotalAmount:   subtotal,
		TaxAmount:     taxAmount,
		FinalAmount:   finalAmount,
		PaymentMethod: method,
		Currency:      "IDR",
	}
	for _, line := range cart.Lines() {
		pid, err := uuid.Parse(line.ProductID)
		if err != nil {
			return nil, fmt.Errorf("invalid product_id: %w", err)
		}
		t.Items = append(t.Items, &TransactionItem{
			ID:            uuid.New(),
			TransactionID: t.ID,
			ProductID:     pid,
			ProductName:   line.ProductName,
			ProductSKU:    line.ProductSKU,
			PriceAtTime:   line.UnitPrice,
			Quantity:      line.Quantity,
			Subtotal:      line.Subtotal,
		})
	}

	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		t.TransactionNumber = generateTransactionNumber()
		err = s.repo.CreateTransaction(ctx, t)
		if !errors.Is(err, ErrDuplicateTransactionNumber) {
			break
		}
		if s.metrics != nil {
			s.metrics.NumberRetries.Inc()
		}
	}
	if err != nil {
		var stockErr *InsufficientStockError
		switch {
		case errors.As(err, &stockErr):
			s.countInsufficient(err)
			return nil, err
		case errors.Is(err, ErrDuplicateTransactionNumber):
			return nil, err
		default:
			if s.metrics != nil {
				s.metrics.CommitFailures.Inc()
			}
			return nil, fmt.Errorf("%w: %w", ErrCommitFailed, err)
		}
	}

	if s.metrics != nil {
		s.metrics.TransactionsCommitted.WithLabelValues(string(method)).Inc()
	}
	s.publishCommitted(ctx, t)
	return t, nil
}

func (s *service) GetTransaction(ctx context.Context, id string) (*Transaction, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetTransactionByNumber(ctx context.Context, number string) (*Transaction, error) {
	return s.repo.GetByNumber(ctx, number)
}

func (s *service) ListRiderTransactions(ctx context.Context, riderID string) ([]*Transaction, error) {
	return s.repo.ListByRider(ctx, riderID)
}

func (s *service) countInsufficient(err error) {
	if s.metrics != nil && errors.Is(err, ErrInsufficientStock) {
		s.metrics.InsufficientStock.Inc()
	}
}

// publishCommitted emits the post-commit events. Failures are logged only;
// the sale already landed.
func (s *service) publishCommitted(ctx context.Context, t *Transaction) {
	now := time.Now().UTC()
	ev := events.Event{
		EventID:   uuid.NewString(),
		Type:      events.TypeTransactionCreated,
		RiderID:   t.RiderID.String(),
		CreatedAt: now,
		Payload: map[string]any{
			"transaction_id":     t.ID.String(),
			"transaction_number": t.TransactionNumber,
			"final_amount":       t.FinalAmount,
		},
	}
	if err := s.publisher.Publish(ctx, ev); err != nil {
		log.Printf("pos: publish transaction event failed: %v", err)
	}
	for _, item := range t.Items {
		ev := events.Event{
			EventID:   uuid.NewString(),
			Type:      events.TypeInventoryAdjusted,
			RiderID:   t.RiderID.String(),
			CreatedAt: now,
			Payload: map[string]any{
				"product_id": item.ProductID.String(),
				"delta":      -item.Quantity,
				"source":     "sale",
			},
		}
		if err := s.publisher.Publish(ctx, ev); err != nil {
			log.Printf("pos: publish inventory event failed: %v", err)
		}
	}
}

// generateTransactionNumber creates a human-readable number: TRX-YYYYMMDD-XXXXXX.
// Uniqueness is enforced by the database; a collision regenerates.
func generateTransactionNumber() string {
	date := time.Now().UTC().Format("20060102")
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:6])
	return fmt.Sprintf("TRX-%s-%s", date, suffix)
}
