package pos

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fahrizalfarid/rider-pos-backend/internal/modules/tax"
	"github.com/fahrizalfarid/rider-pos-backend/pkg/events"
)

// mockRepo is a mutex-guarded in-memory Repository enforcing the same
// all-or-nothing decrement guard as the Postgres implementation.
type mockRepo struct {
	mu            sync.Mutex
	stock         map[string]*RiderStock
	created       []*Transaction
	numbers       map[string]bool
	failCreate    error
	dupRemaining  int
	createCalls   int
}

func newMockRepo(stock []RiderStock) *mockRepo {
	m := &mockRepo{
		stock:   make(map[string]*RiderStock, len(stock)),
		numbers: make(map[string]bool),
	}
	for i := range stock {
		s := stock[i]
		m.stock[s.ProductID.String()] = &s
	}
	return m
}

func (m *mockRepo) ListRiderStock(ctx context.Context, riderID string) ([]RiderStock, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []RiderStock
	for _, s := range m.stock {
		out = append(out, *s)
	}
	return out, nil
}

func (m *mockRepo) CreateTransaction(ctx context.Context, t *Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.createCalls++
	if m.failCreate != nil {
		return m.failCreate
	}
	if m.dupRemaining > 0 {
		m.dupRemaining--
		return ErrDuplicateTransactionNumber
	}
	if m.numbers[t.TransactionNumber] {
		return ErrDuplicateTransactionNumber
	}
	for _, item := range t.Items {
		s, ok := m.stock[item.ProductID.String()]
		if !ok || s.Quantity < item.Quantity {
			available := 0
			if ok {
				available = s.Quantity
			}
			return &InsufficientStockError{
				ProductID:   item.ProductID.String(),
				ProductName: item.ProductName,
				Requested:   item.Quantity,
				Available:   available,
			}
		}
	}
	for _, item := range t.Items {
		m.stock[item.ProductID.String()].Quantity -= item.Quantity
	}
	m.numbers[t.TransactionNumber] = true
	m.created = append(m.created, t)
	return nil
}

func (m *mockRepo) GetByID(ctx context.Context, id string) (*Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.created {
		if t.ID.String() == id {
			return t, nil
		}
	}
	return nil, errors.New("transaction not found")
}

func (m *mockRepo) GetByNumber(ctx context.Context, number string) (*Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.created {
		if t.TransactionNumber == number {
			return t, nil
		}
	}
	return nil, errors.New("transaction not found")
}

func (m *mockRepo) ListByRider(ctx context.Context, riderID string) ([]*Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*Transaction
	for _, t := range m.created {
		if t.RiderID.String() == riderID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *mockRepo) quantity(productID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.stock[productID]; ok {
		return s.Quantity
	}
	return 0
}

// stubTaxService returns a fixed active policy.
type stubTaxService struct {
	policy *tax.Policy
	err    error
}

func (s *stubTaxService) CreatePolicy(ctx context.Context, req tax.CreatePolicyRequest) (*tax.Policy, error) {
	return nil, errors.New("not implemented")
}
func (s *stubTaxService) ListPolicies(ctx context.Context) ([]*tax.Policy, error) {
	return nil, errors.New("not implemented")
}
func (s *stubTaxService) GetActivePolicy(ctx context.Context) (*tax.Policy, error) {
	return s.policy, s.err
}
func (s *stubTaxService) ActivatePolicy(ctx context.Context, id string) error {
	return errors.New("not implemented")
}

// capturePublisher records published events.
type capturePublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *capturePublisher) Publish(ctx context.Context, e events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}
func (p *capturePublisher) Close() error { return nil }

func (p *capturePublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []string
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

func activeTenPercent() *tax.Policy {
	return &tax.Policy{ID: uuid.New(), Name: "PPN", Rate: 10, IsActive: true}
}

func TestCheckout_Success(t *testing.T) {
	stock, productA, _ := testStock()
	repo := newMockRepo(stock)
	publisher := &capturePublisher{}
	svc := NewService(repo, &stubTaxService{policy: activeTenPercent()}, NewNopIdempotencyStore(), publisher, nil)
	riderID := uuid.NewString()

	tx, err := svc.Checkout(context.Background(), CheckoutRequest{
		RiderID:       riderID,
		Lines:         []CheckoutLine{{ProductID: productA, Quantity: 3}},
		PaymentMethod: "cash",
	})
	require.NoError(t, err)

	assert.Equal(t, float64(3000), tx.TotalAmount)
	assert.Equal(t, float64(300), tx.TaxAmount)
	assert.Equal(t, float64(3300), tx.FinalAmount)
	assert.Equal(t, PaymentCash, tx.PaymentMethod)
	assert.Regexp(t, `^TRX-\d{8}-[0-9A-F]{6}$`, tx.TransactionNumber)
	require.Len(t, tx.Items, 1)
	assert.Equal(t, float64(1000), tx.Items[0].PriceAtTime)
	assert.Equal(t, "Es Teh", tx.Items[0].ProductName)

	assert.Equal(t, 2, repo.quantity(productA), "inventory decremented by sold quantity")
	assert.Equal(t, []string{events.TypeTransactionCreated, events.TypeInventoryAdjusted}, publisher.types())
}

func TestCheckout_EmptyCart(t *testing.T) {
	repo := newMockRepo(nil)
	svc := NewService(repo, &stubTaxService{}, NewNopIdempotencyStore(), events.NopPublisher{}, nil)

	_, err := svc.Checkout(context.Background(), CheckoutRequest{
		RiderID:       uuid.NewString(),
		PaymentMethod: "CASH",
	})
	require.ErrorIs(t, err, ErrEmptyCart)
	assert.Zero(t, repo.createCalls)
}

func TestCheckout_NoActiveTaxPolicy(t *testing.T) {
	stock, productA, _ := testStock()
	repo := newMockRepo(stock)
	svc := NewService(repo, &stubTaxService{policy: nil}, NewNopIdempotencyStore(), events.NopPublisher{}, nil)

	tx, err := svc.Checkout(context.Background(), CheckoutRequest{
		RiderID:       uuid.NewString(),
		Lines:         []CheckoutLine{{ProductID: productA, Quantity: 1}},
		PaymentMethod: "QRIS",
	})
	require.NoError(t, err)
	assert.Equal(t, float64(0), tx.TaxAmount)
	assert.Equal(t, tx.TotalAmount, tx.FinalAmount)
}

func TestCheckout_InsufficientStock(t *testing.T) {
	stock, _, productB := testStock()
	repo := newMockRepo(stock)
	svc := NewService(repo, &stubTaxService{policy: activeTenPercent()}, NewNopIdempotencyStore(), events.NopPublisher{}, nil)

	_, err := svc.Checkout(context.Background(), CheckoutRequest{
		RiderID:       uuid.NewString(),
		Lines:         []CheckoutLine{{ProductID: productB, Quantity: 3}},
		PaymentMethod: "CASH",
	})
	require.ErrorIs(t, err, ErrInsufficientStock)
	var stockErr *InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 3, stockErr.Requested)
	assert.Equal(t, 2, stockErr.Available)
	assert.Equal(t, 2, repo.quantity(productB), "nothing applied on failure")
}

func TestCheckout_InvalidPaymentMethod(t *testing.T) {
	stock, productA, _ := testStock()
	repo := newMockRepo(stock)
	svc := NewService(repo, &stubTaxService{}, NewNopIdempotencyStore(), events.NopPublisher{}, nil)

	_, err := svc.Checkout(context.Background(), CheckoutRequest{
		RiderID:       uuid.NewString(),
		Lines:         []CheckoutLine{{ProductID: productA, Quantity: 1}},
		PaymentMethod: "BARTER",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid payment_method")
}

func TestCheckout_DuplicateNumberRetries(t *testing.T) {
	stock, productA, _ := testStock()
	repo := newMockRepo(stock)
	repo.dupRemaining = 2
	svc := NewService(repo, &stubTaxService{policy: activeTenPercent()}, NewNopIdempotencyStore(), events.NopPublisher{}, nil)

	tx, err := svc.Checkout(context.Background(), CheckoutRequest{
		RiderID:       uuid.NewString(),
		Lines:         []CheckoutLine{{ProductID: productA, Quantity: 1}},
		PaymentMethod: "CASH",
	})
	require.NoError(t, err, "collisions within the retry budget succeed")
	assert.Equal(t, 3, repo.createCalls)
	assert.NotEmpty(t, tx.TransactionNumber)
}

func TestCheckout_DuplicateNumberExhausted(t *testing.T) {
	stock, productA, _ := testStock()
	repo := newMockRepo(stock)
	repo.dupRemaining = maxNumberAttempts
	svc := NewService(repo, &stubTaxService{policy: activeTenPercent()}, NewNopIdempotencyStore(), events.NopPublisher{}, nil)

	_, err := svc.Checkout(context.Background(), CheckoutRequest{
		RiderID:       uuid.NewString(),
		Lines:         []CheckoutLine{{ProductID: productA, Quantity: 1}},
		PaymentMethod: "CASH",
	})
	require.ErrorIs(t, err, ErrDuplicateTransactionNumber)
	assert.Equal(t, 5, repo.quantity(productA))
}

func TestCheckout_CommitFailureWrapped(t *testing.T) {
	stock, productA, _ := testStock()
	repo := newMockRepo(stock)
	repo.failCreate = errors.New("connection reset")
	svc := NewService(repo, &stubTaxService{policy: activeTenPercent()}, NewNopIdempotencyStore(), events.NopPublisher{}, nil)

	_, err := svc.Checkout(context.Background(), CheckoutRequest{
		RiderID:       uuid.NewString(),
		Lines:         []CheckoutLine{{ProductID: productA, Quantity: 1}},
		PaymentMethod: "CASH",
	})
	require.ErrorIs(t, err, ErrCommitFailed)
	assert.Contains(t, err.Error(), "connection reset")
	assert.Equal(t, 5, repo.quantity(productA), "rolled back fully")
}

// mockIdempotencyStore mirrors the Redis SetNX behaviour.
type mockIdempotencyStore struct {
	mu   sync.Mutex
	seen map[string]bool
}

func (m *mockIdempotencyStore) SetIdempotency(ctx context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.seen[key] {
		return false, nil
	}
	m.seen[key] = true
	return true, nil
}

func TestCheckout_DuplicateRequest(t *testing.T) {
	stock, productA, _ := testStock()
	repo := newMockRepo(stock)
	idem := &mockIdempotencyStore{seen: make(map[string]bool)}
	svc := NewService(repo, &stubTaxService{policy: activeTenPercent()}, idem, events.NopPublisher{}, nil)
	req := CheckoutRequest{
		RequestID:     "req-1",
		RiderID:       uuid.NewString(),
		Lines:         []CheckoutLine{{ProductID: productA, Quantity: 1}},
		PaymentMethod: "CASH",
	}

	_, err := svc.Checkout(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Checkout(context.Background(), req)
	require.ErrorIs(t, err, ErrDuplicateRequest)
	assert.Equal(t, 4, repo.quantity(productA), "stock decremented exactly once")
}

func TestCheckout_ConcurrentSalesNeverOversell(t *testing.T) {
	productID := uuid.New()
	repo := newMockRepo([]RiderStock{
		{ProductID: productID, ProductName: "Es Teh", ProductSKU: "A", Price: 1000, Quantity: 3},
	})
	svc := NewService(repo, &stubTaxService{policy: activeTenPercent()}, NewNopIdempotencyStore(), events.NopPublisher{}, nil)
	riderID := uuid.NewString()

	// Stock covers exactly one of the two concurrent 3-unit sales.
	var successCount, stockFailures atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Checkout(context.Background(), CheckoutRequest{
				RiderID:       riderID,
				Lines:         []CheckoutLine{{ProductID: productID.String(), Quantity: 3}},
				PaymentMethod: "CASH",
			})
			switch {
			case err == nil:
				successCount.Add(1)
			case errors.Is(err, ErrInsufficientStock):
				stockFailures.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), successCount.Load())
	assert.Equal(t, int32(1), stockFailures.Load())
	assert.Equal(t, 0, repo.quantity(productID.String()), "inventory never goes negative")
}

func TestCheckout_UsesPolicyAtCommitTime(t *testing.T) {
	stock, productA, _ := testStock()
	repo := newMockRepo(stock)
	taxes := &stubTaxService{policy: &tax.Policy{ID: uuid.New(), Name: "PPN", Rate: 11, IsActive: true}}
	svc := NewService(repo, taxes, NewNopIdempotencyStore(), events.NopPublisher{}, nil)

	tx, err := svc.Checkout(context.Background(), CheckoutRequest{
		RiderID:       uuid.NewString(),
		Lines:         []CheckoutLine{{ProductID: productA, Quantity: 3}},
		PaymentMethod: "TRANSFER",
	})
	require.NoError(t, err)
	// round(3000 * 11 / 100) = 330
	assert.Equal(t, float64(330), tx.TaxAmount)
	assert.Equal(t, float64(3330), tx.FinalAmount)
}
