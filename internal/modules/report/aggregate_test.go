package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tx(rider uuid.UUID, createdAt time.Time, finalAmount float64, items ...*TransactionItem) *Transaction {
	return &Transaction{
		ID:          uuid.New(),
		RiderID:     rider,
		FinalAmount: finalAmount,
		CreatedAt:   createdAt,
		Items:       items,
	}
}

func item(productID uuid.UUID, name string, qty int, subtotal float64) *TransactionItem {
	return &TransactionItem{ProductID: productID, ProductName: name, Quantity: qty, Subtotal: subtotal}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, float64(0), s.TotalAmount)
	assert.Equal(t, 0, s.TotalTransactions)
	assert.Equal(t, float64(0), s.AverageAmount, "no division by zero")
	assert.Empty(t, s.TopSellingProducts)
}

func TestSummarize_Totals(t *testing.T) {
	rider := uuid.New()
	now := time.Now()
	s := Summarize([]*Transaction{
		tx(rider, now, 3300),
		tx(rider, now, 1100),
	})
	assert.Equal(t, float64(4400), s.TotalAmount)
	assert.Equal(t, 2, s.TotalTransactions)
	assert.Equal(t, float64(2200), s.AverageAmount)
}

func TestSummarize_GroupsItemsAcrossTransactions(t *testing.T) {
	rider := uuid.New()
	now := time.Now()
	productA, productB := uuid.New(), uuid.New()

	s := Summarize([]*Transaction{
		tx(rider, now, 5000, item(productA, "Es Teh", 3, 3000), item(productB, "Kopi Susu", 1, 2500)),
		tx(rider, now, 2000, item(productA, "Es Teh", 2, 2000)),
	})

	require.Len(t, s.TopSellingProducts, 2)
	assert.Equal(t, productA, s.TopSellingProducts[0].ProductID)
	assert.Equal(t, 5, s.TopSellingProducts[0].Quantity)
	assert.Equal(t, float64(5000), s.TopSellingProducts[0].TotalAmount)
	assert.Equal(t, productB, s.TopSellingProducts[1].ProductID)
}

func TestSummarize_TopFiveOnly(t *testing.T) {
	rider := uuid.New()
	now := time.Now()
	var items []*TransactionItem
	for i := 0; i < 7; i++ {
		items = append(items, item(uuid.New(), "P", i+1, float64((i+1)*100)))
	}
	s := Summarize([]*Transaction{tx(rider, now, 0, items...)})

	require.Len(t, s.TopSellingProducts, 5)
	// Descending by quantity: 7,6,5,4,3.
	assert.Equal(t, 7, s.TopSellingProducts[0].Quantity)
	assert.Equal(t, 3, s.TopSellingProducts[4].Quantity)
}

func TestSummarize_TieBreakIsFirstEncountered(t *testing.T) {
	rider := uuid.New()
	now := time.Now()
	first, second := uuid.New(), uuid.New()

	s := Summarize([]*Transaction{
		tx(rider, now, 0, item(first, "First", 2, 200), item(second, "Second", 2, 200)),
	})

	require.Len(t, s.TopSellingProducts, 2)
	assert.Equal(t, first, s.TopSellingProducts[0].ProductID)
	assert.Equal(t, second, s.TopSellingProducts[1].ProductID)
}

func TestSummarize_MissingItemsContributeZero(t *testing.T) {
	rider := uuid.New()
	s := Summarize([]*Transaction{tx(rider, time.Now(), 1000)})
	assert.Equal(t, float64(1000), s.TotalAmount)
	assert.Empty(t, s.TopSellingProducts)
}

func TestFilterByDateRange_InclusiveBounds(t *testing.T) {
	rider := uuid.New()
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 30, 23, 59, 59, 0, time.UTC)

	onFrom := tx(rider, from, 100)
	onTo := tx(rider, to, 100)
	before := tx(rider, from.Add(-time.Second), 100)
	after := tx(rider, to.Add(time.Second), 100)

	got := FilterByDateRange([]*Transaction{onFrom, onTo, before, after}, from, to)
	assert.Equal(t, []*Transaction{onFrom, onTo}, got)
}

func TestFilterByRider(t *testing.T) {
	riderA, riderB := uuid.New(), uuid.New()
	now := time.Now()
	txA := tx(riderA, now, 100)
	txB := tx(riderB, now, 100)
	all := []*Transaction{txA, txB}

	assert.Equal(t, []*Transaction{txA}, FilterByRider(all, riderA.String()))
	assert.Equal(t, all, FilterByRider(all, ""), "empty rider means all riders")
	assert.Empty(t, FilterByRider(all, uuid.NewString()))
}
