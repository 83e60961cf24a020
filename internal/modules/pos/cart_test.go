package pos

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStock() (stock []RiderStock, productA, productB string) {
	a := RiderStock{ProductID: uuid.New(), ProductName: "Es Teh", ProductSKU: "A", Price: 1000, Quantity: 5}
	b := RiderStock{ProductID: uuid.New(), ProductName: "Kopi Susu", ProductSKU: "B", Price: 2500, Quantity: 2}
	return []RiderStock{a, b}, a.ProductID.String(), b.ProductID.String()
}

func TestCart_AddItem(t *testing.T) {
	stock, productA, _ := testStock()
	cart := NewCart(uuid.NewString(), stock)

	require.NoError(t, cart.AddItem(productA, 3))
	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity)
	assert.Equal(t, float64(3000), lines[0].Subtotal)
	assert.Equal(t, float64(3000), cart.Subtotal())
}

func TestCart_AddItem_MergesExistingLine(t *testing.T) {
	stock, productA, _ := testStock()
	cart := NewCart(uuid.NewString(), stock)

	require.NoError(t, cart.AddItem(productA, 2))
	require.NoError(t, cart.AddItem(productA, 1))

	lines := cart.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity)
	assert.Equal(t, float64(3000), lines[0].Subtotal)
}

func TestCart_AddItem_InsufficientStock(t *testing.T) {
	stock, _, productB := testStock()
	cart := NewCart(uuid.NewString(), stock)

	err := cart.AddItem(productB, 3)
	require.Error(t, err)
	var stockErr *InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 3, stockErr.Requested)
	assert.Equal(t, 2, stockErr.Available)
	assert.True(t, cart.Empty(), "failed add must leave the cart unchanged")
}

func TestCart_AddItem_CountsCartReservedQuantity(t *testing.T) {
	stock, productA, _ := testStock()
	cart := NewCart(uuid.NewString(), stock)

	require.NoError(t, cart.AddItem(productA, 4))
	// 5 on hand, 4 already reserved in this cart.
	err := cart.AddItem(productA, 2)
	var stockErr *InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 1, stockErr.Available)
}

func TestCart_AddItem_UnknownProduct(t *testing.T) {
	stock, _, _ := testStock()
	cart := NewCart(uuid.NewString(), stock)

	err := cart.AddItem(uuid.NewString(), 1)
	var stockErr *InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 0, stockErr.Available)
}

func TestCart_AddItem_RejectsZeroQuantity(t *testing.T) {
	stock, productA, _ := testStock()
	cart := NewCart(uuid.NewString(), stock)

	require.Error(t, cart.AddItem(productA, 0))
	assert.True(t, cart.Empty())
}

func TestCart_AddThenRemoveRestoresPriorState(t *testing.T) {
	stock, productA, productB := testStock()
	cart := NewCart(uuid.NewString(), stock)
	require.NoError(t, cart.AddItem(productA, 2))
	before := cart.Lines()

	require.NoError(t, cart.AddItem(productB, 1))
	cart.RemoveItem(productB)

	assert.Equal(t, before, cart.Lines())
	assert.Equal(t, float64(2000), cart.Subtotal())

	// Full availability is back after removal.
	require.NoError(t, cart.AddItem(productB, 2))
}

func TestCart_RemoveMissingProductIsNoop(t *testing.T) {
	stock, productA, _ := testStock()
	cart := NewCart(uuid.NewString(), stock)
	require.NoError(t, cart.AddItem(productA, 1))

	cart.RemoveItem(uuid.NewString())
	assert.Len(t, cart.Lines(), 1)
}

func TestCart_SubtotalEmpty(t *testing.T) {
	cart := NewCart(uuid.NewString(), nil)
	assert.Equal(t, float64(0), cart.Subtotal())
	assert.True(t, cart.Empty())
}
