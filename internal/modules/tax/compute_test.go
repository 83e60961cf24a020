package tax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompute_NilPolicy(t *testing.T) {
	taxAmount, finalAmount := Compute(5000, nil)
	assert.Equal(t, float64(0), taxAmount)
	assert.Equal(t, float64(5000), finalAmount)
}

func TestCompute_InactivePolicy(t *testing.T) {
	taxAmount, finalAmount := Compute(5000, &Policy{Name: "PPN", Rate: 10, IsActive: false})
	assert.Equal(t, float64(0), taxAmount)
	assert.Equal(t, float64(5000), finalAmount)
}

func TestCompute_ZeroSubtotal(t *testing.T) {
	taxAmount, finalAmount := Compute(0, &Policy{Name: "PPN", Rate: 10, IsActive: true})
	assert.Equal(t, float64(0), taxAmount)
	assert.Equal(t, float64(0), finalAmount)
}

func TestCompute_ActivePolicy(t *testing.T) {
	taxAmount, finalAmount := Compute(3000, &Policy{Name: "PPN", Rate: 10, IsActive: true})
	assert.Equal(t, float64(300), taxAmount)
	assert.Equal(t, float64(3300), finalAmount)
}

func TestCompute_RoundsToWholeRupiah(t *testing.T) {
	// 11% of 1500 = 165 exactly; 11% of 1234 = 135.74 rounds to 136.
	taxAmount, _ := Compute(1500, &Policy{Name: "PPN", Rate: 11, IsActive: true})
	assert.Equal(t, float64(165), taxAmount)

	taxAmount, finalAmount := Compute(1234, &Policy{Name: "PPN", Rate: 11, IsActive: true})
	assert.Equal(t, float64(136), taxAmount)
	assert.Equal(t, float64(1370), finalAmount)
}

func TestCompute_Deterministic(t *testing.T) {
	p := &Policy{Name: "PPN", Rate: 10, IsActive: true}
	tax1, final1 := Compute(99999, p)
	tax2, final2 := Compute(99999, p)
	assert.Equal(t, tax1, tax2)
	assert.Equal(t, final1, final2)
}

func TestPolicy_Validate(t *testing.T) {
	assert.NoError(t, (&Policy{Name: "PPN", Rate: 0}).Validate())
	assert.NoError(t, (&Policy{Name: "PPN", Rate: 100}).Validate())
	assert.ErrorIs(t, (&Policy{Name: "", Rate: 10}).Validate(), ErrInvalidTaxPolicy)
	assert.ErrorIs(t, (&Policy{Name: "PPN", Rate: -1}).Validate(), ErrInvalidTaxPolicy)
	assert.ErrorIs(t, (&Policy{Name: "PPN", Rate: 100.5}).Validate(), ErrInvalidTaxPolicy)
}
