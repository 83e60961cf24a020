package tax

import "math"

// Compute applies the policy to a subtotal and returns the tax and final
// amount. A nil or inactive policy yields zero tax. Amounts are whole
// rupiah, so the tax rounds to the nearest unit.
func Compute(subtotal float64, p *Policy) (taxAmount, finalAmount float64) {
	if p == nil || !p.IsActive {
		return 0, subtotal
	}
	taxAmount = math.Round(subtotal * p.Rate / 100)
	return taxAmount, subtotal + taxAmount
}
