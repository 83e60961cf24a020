package report

import (
	"sort"
	"time"
)

// topProductLimit caps the top-seller ranking.
const topProductLimit = 5

// Summarize computes the headline numbers for a set of transactions. It is a
// pure transform: transactions with no items contribute zero, an empty input
// yields a zero-valued summary, and identical input always produces
// identical output.
func Summarize(txs []*Transaction) Summary {
	s := Summary{TopSellingProducts: []ProductSales{}}
	for _, t := range txs {
		s.TotalAmount += t.FinalAmount
	}
	s.TotalTransactions = len(txs)
	if s.TotalTransactions > 0 {
		s.AverageAmount = s.TotalAmount / float64(s.TotalTransactions)
	}

	// Group items by product, preserving first-encountered order so equal
	// quantities rank deterministically.
	byProduct := map[string]*ProductSales{}
	var order []string
	for _, t := range txs {
		for _, item := range t.Items {
			key := item.ProductID.String()
			agg, ok := byProduct[key]
			if !ok {
				agg = &ProductSales{
					ProductID:   item.ProductID,
					ProductName: item.ProductName,
					ProductSKU:  item.ProductSKU,
				}
				byProduct[key] = agg
				order = append(order, key)
			}
			agg.Quantity += item.Quantity
			agg.TotalAmount += item.Subtotal
		}
	}

	ranked := make([]ProductSales, 0, len(order))
	for _, key := range order {
		ranked = append(ranked, *byProduct[key])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Quantity > ranked[j].Quantity
	})
	if len(ranked) > topProductLimit {
		ranked = ranked[:topProductLimit]
	}
	s.TopSellingProducts = ranked
	return s
}

// FilterByDateRange keeps transactions created within [from, to], bounds
// inclusive.
func FilterByDateRange(txs []*Transaction, from, to time.Time) []*Transaction {
	var out []*Transaction
	for _, t := range txs {
		if t.CreatedAt.Before(from) || t.CreatedAt.After(to) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// FilterByRider keeps transactions for one rider. An empty riderID means all
// riders.
func FilterByRider(txs []*Transaction, riderID string) []*Transaction {
	if riderID == "" {
		return txs
	}
	var out []*Transaction
	for _, t := range txs {
		if t.RiderID.String() == riderID {
			out = append(out, t)
		}
	}
	return out
}
