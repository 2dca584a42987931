package debt

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Allocation records how much of a payment lands in one bucket.
type Allocation struct {
	Bucket    Bucket
	Allocated decimal.Decimal
}

// AllocatePayment previews how a payment would settle aged debt. Buckets are
// paid oldest-first; the remainder after the newest bucket stays with the
// customer as credit. Pure computation, no rounding beyond the inputs.
func AllocatePayment(amount decimal.Decimal, buckets []Bucket) ([]Allocation, decimal.Decimal) {
	ordered := make([]Bucket, len(buckets))
	copy(ordered, buckets)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].AgeDays > ordered[j].AgeDays
	})

	remaining := amount
	allocations := make([]Allocation, 0, len(ordered))
	for _, b := range ordered {
		if remaining.Sign() <= 0 || b.Amount.Sign() <= 0 {
			allocations = append(allocations, Allocation{Bucket: b, Allocated: decimal.Zero})
			continue
		}
		take := decimal.Min(remaining, b.Amount)
		allocations = append(allocations, Allocation{Bucket: b, Allocated: take})
		remaining = remaining.Sub(take)
	}
	return allocations, remaining
}
