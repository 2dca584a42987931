package debt_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blumenos/gridadmin/modules/billing/domain/entities/debt"
)

func agedBuckets() []debt.Bucket {
	return []debt.Bucket{
		{Label: "0-30", AgeDays: 0, Amount: decimal.NewFromInt(100)},
		{Label: "31-60", AgeDays: 31, Amount: decimal.NewFromInt(200)},
		{Label: "61-90", AgeDays: 61, Amount: decimal.NewFromInt(50)},
		{Label: "90+", AgeDays: 91, Amount: decimal.NewFromInt(400)},
	}
}

func TestAllocatePayment_OldestBucketsFirst(t *testing.T) {
	allocations, remainder := debt.AllocatePayment(decimal.NewFromInt(420), agedBuckets())

	require.Len(t, allocations, 4)
	assert.Equal(t, "90+", allocations[0].Bucket.Label)
	assert.True(t, allocations[0].Allocated.Equal(decimal.NewFromInt(400)))
	assert.Equal(t, "61-90", allocations[1].Bucket.Label)
	assert.True(t, allocations[1].Allocated.Equal(decimal.NewFromInt(20)))
	assert.True(t, allocations[2].Allocated.IsZero())
	assert.True(t, allocations[3].Allocated.IsZero())
	assert.True(t, remainder.IsZero())
}

func TestAllocatePayment_ExactSettlement(t *testing.T) {
	allocations, remainder := debt.AllocatePayment(decimal.NewFromInt(750), agedBuckets())

	require.Len(t, allocations, 4)
	for _, a := range allocations {
		assert.True(t, a.Allocated.Equal(a.Bucket.Amount), "bucket %s", a.Bucket.Label)
	}
	assert.True(t, remainder.IsZero())
}

func TestAllocatePayment_OverpaymentLeavesCredit(t *testing.T) {
	allocations, remainder := debt.AllocatePayment(decimal.NewFromInt(1000), agedBuckets())

	require.Len(t, allocations, 4)
	assert.True(t, remainder.Equal(decimal.NewFromInt(250)))
}

func TestAllocatePayment_FractionalAmounts(t *testing.T) {
	buckets := []debt.Bucket{
		{Label: "31-60", AgeDays: 31, Amount: decimal.RequireFromString("10.25")},
		{Label: "90+", AgeDays: 91, Amount: decimal.RequireFromString("99.75")},
	}
	allocations, remainder := debt.AllocatePayment(decimal.RequireFromString("100.00"), buckets)

	require.Len(t, allocations, 2)
	assert.True(t, allocations[0].Allocated.Equal(decimal.RequireFromString("99.75")))
	assert.True(t, allocations[1].Allocated.Equal(decimal.RequireFromString("0.25")))
	assert.True(t, remainder.IsZero())
}

func TestAllocatePayment_NoBuckets(t *testing.T) {
	allocations, remainder := debt.AllocatePayment(decimal.NewFromInt(100), nil)

	assert.Empty(t, allocations)
	assert.True(t, remainder.Equal(decimal.NewFromInt(100)))
}

func TestAllocatePayment_EmptyBucketsSkipped(t *testing.T) {
	buckets := []debt.Bucket{
		{Label: "0-30", AgeDays: 0, Amount: decimal.NewFromInt(80)},
		{Label: "90+", AgeDays: 91, Amount: decimal.Zero},
	}
	allocations, remainder := debt.AllocatePayment(decimal.NewFromInt(50), buckets)

	require.Len(t, allocations, 2)
	assert.True(t, allocations[0].Allocated.IsZero())
	assert.True(t, allocations[1].Allocated.Equal(decimal.NewFromInt(50)))
	assert.True(t, remainder.IsZero())
}

func TestAllocatePayment_DoesNotMutateInput(t *testing.T) {
	buckets := agedBuckets()
	_, _ = debt.AllocatePayment(decimal.NewFromInt(500), buckets)

	assert.Equal(t, "0-30", buckets[0].Label)
	assert.Equal(t, "90+", buckets[3].Label)
}
