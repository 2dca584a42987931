package listview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type paymentFilters struct {
	VendorID int
	Status   string
	From     string
	To       string
	Q        string
}

func TestFilters_ApplyIsIdempotent(t *testing.T) {
	t.Parallel()

	f := NewFilters[paymentFilters]()
	f.Edit(paymentFilters{VendorID: 7, Status: "CONFIRMED"})

	seq1 := f.Apply()
	first := f.Applied()

	seq2 := f.Apply()
	second := f.Applied()

	assert.Equal(t, first, second, "applying the same draft twice must produce the same applied state")
	assert.Greater(t, seq2, seq1)
	assert.True(t, f.Accept(seq2))
	assert.False(t, f.Accept(seq1), "a superseded fetch must be discarded")
}

func TestFilters_ResetIsFixedPoint(t *testing.T) {
	t.Parallel()

	f := NewFilters[paymentFilters]()

	f.Edit(paymentFilters{Q: "meter"})
	f.Apply()
	f.Edit(paymentFilters{VendorID: 3, Status: "PENDING", From: "2025-01-01"})
	f.Reset()

	var zero paymentFilters
	require.Equal(t, zero, f.Draft())
	require.Equal(t, zero, f.Applied())

	// Reset after Reset stays at the default.
	f.Reset()
	require.Equal(t, zero, f.Draft())
	require.Equal(t, zero, f.Applied())
}

func TestFilters_EditDoesNotTouchApplied(t *testing.T) {
	t.Parallel()

	f := NewFilters[paymentFilters]()
	f.Edit(paymentFilters{Status: "CONFIRMED"})
	f.Apply()

	f.Edit(paymentFilters{Status: "FAILED"})
	assert.Equal(t, "CONFIRMED", f.Applied().Status)
	assert.Equal(t, "FAILED", f.Draft().Status)
}

func TestFilters_StaleResponseDiscarded(t *testing.T) {
	t.Parallel()

	f := NewFilters[paymentFilters]()

	f.Edit(paymentFilters{Q: "a"})
	seqA := f.Apply()
	f.Edit(paymentFilters{Q: "ab"})
	seqB := f.Apply()

	// The response for "a" lands after "ab" was issued.
	assert.False(t, f.Accept(seqA))
	assert.True(t, f.Accept(seqB))
}
