package listview

// Filters keeps two copies of a filter record: the draft being edited and the
// applied copy that actually drives fetches. Apply and Reset are the only
// transitions, so there is never a partially applied state.
type Filters[T comparable] struct {
	draft   T
	applied T
	seq     uint64
}

func NewFilters[T comparable]() *Filters[T] {
	return &Filters[T]{}
}

func (f *Filters[T]) Draft() T   { return f.draft }
func (f *Filters[T]) Applied() T { return f.applied }

// Edit replaces the draft without touching the applied state.
func (f *Filters[T]) Edit(draft T) {
	f.draft = draft
}

// Apply copies the draft into the applied state and returns the fetch
// sequence the resulting request must be tagged with. Applying an unchanged
// draft yields an equal applied state, so the triggered fetch is equivalent.
func (f *Filters[T]) Apply() uint64 {
	f.applied = f.draft
	f.seq++
	return f.seq
}

// Reset clears both copies back to the zero default and re-arms a fetch.
// Reset is a fixed point: any sequence of edits followed by Reset lands on
// the same state.
func (f *Filters[T]) Reset() uint64 {
	var zero T
	f.draft = zero
	f.applied = zero
	f.seq++
	return f.seq
}

// Accept reports whether a completed fetch tagged with seq is still the
// latest issued request. Responses from superseded requests must be dropped
// instead of rendered.
func (f *Filters[T]) Accept(seq uint64) bool {
	return seq == f.seq
}
