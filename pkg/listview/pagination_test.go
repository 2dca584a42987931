package listview

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePagination(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		url      string
		wantPage int
		wantSize int
	}{
		{name: "defaults", url: "/payments", wantPage: 1, wantSize: 25},
		{name: "explicit", url: "/payments?PageNumber=3&PageSize=50", wantPage: 3, wantSize: 50},
		{name: "size_clamped", url: "/payments?PageSize=9000", wantPage: 1, wantSize: 100},
		{name: "garbage_ignored", url: "/payments?PageNumber=x&PageSize=-2", wantPage: 1, wantSize: 25},
		{name: "zero_page_ignored", url: "/payments?PageNumber=0", wantPage: 1, wantSize: 25},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tc.url, nil)
			p := ParsePagination(r, 25, 100)
			assert.Equal(t, tc.wantPage, p.Page)
			assert.Equal(t, tc.wantSize, p.Size)
		})
	}
}

func TestTotalPages(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, TotalPages(0, 25))
	assert.Equal(t, 1, TotalPages(25, 25))
	assert.Equal(t, 2, TotalPages(26, 25))
	assert.Equal(t, 4, TotalPages(100, 25))
	assert.Equal(t, 1, TotalPages(10, 0))
}

func TestWindow(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		current int
		total   int
		want    []int
	}{
		{name: "all_fit", current: 2, total: 3, want: []int{1, 2, 3}},
		{name: "middle", current: 5, total: 10, want: []int{1, Ellipsis, 4, 5, 6, Ellipsis, 10}},
		{name: "near_start", current: 2, total: 10, want: []int{1, 2, 3, Ellipsis, 10}},
		{name: "near_end", current: 9, total: 10, want: []int{1, Ellipsis, 8, 9, 10}},
		{name: "single", current: 1, total: 1, want: []int{1}},
		{name: "current_clamped", current: 42, total: 5, want: []int{1, Ellipsis, 4, 5}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Window(tc.current, tc.total, 1))
		})
	}
}

func TestParseSort_Whitelisted(t *testing.T) {
	t.Parallel()

	allowed := map[string]string{
		"createdAt": "created_at",
		"amount":    "amount",
	}
	def := Sort{Field: "createdAt", Desc: true}

	r := httptest.NewRequest("GET", "/payments?SortBy=amount&SortOrder=asc", nil)
	s := ParseSort(r, allowed, def)
	assert.Equal(t, "amount", s.Field)
	assert.False(t, s.Desc)
	assert.Equal(t, "amount", s.Column(allowed, "created_at"))
	assert.Equal(t, "ASC", s.Direction())

	// Unknown keys never reach SQL.
	r = httptest.NewRequest("GET", "/payments?SortBy=drop+table&SortOrder=desc", nil)
	s = ParseSort(r, allowed, def)
	assert.Equal(t, "createdAt", s.Field)
	assert.True(t, s.Desc)
}
