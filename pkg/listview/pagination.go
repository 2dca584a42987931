package listview

import (
	"net/http"
	"strconv"
	"strings"
)

// Ellipsis is the sentinel emitted by Window where page numbers are elided.
const Ellipsis = -1

// Pagination is the parsed PageNumber/PageSize pair of a list request.
type Pagination struct {
	Page int
	Size int
}

// ParsePagination reads PageNumber/PageSize query parameters, clamping the
// size between 1 and maxSize and the page to >= 1.
func ParsePagination(r *http.Request, defaultSize, maxSize int) Pagination {
	p := Pagination{Page: 1, Size: defaultSize}
	if v := strings.TrimSpace(r.URL.Query().Get("PageNumber")); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			p.Page = parsed
		}
	}
	if v := strings.TrimSpace(r.URL.Query().Get("PageSize")); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			p.Size = parsed
		}
	}
	if p.Size > maxSize {
		p.Size = maxSize
	}
	if p.Size <= 0 {
		p.Size = defaultSize
	}
	return p
}

func (p Pagination) Limit() int  { return p.Size }
func (p Pagination) Offset() int { return (p.Page - 1) * p.Size }

// TotalPages returns the page count for a total row count, never below 1
// so an empty list still renders page 1 of 1.
func TotalPages(total int64, size int) int {
	if size <= 0 {
		return 1
	}
	pages := int((total + int64(size) - 1) / int64(size))
	if pages < 1 {
		return 1
	}
	return pages
}

// Window computes the page-number strip: first and last page, the current
// page with its neighbors, and Ellipsis sentinels across gaps. Pure display
// computation over (current, total).
func Window(current, total, neighbors int) []int {
	if total <= 0 {
		return nil
	}
	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}
	if neighbors < 0 {
		neighbors = 0
	}

	lo := current - neighbors
	hi := current + neighbors
	if lo < 1 {
		lo = 1
	}
	if hi > total {
		hi = total
	}

	out := make([]int, 0, hi-lo+5)
	if lo > 1 {
		out = append(out, 1)
		if lo > 2 {
			out = append(out, Ellipsis)
		}
	}
	for p := lo; p <= hi; p++ {
		out = append(out, p)
	}
	if hi < total {
		if hi < total-1 {
			out = append(out, Ellipsis)
		}
		out = append(out, total)
	}
	return out
}
