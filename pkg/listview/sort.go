package listview

import (
	"net/http"
	"strings"
)

// Sort is a whitelisted sort key with direction.
type Sort struct {
	Field string
	Desc  bool
}

// ParseSort reads SortBy/SortOrder query parameters. Keys outside allowed
// fall back to def so arbitrary column names never reach SQL.
func ParseSort(r *http.Request, allowed map[string]string, def Sort) Sort {
	s := def
	if v := strings.TrimSpace(r.URL.Query().Get("SortBy")); v != "" {
		if _, ok := allowed[v]; ok {
			s.Field = v
		}
	}
	switch strings.ToLower(strings.TrimSpace(r.URL.Query().Get("SortOrder"))) {
	case "desc":
		s.Desc = true
	case "asc":
		s.Desc = false
	}
	return s
}

// Column resolves the SQL column for the whitelisted sort key.
func (s Sort) Column(allowed map[string]string, def string) string {
	if col, ok := allowed[s.Field]; ok {
		return col
	}
	return def
}

// Direction returns the SQL keyword for the sort direction.
func (s Sort) Direction() string {
	if s.Desc {
		return "DESC"
	}
	return "ASC"
}
