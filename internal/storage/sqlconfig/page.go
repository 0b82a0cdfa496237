package sqlconfig

import "strings"

// ListPage is a resolved page request. Queries fetch Limit+1 rows so the
// extra row tells whether another page follows.
type ListPage struct {
	Name   string
	Limit  int
	Offset int
}

// NewListPage applies DefaultListLimit and drops a negative offset.
func NewListPage(name string, limit, offset int) ListPage {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return ListPage{Name: strings.TrimSpace(name), Limit: limit, Offset: offset}
}

// Fetch is the LIMIT sent to the database.
func (p ListPage) Fetch() int {
	return p.Limit + 1
}

// NamePattern is the ILIKE pattern for a substring match, or "" for no filter.
func (p ListPage) NamePattern() string {
	if p.Name == "" {
		return ""
	}
	return "%" + p.Name + "%"
}

// Trim cuts rows fetched with Fetch back to the page size and reports
// whether another page follows.
func (p ListPage) Trim(n int) (int, bool) {
	if n > p.Limit {
		return p.Limit, true
	}
	return n, false
}

// Pointers returns pointers into rows.
func Pointers[T any](rows []T) []*T {
	result := make([]*T, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result
}
