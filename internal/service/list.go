package service

const (
	defaultPageSize = 20
	maxPageSize     = 100
	maxPage         = 1_000_000
)

// ListQuery selects one page of a name-ordered listing.
type ListQuery struct {
	Page   int
	Size   int
	Filter string
}

func (q ListQuery) limitOffset() (int, int) {
	size := q.Size
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	page := q.Page
	if page < 0 {
		page = 0
	}
	if page > maxPage {
		page = maxPage
	}
	return size, page * size
}
