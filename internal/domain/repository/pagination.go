package repository

// DefaultPerPage is the fallback page size for listing endpoints.
const DefaultPerPage = 15

// Pagination is a stateless page-number cursor.
type Pagination struct {
	Page    int
	PerPage int
}

// Normalize clamps the cursor to sane values.
func (p Pagination) Normalize() Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage < 1 {
		p.PerPage = DefaultPerPage
	}

	return p
}

// Offset returns the row offset for the normalized cursor.
func (p Pagination) Offset() int {
	n := p.Normalize()

	return (n.Page - 1) * n.PerPage
}

// Page is one bounded page of records in stable primary-key order.
type Page[E any] struct {
	Items    []*E  `json:"items"`
	Page     int   `json:"page"`
	PerPage  int   `json:"per_page"`
	Total    int64 `json:"total"`
	LastPage int   `json:"last_page"`
}

// NewPage assembles a page with derived metadata.
func NewPage[E any](items []*E, p Pagination, total int64) *Page[E] {
	p = p.Normalize()
	lastPage := int((total + int64(p.PerPage) - 1) / int64(p.PerPage))
	if lastPage < 1 {
		lastPage = 1
	}

	return &Page[E]{
		Items:    items,
		Page:     p.Page,
		PerPage:  p.PerPage,
		Total:    total,
		LastPage: lastPage,
	}
}
