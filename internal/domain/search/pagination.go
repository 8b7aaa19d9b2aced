package search

// Pagination describes where a page sits in the full result set
type Pagination struct {
	Page       int
	PerPage    int
	Total      int64
	TotalPages int64
	HasNext    bool
	HasPrev    bool
	NextPage   *int
	PrevPage   *int
}

// NewPagination computes page metadata. perPage must be positive.
func NewPagination(page, perPage int, total int64) Pagination {
	if total < 0 {
		total = 0
	}
	totalPages := (total + int64(perPage) - 1) / int64(perPage)

	p := Pagination{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    int64(page) < totalPages,
		HasPrev:    page > 1,
	}
	if p.HasNext {
		next := page + 1
		p.NextPage = &next
	}
	if p.HasPrev {
		prev := page - 1
		p.PrevPage = &prev
	}
	return p
}
