package services

// PageSize is the fixed number of movies per listing page.
const PageSize = 12

// Pagination describes one page of an ordered result set.
type Pagination struct {
	Page     int
	PageSize int
	Total    int
}

func NewPagination(page, total int) Pagination {
	if page < 1 {
		page = 1
	}
	return Pagination{Page: page, PageSize: PageSize, Total: total}
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

func (p Pagination) TotalPages() int {
	if p.Total == 0 {
		return 1
	}
	return (p.Total + p.PageSize - 1) / p.PageSize
}

func (p Pagination) HasNext() bool {
	return p.Page < p.TotalPages()
}

func (p Pagination) HasPrev() bool {
	return p.Page > 1
}

func (p Pagination) NextPage() int { return p.Page + 1 }
func (p Pagination) PrevPage() int { return p.Page - 1 }
