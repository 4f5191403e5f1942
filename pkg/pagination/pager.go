package pagination

type Pager struct {
	page  int
	limit int
	total int64
}

type PageInfo struct {
	TotalItems   int64 `json:"total_items"`
	TotalPages   int   `json:"total_pages"`
	CurrentPage  int   `json:"current_page"`
	FirstPage    int   `json:"first_page"`
	LastPage     int   `json:"last_page"`
	NextPage     *int  `json:"next_page"`
	PreviousPage *int  `json:"previous_page"`
	Limit        int   `json:"limit"`
}

func NewPager(page, limit int) *Pager {
	if page < 1 {
		page = 1
	}

	if limit < 1 {
		limit = 10
	}

	return &Pager{page: page, limit: limit}
}

func (p *Pager) SetTotal(total int64) {
	p.total = total
}

// Do returns the offset and limit to query with.
func (p *Pager) Do() (int, int) {
	return (p.page - 1) * p.limit, p.limit
}

func (p *Pager) PageInfo() PageInfo {
	totalPages := int((p.total + int64(p.limit) - 1) / int64(p.limit))
	lastPage := totalPages
	if lastPage < 1 {
		lastPage = 1
	}

	info := PageInfo{
		TotalItems:  p.total,
		TotalPages:  totalPages,
		CurrentPage: p.page,
		FirstPage:   1,
		LastPage:    lastPage,
		Limit:       p.limit,
	}

	if p.page < lastPage {
		next := p.page + 1
		info.NextPage = &next
	}

	if p.page > 1 {
		prev := p.page - 1
		info.PreviousPage = &prev
	}

	return info
}
