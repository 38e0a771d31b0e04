package dto

// PageResponse is the list envelope returned by the booking API.
type PageResponse[T any] struct {
	Data  []T  `json:"data"  validate:"required,dive"`
	Total *int `json:"total" validate:"required,gte=0"`
}

func (p *PageResponse[T]) ToPage() Page[T] {
	page := Page[T]{Items: p.Data}
	if p.Total != nil {
		page.Total = *p.Total
	}

	return page
}

// Page is one slice of a collection plus the authoritative collection size.
type Page[T any] struct {
	Items []T
	Total int
}
