package view

import (
	"fmt"

	"bookspace/shared"
)

// Pagination is derived from the server's total; nothing is counted locally.
type Pagination struct {
	Page       int
	PageSize   int
	Total      int
	TotalPages int
}

func NewPagination(page, pageSize, total int) Pagination {
	return Pagination{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: shared.CalculateTotalPage(total, pageSize),
	}
}

// Pages lists every page number, 1..TotalPages.
func (p Pagination) Pages() []int {
	pages := make([]int, 0, p.TotalPages)
	for page := 1; page <= p.TotalPages; page++ {
		pages = append(pages, page)
	}

	return pages
}

func (p Pagination) PrevDisabled() bool {
	return p.Page <= 1
}

// NextDisabled is true on the last page, and also when there are no pages.
func (p Pagination) NextDisabled() bool {
	return p.Page >= p.TotalPages
}

func (p Pagination) Prev() int {
	return p.Page - 1
}

func (p Pagination) Next() int {
	return p.Page + 1
}

// From is the 1-based index of the first row on the page.
func (p Pagination) From() int {
	if p.Total == 0 {
		return 0
	}

	return (p.Page-1)*p.PageSize + 1
}

// To is the 1-based index of the last row on the page.
func (p Pagination) To() int {
	return min(p.Page*p.PageSize, p.Total)
}

// RangeText reads "Showing 1 to 8 of 20".
func (p Pagination) RangeText() string {
	return fmt.Sprintf("Showing %d to %d of %d", p.From(), p.To(), p.Total)
}

type PageLink struct {
	Number int
	URL    string
	Active bool
}

// Pager is a Pagination with the URL of every button resolved.
type Pager struct {
	Pagination
	Links   []PageLink
	PrevURL string
	NextURL string
}

// NewPager resolves the buttons of p through link, which maps a page number to its URL.
func NewPager(p Pagination, link func(page int) string) Pager {
	pager := Pager{Pagination: p}

	for _, page := range p.Pages() {
		pager.Links = append(pager.Links, PageLink{
			Number: page,
			URL:    link(page),
			Active: page == p.Page,
		})
	}

	if !p.PrevDisabled() {
		pager.PrevURL = link(p.Prev())
	}

	if !p.NextDisabled() {
		pager.NextURL = link(p.Next())
	}

	return pager
}
