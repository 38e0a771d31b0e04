package view

import (
	"context"
	"sync"

	"bookspace/shared/dto"
)

type Fetcher[T any] func(ctx context.Context, query dto.QueryParams) (dto.Page[T], error)

type State int

const (
	StateIdle State = iota
	StateReady
	StateEmpty
	StateError
)

// List is the view-model of a paged, filterable table with a detail dialog
// and a delete confirmation. It is safe for concurrent use.
type List[T any] struct {
	mu     sync.Mutex
	query  dto.QueryParams
	items  []T
	total  int
	loaded bool
	err    error
	idOf   func(T) int

	Detail  Dialog[T]
	Confirm Dialog[T]
}

func NewList[T any](query dto.QueryParams, idOf func(T) int) *List[T] {
	return &List[T]{
		query: query,
		idOf:  idOf,
	}
}

// SetSearch changes the search text and, if it changed, goes back to page 1.
func (l *List[T]) SetSearch(search string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.query.SetSearch(search) {
		return false
	}

	l.query.Page = 1

	return true
}

// SetStatus changes the status filter and, if it changed, goes back to page 1.
func (l *List[T]) SetStatus(status string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.query.SetStatus(status) {
		return false
	}

	l.query.Page = 1

	return true
}

// ApplyFilter moves the list to filter and reports whether anything changed.
func (l *List[T]) ApplyFilter(filter dto.Filter) bool {
	searchChanged := l.SetSearch(filter.Search)
	statusChanged := l.SetStatus(filter.Status)

	return searchChanged || statusChanged
}

// Load issues one fetch for the current query. A failed fetch keeps the items
// of the last successful one.
func (l *List[T]) Load(ctx context.Context, fetch Fetcher[T]) error {
	page, err := fetch(ctx, l.Query())

	l.mu.Lock()
	defer l.mu.Unlock()

	if err != nil {
		l.err = err

		return err
	}

	l.items = page.Items
	l.total = page.Total
	l.err = nil
	l.loaded = true

	return nil
}

// ShowDetail opens the detail dialog for a row of the loaded page.
func (l *List[T]) ShowDetail(id int) bool {
	item, ok := l.find(id)
	if ok {
		l.Detail.Open(item)
	}

	return ok
}

// AskDelete opens the delete confirmation for a row of the loaded page.
func (l *List[T]) AskDelete(id int) bool {
	item, ok := l.find(id)
	if ok {
		l.Confirm.Open(item)
	}

	return ok
}

func (l *List[T]) find(id int) (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, item := range l.items {
		if l.idOf(item) == id {
			return item, true
		}
	}

	var zero T

	return zero, false
}

func (l *List[T]) Items() []T {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.items
}

func (l *List[T]) Total() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.total
}

func (l *List[T]) Query() dto.QueryParams {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.query
}

func (l *List[T]) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.err
}

func (l *List[T]) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch {
	case l.err != nil:
		return StateError
	case !l.loaded:
		return StateIdle
	case len(l.items) == 0:
		return StateEmpty
	default:
		return StateReady
	}
}

func (l *List[T]) Pagination() Pagination {
	l.mu.Lock()
	defer l.mu.Unlock()

	return NewPagination(l.query.Page, l.query.PageSize, l.total)
}

// PageLink is the browser URL of page under path, keeping the filters.
func (l *List[T]) PageLink(path string, page int) string {
	return l.Query().WithPage(page).Link(path)
}

// Pager resolves the pagination buttons to URLs under path.
func (l *List[T]) Pager(path string) Pager {
	query := l.Query()

	return NewPager(l.Pagination(), func(page int) string {
		return query.WithPage(page).Link(path)
	})
}

// RowNumber is the 1-based position of the i-th loaded row in the whole collection.
func (l *List[T]) RowNumber(i int) int {
	query := l.Query()

	return (query.Page-1)*query.PageSize + i + 1
}
