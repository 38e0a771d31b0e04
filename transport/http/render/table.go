package render

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"bookspace/internal/view"
	"bookspace/shared"
	"bookspace/shared/constant"
	"bookspace/shared/dto"
)

// Table is what a list page and its rows fragment render from.
type Table[T any] struct {
	Path    string
	List    *view.List[T]
	Empty   string
	Banner  string
	Detail  *T
	Confirm *T
}

func (t Table[T]) Items() []T {
	return t.List.Items()
}

func (t Table[T]) Query() dto.QueryParams {
	return t.List.Query()
}

func (t Table[T]) RowNumber(i int) int {
	return t.List.RowNumber(i)
}

func (t Table[T]) Pager() view.Pager {
	return t.List.Pager(t.Path)
}

func (t Table[T]) State() State {
	return ListState(t.List.State(), t.Empty)
}

// Link is the browser URL of the rows as rendered. The rows refresh puts it
// in the address bar.
func (t Table[T]) Link() string {
	return t.Query().Link(t.Path)
}

// ShowPager hides the pagination of a page whose fetch failed; its range
// would describe rows that are not there.
func (t Table[T]) ShowPager() bool {
	return t.List.State() != view.StateError
}

func (t Table[T]) DetailURL(id int) string {
	return t.Query().LinkWith(t.Path, url.Values{constant.RequestParamDetail: {strconv.Itoa(id)}})
}

func (t Table[T]) DeleteURL(id int) string {
	return t.Query().LinkWith(t.Path, url.Values{constant.RequestParamDelete: {strconv.Itoa(id)}})
}

// DeleteAction is where the confirmation form posts; the list query rides along.
func (t Table[T]) DeleteAction(id int) string {
	return t.Query().Link(fmt.Sprintf("%s/%d/delete", t.Path, id))
}

// DismissURL closes whichever dialog is open.
func (t Table[T]) DismissURL() string {
	return t.Query().Link(t.Path)
}

func (t Table[T]) StatusOptions() []Option {
	return StatusOptions()
}

// OpenDialogs opens the detail or delete dialog named in the request URL. Only
// rows of the loaded page can be shown; other ids are ignored.
func (t *Table[T]) OpenDialogs(req *http.Request) {
	query := req.URL.Query()

	if id := shared.ConvertStringToInt(query.Get(constant.RequestParamDetail)); id != nil && t.List.ShowDetail(*id) {
		if item, ok := t.List.Detail.Payload(); ok {
			t.Detail = &item
		}
	}

	if id := shared.ConvertStringToInt(query.Get(constant.RequestParamDelete)); id != nil && t.List.AskDelete(*id) {
		if item, ok := t.List.Confirm.Payload(); ok {
			t.Confirm = &item
		}
	}
}
