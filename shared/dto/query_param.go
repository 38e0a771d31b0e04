package dto

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"bookspace/shared/constant"
)

type QueryParams struct {
	Page     int `json:"page"     validate:"gte=1"`
	PageSize int `json:"pageSize" validate:"gte=1"`
	Filter
}

// FromRequest populates QueryParams from the HTTP request.
// Page and PageSize keep their current values when the request omits them or
// carries something that is not a positive number. When `defaultRequest` is
// true the remaining zero values fall back to the defaults.
//
//	q := &dto.QueryParams{PageSize: cfg.API.PageSize}
//	q.FromRequest(req, true)
func (q *QueryParams) FromRequest(r *http.Request, defaultRequest bool) {
	queryParams := r.URL.Query()

	if page := queryParams.Get(constant.RequestParamPage); page != "" {
		if pageInt, err := strconv.Atoi(page); err == nil && pageInt > 0 {
			q.Page = pageInt
		}
	}

	if pageSize := queryParams.Get(constant.RequestParamPageSize); pageSize != "" {
		if pageSizeInt, err := strconv.Atoi(pageSize); err == nil && pageSizeInt > 0 {
			q.PageSize = pageSizeInt
		}
	}

	q.Filter.FromRequest(r)

	if defaultRequest {
		if q.Page == 0 {
			q.Page = constant.DefaultValuePage
		}

		if q.PageSize == 0 {
			q.PageSize = constant.DefaultValuePageSize
		}

		if q.Status == "" {
			q.Status = constant.DefaultValueStatus
		}
	}
}

// Values encodes the paging part of the query, e.g. page=1&pageSize=8.
func (q QueryParams) Values() url.Values {
	values := url.Values{}
	values.Set(constant.RequestParamPage, strconv.Itoa(q.Page))
	values.Set(constant.RequestParamPageSize, strconv.Itoa(q.PageSize))

	return values
}

// FilterValues encodes paging plus both filters. Search is always sent, even
// when empty: page=1&pageSize=8&search=&status=Rejected.
func (q QueryParams) FilterValues() url.Values {
	values := q.Values()
	values.Set(constant.RequestParamSearch, q.Search)
	values.Set(constant.RequestParamStatus, q.Status)

	return values
}

// WithPage returns a copy of q pointing at page.
func (q QueryParams) WithPage(page int) QueryParams {
	q.Page = page

	return q
}

// Link renders the browser URL of this query under path. Defaults are left
// out so that the first page of an unfiltered list is just path.
func (q QueryParams) Link(path string) string {
	return q.LinkWith(path, nil)
}

// LinkWith is Link plus extra parameters, e.g. the row an open dialog shows.
func (q QueryParams) LinkWith(path string, extra url.Values) string {
	values := url.Values{}

	if q.Page > constant.DefaultValuePage {
		values.Set(constant.RequestParamPage, strconv.Itoa(q.Page))
	}

	if strings.TrimSpace(q.Search) != "" {
		values.Set(constant.RequestParamSearch, q.Search)
	}

	if q.Status != "" && q.Status != constant.DefaultValueStatus {
		values.Set(constant.RequestParamStatus, q.Status)
	}

	for key, value := range extra {
		values[key] = value
	}

	if len(values) == 0 {
		return path
	}

	return path + "?" + values.Encode()
}
