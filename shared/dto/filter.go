package dto

import (
	"net/http"

	"bookspace/shared/constant"
)

// Filter is the optional narrowing of a list: free text plus a status option.
type Filter struct {
	Search string `json:"search"`
	Status string `json:"status"`
}

func (f *Filter) FromRequest(r *http.Request) {
	queryParams := r.URL.Query()

	f.Search = queryParams.Get(constant.RequestParamSearch)

	if status := queryParams.Get(constant.RequestParamStatus); status != "" {
		f.Status = status
	}
}

// SetSearch reports whether the search text changed.
func (f *Filter) SetSearch(search string) bool {
	if f.Search == search {
		return false
	}

	f.Search = search

	return true
}

// SetStatus reports whether the status option changed.
func (f *Filter) SetStatus(status string) bool {
	if f.Status == status {
		return false
	}

	f.Status = status

	return true
}
