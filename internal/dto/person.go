package dto

import (
	"github.com/Payphone-Digital/roster/internal/query"
)

// ListPersonsRequest is the query string of GET /persons. Absent values take
// the query defaults; page is clamped later, never rejected.
type ListPersonsRequest struct {
	Page     *int   `form:"page"`
	PageSize *int   `form:"page_size" binding:"omitempty,min=1,max=100"`
	Query    string `form:"query" binding:"max=100"`
	Status   string `form:"status"`
	Sort     string `form:"sort" binding:"omitempty,sortfield"`
	Order    string `form:"order" binding:"omitempty,sortorder"`
}

// ToQuery fills in defaults for anything the caller left out.
func (r ListPersonsRequest) ToQuery() query.Request {
	req := query.DefaultRequest()
	if r.Page != nil {
		req.Page = *r.Page
	}
	if r.PageSize != nil {
		req.PageSize = *r.PageSize
	}
	req.Search = r.Query
	if r.Status != "" {
		req.Status = r.Status
	}
	if r.Sort != "" {
		req.SortField = r.Sort
	}
	if r.Order != "" {
		req.SortDirection = r.Order
	}
	return req
}

// ListPersonsResponse mirrors query.Result on the wire.
type ListPersonsResponse = query.Result
