package pagination

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	DefaultPageSize = 500
	MaxPageSize     = 1000
)

// Params holds one-based page parameters extracted from a request.
type Params struct {
	PageNumber int
	PageSize   int
}

// FromContext extracts PageNumber and PageSize from the echo context.
// Missing or invalid values fall back to page 1 with the default size.
func FromContext(c echo.Context) Params {
	page, _ := strconv.Atoi(c.QueryParam("PageNumber"))
	if page <= 0 {
		page = 1
	}

	size, _ := strconv.Atoi(c.QueryParam("PageSize"))
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}

	return Params{PageNumber: page, PageSize: size}
}

// Offset converts the one-based page number to a row offset.
func (p Params) Offset() int {
	return (p.PageNumber - 1) * p.PageSize
}

// HasNext reports whether more results follow the current page.
func (p Params) HasNext(total int) bool {
	return p.Offset()+p.PageSize < total
}

// Page wraps a paginated result set.
type Page struct {
	Items      interface{} `json:"items"`
	TotalCount int         `json:"totalCount"`
	PageNumber int         `json:"pageNumber"`
	PageSize   int         `json:"pageSize"`
	HasMore    bool        `json:"hasMore"`
}

func NewPage(items interface{}, total int, p Params) *Page {
	return &Page{
		Items:      items,
		TotalCount: total,
		PageNumber: p.PageNumber,
		PageSize:   p.PageSize,
		HasMore:    p.HasNext(total),
	}
}
