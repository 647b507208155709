package nomination

import (
	"strconv"

	"github.com/sevigo/quality-warden/internal/core"
)

// PageRequest carries the optional page parameters exactly as the caller sent
// them. Empty strings mean "not supplied".
type PageRequest struct {
	Page     string
	PageSize string
}

// Parse validates the parameters and fills in defaults: page 1 and
// defaultPageSize rows. Page 0 is the same window as page 1.
func (r PageRequest) Parse(defaultPageSize int) (core.Pagination, error) {
	p := core.Pagination{Page: 1, PageSize: defaultPageSize}

	if r.Page != "" {
		page, err := strconv.Atoi(r.Page)
		if err != nil || page < 0 {
			return core.Pagination{}, core.ValidationError("page", core.KeyParameterInvalid)
		}
		p.Page = page
	}
	if r.PageSize != "" {
		size, err := strconv.Atoi(r.PageSize)
		if err != nil || size < 0 {
			return core.Pagination{}, core.ValidationError("page_size", core.KeyParameterInvalid)
		}
		p.PageSize = size
	}
	return p, nil
}
