package dto

const (
	DefaultPageNumber = 1
	DefaultPageSize   = 10
	MaxPageSize       = 100
)

// PageParams is embedded by every paginated request.
type PageParams struct {
	PageNumber int `form:"pageNumber" json:"pageNumber" validate:"min=1"`
	PageSize   int `form:"pageSize" json:"pageSize" validate:"min=1,max=100"`
}

// WithDefaults fills paging values the caller left out.
func (p PageParams) WithDefaults() PageParams {
	if p.PageNumber == 0 {
		p.PageNumber = DefaultPageNumber
	}
	if p.PageSize == 0 {
		p.PageSize = DefaultPageSize
	}
	return p
}

// ListParams is a plain paginated listing.
type ListParams struct {
	PageParams
}
