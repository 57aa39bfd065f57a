package pagination

import "gorm.io/gorm"

// PagedResult is one page of an ordered collection.
// TotalCount is the size of the collection before the page was cut.
type PagedResult[T any] struct {
	Items      []T `json:"items"`
	TotalCount int `json:"totalCount"`
	PageNumber int `json:"pageNumber"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

// New builds a PagedResult. Page number and size are stored as given.
func New[T any](items []T, totalCount, pageNumber, pageSize int) PagedResult[T] {
	if items == nil {
		items = []T{}
	}
	return PagedResult[T]{
		Items:      items,
		TotalCount: totalCount,
		PageNumber: pageNumber,
		PageSize:   pageSize,
		TotalPages: totalPages(totalCount, pageSize),
	}
}

// Map projects the items of a page and keeps its metadata.
func Map[T, R any](page PagedResult[T], fn func(T) R) PagedResult[R] {
	items := make([]R, 0, len(page.Items))
	for _, item := range page.Items {
		items = append(items, fn(item))
	}
	return New(items, page.TotalCount, page.PageNumber, page.PageSize)
}

func totalPages(totalCount, pageSize int) int {
	if pageSize <= 0 || totalCount <= 0 {
		return 0
	}
	return (totalCount + pageSize - 1) / pageSize
}

// Offset is the number of entries skipped before the requested page.
func Offset(pageNumber, pageSize int) int {
	return (pageNumber - 1) * pageSize
}

// Slice cuts one page out of an ordered slice: skip Offset entries, take pageSize.
// A negative offset skips nothing and a non-positive size takes nothing.
func Slice[T any](items []T, pageNumber, pageSize int) []T {
	if pageSize <= 0 {
		return []T{}
	}
	start := Offset(pageNumber, pageSize)
	if start < 0 {
		start = 0
	}
	if start >= len(items) {
		return []T{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	page := make([]T, end-start)
	copy(page, items[start:end])
	return page
}

// Paginate is the query-side counterpart of Slice.
func Paginate(pageNumber, pageSize int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if pageSize <= 0 {
			return db.Limit(0)
		}
		offset := Offset(pageNumber, pageSize)
		if offset < 0 {
			offset = 0
		}
		return db.Offset(offset).Limit(pageSize)
	}
}
