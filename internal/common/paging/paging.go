// Package paging normalizes page selectors at the admin boundary.
//
// Out-of-range inputs are clamped rather than rejected: the back office
// renders whatever page is closest to what was asked for. The service
// clients themselves forward page values verbatim; clamping happens where
// requests are composed.
package paging

const (
	// DefaultPageSize is applied when the caller does not choose a size.
	DefaultPageSize = 20
	// MaxPageSize is the largest page the remote services accept.
	MaxPageSize = 100
)

// Clamp normalizes a page selector: page is forced to >= 1, pageSize
// defaults to DefaultPageSize when unset and is clamped into
// [1, MaxPageSize].
func Clamp(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}

// TotalPages computes the page count for a result set: ceil(total/size),
// never less than 1 so page controls always render.
func TotalPages(totalCount, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}
	pages := (totalCount + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}
