// Package pagination computes the page window served by the feed endpoints.
package pagination

// Window describes the slice of the matching set a request should see.
// When UseLimit is false the whole set is served as a single page.
type Window struct {
	Page       int
	PageSize   int
	Total      int
	TotalPages int
	Offset     int
	Limit      int
	UseLimit   bool
	OutOfRange bool
}

// Resolve applies the page-size precedence rules and validates the
// requested page against the total count.
//
// A request-supplied page size (requestedSize non-nil) always wins over the
// configured one, and a supplied value of zero or less disables pagination.
// With no supplied value, a configured size of zero or less likewise
// disables pagination. The effective page is never below 1, and an
// out-of-range page is a success outcome with zero rows, not an error.
func Resolve(page int, requestedSize *int, configuredSize, total int) Window {
	if page < 1 {
		page = 1
	}

	var pageSize int
	var useLimit bool
	if requestedSize != nil {
		pageSize = *requestedSize
		useLimit = pageSize > 0
	} else {
		useLimit = configuredSize > 0
		if useLimit {
			pageSize = configuredSize
		}
	}

	w := Window{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: 1,
		UseLimit:   useLimit,
	}

	if !useLimit {
		return w
	}

	w.TotalPages = (total + pageSize - 1) / pageSize
	if w.TotalPages < 1 {
		w.TotalPages = 1
	}

	if page > w.TotalPages {
		w.OutOfRange = true
		return w
	}

	w.Offset = (page - 1) * pageSize
	w.Limit = pageSize
	return w
}
