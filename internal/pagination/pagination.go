// Package pagination builds page descriptors for offset-based list queries.
//
// The caller runs two store queries, one for the page of records and one for
// the matching total count, and hands both to Paginate. Because the two
// queries are not transactionally pinned, count and data can disagree under
// concurrent writes; that is an accepted property of this strategy, not a
// bug.
package pagination

// DefaultLimit is the page size applied when the caller supplies none.
const DefaultLimit = 20

// Page is the result of paginating a list query. NextPage and PrevPage are
// nil when there is no such page; they serialize as explicit JSON null so
// clients never have to distinguish a missing key from a sentinel value.
type Page[T any] struct {
	Data        []T   `json:"data"`
	Count       int64 `json:"count"`
	CurrentPage int   `json:"currentPage"`
	NextPage    *int  `json:"nextPage"`
	PrevPage    *int  `json:"prevPage"`
}

// Paginate assembles a Page from one page of items and the total count.
// Preconditions: page >= 1 and limit >= 1 (callers clamp boundary input with
// Clamp before querying). Pure and deterministic; performs no I/O.
func Paginate[T any](items []T, total int64, page, limit int) Page[T] {
	p := Page[T]{
		Data:        items,
		Count:       total,
		CurrentPage: page,
	}
	if p.Data == nil {
		p.Data = []T{}
	}
	if int64(page)*int64(limit) < total {
		next := page + 1
		p.NextPage = &next
	}
	if page > 1 {
		prev := page - 1
		p.PrevPage = &prev
	}
	return p
}

// Clamp normalizes caller-supplied page and limit to the documented
// preconditions: page defaults to 1, limit to DefaultLimit, and values
// below 1 are raised to the default.
func Clamp(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	return page, limit
}

// Offset converts a 1-based page number to the store's skip value.
func Offset(page, limit int) int {
	return (page - 1) * limit
}
