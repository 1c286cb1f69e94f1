// internal/app/system/paging/paging.go
package paging

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
)

// PageSize is the number of rows returned per page in paged lists.
const PageSize = 50

// MaxPage bounds the page number so the row offset stays in range.
const MaxPage = 1_000_000

// ParsePage extracts the 1-based "page" query parameter.
// Returns 1 if not present or invalid and MaxPage if larger.
func ParsePage(r *http.Request) int {
	s := query.Get(r, "page")
	if s == "" {
		return 1
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 1
	}
	return min(n, MaxPage)
}

// Offset is the number of rows to skip to reach page.
func Offset(page int) int64 {
	page = max(1, min(page, MaxPage))
	return int64(page-1) * PageSize
}

// TotalPages returns how many pages total rows fill. An empty result still
// has one (empty) page.
func TotalPages(total int64) int {
	if total <= 0 {
		return 1
	}
	return int((total + PageSize - 1) / PageSize)
}
