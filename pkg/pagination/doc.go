// Package pagination slices in-memory collections into pages and computes the
// page links shown under a list.
//
// Inputs are coerced instead of rejected: a non-positive page size becomes
// DefaultPageSize and an out-of-range page is clamped to the nearest valid one.
//
//	p := pagination.Paginate(participants, 99, 5) // last page when fewer than 99
//	links := pagination.PageWindow(p.Page, p.TotalPages, pagination.DefaultWindowDelta)
//
// State keeps the position of a list view between requests; SetPageSize
// always returns to the first page.
package pagination
