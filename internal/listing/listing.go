// Package listing holds the small result-shaping core shared by both
// services: fixed-size pagination and the past/upcoming time split.
package listing

import "time"

// PageSize is the fixed page length used by the question listings.
const PageSize = 10

// Paginate returns page n (1-based) of items, PageSize elements at most.
// A page number below 1 or past the end yields an empty slice rather than
// an error; callers treat an out-of-range page as "nothing here".
func Paginate[T any](items []T, page int) []T {
	if page < 1 {
		return []T{}
	}
	start := (page - 1) * PageSize
	if start >= len(items) {
		return []T{}
	}
	end := start + PageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// Partition splits items into past and upcoming relative to now, preserving
// input order. An item starting exactly at now counts as past: the boundary
// is inclusive on the past side.
func Partition[T any](items []T, startTime func(T) time.Time, now time.Time) (past, upcoming []T) {
	past = []T{}
	upcoming = []T{}
	for _, item := range items {
		if !startTime(item).After(now) {
			past = append(past, item)
		} else {
			upcoming = append(upcoming, item)
		}
	}
	return past, upcoming
}
