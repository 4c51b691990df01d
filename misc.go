package main

import (
	"strconv"
)

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// itoaFast is the strconv.Itoa alias used by the cache key builders
// (planner.go, cache_sqlite.go) to keep those call sites free of a
// direct strconv import each.
func itoaFast(n int) string {
	return strconv.Itoa(n)
}
