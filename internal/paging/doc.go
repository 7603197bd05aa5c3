package paging

// Package paging turns page-indexed content sources into a continuous,
// de-duplicated item stream. A Source loads one page per integer key; a Pager
// drives a flow of loads against one Source instance and discards results
// from flows that were superseded by a refresh.
