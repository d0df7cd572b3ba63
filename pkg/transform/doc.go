// Package transform implements the per-record operations of the pipeline:
// adding, removing and projecting attributes, and merging values from a side
// table.
//
// Each operation looks at one annotation at a time and keeps no state between
// records; the Engine only holds its logger.
package transform
