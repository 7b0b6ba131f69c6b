// Package report turns evaluation outcomes into things people read:
// summary statistics, a terminal table and PNG plots.
package report
