// Package report renders the three catalog operations — standards listing,
// document listing, and code search — as plain text on an io.Writer.
package report
