// Package catalog defines the static EDI reference dataset and the pure
// query helpers over it: standard and industry filtering, the
// numeric-or-lexical code ordering, and code substring search. The dataset
// is a process-wide constant; nothing in this package mutates it.
package catalog
