package catalog

import (
	"sort"
	"strconv"
	"strings"
)

// MatchStandards returns the standards whose display name contains filter as
// a case-insensitive substring. The empty filter matches every standard.
func MatchStandards(filter string) []Standard {
	if filter == "" {
		return standards
	}
	needle := strings.ToLower(filter)
	var matched []Standard
	for _, std := range standards {
		if strings.Contains(strings.ToLower(std.Name), needle) {
			matched = append(matched, std)
		}
	}
	return matched
}

// InIndustry reports whether any of the document's industry tags contains
// filter as a case-insensitive substring. The empty filter always matches.
func (d Document) InIndustry(filter string) bool {
	if filter == "" {
		return true
	}
	needle := strings.ToLower(filter)
	for _, ind := range d.Industries {
		if strings.Contains(strings.ToLower(ind.String()), needle) {
			return true
		}
	}
	return false
}

// CodeLess orders document codes for listing: codes made entirely of digits
// compare by integer value, everything else compares lexically. When the two
// kinds meet, numeric codes sort first. Within one standard the codes are
// homogeneous, so the mixed case never occurs in practice, but the
// comparison stays well-defined either way.
func CodeLess(a, b string) bool {
	av, aNumeric := numericCode(a)
	bv, bNumeric := numericCode(b)
	switch {
	case aNumeric && bNumeric:
		return av < bv
	case aNumeric != bNumeric:
		return aNumeric
	default:
		return a < b
	}
}

// numericCode parses a code made entirely of ASCII digits. Unlike
// strconv.Atoi alone, it rejects signs, so "+10" stays a lexical code.
func numericCode(code string) (int, bool) {
	if code == "" {
		return 0, false
	}
	for _, c := range code {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(code)
	if err != nil {
		return 0, false
	}
	return n, true
}

// SortedByCode returns a copy of docs ordered by CodeLess, leaving the
// dataset's authored order untouched.
func SortedByCode(docs []Document) []Document {
	sorted := make([]Document, len(docs))
	copy(sorted, docs)
	sort.Slice(sorted, func(i, j int) bool {
		return CodeLess(sorted[i].Code, sorted[j].Code)
	})
	return sorted
}

// Match pairs a matching document with the standard that owns it.
type Match struct {
	Standard *Standard
	Document *Document
}

// Search walks every standard and document in dataset order and returns the
// documents whose code contains the uppercased input as a substring. With
// showAll set, every document matches regardless of code; this is the
// documented behavior of the --all flag, not an oversight.
func Search(code string, showAll bool) []Match {
	code = strings.ToUpper(code)
	var matches []Match
	for si := range standards {
		std := &standards[si]
		for di := range std.Documents {
			doc := &std.Documents[di]
			if showAll || strings.Contains(doc.Code, code) {
				matches = append(matches, Match{Standard: std, Document: doc})
			}
		}
	}
	return matches
}
