package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardsDatasetOrder(t *testing.T) {
	t.Parallel()

	stds := Standards()
	require.Len(t, stds, 5)

	names := make([]string, len(stds))
	for i, std := range stds {
		names[i] = std.Name
	}
	assert.Equal(t, []string{
		"ANSI X12 (North American Standard)",
		"EDIFACT (International Standard)",
		"TRADACOMS (UK Retail Standard)",
		"VDA (German Automotive Standard)",
		"RosettaNet (Technology Industry Standard)",
	}, names)
}

func TestDocumentCodesUniquePerStandard(t *testing.T) {
	t.Parallel()

	for _, std := range Standards() {
		seen := make(map[string]bool, len(std.Documents))
		for _, doc := range std.Documents {
			assert.Falsef(t, seen[doc.Code],
				"duplicate code %q in standard %q", doc.Code, std.Name)
			seen[doc.Code] = true
		}
	}
}

func TestEveryDocumentHasVersionsAndValidDirection(t *testing.T) {
	t.Parallel()

	valid := map[string]bool{"Inbound": true, "Outbound": true, "Both": true}
	for _, std := range Standards() {
		require.NotEmpty(t, std.Documents, "standard %q has no documents", std.Name)
		for _, doc := range std.Documents {
			assert.NotEmptyf(t, doc.CommonVersions,
				"%s/%s has no common versions", std.Name, doc.Code)
			assert.Truef(t, valid[doc.Direction.String()],
				"%s/%s has invalid direction", std.Name, doc.Code)
		}
	}
}

func TestCodeLess(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"numeric by value", "204", "810", true},
		{"numeric by value reversed", "810", "204", false},
		{"numeric not lexical", "999", "1000", true},
		{"lexical", "DESADV", "INVOIC", true},
		{"lexical reversed", "ORDERS", "DESADV", false},
		{"mixed puts numeric first", "204", "DESADV", true},
		{"mixed puts lexical last", "DESADV", "204", false},
		{"alphanumeric is lexical", "3A4", "3A8", true},
		{"signed string is not numeric", "+10", "5", false},
		{"equal codes", "850", "850", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CodeLess(tt.a, tt.b))
		})
	}
}

func TestSortedByCode(t *testing.T) {
	t.Parallel()

	for _, std := range Standards() {
		sorted := SortedByCode(std.Documents)
		require.Len(t, sorted, len(std.Documents))
		for i := 1; i < len(sorted); i++ {
			assert.Falsef(t, CodeLess(sorted[i].Code, sorted[i-1].Code),
				"standard %q: %q sorted after %q", std.Name, sorted[i-1].Code, sorted[i].Code)
		}
	}
}

func TestSortedByCodeLeavesInputUntouched(t *testing.T) {
	t.Parallel()

	docs := []Document{{Code: "997"}, {Code: "204"}, {Code: "850"}}
	_ = SortedByCode(docs)
	assert.Equal(t, "997", docs[0].Code)
	assert.Equal(t, "204", docs[1].Code)
	assert.Equal(t, "850", docs[2].Code)
}

func TestMatchStandards(t *testing.T) {
	t.Parallel()

	t.Run("empty filter matches all", func(t *testing.T) {
		assert.Len(t, MatchStandards(""), 5)
	})

	t.Run("case-insensitive substring", func(t *testing.T) {
		lower := MatchStandards("x12")
		upper := MatchStandards("X12")
		require.Len(t, lower, 1)
		assert.Equal(t, lower, upper)
		assert.Equal(t, "ANSI X12 (North American Standard)", lower[0].Name)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, MatchStandards("nonexistent-xyz"))
	})
}

func TestInIndustry(t *testing.T) {
	t.Parallel()

	invoice := Document{Industries: []Industry{Retail, Manufacturing, Healthcare}}
	freight := Document{Industries: []Industry{Logistics}}

	assert.True(t, invoice.InIndustry("healthcare"))
	assert.True(t, invoice.InIndustry("HEALTH"))
	assert.False(t, freight.InIndustry("healthcare"))
	assert.True(t, freight.InIndustry(""))
}

func TestSearchFindsEveryDocumentByOwnCode(t *testing.T) {
	t.Parallel()

	for _, std := range Standards() {
		for _, doc := range std.Documents {
			matches := Search(doc.Code, false)
			require.NotEmptyf(t, matches, "no match for %s/%s", std.Name, doc.Code)

			var found bool
			for _, m := range matches {
				if m.Standard.Name == std.Name && m.Document.Code == doc.Code {
					assert.Equal(t, doc.Name, m.Document.Name)
					found = true
				}
			}
			assert.Truef(t, found, "search for %q did not return %s/%s",
				doc.Code, std.Name, doc.Code)
		}
	}
}

func TestSearchShowAllReturnsEveryPairInDatasetOrder(t *testing.T) {
	t.Parallel()

	matches := Search("", true)

	i := 0
	for _, std := range Standards() {
		for _, doc := range std.Documents {
			require.Less(t, i, len(matches))
			assert.Equal(t, std.Name, matches[i].Standard.Name)
			assert.Equal(t, doc.Code, matches[i].Document.Code)
			i++
		}
	}
	assert.Len(t, matches, i)
}

func TestSearchShowAllIgnoresCode(t *testing.T) {
	t.Parallel()

	// Intentional: --all dumps the whole dataset even for a nonsense code.
	assert.Equal(t, Search("", true), Search("ZZZZ", true))
}

func TestSearchUppercasesInput(t *testing.T) {
	t.Parallel()

	matches := Search("invoic", false)
	require.Len(t, matches, 1)
	assert.Equal(t, "INVOIC", matches[0].Document.Code)
	assert.Equal(t, "EDIFACT (International Standard)", matches[0].Standard.Name)
}

func TestSearchNoMatch(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Search("ZZZZ", false))
}

func TestSearchPartialCode(t *testing.T) {
	t.Parallel()

	matches := Search("ORD", false)
	var codes []string
	for _, m := range matches {
		codes = append(codes, m.Document.Code)
	}
	assert.Equal(t, []string{"ORDERS", "ORDRSP", "ORDHDR", "ORDCHG"}, codes)
}
