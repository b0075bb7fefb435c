package report

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/mitchellh/go-wordwrap"

	"github.com/vk/ediref/internal/catalog"
	"github.com/vk/ediref/internal/ctxlog"
)

// descriptionWidth is the wrap limit for document descriptions; continuation
// lines are indented by descriptionIndent.
const (
	descriptionWidth  uint = 70
	descriptionIndent      = "    "
)

// Renderer writes the catalog operations as human-readable text. It holds no
// state beyond the destination writer and whether headers may use terminal
// styling.
type Renderer struct {
	w     io.Writer
	color bool
}

// New returns a Renderer writing to w. colorEnabled controls bold section
// headers; pass false for non-terminal destinations.
func New(w io.Writer, colorEnabled bool) *Renderer {
	return &Renderer{w: w, color: colorEnabled}
}

// Standards lists every supported standard in definition order. With
// detailed set, four indented metadata lines follow each name.
func (r *Renderer) Standards(ctx context.Context, detailed bool) {
	ctxlog.FromContext(ctx).Debug("Listing standards.", "detailed", detailed)

	fmt.Fprint(r.w, "\nSupported EDI Standards:\n\n")
	for _, std := range catalog.Standards() {
		fmt.Fprintf(r.w, "• %s\n", std.Name)
		if detailed {
			fmt.Fprintf(r.w, "  - Latest Version: %s\n", std.LatestVersion)
			fmt.Fprintf(r.w, "  - Region: %s\n", std.Region)
			fmt.Fprintf(r.w, "  - Governing Body: %s\n", std.GoverningBody)
			fmt.Fprintf(r.w, "  - Established: %d\n\n", std.YearEstablished)
		}
	}
}

// Documents lists documents grouped by standard, optionally narrowed by a
// standard-name filter and an industry filter. Documents print in
// numeric-or-lexical code order within each standard. A standard whose
// documents were all filtered out by industry still prints its header.
func (r *Renderer) Documents(ctx context.Context, standardFilter, industryFilter string) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Listing documents.",
		"standard_filter", standardFilter, "industry_filter", industryFilter)

	stds := catalog.MatchStandards(standardFilter)
	if standardFilter != "" && len(stds) == 0 {
		fmt.Fprintf(r.w, "\nNo standards found matching '%s'\n", standardFilter)
		return
	}

	fmt.Fprint(r.w, "\nEDI Document Reference:\n\n")
	for _, std := range stds {
		r.header(std.Name)
		fmt.Fprintf(r.w, "%s\n\n", strings.Repeat("-", len(std.Name)+4))

		for _, doc := range catalog.SortedByCode(std.Documents) {
			if !doc.InIndustry(industryFilter) {
				continue
			}
			r.document(doc)
		}
	}
}

// Search prints every document whose code contains the uppercased input,
// walking the dataset in definition order. The owning standard's header is
// repeated above each match. showAll matches everything; see catalog.Search.
func (r *Renderer) Search(ctx context.Context, code string, showAll bool) {
	code = strings.ToUpper(code)
	ctxlog.FromContext(ctx).Debug("Searching document codes.",
		"code", code, "show_all", showAll)

	matches := catalog.Search(code, showAll)

	fmt.Fprintf(r.w, "\nSearch Results for '%s':\n\n", code)
	for _, m := range matches {
		r.header(m.Standard.Name)
		r.document(*m.Document)
	}
	if len(matches) == 0 {
		fmt.Fprintf(r.w, "No EDI documents found matching '%s'\n", code)
	}
}

func (r *Renderer) header(name string) {
	h := fmt.Sprintf("== %s ==", name)
	if r.color {
		h = color.Bold.Render(h)
	}
	fmt.Fprintln(r.w, h)
}

// document prints the shared per-document block used by both listing and
// search: code and name, direction, optional flow, versions, industries, and
// the wrapped description, followed by a blank separator line.
func (r *Renderer) document(doc catalog.Document) {
	fmt.Fprintf(r.w, "• %s: %s\n", doc.Code, doc.Name)
	fmt.Fprintf(r.w, "  Direction: %s\n", doc.Direction)
	if doc.TransactionFlow != "" {
		fmt.Fprintf(r.w, "  Flow: %s\n", doc.TransactionFlow)
	}
	fmt.Fprintf(r.w, "  Versions: %s\n", strings.Join(doc.CommonVersions, ", "))
	fmt.Fprintf(r.w, "  Industries: %s\n", industryNames(doc.Industries))
	fmt.Fprintf(r.w, "  Description: %s\n\n",
		wrapIndent(doc.Description, descriptionWidth, descriptionIndent))
}

func industryNames(industries []catalog.Industry) string {
	names := make([]string, len(industries))
	for i, ind := range industries {
		names[i] = ind.String()
	}
	return strings.Join(names, ", ")
}

// wrapIndent word-wraps s at width columns and indents every continuation
// line, so multi-line descriptions stay aligned under their label.
func wrapIndent(s string, width uint, indent string) string {
	wrapped := wordwrap.WrapString(s, width)
	return strings.ReplaceAll(wrapped, "\n", "\n"+indent)
}
