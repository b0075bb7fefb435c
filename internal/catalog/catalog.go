package catalog

// Industry tags the business sector a document type applies to. A document
// may carry any number of tags; the same tag may appear on many documents.
type Industry uint8

const (
	Retail Industry = iota
	Healthcare
	Manufacturing
	Logistics
	Automotive
	Technology
	Finance
)

// String returns the canonical uppercase tag name. The uppercase form is
// what the renderer prints and what the case-insensitive industry filter
// matches against.
func (i Industry) String() string {
	return [...]string{
		"RETAIL",
		"HEALTHCARE",
		"MANUFACTURING",
		"LOGISTICS",
		"AUTOMOTIVE",
		"TECHNOLOGY",
		"FINANCE",
	}[i]
}

// Direction classifies whether a document type is typically received, sent,
// or exchanged in both directions between trading partners.
type Direction uint8

const (
	Inbound Direction = iota
	Outbound
	Both
)

func (d Direction) String() string {
	return [...]string{"Inbound", "Outbound", "Both"}[d]
}

// Standard describes one EDI specification family and owns its document
// definitions. Documents is kept in authored order; codes are unique within
// a standard but not across standards.
type Standard struct {
	Name            string
	LatestVersion   string
	Region          string
	GoverningBody   string
	YearEstablished int
	Documents       []Document
}

// Document is the full metadata record for one EDI document type.
// TransactionFlow is optional; the empty string means no flow is recorded.
type Document struct {
	Code            string
	Name            string
	Description     string
	CommonVersions  []string
	Industries      []Industry
	Direction       Direction
	TransactionFlow string
}
