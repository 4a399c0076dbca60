// core/wiki/wiki.go
package wiki

// Link is one polymer entry discovered on the landing page, in document order.
type Link struct {
	Name string
	URL  string
}

// Record is one enzyme row parsed from a polymer page, before any sequence
// has been resolved for it.
type Record struct {
	Polymer      string
	PolymerID    string
	Organism     string
	EnzymeName   string
	ECNumber     string
	References   string
	DatabaseType string
	DatabaseID   string
	DatabaseLink string
}

// Database types assigned by the accession classifier. An unclassified row
// carries the empty string.
const (
	DBUniProt = "UniProt"
	DBGenBank = "GenBank"
	DBMGnify  = "MGnify"
)
