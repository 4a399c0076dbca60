// core/wiki/table.go
package wiki

import (
	"errors"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ErrNoTable reports a polymer page without the expected inline-styled table.
// Callers log it as a warning and contribute zero records.
var ErrNoTable = errors.New("no inline table on page")

// dbRule classifies one anchor of the database cell. Rules are evaluated in
// order per anchor; the first anchor any rule accepts decides the record and
// ends the scan. Later anchors never overwrite an earlier classification.
type dbRule struct {
	Type      string
	Match     func(href, text string) bool
	Accession func(text string) string
}

// dbRules is the classification order: UniProt, then GenBank, then MGnify.
var dbRules = []dbRule{
	{
		Type:      DBUniProt,
		Match:     func(href, _ string) bool { return strings.Contains(href, "uniprot") },
		Accession: func(text string) string { return strings.SplitN(text, "_", 2)[0] },
	},
	{
		Type: DBGenBank,
		Match: func(href, _ string) bool {
			return strings.Contains(href, "genbank") || strings.Contains(href, "ncbi.nlm.nih.gov")
		},
		Accession: func(text string) string { return text },
	},
	{
		Type: DBMGnify,
		Match: func(href, text string) bool {
			return strings.Contains(href, "ebi.ac.uk") || strings.Contains(text, "mgyp")
		},
		Accession: func(text string) string { return text },
	},
}

// ParseEnzymeTable parses one polymer page into enzyme records, in row order.
// The first table row is a header and is skipped; rows with fewer than six
// cells are dropped silently.
func ParseEnzymeTable(polymer, html string) ([]Record, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}
	table := doc.Find("table.inline").First()
	if table.Length() == 0 {
		return nil, ErrNoTable
	}

	polymerID := PolymerID(polymer)

	var recs []Record
	table.Find("tr").Each(func(i int, row *goquery.Selection) {
		if i == 0 {
			return
		}
		cells := row.Find("td, th")
		if cells.Length() < 6 {
			return
		}

		rec := Record{
			Polymer:    polymer,
			PolymerID:  polymerID,
			ECNumber:   strings.TrimSpace(cells.Eq(1).Text()),
			References: anchorTexts(cells.Eq(2), "; "),
		}
		rec.Organism, rec.EnzymeName = splitHostEnzyme(cellText(cells.Eq(0)))
		rec.DatabaseType, rec.DatabaseID, rec.DatabaseLink = classifyAnchors(cells.Eq(3))
		recs = append(recs, rec)
	})
	return recs, nil
}

// classifyAnchors scans the database cell's anchors in document order and
// returns the first classification; unclassified cells stay empty.
func classifyAnchors(cell *goquery.Selection) (dbType, dbID, dbLink string) {
	cell.Find("a").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")
		text := strings.TrimSpace(a.Text())
		lhref, ltext := strings.ToLower(href), strings.ToLower(text)
		for _, r := range dbRules {
			if r.Match(lhref, ltext) {
				dbType, dbID, dbLink = r.Type, r.Accession(text), href
				return false
			}
		}
		return true
	})
	return dbType, dbID, dbLink
}

// splitHostEnzyme splits "organism, enzyme name" on the first comma; without
// a comma the whole text is the organism.
func splitHostEnzyme(s string) (organism, enzyme string) {
	if i := strings.Index(s, ","); i >= 0 {
		return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+1:])
	}
	return s, ""
}

// cellText flattens a cell into single-space-separated text.
func cellText(s *goquery.Selection) string {
	return strings.Join(strings.Fields(s.Text()), " ")
}

func anchorTexts(s *goquery.Selection, sep string) string {
	var parts []string
	s.Find("a").Each(func(_ int, a *goquery.Selection) {
		parts = append(parts, strings.TrimSpace(a.Text()))
	})
	return strings.Join(parts, sep)
}
