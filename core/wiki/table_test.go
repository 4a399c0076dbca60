package wiki

import (
	"errors"
	"fmt"
	"testing"
)

func row(host, ec, refs, dbcell string) string {
	return fmt.Sprintf(
		"<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>notes</td><td>year</td></tr>\n",
		host, ec, refs, dbcell)
}

func page(rows ...string) string {
	body := `<table class="inline"><tr><th>Host</th><th>EC</th><th>Refs</th><th>ID</th><th>Notes</th><th>Year</th></tr>`
	for _, r := range rows {
		body += r
	}
	return "<html><body>" + body + "</table></body></html>"
}

func TestParseEnzymeTableRows(t *testing.T) {
	html := page(
		row("Ideonella sakaiensis, PETase", "3.1.1.101",
			`<a href="#r1">Yoshida 2016</a> <a href="#r2">Han 2017</a>`,
			`<a href="https://www.uniprot.org/uniprot/A0A0K8P6T7">A0A0K8P6T7_IDESA</a>`),
		row("Thermobifida fusca", "3.1.1.-", "",
			`<a href="https://www.ncbi.nlm.nih.gov/protein/AAZ54920">AAZ54920</a>`),
		// Malformed rows: fewer than six cells.
		"<tr><td>too</td><td>short</td></tr>\n",
		"<tr><td>also</td><td>too</td><td>short</td><td>x</td><td>y</td></tr>\n",
	)
	recs, err := ParseEnzymeTable("Polyethylene terephthalate (PET)", html)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("want 2 records (malformed rows skipped), got %d", len(recs))
	}

	r := recs[0]
	if r.Organism != "Ideonella sakaiensis" || r.EnzymeName != "PETase" {
		t.Errorf("host split = %q / %q", r.Organism, r.EnzymeName)
	}
	if r.ECNumber != "3.1.1.101" {
		t.Errorf("ec = %q", r.ECNumber)
	}
	if r.References != "Yoshida 2016; Han 2017" {
		t.Errorf("references = %q", r.References)
	}
	if r.DatabaseType != DBUniProt || r.DatabaseID != "A0A0K8P6T7" {
		t.Errorf("uniprot classification = %q / %q (accession must drop the _SUFFIX)", r.DatabaseType, r.DatabaseID)
	}
	if r.PolymerID != "PET" {
		t.Errorf("polymer id = %q", r.PolymerID)
	}

	if recs[1].Organism != "Thermobifida fusca" || recs[1].EnzymeName != "" {
		t.Errorf("comma-less host = %q / %q", recs[1].Organism, recs[1].EnzymeName)
	}
	if recs[1].DatabaseType != DBGenBank || recs[1].DatabaseID != "AAZ54920" {
		t.Errorf("genbank classification = %+v", recs[1])
	}
}

func TestParseEnzymeTableNoTable(t *testing.T) {
	_, err := ParseEnzymeTable("PET", "<html><body><p>empty</p></body></html>")
	if !errors.Is(err, ErrNoTable) {
		t.Fatalf("err = %v, want ErrNoTable", err)
	}
}

func TestClassifyAnchorOrder(t *testing.T) {
	cases := []struct {
		name   string
		dbcell string
		typ    string
		id     string
	}{
		{
			"mgnify by href",
			`<a href="https://www.ebi.ac.uk/metagenomics/sequences/MGYP000911143169">MGYP000911143169</a>`,
			DBMGnify, "MGYP000911143169",
		},
		{
			"mgnify by anchor text",
			`<a href="https://example.org/x">MGYP000000000001</a>`,
			DBMGnify, "MGYP000000000001",
		},
		{
			"first classified anchor wins over later ones",
			`<a href="https://www.uniprot.org/uniprot/P00001">P00001_AAA</a>` +
				`<a href="https://www.ncbi.nlm.nih.gov/protein/XYZ">XYZ</a>`,
			DBUniProt, "P00001",
		},
		{
			"later non-matching anchor does not reset a classification",
			`<a href="https://www.uniprot.org/uniprot/P00002">P00002</a>` +
				`<a href="https://example.org/paper">doi</a>`,
			DBUniProt, "P00002",
		},
		{
			"unclassifiable cell stays empty",
			`<a href="https://example.org/a">foo</a><a href="https://example.org/b">bar</a>`,
			"", "",
		},
		{"no anchors at all", "plain text", "", ""},
	}
	for _, tc := range cases {
		html := page(row("Org", "1.1.1.1", "", tc.dbcell))
		recs, err := ParseEnzymeTable("Nylon", html)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if len(recs) != 1 {
			t.Fatalf("%s: want 1 record, got %d", tc.name, len(recs))
		}
		if recs[0].DatabaseType != tc.typ || recs[0].DatabaseID != tc.id {
			t.Errorf("%s: got %q/%q, want %q/%q",
				tc.name, recs[0].DatabaseType, recs[0].DatabaseID, tc.typ, tc.id)
		}
	}
}

func TestPolymerID(t *testing.T) {
	cases := []struct{ name, want string }{
		{"Polyethylene (PE)", "PE"},
		{"Polyethylene terephthalate", "PET"},
		{"Polyurethane foam", "PUR"},
		{"Nylon", "NYL"},
		{"polyethylene terephthalate blends", "PET"},
		{"Polyamide (PA)", "PA"},
		{"PE", "PE"},
	}
	for _, tc := range cases {
		if got := PolymerID(tc.name); got != tc.want {
			t.Errorf("PolymerID(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}
