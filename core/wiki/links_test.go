package wiki

import (
	"net/url"
	"testing"
)

const landing = `<html><body>
<table class="inline">
<tr><td><a class="wikilink1" href="/doku.php?id=pet">Polyethylene terephthalate (PET)</a></td></tr>
<tr><td><a class="wikilink1" href="/doku.php?id=pur">Polyurethane</a></td></tr>
<tr><td><a class="wikilink1" href="/about.html">About</a></td></tr>
<tr><td><a class="urlextern" href="/doku.php?id=external">External</a></td></tr>
</table>
<table class="other"><tr><td><a class="wikilink1" href="/doku.php?id=nope">Nope</a></td></tr></table>
</body></html>`

func mustBase(t *testing.T) *url.URL {
	t.Helper()
	u, err := url.Parse("https://pazy.eu")
	if err != nil {
		t.Fatalf("base: %v", err)
	}
	return u
}

func TestParseLinks(t *testing.T) {
	links, err := ParseLinks(landing, mustBase(t))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(links) != 2 {
		t.Fatalf("want 2 links, got %d: %+v", len(links), links)
	}
	if links[0].Name != "Polyethylene terephthalate (PET)" {
		t.Errorf("name = %q", links[0].Name)
	}
	if links[0].URL != "https://pazy.eu/doku.php?id=pet" {
		t.Errorf("url = %q, want absolute resolution", links[0].URL)
	}
	if links[1].Name != "Polyurethane" {
		t.Errorf("order not preserved: %+v", links)
	}
}

func TestParseLinksNoTable(t *testing.T) {
	links, err := ParseLinks("<html><body><p>maintenance</p></body></html>", mustBase(t))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(links) != 0 {
		t.Fatalf("want empty result, got %+v", links)
	}
}
