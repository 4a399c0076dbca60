// core/harvest/harvest.go
package harvest

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"pazy-core/fetch"
	"pazy-core/wiki"
)

// Delays are the courtesy rate limits against the source wiki. They are not
// correctness-bearing and may be zeroed for tests.
type Delays struct {
	Row     time.Duration // after each parsed enzyme row
	Polymer time.Duration // after each polymer page
	Fetch   time.Duration // after each sequence resolution attempt
}

// Config fixes the source location and per-site retry policies.
type Config struct {
	BaseURL       string
	LandingURL    string
	LandingPolicy fetch.Policy
	PagePolicy    fetch.Policy
	Delays        Delays
}

// Fetcher is the retrying GET used for the landing and polymer pages.
type Fetcher interface {
	Fetch(ctx context.Context, url string, pol fetch.Policy) (string, error)
}

// Resolver turns (database type, accession) into sequence text, "" on failure.
type Resolver interface {
	Resolve(ctx context.Context, dbType, accession string) string
}

// EmitFunc receives each enzyme whose sequence resolved, together with its
// internal identifier and rewritten FASTA block. A non-nil error aborts the
// run (output I/O is fatal).
type EmitFunc func(rec wiki.Record, internalID int, fastaBlock string) error

// Stats summarizes one acquisition run.
type Stats struct {
	Polymers int
	Enzymes  int
	Resolved int
	Missing  int
}

// Harvester drives link discovery, table extraction and sequence resolution
// sequentially, assigning internal IDs densely over successes only.
type Harvester struct {
	cfg      Config
	base     *url.URL
	client   Fetcher
	resolver Resolver
	log      logrus.FieldLogger

	// Sleep is swappable so tests can run without the courtesy delays.
	Sleep func(time.Duration)
}

func New(cfg Config, client Fetcher, resolver Resolver, log logrus.FieldLogger) (*Harvester, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("base url %q: %w", cfg.BaseURL, err)
	}
	return &Harvester{
		cfg:      cfg,
		base:     base,
		client:   client,
		resolver: resolver,
		log:      log,
		Sleep:    time.Sleep,
	}, nil
}

// Run executes the full acquisition pass. Network and parse failures degrade
// to logged omissions; only emit errors and cancellation abort the run.
func (h *Harvester) Run(ctx context.Context, emit EmitFunc) (Stats, error) {
	var st Stats

	h.log.Infof("fetching polymer links from %s", h.cfg.LandingURL)
	body, err := h.client.Fetch(ctx, h.cfg.LandingURL, h.cfg.LandingPolicy)
	if err != nil {
		h.log.Errorf("failed to retrieve landing page")
		return st, ctx.Err()
	}
	links, err := wiki.ParseLinks(body, h.base)
	if err != nil {
		return st, err
	}
	h.log.Infof("found %d polymer types", len(links))

	var all []wiki.Record
	for _, ln := range links {
		if err := ctx.Err(); err != nil {
			return st, err
		}
		for _, rec := range h.fetchEnzymes(ctx, ln) {
			all = append(all, rec)
			h.Sleep(h.cfg.Delays.Row)
		}
		st.Polymers++
		h.Sleep(h.cfg.Delays.Polymer)
	}
	st.Enzymes = len(all)

	internalID := 1
	for _, rec := range all {
		if err := ctx.Err(); err != nil {
			return st, err
		}
		seq := h.resolver.Resolve(ctx, rec.DatabaseType, rec.DatabaseID)
		if seq != "" {
			if err := emit(rec, internalID, RewriteHeader(seq, internalID, rec.PolymerID)); err != nil {
				return st, err
			}
			internalID++
			st.Resolved++
		} else {
			st.Missing++
			h.log.Warnf("sequence not found for enzyme %q with ID %q", rec.EnzymeName, rec.DatabaseID)
		}
		h.Sleep(h.cfg.Delays.Fetch)
	}
	return st, nil
}

func (h *Harvester) fetchEnzymes(ctx context.Context, ln wiki.Link) []wiki.Record {
	h.log.Infof("processing polymer: %s", ln.Name)
	body, err := h.client.Fetch(ctx, ln.URL, h.cfg.PagePolicy)
	if err != nil {
		h.log.Errorf("failed to retrieve %s page", ln.Name)
		return nil
	}
	recs, err := wiki.ParseEnzymeTable(ln.Name, body)
	if err != nil {
		h.log.Warnf("%s: %v", ln.Name, err)
		return nil
	}
	h.log.Infof("found %d enzyme entries for %s", len(recs), ln.Name)
	return recs
}

// RewriteHeader prefixes the first FASTA header line with the internal ID and
// polymer ID, keeping the original header body and sequence lines intact.
func RewriteHeader(fastaText string, internalID int, polymerID string) string {
	lines := strings.Split(strings.TrimRight(fastaText, "\n"), "\n")
	if len(lines) > 0 && strings.HasPrefix(lines[0], ">") {
		lines[0] = fmt.Sprintf(">%d|%s_%s", internalID, polymerID, lines[0][1:])
	}
	return strings.Join(lines, "\n")
}
