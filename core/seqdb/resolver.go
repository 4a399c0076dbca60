// core/seqdb/resolver.go
package seqdb

import (
	"context"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"

	"pazy-core/fetch"
	"pazy-core/wiki"
)

// Fetcher is the retrying GET contract the resolver delegates to.
type Fetcher interface {
	Fetch(ctx context.Context, url string, pol fetch.Policy) (string, error)
}

// endpoints maps a database type to its FASTA REST template.
var endpoints = map[string]func(accession string) string{
	wiki.DBUniProt: func(acc string) string {
		return fmt.Sprintf("https://rest.uniprot.org/uniprotkb/%s.fasta", url.PathEscape(acc))
	},
	wiki.DBGenBank: func(acc string) string {
		return fmt.Sprintf(
			"https://eutils.ncbi.nlm.nih.gov/entrez/eutils/efetch.fcgi?db=protein&id=%s&rettype=fasta&retmode=text",
			url.QueryEscape(acc))
	},
	wiki.DBMGnify: func(acc string) string {
		return fmt.Sprintf("https://www.ebi.ac.uk/metagenomics/api/v1/sequences/%s/fasta", url.PathEscape(acc))
	},
}

// Resolver turns an (external database type, accession) pair into raw FASTA
// text. Resolution failures degrade to an empty result; the pipeline drops
// the record and moves on.
type Resolver struct {
	client Fetcher
	pol    fetch.Policy
	log    logrus.FieldLogger
}

func New(client Fetcher, pol fetch.Policy, log logrus.FieldLogger) *Resolver {
	return &Resolver{client: client, pol: pol, log: log}
}

// Resolve returns the sequence text for accession, or "" when the database
// type is unknown (no network call is made) or every fetch attempt failed.
func (r *Resolver) Resolve(ctx context.Context, dbType, accession string) string {
	tmpl, ok := endpoints[dbType]
	if !ok {
		r.log.Warnf("unknown database type %q for accession %q", dbType, accession)
		return ""
	}
	r.log.Infof("fetching sequence for %s from %s", accession, dbType)
	text, err := r.client.Fetch(ctx, tmpl(accession), r.pol)
	if err != nil {
		return ""
	}
	return text
}
