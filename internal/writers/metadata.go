// internal/writers/metadata.go
package writers

import (
	"fmt"
	"io"

	"pazy-core/wiki"
)

// MetadataHeader is the canonical header row of the enzyme metadata table.
// Keep this as the single source of truth; downstream consumers key on it.
const MetadataHeader = "Internal_ID\tPolymer\tPolymer_ID\tOrganism\tEnzyme Name\tEC Number\tReferences\tDatabase_Type\tDatabase_ID"

// Metadata streams enzyme metadata rows as TSV.
type Metadata struct {
	w io.Writer
}

func NewMetadata(w io.Writer) *Metadata { return &Metadata{w: w} }

func (m *Metadata) WriteHeader() error {
	_, err := fmt.Fprintln(m.w, MetadataHeader)
	return err
}

func (m *Metadata) WriteRow(internalID int, rec wiki.Record) error {
	_, err := fmt.Fprintf(m.w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
		internalID, rec.Polymer, rec.PolymerID, rec.Organism, rec.EnzymeName,
		rec.ECNumber, rec.References, rec.DatabaseType, rec.DatabaseID)
	return err
}
