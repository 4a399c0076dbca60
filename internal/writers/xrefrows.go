// internal/writers/xrefrows.go
package writers

import (
	"fmt"
	"io"

	"pazy-core/xref"
)

// XrefHeader is the canonical header row of the cross-reference table.
const XrefHeader = "PAZy_ID\tPAZy_Description\tPlasticDB_ID\tPlasticDB_Description\tSequence_Length"

func WriteXrefHeader(w io.Writer) error {
	_, err := fmt.Fprintln(w, XrefHeader)
	return err
}

func WriteXrefRow(w io.Writer, r xref.Row) error {
	_, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
		r.QueryID, r.QueryDesc, r.RefID, r.RefDesc, r.Length)
	return err
}
