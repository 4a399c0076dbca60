// internal/writers/fastaout.go
package writers

import (
	"fmt"
	"io"
)

// WriteFastaBlock appends one rewritten FASTA block (no trailing newline) to
// the sequence collection, terminating it with a single newline.
func WriteFastaBlock(w io.Writer, block string) error {
	_, err := fmt.Fprintln(w, block)
	return err
}
