// Package controller provides output adapters for displaying analysis
// results.
package controller

import (
	"io"
	"os"

	"golang.org/x/term"

	m "solvestats.dev/pkg/solvestats/internal/model"
)

// UI defines the interface for rendering an analysis run. It holds no
// business logic; everything it prints comes precomputed in the report.
type UI interface {
	// DisplayDiagnostics renders the warnings collected during loading and
	// selection, one line each.
	DisplayDiagnostics(diags []m.Diagnostic) error
	// DisplayReport renders the exercise table, the summary block, and the
	// distribution table, in that order.
	DisplayReport(report m.Report) error
}

// IsTTY reports whether the writer is attached to a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
