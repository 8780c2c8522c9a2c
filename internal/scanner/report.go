package scanner

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var genTagStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))

// WriterReporter prints one " GEN <name>" line per processed file, in the
// style of a build-system progress trace.
type WriterReporter struct {
	Out io.Writer
}

// FileProcessed implements Reporter.
func (r WriterReporter) FileProcessed(name string) {
	fmt.Fprintf(r.Out, " %s %s\n", genTagStyle.Render("GEN"), name)
}
