package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	newStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	doneStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	skipStyle = lipgloss.NewStyle().Faint(true)
)

// NewLine reports a document seen for the first time.
func NewLine(w io.Writer, path string) {
	fmt.Fprintln(w, newStyle.Render("new")+"   "+path)
}

// DoneLine reports a document that was re-rendered.
func DoneLine(w io.Writer, path string) {
	fmt.Fprintln(w, doneStyle.Render("done")+"  "+path)
}

// SkipLine reports a document whose content is unchanged.
func SkipLine(w io.Writer, path string) {
	fmt.Fprintln(w, skipStyle.Render("skip")+"  "+path)
}

func SummaryLine(w io.Writer, rendered, skipped int) {
	fmt.Fprintf(w, "rendered %d files, skipped %d\n", rendered, skipped)
}

// ListRow prints one tracked document with aligned columns.
func ListRow(w io.Writer, path, renderedAt string, pathWidth int) {
	fmt.Fprintf(w, "%-*s  %s\n", pathWidth, path, skipStyle.Render(renderedAt))
}
