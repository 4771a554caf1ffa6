package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// bannerStyle for the session banner
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("208"))

	// dimStyle for hints and warnings
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// errorStyle for compiler diagnostics and fatal errors
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

const (
	banner           = "fn main() {..."
	interruptWarning = "CTRL-C sent; send again to exit."
)

// FormatBanner writes the session banner.
func FormatBanner(w io.Writer) {
	fmt.Fprintln(w, bannerStyle.Render(banner))
}

// FormatResult writes program output. Empty output prints nothing.
func FormatResult(w io.Writer, text string) {
	text = strings.TrimRight(text, "\r\n")
	if text == "" {
		return
	}
	fmt.Fprintf(w, " %s\n", text)
}

// FormatDiagnostic writes a compiler diagnostic.
func FormatDiagnostic(w io.Writer, diagnostic string) {
	fmt.Fprintf(w, " %s\n", errorStyle.Render(diagnostic))
}

// FormatHint writes the hint for a rejected line.
func FormatHint(w io.Writer, hint string) {
	fmt.Fprintf(w, " %s\n", dimStyle.Render(hint))
}

// FormatInterruptWarning writes the one-time interrupt warning.
func FormatInterruptWarning(w io.Writer) {
	fmt.Fprintln(w, dimStyle.Render(interruptWarning))
}

// FormatFatal writes an error that ends the session.
func FormatFatal(w io.Writer, err error) {
	fmt.Fprintln(w, errorStyle.Render(fmt.Sprintf("Unknown error: %v", err)))
	fmt.Fprintln(w, dimStyle.Render("Exiting..."))
}
