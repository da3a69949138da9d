package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#DC2626")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#CA8A04"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#16A34A"))
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")).Italic(true)
	boldStyle    = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#0891B2")).Bold(true)
)

// Out receives every status line. Tests swap it for a buffer.
var Out io.Writer = os.Stdout

// FormatError returns a styled multi-line error message.
func FormatError(title, detail, suggestion string) string {
	out := errorStyle.Render("Error: "+title) + "\n"
	if detail != "" {
		out += "  " + detail + "\n"
	}
	if suggestion != "" {
		out += "  " + hintStyle.Render("Hint: "+suggestion) + "\n"
	}
	return out
}

// Banner prints the dashboard title block.
func Banner(title string) {
	rule := titleStyle.Render(strings.Repeat("=", 60))
	fmt.Fprintf(Out, "\n%s\n  %s\n%s\n\n", rule, titleStyle.Render(title), rule)
}

// Mode prints the selected endpoint mode.
func Mode(label string) {
	fmt.Fprintf(Out, "  Mode: %s\n", warnStyle.Render(label))
}

// CheckOK prints a passed pre-flight check.
func CheckOK(check string) {
	fmt.Fprintf(Out, "  Checking %s... %s\n", check, successStyle.Render("OK"))
}

// CheckFailed prints a failed pre-flight check.
func CheckFailed(check string) {
	fmt.Fprintf(Out, "  Checking %s... %s\n", check, errorStyle.Render("FAILED"))
}

// Serving prints where the dashboard can be reached.
func Serving(url string) {
	fmt.Fprintf(Out, "\n  %s\n  %s\n\n  %s\n\n",
		successStyle.Render("Dashboard running at:"), boldStyle.Render(url), dimStyle.Render("Press Ctrl+C to stop."))
}

// SourceDone prints a styled status for a resource kind that was collected.
func SourceDone(name, detail string) {
	msg := successStyle.Render("  OK ") + " " + name
	if detail != "" {
		msg += " " + dimStyle.Render(detail)
	}
	fmt.Fprintln(Out, msg)
}

// SourceFailed prints a styled status for a resource kind that could not be
// queried and is shown as empty.
func SourceFailed(name string, err error) {
	fmt.Fprintf(Out, "  %s %s %s\n", warnStyle.Render("-- "), name, dimStyle.Render("(unavailable: "+err.Error()+")"))
}

// Success prints a green success message.
func Success(msg string) {
	fmt.Fprintln(Out, successStyle.Render(msg))
}

// Warn prints a yellow warning message.
func Warn(msg string) {
	fmt.Fprintln(Out, warnStyle.Render("Warning: "+msg))
}

// Bold renders text in bold.
func Bold(s string) string {
	return boldStyle.Render(s)
}

// Hint renders text in dim italic.
func Hint(s string) string {
	return hintStyle.Render(s)
}

// ValidationOK prints a green check for a valid field.
func ValidationOK(field, detail string) {
	fmt.Fprintf(Out, "  %s %s: %s\n", successStyle.Render("OK "), field, detail)
}

// ValidationErr prints a red error for an invalid field.
func ValidationErr(field, message, suggestion string) {
	fmt.Fprintf(Out, "  %s %s: %s\n", errorStyle.Render("ERR"), field, message)
	if suggestion != "" {
		fmt.Fprintf(Out, "      %s\n", hintStyle.Render("Hint: "+suggestion))
	}
}
