// Package ui holds the styled terminal output helpers shared by the
// CLI commands.
package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/pterm/pterm"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF88")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4444")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB800")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00D9FF"))
)

// PrintSuccess prints a success message.
func PrintSuccess(format string, args ...any) {
	fmt.Println(successStyle.Render("✓ " + fmt.Sprintf(format, args...)))
}

// PrintError prints an error message to stderr.
func PrintError(format string, args ...any) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("✗ "+fmt.Sprintf(format, args...)))
}

// PrintWarning prints a warning message.
func PrintWarning(format string, args ...any) {
	fmt.Println(warningStyle.Render("⚠ " + fmt.Sprintf(format, args...)))
}

// PrintInfo prints an informational message.
func PrintInfo(format string, args ...any) {
	fmt.Println(infoStyle.Render("ℹ " + fmt.Sprintf(format, args...)))
}

// PrintStatement prints a generated SQL statement, dimmed.
func PrintStatement(stmt string) {
	color.New(color.Faint).Println(stmt)
}

// Spinner starts a spinner with the given text. The returned stop
// function ends it with a success or failure mark.
func Spinner(text string) func(err error) {
	spinner, startErr := pterm.DefaultSpinner.Start(text)
	return func(err error) {
		if startErr != nil {
			return
		}
		if err != nil {
			spinner.Fail(err.Error())
			return
		}
		spinner.Success()
	}
}

// ModelTable prints one row per model with its table name and field
// count.
func ModelTable(rows [][]string) {
	data := pterm.TableData{{"Model", "Table", "Fields"}}
	data = append(data, rows...)
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// RenderMarkdown renders markdown for the terminal.
func RenderMarkdown(text string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(text)
}
