package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tacogips/embedscript/internal/template/compiler"
	"github.com/tacogips/embedscript/internal/template/model"
)

// Output writers, replaced in tests.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// styles used by the output helpers.
var styles = newStyles(false)

type outputStyles struct {
	success lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
	header  lipgloss.Style
	muted   lipgloss.Style
	title   lipgloss.Style
	colored bool
}

func newStyles(noColor bool) outputStyles {
	if noColor {
		plain := lipgloss.NewStyle()
		return outputStyles{success: plain, warning: plain, failure: plain, header: plain, muted: plain, title: plain}
	}
	return outputStyles{
		success: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		warning: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		failure: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		header:  lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true),
		muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		title:   lipgloss.NewStyle().Bold(true),
		colored: true,
	}
}

// configureStyles applies the --no-color setting.
func configureStyles() {
	styles = newStyles(globalNoColor)
}

// Output formatting helpers

// printInfo prints an informational message
func printInfo(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintln(stdout, msg)
}

// printSuccess prints a success message
func printSuccess(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(stdout, "%s %s\n", styles.success.Render("✓"), msg)
}

// printWarning prints a warning message
func printWarning(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(stdout, "%s %s\n", styles.warning.Render("⚠"), msg)
}

// printErrorMsg prints an error message (different from printError which takes error type)
func printErrorMsg(msg string) {
	fmt.Fprintf(stderr, "%s %s\n", styles.failure.Render("✗"), msg)
}

// printHeader prints a section header
func printHeader(title string) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(stdout, "\n%s\n", styles.header.Render("=== "+title+" ==="))
}

// printSeparator prints a separator line
func printSeparator() {
	if globalQuiet {
		return
	}
	fmt.Fprintln(stdout, styles.muted.Render(strings.Repeat("─", 40)))
}

// printJSON writes v as indented JSON. It ignores --quiet: JSON is the result.
func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Fprintln(stdout, string(data))
	return nil
}

// renderCard draws a card the way a chat client would, with a left bar in
// the card color.
func renderCard(card *model.Card) string {
	var lines []string
	if card.Author != nil && card.Author.Name != "" {
		lines = append(lines, styles.muted.Render(card.Author.Name))
	}
	if card.Title != "" {
		title := card.Title
		if card.URL != "" {
			title += " " + styles.muted.Render("("+card.URL+")")
		}
		lines = append(lines, styles.title.Render(title))
	}
	if card.Description != "" {
		lines = append(lines, card.Description)
	}
	for _, f := range card.Fields {
		name := styles.title.Render(f.Name)
		if f.Inline {
			name += styles.muted.Render(" (inline)")
		}
		lines = append(lines, name, f.Value)
	}
	if card.Image != nil {
		lines = append(lines, styles.muted.Render("image: "+card.Image.URL))
	}
	if card.Thumbnail != nil {
		lines = append(lines, styles.muted.Render("thumbnail: "+card.Thumbnail.URL))
	}

	var footer []string
	if card.Footer != nil && card.Footer.Text != "" {
		footer = append(footer, card.Footer.Text)
	}
	if card.Timestamp != "" {
		footer = append(footer, card.Timestamp)
	}
	if len(footer) > 0 {
		lines = append(lines, styles.muted.Render(strings.Join(footer, " • ")))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		PaddingLeft(1)
	if styles.colored {
		color := compiler.DefaultFallbackColor
		if card.Color != nil {
			color = *card.Color
		}
		box = box.BorderForeground(lipgloss.Color(compiler.FormatColor(color)))
	}
	return box.Render(strings.Join(lines, "\n"))
}

// printArtifact prints a compiled artifact as a text preview.
func printArtifact(a *model.Artifact) {
	if globalQuiet {
		return
	}
	if a.Content != nil {
		fmt.Fprintln(stdout, *a.Content)
	}
	if a.Card != nil {
		fmt.Fprintln(stdout, renderCard(a.Card))
	}
	for _, b := range a.Buttons {
		label := b.Label
		if b.Emoji != "" {
			label = b.Emoji + " " + label
		}
		fmt.Fprintf(stdout, "[%s] %s\n", label, styles.muted.Render(b.URL))
	}
	if a.AutoDeleteSeconds != nil {
		fmt.Fprintln(stdout, styles.muted.Render(fmt.Sprintf("auto-delete after %ds", *a.AutoDeleteSeconds)))
	}
	if a.Error != "" {
		printWarning(a.Error)
	}
}
