package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Printer handles formatted command output in JSON or human mode.
type Printer struct {
	w      io.Writer
	json   bool
	isTTY  bool
	styles Styles
}

// Styles holds the lipgloss styles for human-readable output. All styles
// collapse to no-ops when the output is not a terminal.
type Styles struct {
	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Bold    lipgloss.Style
	Dim     lipgloss.Style
	Title   lipgloss.Style
	Key     lipgloss.Style
	Border  lipgloss.Color
}

// NewPrinter creates a printer. jsonMode selects structured output; isTTY
// enables styling.
func NewPrinter(w io.Writer, jsonMode, isTTY bool) *Printer {
	p := &Printer{w: w, json: jsonMode, isTTY: isTTY}
	if isTTY {
		p.styles = Styles{
			Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
			Bold:    lipgloss.NewStyle().Bold(true),
			Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
			Key:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Border:  lipgloss.Color("8"),
		}
	}
	return p
}

// IsJSON reports whether the printer is in JSON mode.
func (p *Printer) IsJSON() bool { return p.json }

// IsTTY reports whether the printer output is a terminal.
func (p *Printer) IsTTY() bool { return p.isTTY }

// Styles exposes the style set for callers composing their own lines.
func (p *Printer) Styles() Styles { return p.styles }

// Error writes an error. JSON mode: {"error": "...", "code": N}.
// Human mode: a styled "Error: ..." line.
func (p *Printer) Error(err error) {
	exitErr := &ExitError{}
	if !errors.As(err, &exitErr) {
		exitErr = &ExitError{Code: ExitUserError, Message: err.Error()}
	}

	if p.json {
		data, _ := json.Marshal(map[string]any{"error": exitErr.Message, "code": exitErr.Code})
		mustWrite(p.w.Write(data))
		mustWrite(fmt.Fprintln(p.w))
		return
	}
	mustWrite(fmt.Fprintf(p.w, "%s: %s\n", p.styles.Error.Render("Error"), exitErr.Message))
}

// Warn writes a warning line. JSON mode: {"warning": "..."}.
func (p *Printer) Warn(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if p.json {
		_ = p.WriteJSON(map[string]any{"warning": msg})
		return
	}
	mustWrite(fmt.Fprintf(p.w, "%s: %s\n", p.styles.Warning.Render("Warning"), msg))
}

// Print formats and writes without a trailing newline.
func (p *Printer) Print(format string, args ...any) {
	mustWrite(fmt.Fprintf(p.w, format, args...))
}

// Println writes a line.
func (p *Printer) Println(args ...any) {
	mustWrite(fmt.Fprintln(p.w, args...))
}

// WriteJSON writes data as indented JSON.
func (p *Printer) WriteJSON(data any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// Section writes a titled section header with an underline.
func (p *Printer) Section(title string) {
	mustWrite(fmt.Fprintln(p.w))
	mustWrite(fmt.Fprintln(p.w, p.styles.Title.Render(title)))
	mustWrite(fmt.Fprintln(p.w, p.styles.Dim.Render(strings.Repeat("─", len(title)))))
}

// KeyValue writes a "Key: value" line with key styling.
func (p *Printer) KeyValue(key, value string) {
	mustWrite(fmt.Fprintf(p.w, "%s %s\n", p.styles.Key.Render(key+":"), value))
}

// Table writes rows with space-aligned columns and a bold header row.
func (p *Printer) Table(headers []string, rows [][]string) {
	if len(headers) == 0 {
		return
	}
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	for i, h := range headers {
		if i > 0 {
			mustWrite(fmt.Fprint(p.w, "  "))
		}
		mustWrite(fmt.Fprint(p.w, p.styles.Bold.Render(pad(h, widths[i]))))
	}
	mustWrite(fmt.Fprintln(p.w))
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if i > 0 {
				mustWrite(fmt.Fprint(p.w, "  "))
			}
			mustWrite(fmt.Fprint(p.w, pad(cell, widths[i])))
		}
		mustWrite(fmt.Fprintln(p.w))
	}
}

// Box writes content in a rounded border with an optional title; plain
// text when piped.
func (p *Printer) Box(title, content string) {
	if !p.isTTY {
		if title != "" {
			mustWrite(fmt.Fprintln(p.w, title))
			mustWrite(fmt.Fprintln(p.w))
		}
		mustWrite(fmt.Fprintln(p.w, content))
		return
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.styles.Border).
		Padding(0, 1)
	body := content
	if title != "" {
		body = p.styles.Title.Render(title) + "\n\n" + content
	}
	mustWrite(fmt.Fprintln(p.w, style.Render(body)))
}

// pad right-pads s with spaces to width.
func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// mustWrite panics on write failure; stdout/stderr/buffer writes are not
// expected to fail.
func mustWrite(_ int, err error) {
	if err != nil {
		panic(fmt.Sprintf("write failed: %v", err))
	}
}
