// Package output renders profiles, leaderboards and team comparisons for the CLI.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// Format represents an output format.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat converts a string to Format, defaulting to text.
func ParseFormat(s string) Format {
	if strings.EqualFold(strings.TrimSpace(s), "json") {
		return FormatJSON
	}
	return FormatText
}

// Renderable defines data that can render itself as text or JSON.
type Renderable interface {
	RenderText(w io.Writer, colored bool) error
	// RenderData returns the underlying data for JSON serialization.
	RenderData() any
}

// Formatter handles output formatting.
type Formatter struct {
	format  Format
	writer  io.Writer
	colored bool
}

// NewFormatter creates a new formatter.
func NewFormatter(format Format, w io.Writer, colored bool) *Formatter {
	return &Formatter{format: format, writer: w, colored: colored}
}

// Output writes r in the configured format.
func (f *Formatter) Output(r Renderable) error {
	if f.format == FormatJSON {
		encoder := json.NewEncoder(f.writer)
		encoder.SetIndent("", "  ")
		return encoder.Encode(r.RenderData())
	}
	return r.RenderText(f.writer, f.colored)
}

// Info prints a plain status line. JSON output stays machine readable, so
// Info is silent there.
func (f *Formatter) Info(format string, args ...any) {
	if f.format == FormatJSON {
		return
	}
	if f.colored {
		_, _ = color.New(color.FgCyan).Fprintf(f.writer, format+"\n", args...)
		return
	}
	_, _ = fmt.Fprintf(f.writer, format+"\n", args...)
}

// Table is a Renderable table with headers and rows.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Data    any
}

func (t *Table) RenderData() any {
	if t.Data != nil {
		return t.Data
	}
	result := make([]map[string]string, len(t.Rows))
	for i, row := range t.Rows {
		m := make(map[string]string, len(t.Headers))
		for j, h := range t.Headers {
			if j < len(row) {
				m[h] = row[j]
			}
		}
		result[i] = m
	}
	return result
}

func (t *Table) RenderText(w io.Writer, colored bool) error {
	writeTitle(w, t.Title, colored)

	table := tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Header: tw.CellConfig{
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
				Formatting: tw.CellFormatting{AutoFormat: tw.On},
			},
			Row: tw.CellConfig{
				Alignment: tw.CellAlignment{Global: tw.AlignLeft},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.Border{Left: tw.Off, Right: tw.Off, Top: tw.Off, Bottom: tw.Off},
			Settings: tw.Settings{
				Separators: tw.Separators{BetweenColumns: tw.Off},
			},
		}),
	)
	table.Header(t.Headers)
	for _, row := range t.Rows {
		if err := table.Append(row); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

func writeTitle(w io.Writer, title string, colored bool) {
	if title == "" {
		return
	}
	if colored {
		_, _ = color.New(color.Bold).Fprintln(w, title)
	} else {
		_, _ = fmt.Fprintln(w, title)
	}
	_, _ = fmt.Fprintln(w, strings.Repeat("=", len([]rune(title))))
	_, _ = fmt.Fprintln(w)
}

// Report is a compound Renderable of a header block and tables.
type Report struct {
	Title  string
	Lines  []string
	Tables []*Table
	Data   any
}

func (r *Report) RenderData() any {
	return r.Data
}

func (r *Report) RenderText(w io.Writer, colored bool) error {
	if r.Title != "" {
		if colored {
			_, _ = color.New(color.Bold, color.FgCyan).Fprintln(w, r.Title)
		} else {
			_, _ = fmt.Fprintln(w, r.Title)
		}
		_, _ = fmt.Fprintln(w, strings.Repeat("=", len([]rune(r.Title))))
	}
	for _, line := range r.Lines {
		_, _ = fmt.Fprintln(w, line)
	}
	if len(r.Lines) > 0 {
		_, _ = fmt.Fprintln(w)
	}
	for _, t := range r.Tables {
		if err := t.RenderText(w, colored); err != nil {
			return err
		}
	}
	return nil
}
