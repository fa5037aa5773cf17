// Package output renders a finished report. The sink set is closed:
// console, JSON file, and CSV file.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"nomen/internal/report"
)

// ConsoleLimit caps the number of rows the console sink prints.
const ConsoleLimit = 200

// Default file names for the file-backed sinks.
const (
	JSONReportFile = "report.json"
	CSVReportFile  = "report.csv"
)

// Sink renders a finished entry sequence.
type Sink interface {
	Write(entries []report.Entry) error
}

// ParseSink maps an output name to a Sink.
// Unknown names fall back to the console sink.
func ParseSink(name string, colored bool) Sink {
	switch name {
	case "json":
		return &JSONSink{Path: JSONReportFile}
	case "csv":
		return &CSVSink{Path: CSVReportFile}
	default:
		return &ConsoleSink{Writer: os.Stdout, Colored: colored, Limit: ConsoleLimit}
	}
}

// ConsoleSink prints total/unique counts and word-count pairs, most
// frequent first, up to Limit rows.
type ConsoleSink struct {
	Writer  io.Writer
	Colored bool
	Limit   int
}

func (s *ConsoleSink) Write(entries []report.Entry) error {
	w := s.Writer
	if w == nil {
		w = os.Stdout
	}
	limit := s.Limit
	if limit <= 0 {
		limit = ConsoleLimit
	}

	total, unique, rows := consoleRows(entries, limit)

	summary := fmt.Sprintf("total %d words, %d unique", total, unique)
	if s.Colored {
		color.New(color.Bold).Fprintln(w, summary)
	} else {
		fmt.Fprintln(w, summary)
	}

	if len(rows) == 0 {
		return nil
	}

	table := tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Header: tw.CellConfig{
				Alignment: tw.CellAlignment{Global: tw.AlignLeft},
			},
			Row: tw.CellConfig{
				Alignment: tw.CellAlignment{Global: tw.AlignLeft},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.Border{
				Left:   tw.Off,
				Right:  tw.Off,
				Top:    tw.Off,
				Bottom: tw.Off,
			},
			Settings: tw.Settings{
				Separators: tw.Separators{
					BetweenColumns: tw.Off,
				},
			},
		}),
	)
	table.Header([]string{"Word", "Count"})
	for _, row := range rows {
		table.Append(row)
	}
	table.Render()
	return nil
}

// consoleRows derives the summary figures and display rows. Ranked
// entries are shown as-is; unranked entries are counted here so the
// console always shows frequencies, most common first.
func consoleRows(entries []report.Entry, limit int) (total, unique int, rows [][]string) {
	if len(entries) > 0 && entries[0].Counted {
		for _, e := range entries {
			total += e.Count
		}
		unique = len(entries)
		show := entries
		if len(show) > limit {
			show = show[:limit]
		}
		for _, e := range show {
			rows = append(rows, []string{e.Word, strconv.Itoa(e.Count)})
		}
		return total, unique, rows
	}

	words := make([]string, len(entries))
	seen := make(map[string]struct{}, len(entries))
	for i, e := range entries {
		words[i] = e.Word
		seen[e.Word] = struct{}{}
	}
	for _, e := range report.Rank(words, limit) {
		rows = append(rows, []string{e.Word, strconv.Itoa(e.Count)})
	}
	return len(entries), len(seen), rows
}

// JSONSink serializes the full entry sequence to a file.
type JSONSink struct {
	Path string
}

func (s *JSONSink) Write(entries []report.Entry) error {
	f, err := os.Create(s.Path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", s.Path, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(entries); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.Path, err)
	}
	return nil
}

// CSVSink writes one row per entry to a file.
type CSVSink struct {
	Path string
}

func (s *CSVSink) Write(entries []report.Entry) error {
	f, err := os.Create(s.Path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", s.Path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	for _, e := range entries {
		if err := w.Write(e.Record()); err != nil {
			return fmt.Errorf("failed to write %s: %w", s.Path, err)
		}
	}
	w.Flush()
	return w.Error()
}
