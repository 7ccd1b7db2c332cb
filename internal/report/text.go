package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Column budgets for the 80-column table. Borders take 5 columns and
// cell padding 1 per column, leaving 71 for content.
const (
	maxSource = 16
	maxInput  = 26
	maxDigits = 20
	maxError  = 72
)

// WriteText writes entries as a human-readable styled table followed
// by a summary line. Output uses lipgloss for color and formatting
// when the output is a TTY; degrades gracefully for pipes and CI.
func WriteText(w io.Writer, entries []Entry) error {
	s := DefaultStyles()

	if len(entries) > 0 {
		rows := make([][]string, 0, len(entries))
		for _, e := range entries {
			rows = append(rows, entryRow(e))
		}

		t := table.New().
			Width(76). // Leave 4 chars for left indent.
			Border(lipgloss.NormalBorder()).
			BorderStyle(s.Border).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return s.TableHeader
				}
				if col == 3 && row >= 0 && row < len(entries) {
					e := entries[row]
					if e.Failed() {
						return s.Fail
					}
					return s.HoleStyle(e.Result.Holes)
				}
				return s.TableCell
			}).
			Headers("SOURCE", "INPUT", "DIGITS", "HOLES").
			Rows(rows...)

		if _, err := fmt.Fprintln(w, t); err != nil {
			return err
		}

		writeErrors(w, entries, s)
	}

	sum := Summarize(entries)
	_, err := fmt.Fprintf(w, "\n%s\n",
		s.Header.Render(fmt.Sprintf(
			"%d input(s), %d counted, %d failed, %d hole(s) total",
			sum.Inputs, sum.Counted, sum.Failed, sum.TotalHoles)))
	return err
}

func entryRow(e Entry) []string {
	source := e.Source
	if e.Line > 0 {
		source = fmt.Sprintf("%s:%d", e.Source, e.Line)
	}
	if e.Failed() {
		return []string{
			truncateLeft(source, maxSource),
			truncate(e.Input, maxInput),
			"-",
			"error",
		}
	}
	digits := e.Result.Digits
	if e.Result.Negative {
		digits = "-" + digits
	}
	return []string{
		truncateLeft(source, maxSource),
		truncate(e.Input, maxInput),
		truncate(digits, maxDigits),
		strconv.Itoa(e.Result.Holes),
	}
}

func writeErrors(w io.Writer, entries []Entry, s Styles) {
	first := true
	for _, e := range entries {
		if !e.Failed() {
			continue
		}
		if first {
			fmt.Fprintln(w, s.Fail.Render("    Errors:"))
			first = false
		}
		fmt.Fprintln(w, s.Muted.Render("    "+truncate(e.Error, maxError)))
	}
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// truncateLeft is truncate keeping the tail, so file names and line
// numbers survive.
func truncateLeft(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return "..." + string(r[len(r)-(n-3):])
}
