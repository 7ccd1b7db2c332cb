// Package report provides output formatters for hole counts in JSON
// and human-readable text formats.
package report

import "github.com/unbound-force/holes/internal/holes"

// Entry is one counted input.
type Entry struct {
	// Source names where the input came from: "arg", "stdin" or a
	// file path.
	Source string `json:"source"`

	// Line is the 1-based line number within Source. Zero for
	// command-line arguments.
	Line int `json:"line,omitempty"`

	// Input is the raw input text.
	Input string `json:"input"`

	// Result holds the count. Nil when counting failed.
	Result *holes.Result `json:"result,omitempty"`

	// Error describes why counting failed.
	Error string `json:"error,omitempty"`
}

// Failed reports whether counting the entry failed.
func (e Entry) Failed() bool {
	return e.Result == nil
}

// Summary holds aggregate statistics over a set of entries.
type Summary struct {
	Inputs     int `json:"inputs"`
	Counted    int `json:"counted"`
	Failed     int `json:"failed"`
	TotalHoles int `json:"total_holes"`
}

// Summarize computes the Summary for entries.
func Summarize(entries []Entry) Summary {
	s := Summary{Inputs: len(entries)}
	for _, e := range entries {
		if e.Failed() {
			s.Failed++
			continue
		}
		s.Counted++
		s.TotalHoles += e.Result.Holes
	}
	return s
}

// NewEntry counts input with c and wraps the outcome in an Entry.
func NewEntry(c *holes.Counter, source string, line int, input string) Entry {
	e := Entry{Source: source, Line: line, Input: input}
	res, err := c.CountString(input)
	if err != nil {
		e.Error = err.Error()
		return e
	}
	e.Result = &res
	return e
}
