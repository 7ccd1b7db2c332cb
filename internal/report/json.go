package report

import (
	"encoding/json"
	"io"

	"github.com/unbound-force/holes/internal/holes"
)

// JSONReport is the top-level JSON output structure.
type JSONReport struct {
	Version string     `json:"version"`
	Mode    holes.Mode `json:"mode"`
	Entries []Entry    `json:"entries"`
	Summary Summary    `json:"summary"`
}

// WriteJSON writes entries as formatted JSON to the writer.
func WriteJSON(w io.Writer, entries []Entry, mode holes.Mode, version string) error {
	if entries == nil {
		entries = []Entry{}
	}
	report := JSONReport{
		Version: version,
		Mode:    mode,
		Entries: entries,
		Summary: Summarize(entries),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
