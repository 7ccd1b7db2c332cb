package main

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"github.com/unbound-force/holes/internal/config"
	"github.com/unbound-force/holes/internal/glyph"
	"github.com/unbound-force/holes/internal/holes"
	"github.com/unbound-force/holes/internal/report"
	"github.com/unbound-force/holes/internal/scaffold"
	"github.com/unbound-force/holes/internal/scan"
)

// logger is the application-wide structured logger (writes to stderr).
var logger = charmlog.NewWithOptions(os.Stderr, charmlog.Options{
	ReportTimestamp: false,
})

// Set by build flags.
var version = "dev"

// demoInput is the number counted by the demo command.
const demoInput = "-0001234567890123"

func main() {
	root := &cobra.Command{
		Use:   "holes",
		Short: "Holes counts the closed loops in printed digits",
		Long: `Holes extracts a decimal number from its input and counts the
closed loops ("holes") in its digits: 8 has two, 0, 4, 6 and 9 have
one, all other digits none. Leading zeros are ignored.`,
		Version: version,
	}

	root.AddCommand(newCountCmd())
	root.AddCommand(newDemoCmd())
	root.AddCommand(newGlyphsCmd())
	root.AddCommand(newSchemaCmd())
	root.AddCommand(newInitCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the config file and applies flag overrides. Empty
// strings and a negative maxHoles leave the config value in place.
func loadConfig(path, mode, format string, maxHoles int) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if mode != "" {
		cfg.Mode = mode
	}
	if format != "" {
		cfg.Format = format
	}
	if maxHoles >= 0 {
		cfg.MaxHoles = maxHoles
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newCounter builds a Counter from the effective config.
func newCounter(cfg *config.Config) (*holes.Counter, error) {
	mode, err := cfg.ExtractMode()
	if err != nil {
		return nil, err
	}
	tbl, err := cfg.Table()
	if err != nil {
		return nil, err
	}
	return holes.New(holes.Options{Mode: mode, Table: &tbl}), nil
}

// countParams holds the parsed flags for the count command.
type countParams struct {
	ctx         context.Context
	values      []string
	files       []string
	format      string
	mode        string
	configPath  string
	maxHoles    int
	interactive bool
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
}

// runCount is the extracted, testable body of the count command.
func runCount(p countParams) error {
	if p.format != "" && p.format != "text" && p.format != "json" {
		return fmt.Errorf("invalid format %q: must be 'text' or 'json'", p.format)
	}
	if p.ctx == nil {
		p.ctx = context.Background()
	}

	cfg, err := loadConfig(p.configPath, p.mode, p.format, p.maxHoles)
	if err != nil {
		return err
	}
	counter, err := newCounter(cfg)
	if err != nil {
		return err
	}

	entries, err := collectEntries(p, counter)
	if err != nil {
		return err
	}

	sum := report.Summarize(entries)
	logger.Info("count complete", "mode", counter.Mode(),
		"inputs", sum.Inputs, "failed", sum.Failed)

	if p.interactive {
		if err := runInteractiveCount(entries); err != nil {
			return err
		}
	} else if err := writeCountReport(p.stdout, cfg.Format, entries, counter.Mode()); err != nil {
		return err
	}

	printLimitSummary(p.stderr, sum, cfg.MaxHoles)

	if err := checkMaxHoles(sum, cfg.MaxHoles); err != nil {
		return err
	}
	if sum.Failed > 0 {
		return fmt.Errorf("%d of %d input(s) could not be counted", sum.Failed, sum.Inputs)
	}
	return nil
}

// collectEntries counts the argument values, then the files. With
// neither, it counts the lines of stdin.
func collectEntries(p countParams, counter *holes.Counter) ([]report.Entry, error) {
	var entries []report.Entry
	for _, v := range p.values {
		entries = append(entries, report.NewEntry(counter, "arg", 0, v))
	}

	if len(p.files) > 0 {
		logger.Debug("scanning files", "files", p.files)
		fileEntries, err := scan.Files(p.ctx, p.files, counter, scan.DefaultLimit)
		if err != nil {
			return nil, err
		}
		entries = append(entries, fileEntries...)
	}

	if len(p.values) == 0 && len(p.files) == 0 {
		if p.stdin == nil {
			return nil, fmt.Errorf("no input: pass values, --file, or pipe lines to stdin")
		}
		logger.Debug("reading stdin")
		return scan.Reader(p.ctx, "stdin", p.stdin, counter)
	}
	return entries, nil
}

// writeCountReport outputs the entries in the requested format.
func writeCountReport(w io.Writer, format string, entries []report.Entry, mode holes.Mode) error {
	switch format {
	case "json":
		return report.WriteJSON(w, entries, mode, version)
	default:
		return report.WriteText(w, entries)
	}
}

// printLimitSummary prints a one-line CI summary to stderr when a
// hole limit is set.
func printLimitSummary(w io.Writer, sum report.Summary, maxHoles int) {
	if maxHoles <= 0 {
		return
	}
	status := "PASS"
	if sum.TotalHoles > maxHoles {
		status = "FAIL"
	}
	fmt.Fprintf(w, "Holes: %d/%d (%s)\n", sum.TotalHoles, maxHoles, status)
}

// checkMaxHoles returns an error if the hole limit is exceeded.
func checkMaxHoles(sum report.Summary, maxHoles int) error {
	if maxHoles > 0 && sum.TotalHoles > maxHoles {
		return fmt.Errorf("hole count %d exceeds maximum %d", sum.TotalHoles, maxHoles)
	}
	return nil
}

func newCountCmd() *cobra.Command {
	var (
		files       []string
		format      string
		mode        string
		configPath  string
		maxHoles    int
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "count [values...]",
		Short: "Count the holes in numbers",
		Long: `Count the holes in each value given as an argument, in each
line of the files named by --file, or, with neither, in each line
read from stdin. Blank lines are skipped.

In strict mode a value must be an optional '-' followed by digits.
In lenient mode any non-digit prefix is skipped and the first digit
run not followed by '.' is counted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCount(countParams{
				ctx:         cmd.Context(),
				values:      args,
				files:       files,
				format:      format,
				mode:        mode,
				configPath:  configPath,
				maxHoles:    maxHoles,
				interactive: interactive,
				stdin:       cmd.InOrStdin(),
				stdout:      os.Stdout,
				stderr:      os.Stderr,
			})
		},
	}

	cmd.Flags().StringSliceVarP(&files, "file", "f", nil,
		"read values line by line from these files")
	cmd.Flags().StringVar(&format, "format", "",
		"output format: text or json (default from config, else text)")
	cmd.Flags().StringVar(&mode, "mode", "",
		"extraction mode: strict or lenient (default from config, else strict)")
	cmd.Flags().StringVar(&configPath, "config", "",
		"path to config file (default: ./"+config.DefaultFileName+" if present)")
	cmd.Flags().IntVar(&maxHoles, "max-holes", -1,
		"fail if the total hole count exceeds this (0 = no limit, default from config)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false,
		"launch interactive TUI for browsing results")

	return cmd
}

// runDemo prints the hole count of demoInput.
func runDemo(w io.Writer) error {
	n, err := holes.Count(demoInput)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, n)
	return err
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Count the holes in " + demoInput,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout())
		},
	}
}

// writeGlyphs prints the hole count of every digit in tbl.
func writeGlyphs(w io.Writer, tbl glyph.Table) error {
	s := report.DefaultStyles()
	rows := make([][]string, 0, len(tbl))
	for d, n := range tbl {
		rows = append(rows, []string{fmt.Sprint(d), fmt.Sprint(n)})
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.Border).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.TableHeader
			}
			if col == 1 && row >= 0 && row < len(tbl) {
				return s.HoleStyle(tbl[row])
			}
			return s.TableCell
		}).
		Headers("DIGIT", "HOLES").
		Rows(rows...)
	_, err := fmt.Fprintln(w, t)
	return err
}

func newGlyphsCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "glyphs",
		Short: "Print the hole count of each digit",
		Long: `Print the hole count used for each digit, including any
overrides from the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			tbl, err := cfg.Table()
			if err != nil {
				return err
			}
			return writeGlyphs(cmd.OutOrStdout(), tbl)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "",
		"path to config file (default: ./"+config.DefaultFileName+" if present)")

	return cmd
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for holes count output",
		Long: `Print the JSON Schema (Draft 2020-12) that documents the
structure of holes count --format=json output. Useful for
validating output or generating client types.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), report.Schema)
			return err
		},
	}
}

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default " + config.DefaultFileName,
		Long: `Write a commented default ` + config.DefaultFileName + ` into the
current directory. An existing file is kept unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := scaffold.Run(scaffold.Options{
				Force:   force,
				Version: version,
				Stdout:  cmd.OutOrStdout(),
			})
			return err
		},
	}

	cmd.Flags().BoolVar(&force, "force", false,
		"overwrite an existing config file")

	return cmd
}
