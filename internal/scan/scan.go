// Package scan counts holes line by line in readers and files.
package scan

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/unbound-force/holes/internal/holes"
	"github.com/unbound-force/holes/internal/report"
	"golang.org/x/sync/errgroup"
)

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20

// DefaultLimit is the number of files scanned concurrently when
// Files is called with a non-positive limit.
const DefaultLimit = 4

// Reader counts every non-blank line of r. Lines are trimmed of
// surrounding whitespace before counting. A line that cannot be
// counted yields an Entry with Error set; only read failures and
// context cancellation are returned as errors.
func Reader(ctx context.Context, source string, r io.Reader, c *holes.Counter) ([]report.Entry, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var entries []report.Entry
	line := 0
	for sc.Scan() {
		line++
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		entries = append(entries, report.NewEntry(c, source, line, text))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", source, err)
	}
	return entries, nil
}

// File counts every non-blank line of the file at path.
func File(ctx context.Context, path string, c *holes.Counter) ([]report.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return Reader(ctx, path, f, c)
}

// Files scans paths with at most limit files open at once and returns
// the entries in the order of paths. The first file error cancels the
// remaining scans and is returned.
func Files(ctx context.Context, paths []string, c *holes.Counter, limit int) ([]report.Entry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	perFile := make([][]report.Entry, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			entries, err := File(gctx, path, c)
			if err != nil {
				return err
			}
			perFile[i] = entries
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []report.Entry
	for _, entries := range perFile {
		all = append(all, entries...)
	}
	return all, nil
}
