package scan

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/unbound-force/holes/internal/holes"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestReader_LinesAndErrors(t *testing.T) {
	in := "8\r\n\n  123  \nabc\n-0001234567890123\n"
	entries, err := Reader(context.Background(), "stdin", strings.NewReader(in), holes.New(holes.Options{}))
	if err != nil {
		t.Fatalf("Reader() error: %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("expected 4 entries (blank line skipped), got %d", len(entries))
	}

	wantLines := []int{1, 3, 4, 5}
	for i, e := range entries {
		if e.Line != wantLines[i] {
			t.Errorf("entry %d line = %d, want %d", i, e.Line, wantLines[i])
		}
		if e.Source != "stdin" {
			t.Errorf("entry %d source = %q, want stdin", i, e.Source)
		}
	}

	if entries[0].Failed() || entries[0].Result.Holes != 2 {
		t.Errorf("line 1: want 2 holes, got %+v", entries[0])
	}
	if entries[1].Input != "123" {
		t.Errorf("line 3 input = %q, want trimmed %q", entries[1].Input, "123")
	}
	if !entries[2].Failed() {
		t.Error("line 4 should fail in strict mode")
	}
	if entries[3].Failed() || entries[3].Result.Holes != 6 {
		t.Errorf("line 5: want 6 holes, got %+v", entries[3])
	}
}

func TestReader_Lenient(t *testing.T) {
	in := "total: 808 items\nversion 1.5\n"
	entries, err := Reader(context.Background(), "x", strings.NewReader(in),
		holes.New(holes.Options{Mode: holes.Lenient}))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Failed() || entries[0].Result.Holes != 5 {
		t.Errorf("line 1: want 5 holes, got %+v", entries[0])
	}
	if !entries[1].Failed() {
		t.Error("line 2 is a decimal and should fail")
	}
}

func TestReader_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Reader(ctx, "stdin", strings.NewReader("8\n"), holes.New(holes.Options{}))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Reader() error = %v, want context.Canceled", err)
	}
}

func TestReader_Empty(t *testing.T) {
	entries, err := Reader(context.Background(), "stdin", strings.NewReader(""), holes.New(holes.Options{}))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no entries, got %d", len(entries))
	}
}

func TestFiles_PreservesOrder(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for i := 0; i < 10; i++ {
		// File i holds i+1 eights.
		paths = append(paths, writeFile(t, dir, fmt.Sprintf("f%d.txt", i),
			strings.Repeat("8", i+1)+"\n"))
	}

	entries, err := Files(context.Background(), paths, holes.New(holes.Options{}), 3)
	if err != nil {
		t.Fatalf("Files() error: %v", err)
	}
	if len(entries) != len(paths) {
		t.Fatalf("expected %d entries, got %d", len(paths), len(entries))
	}
	for i, e := range entries {
		if e.Source != paths[i] {
			t.Errorf("entry %d source = %q, want %q", i, e.Source, paths[i])
		}
		if want := 2 * (i + 1); e.Result == nil || e.Result.Holes != want {
			t.Errorf("entry %d: want %d holes, got %+v", i, want, e)
		}
	}
}

func TestFiles_MissingFile(t *testing.T) {
	dir := t.TempDir()
	ok := writeFile(t, dir, "ok.txt", "8\n")
	missing := filepath.Join(dir, "missing.txt")

	_, err := Files(context.Background(), []string{ok, missing}, holes.New(holes.Options{}), 0)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "missing.txt") {
		t.Errorf("error should name the missing file, got: %v", err)
	}
}

func TestFiles_NoPaths(t *testing.T) {
	entries, err := Files(context.Background(), nil, holes.New(holes.Options{}), 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no entries, got %d", len(entries))
	}
}
