// Package holes counts the closed loops ("holes") in the printed
// digits of a decimal number.
//
// A number is extracted from the input with a pattern (see Mode),
// leading zeros are stripped, and each remaining digit contributes
// the holes given by a glyph.Table. With the default table 8 has two
// holes and 0, 4, 6 and 9 have one.
package holes

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/unbound-force/holes/internal/glyph"
)

// Sentinel errors returned by Count.
var (
	// ErrUnsupportedType is returned for inputs that are neither a
	// string nor an integer.
	ErrUnsupportedType = errors.New("unsupported input type")

	// ErrNoDigits is returned when the input does not contain a
	// number the active Mode accepts.
	ErrNoDigits = errors.New("no digit run found")
)

// Mode selects the pattern used to extract the digit run.
type Mode string

// Extraction modes.
const (
	// Strict requires the whole input to be an optional '-' followed
	// by digits.
	Strict Mode = "strict"

	// Lenient skips any non-digit prefix and takes the first digit
	// run, which must be followed by end of input or a character that
	// is neither a period nor a digit.
	Lenient Mode = "lenient"
)

var (
	strictRe  = regexp.MustCompile(`^(-?)(\d+)$`)
	lenientRe = regexp.MustCompile(`^\D*?(-?)(\d+)(?:[^.\d]|$)`)
)

// ParseMode parses a mode name. The empty string selects Strict.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", Strict:
		return Strict, nil
	case Lenient:
		return Lenient, nil
	default:
		return "", fmt.Errorf("invalid mode %q: must be 'strict' or 'lenient'", s)
	}
}

func (m Mode) pattern() *regexp.Regexp {
	if m == Lenient {
		return lenientRe
	}
	return strictRe
}

// DigitCount is the contribution of one digit to a Result.
type DigitCount struct {
	// Digit is the digit character ("0" through "9").
	Digit string `json:"digit"`

	// Count is how many times the digit occurs in the stripped run.
	Count int `json:"count"`

	// Holes is Count multiplied by the digit's hole count.
	Holes int `json:"holes"`
}

// Result is the outcome of counting one input.
type Result struct {
	// Input is the input as text (integers are formatted in base 10).
	Input string `json:"input"`

	// Digits is the matched digit run with leading zeros removed.
	// It is empty when the run consisted only of zeros.
	Digits string `json:"digits"`

	// Negative reports whether the run was preceded by '-'.
	Negative bool `json:"negative"`

	// Holes is the total hole count.
	Holes int `json:"holes"`

	// Breakdown lists every digit that contributed holes, in
	// ascending digit order.
	Breakdown []DigitCount `json:"breakdown"`
}

// Options configures a Counter.
type Options struct {
	// Mode selects the extraction pattern. Empty means Strict.
	Mode Mode

	// Table gives the holes per digit. A nil Table uses glyph.Default.
	Table *glyph.Table
}

// Counter counts holes using a fixed set of Options. Use New to
// construct one.
type Counter struct {
	mode  Mode
	table glyph.Table
}

// New returns a Counter for the given options.
func New(opts Options) *Counter {
	c := &Counter{mode: opts.Mode, table: glyph.Default()}
	if c.mode == "" {
		c.mode = Strict
	}
	if opts.Table != nil {
		c.table = *opts.Table
	}
	return c
}

// Mode returns the extraction mode of c.
func (c *Counter) Mode() Mode {
	return c.mode
}

// Count counts the holes in v, which must be a string or a Go integer.
// It returns ErrUnsupportedType or ErrNoDigits (wrapped) on failure.
func (c *Counter) Count(v any) (Result, error) {
	s, err := toText(v)
	if err != nil {
		return Result{}, err
	}
	return c.CountString(s)
}

// CountString counts the holes in the number extracted from s.
func (c *Counter) CountString(s string) (Result, error) {
	m := c.mode.pattern().FindStringSubmatch(s)
	if m == nil {
		return Result{Input: s}, fmt.Errorf("%w in %q (%s mode)", ErrNoDigits, s, c.mode)
	}

	digits := strings.TrimLeft(m[2], "0")
	res := Result{
		Input:     s,
		Digits:    digits,
		Negative:  m[1] == "-",
		Holes:     c.table.Sum(digits),
		Breakdown: []DigitCount{},
	}

	var occurrences [10]int
	for i := 0; i < len(digits); i++ {
		occurrences[digits[i]-'0']++
	}
	for d, n := range occurrences {
		if n == 0 || c.table[d] == 0 {
			continue
		}
		res.Breakdown = append(res.Breakdown, DigitCount{
			Digit: strconv.Itoa(d),
			Count: n,
			Holes: n * c.table[d],
		})
	}
	return res, nil
}

// Count counts the holes in v in Strict mode with the default glyph
// table. v must be a string or an integer.
func Count(v any) (int, error) {
	res, err := New(Options{}).Count(v)
	if err != nil {
		return 0, err
	}
	return res.Holes, nil
}

func toText(v any) (string, error) {
	switch n := v.(type) {
	case string:
		return n, nil
	case int:
		return strconv.FormatInt(int64(n), 10), nil
	case int8:
		return strconv.FormatInt(int64(n), 10), nil
	case int16:
		return strconv.FormatInt(int64(n), 10), nil
	case int32:
		return strconv.FormatInt(int64(n), 10), nil
	case int64:
		return strconv.FormatInt(n, 10), nil
	case uint:
		return strconv.FormatUint(uint64(n), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(n), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(n), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(n), 10), nil
	case uint64:
		return strconv.FormatUint(n, 10), nil
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}
}
