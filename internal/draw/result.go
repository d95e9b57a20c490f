package draw

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

// ErrFormat is wrapped by every FormatError.
var ErrFormat = errors.New("invalid draw format")

// FormatError reports a draw string that could not be parsed.
type FormatError struct {
	Input string
	Err   error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid format for %q: %v", e.Input, e.Err)
}

func (e *FormatError) Unwrap() []error {
	return []error{ErrFormat, e.Err}
}

// Result is one draw: main numbers, bonus numbers and an optional date.
// A zero Date means the draw is undated.
type Result struct {
	Main  []int
	Bonus []int
	Date  time.Time
}

func (r Result) HasDate() bool {
	return !r.Date.IsZero()
}

// Equal compares main numbers only. Same-size draws must hold the same
// numbers; otherwise every number of the smaller draw must appear in the
// larger one. Bonus numbers are never compared.
func (r Result) Equal(other Result) bool {
	if len(r.Main) == len(other.Main) {
		return slices.Equal(sorted(r.Main), sorted(other.Main))
	}
	small, large := r.Main, other.Main
	if len(small) > len(large) {
		small, large = large, small
	}
	for _, n := range small {
		if !slices.Contains(large, n) {
			return false
		}
	}
	return true
}

// In reports whether an Equal draw exists in history.
func (r Result) In(history []Result) bool {
	for _, h := range history {
		if r.Equal(h) {
			return true
		}
	}
	return false
}

// String renders the canonical form, e.g. "1-2-3-4-5+6 on 01-01-2020".
func (r Result) String() string {
	var b strings.Builder
	b.WriteString(join(sorted(r.Main), "-"))
	b.WriteString("+")
	b.WriteString(join(sorted(r.Bonus), "+"))
	if r.HasDate() {
		b.WriteString(" on ")
		b.WriteString(r.Date.Format(DisplayLayout))
	}
	return b.String()
}

// Parse reads "1-2-3-4-5+6" style strings: main numbers joined by "-",
// then "+", then bonus numbers joined by "+".
func Parse(text string) (Result, error) {
	mainPart, bonusPart, found := strings.Cut(text, "+")
	if !found {
		return Result{}, &FormatError{Input: text, Err: errors.New("missing '+' between main and bonus numbers")}
	}
	main, err := atoiAll(strings.Split(mainPart, "-"))
	if err != nil {
		return Result{}, &FormatError{Input: text, Err: err}
	}
	bonus, err := atoiAll(strings.Split(bonusPart, "+"))
	if err != nil {
		return Result{}, &FormatError{Input: text, Err: err}
	}
	return Result{Main: main, Bonus: bonus}, nil
}

func atoiAll(tokens []string) ([]int, error) {
	out := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		n, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil {
			return nil, fmt.Errorf("not a number: %q", tok)
		}
		out = append(out, n)
	}
	return out, nil
}

func sorted(nums []int) []int {
	out := slices.Clone(nums)
	slices.Sort(out)
	return out
}

func join(nums []int, sep string) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, sep)
}
