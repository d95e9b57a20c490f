package formats

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"loto/internal/draw"
)

// ErrRow marks a row that cannot produce any draw.
var ErrRow = errors.New("unusable row")

// Row maps column names to raw cell values.
type Row map[string]string

// extraExtractor lets a format pull additional draws out of a row that
// already produced base.
type extraExtractor func(f *Format, row Row, base draw.Result) ([]draw.Result, error)

var extraExtractors = map[Kind]extraExtractor{
	FiveBall: extractSecondDraw,
}

// ExtractRow converts one data row into its draws. A row whose numbers or
// date cannot be read, or whose numbers break the format's counts and
// ranges, yields an error wrapping ErrRow and no draws.
func (f *Format) ExtractRow(row Row) ([]draw.Result, error) {
	main, err := readNumbers(row, f.MainKeys())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRow, err)
	}
	bonus, err := readNumbers(row, f.BonusKeys())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRow, err)
	}
	date, err := draw.ParseDate(row[f.DateKey])
	if err != nil {
		return nil, fmt.Errorf("%w: column %s: %w", ErrRow, f.DateKey, err)
	}

	base := draw.Result{Main: main, Bonus: bonus, Date: date}
	if !f.Valid(base) {
		return nil, fmt.Errorf("%w: %s is not a valid %s draw", ErrRow, base, f.Name)
	}
	results := []draw.Result{base}

	if extra, ok := extraExtractors[f.Kind]; ok {
		more, err := extra(f, row, base)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRow, err)
		}
		results = append(results, more...)
	}
	return results, nil
}

func readNumbers(row Row, keys []string) ([]int, error) {
	nums := make([]int, 0, len(keys))
	for _, key := range keys {
		raw, ok := row[key]
		if !ok {
			return nil, fmt.Errorf("missing column %s", key)
		}
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("column %s: not a number: %q", key, raw)
		}
		nums = append(nums, n)
	}
	return nums, nil
}

func secondDrawKey(i int) string {
	return fmt.Sprintf("%s%d_second_tirage", ballPrefix, i)
}

// extractSecondDraw reads the "second tirage" columns that some loto rows
// carry. The second draw shares the row's bonus numbers and has no date.
// Rows where those cells are absent or blank contribute nothing extra.
func extractSecondDraw(f *Format, row Row, base draw.Result) ([]draw.Result, error) {
	keys := make([]string, 0, f.MainCount)
	for i := 1; i <= f.MainCount; i++ {
		key := secondDrawKey(i)
		if strings.TrimSpace(row[key]) == "" {
			return nil, nil
		}
		keys = append(keys, key)
	}
	main, err := readNumbers(row, keys)
	if err != nil {
		return nil, err
	}
	second := draw.Result{Main: main, Bonus: base.Bonus}
	if !f.Valid(second) {
		return nil, fmt.Errorf("second draw %s is not a valid %s draw", second, f.Name)
	}
	return []draw.Result{second}, nil
}
