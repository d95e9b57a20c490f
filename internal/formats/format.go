package formats

import (
	"regexp"
	"slices"
	"strconv"
	"strings"

	"loto/internal/draw"
)

// Kind identifies one of the known draw layouts.
type Kind int

const (
	FiveBall Kind = iota
	SixBall
	EuroStyle
)

const (
	ballPrefix = "boule_"
	dateKey    = "date_de_tirage"
)

// Rand is the randomness a Format needs to generate draws.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Format describes the column layout, cardinalities and number ranges of
// one draw style. Formats are package-level values and never mutated.
type Format struct {
	Kind        Kind
	Name        string
	Description string

	MainCount  int
	BonusCount int
	MaxMain    int
	MaxBonus   int

	MainPrefix  string
	BonusPrefix string
	DateKey     string

	// Whitelist matches extra main/bonus-looking columns that are expected
	// in some files and must not block classification.
	Whitelist *regexp.Regexp
}

func (f *Format) String() string {
	return f.Name
}

func (f *Format) MainKeys() []string {
	return columnKeys(f.MainPrefix, f.MainCount)
}

func (f *Format) BonusKeys() []string {
	return columnKeys(f.BonusPrefix, f.BonusCount)
}

func columnKeys(prefix string, count int) []string {
	if count == 1 {
		return []string{prefix}
	}
	keys := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		keys = append(keys, prefix+strconv.Itoa(i))
	}
	return keys
}

func (f *Format) requiredKeys() []string {
	return append(f.MainKeys(), f.BonusKeys()...)
}

func (f *Format) whitelisted(key string) bool {
	return f.Whitelist != nil && f.Whitelist.MatchString(key)
}

// Claims reports whether header was produced by this format: every required
// number column is present, and every other number-like column is whitelisted.
func (f *Format) Claims(header []string) bool {
	required := f.requiredKeys()
	for _, key := range required {
		if !slices.Contains(header, key) {
			return false
		}
	}
	for _, h := range header {
		if !strings.HasPrefix(h, f.MainPrefix) && !strings.HasPrefix(h, f.BonusPrefix) {
			continue
		}
		if slices.Contains(required, h) || f.whitelisted(h) {
			continue
		}
		return false
	}
	return true
}

// Valid reports whether r is a complete draw of this format: exact counts,
// no repeated numbers and every number within range.
func (f *Format) Valid(r draw.Result) bool {
	return validNumbers(r.Main, f.MainCount, f.MaxMain) &&
		validNumbers(r.Bonus, f.BonusCount, f.MaxBonus)
}

func validNumbers(nums []int, count, limit int) bool {
	if len(nums) != count {
		return false
	}
	seen := make(map[int]bool, len(nums))
	for _, n := range nums {
		if n <= 0 || n > limit || seen[n] {
			return false
		}
		seen[n] = true
	}
	return true
}

// Generate draws a random undated result, sampling main and bonus numbers
// without replacement.
func (f *Format) Generate(r Rand) draw.Result {
	return draw.Result{
		Main:  sample(r, f.MaxMain, f.MainCount),
		Bonus: sample(r, f.MaxBonus, f.BonusCount),
	}
}

// sample picks k distinct values from [1, n] with a partial Fisher-Yates shuffle.
func sample(r Rand, n, k int) []int {
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i + 1
	}
	for i := 0; i < k; i++ {
		j := i + r.Intn(n-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return slices.Clone(pool[:k])
}
