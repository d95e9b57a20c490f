package generator

import (
	"errors"
	"math/rand"
	"testing"

	"loto/internal/draw"
	"loto/internal/formats"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sequence replays fixed Intn answers, clamped to the requested range.
type sequence struct {
	values []int
	pos    int
}

func (s *sequence) Intn(n int) int {
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return v % n
}

func TestGenerateUnseen(t *testing.T) {
	g := New(rand.New(rand.NewSource(1)), 0)
	for _, f := range formats.All() {
		t.Run(f.Name, func(t *testing.T) {
			r, err := g.GenerateUnseen(nil, f)
			require.NoError(t, err)
			assert.True(t, f.Valid(r))
		})
	}
}

func TestGenerateUnseen_SkipsHistory(t *testing.T) {
	// All-zero answers always produce 1-2-3-4-5+1.
	zeros := &sequence{values: []int{0}}
	first := formats.Loto5Balls.Generate(zeros)
	require.Equal(t, "1-2-3-4-5+1", first.String())

	history := []draw.Result{{Main: []int{5, 4, 3, 2, 1}, Bonus: []int{9}}}

	// First candidate repeats history, second is fresh.
	seq := &sequence{values: []int{0, 0, 0, 0, 0, 0, 5, 0, 0, 0, 0, 0}}
	g := New(seq, 0)
	r, err := g.GenerateUnseen(history, formats.Loto5Balls)
	require.NoError(t, err)
	assert.False(t, r.In(history))
	assert.Equal(t, "2-3-4-5-6+1", r.String())
}

func TestGenerateUnseen_Exhausted(t *testing.T) {
	history := []draw.Result{{Main: []int{1, 2, 3, 4, 5}, Bonus: []int{1}}}
	g := New(&sequence{values: []int{0}}, 3)

	_, err := g.GenerateUnseen(history, formats.Loto5Balls)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrExhausted))
}

func TestNewSeeded_Deterministic(t *testing.T) {
	a, err := NewSeeded(99, 0).GenerateUnseen(nil, formats.EuroMillions)
	require.NoError(t, err)
	b, err := NewSeeded(99, 0).GenerateUnseen(nil, formats.EuroMillions)
	require.NoError(t, err)
	assert.Equal(t, a.String(), b.String())
}
