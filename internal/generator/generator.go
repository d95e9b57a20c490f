package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"loto/internal/draw"
	"loto/internal/formats"
	"loto/internal/logger"
)

var ErrExhausted = errors.New("no unseen draw found")

type Generator struct {
	rng         formats.Rand
	maxAttempts int
}

// New returns a Generator drawing from rng. maxAttempts <= 0 means
// GenerateUnseen retries until it succeeds.
func New(rng formats.Rand, maxAttempts int) *Generator {
	return &Generator{rng: rng, maxAttempts: maxAttempts}
}

// NewSeeded builds a Generator on math/rand. A zero seed uses the clock.
func NewSeeded(seed int64, maxAttempts int) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return New(rand.New(rand.NewSource(seed)), maxAttempts)
}

// GenerateUnseen samples draws of format f until one is not Equal to any
// draw in history.
func (g *Generator) GenerateUnseen(history []draw.Result, f *formats.Format) (draw.Result, error) {
	logger.Log.Infof("🎲 Generation for %s", f.Name)

	for attempt := 1; g.maxAttempts <= 0 || attempt <= g.maxAttempts; attempt++ {
		candidate := f.Generate(g.rng)
		if !candidate.In(history) {
			logger.Log.Debugf("Found unseen draw after %d attempt(s)", attempt)
			return candidate, nil
		}
		logger.Log.Debugf("Attempt %d: %s already drawn", attempt, candidate)
	}
	return draw.Result{}, fmt.Errorf("%w after %d attempts", ErrExhausted, g.maxAttempts)
}
