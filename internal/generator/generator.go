// Package generator picks target words for the game.
package generator

import (
	"math/rand"
	"sync"
	"time"

	"github.com/verte-zerg/wordrush/internal/model"
)

// Generator draws words uniformly from a fixed vocabulary.
type Generator struct {
	mu    sync.Mutex
	rnd   *rand.Rand
	words []string
}

// New returns a Generator over words seeded with the current time.
// words must be non-empty.
func New(words []string) *Generator {
	return NewSeeded(words, time.Now().UnixNano())
}

// NewSeeded returns a Generator with a fixed seed.
func NewSeeded(words []string, seed int64) *Generator {
	return &Generator{
		rnd:   rand.New(rand.NewSource(seed)),
		words: append([]string(nil), words...),
	}
}

// Next returns a uniformly random word. The level does not narrow the
// vocabulary yet; consecutive repeats are possible.
func (g *Generator) Next(_ model.Difficulty) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.words[g.rnd.Intn(len(g.words))]
}

// Words returns the vocabulary size.
func (g *Generator) Words() int {
	return len(g.words)
}
