// Package dice rolls pairs of six-sided dice over an injectable random source.
package dice

import (
	"math/rand"
	"time"
)

const (
	Sides  = 6
	MinSum = 2
	MaxSum = 2 * Sides
)

// Source is the only capability the engine needs from a random generator.
// *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// NewSource returns a seeded generator. A zero seed draws one from the clock.
func NewSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Roll throws two dice independently and returns their sum.
func Roll(src Source) int {
	return Die(src) + Die(src)
}

// Die throws a single die.
func Die(src Source) int {
	return src.Intn(Sides) + 1
}

// Sequence replays scripted die faces in order and wraps around when exhausted.
type Sequence struct {
	faces []int
	pos   int
}

func NewSequence(faces ...int) *Sequence {
	return &Sequence{faces: faces}
}

// Intn returns the next face minus one so that Die reproduces the scripted face.
// An empty sequence always yields 0.
func (s *Sequence) Intn(n int) int {
	if len(s.faces) == 0 {
		return 0
	}
	v := s.faces[s.pos%len(s.faces)] - 1
	s.pos++
	return v
}

// Drawn reports how many values have been consumed.
func (s *Sequence) Drawn() int { return s.pos }
