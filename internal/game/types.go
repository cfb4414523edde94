package game

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/san-kum/rollrec/internal/dice"
)

const DefaultThreshold = 8

type Player int

const (
	PlayerA Player = iota
	PlayerB
)

func (p Player) Other() Player { return 1 - p }

func (p Player) String() string {
	switch p {
	case PlayerA:
		return "A"
	case PlayerB:
		return "B"
	default:
		return "Player(" + strconv.Itoa(int(p)) + ")"
	}
}

// History is the ordered record of one player's rolls.
type History []int

func (h History) Clone() History {
	c := make(History, len(h))
	copy(c, h)
	return c
}

// Profile counts occurrences of each sum. Index is the sum itself; 0 and 1 stay empty.
type Profile [dice.MaxSum + 1]int

func ProfileOf(h History) Profile {
	var p Profile
	for _, r := range h {
		if validRoll(r) {
			p[r]++
		}
	}
	return p
}

func (p *Profile) Add(roll int) { p[roll]++ }

func (p Profile) Count(v int) int {
	if !validRoll(v) {
		return 0
	}
	return p[v]
}

func (p Profile) Max() int {
	m := 0
	for v := dice.MinSum; v <= dice.MaxSum; v++ {
		if p[v] > m {
			m = p[v]
		}
	}
	return m
}

// Mode returns the most frequent sum, lowest value on ties, or 0 for an empty profile.
func (p Profile) Mode() int {
	mode, best := 0, 0
	for v := dice.MinSum; v <= dice.MaxSum; v++ {
		if p[v] > best {
			mode, best = v, p[v]
		}
	}
	return mode
}

func (p Profile) Total() int {
	n := 0
	for v := dice.MinSum; v <= dice.MaxSum; v++ {
		n += p[v]
	}
	return n
}

func (p Profile) Reached(threshold int) bool { return p.Max() >= threshold }

// Values returns counts for sums 2..12 in order.
func (p Profile) Values() []float64 {
	out := make([]float64, 0, dice.MaxSum-dice.MinSum+1)
	for v := dice.MinSum; v <= dice.MaxSum; v++ {
		out = append(out, float64(p[v]))
	}
	return out
}

func validRoll(r int) bool { return r >= dice.MinSum && r <= dice.MaxSum }

type Observer interface {
	OnTurn(turn int, p Player, roll int)
}

type ObserverFunc func(turn int, p Player, roll int)

func (f ObserverFunc) OnTurn(turn int, p Player, roll int) { f(turn, p, roll) }

type Metric interface {
	Name() string
	Observe(roll int)
	Value() float64
	Reset()
}

// Result is the frozen end state of a game.
type Result struct {
	Histories [2]History
	Names     [2]string
	Winner    Player
	Threshold int
	Turns     int
}

func (r *Result) WinnerName() string { return r.Names[r.Winner] }

func (r *Result) Rolls(p Player) History { return r.Histories[p] }

func (r *Result) Profile(p Player) Profile { return ProfileOf(r.Histories[p]) }

var (
	ErrRollOutOfRange = errors.New("roll out of range")
	ErrTurnLimit      = errors.New("turn limit reached without a winner")
	ErrInconsistent   = errors.New("inconsistent result")
)

type TurnError struct {
	Turn   int
	Player Player
	Err    error
}

func (e TurnError) Error() string {
	return fmt.Sprintf("turn %d (player %s): %v", e.Turn, e.Player, e.Err)
}

func (e TurnError) Unwrap() error { return e.Err }
