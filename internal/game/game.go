// Package game runs a two-player Roll and Record match: players alternate
// rolling two dice and the first whose most frequent sum reaches the
// threshold wins.
package game

import (
	"context"
	"fmt"

	"github.com/san-kum/rollrec/internal/dice"
)

type Game struct {
	src       dice.Source
	threshold int
	names     [2]string
	observers []Observer
}

type Option func(*Game)

// WithThreshold sets the winning count. Values below 1 are treated as 1,
// since a roll is always recorded before the check.
func WithThreshold(n int) Option {
	return func(g *Game) {
		if n < 1 {
			n = 1
		}
		g.threshold = n
	}
}

func WithNames(a, b string) Option {
	return func(g *Game) { g.names = [2]string{a, b} }
}

func WithObserver(o Observer) Option {
	return func(g *Game) { g.observers = append(g.observers, o) }
}

func New(src dice.Source, opts ...Option) *Game {
	g := &Game{
		src:       src,
		threshold: DefaultThreshold,
		names:     [2]string{"George", "Pete"},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Game) Threshold() int { return g.threshold }

// MaxTurns is the pigeonhole bound: once a player holds 11*(t-1)+1 rolls some
// sum must have reached t, and player A gets there first.
func (g *Game) MaxTurns() int {
	return 2*(dice.MaxSum-dice.MinSum+1)*(g.threshold-1) + 1
}

// Play runs the game to completion. Errors only surface for a cancelled
// context or a source that produces impossible rolls.
func (g *Game) Play(ctx context.Context) (*Result, error) {
	var (
		histories [2]History
		profiles  [2]Profile
	)

	limit := g.MaxTurns()
	for turn := 0; turn < limit; turn++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		p := Player(turn % 2)
		roll := dice.Roll(g.src)
		if !validRoll(roll) {
			return nil, TurnError{Turn: turn, Player: p, Err: fmt.Errorf("%w: %d", ErrRollOutOfRange, roll)}
		}

		histories[p] = append(histories[p], roll)
		profiles[p].Add(roll)

		for _, obs := range g.observers {
			obs.OnTurn(turn, p, roll)
		}

		if profiles[p][roll] >= g.threshold {
			return &Result{
				Histories: histories,
				Names:     g.names,
				Winner:    p,
				Threshold: g.threshold,
				Turns:     turn + 1,
			}, nil
		}
	}

	return nil, fmt.Errorf("%w after %d turns", ErrTurnLimit, limit)
}

// Play runs a single game with the default names.
func Play(ctx context.Context, src dice.Source, threshold int) (*Result, error) {
	return New(src, WithThreshold(threshold)).Play(ctx)
}

// Check verifies a result from its histories alone.
func (r *Result) Check() error {
	a, b := len(r.Histories[PlayerA]), len(r.Histories[PlayerB])
	if d := a - b; d < -1 || d > 1 {
		return fmt.Errorf("%w: history lengths %d and %d", ErrInconsistent, a, b)
	}
	if a+b != r.Turns {
		return fmt.Errorf("%w: %d rolls over %d turns", ErrInconsistent, a+b, r.Turns)
	}
	for p, h := range r.Histories {
		for i, roll := range h {
			if !validRoll(roll) {
				return TurnError{Turn: 2*i + p, Player: Player(p), Err: ErrRollOutOfRange}
			}
		}
	}

	// the winner moved last, so it owns the final turn's parity
	if last := Player((r.Turns - 1) % 2); last != r.Winner {
		return fmt.Errorf("%w: winner %s did not take the last turn", ErrInconsistent, r.Winner)
	}
	if !r.Profile(r.Winner).Reached(r.Threshold) {
		return fmt.Errorf("%w: winner never reached %d", ErrInconsistent, r.Threshold)
	}
	if r.Profile(r.Winner.Other()).Reached(r.Threshold) {
		return fmt.Errorf("%w: loser reached %d", ErrInconsistent, r.Threshold)
	}
	return nil
}
