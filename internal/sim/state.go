// Package sim drives the pinball physics: a fixed-step tick that integrates
// the ball, moves the flippers, runs every collision pass in a fixed order and
// advances the ditch timers, plus the accumulator that maps variable frame
// times onto those ticks.
package sim

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-pinball/internal/physics"
)

// Input is the operator input for one frame. The same value is applied to
// every tick run within that frame.
type Input struct {
	Left    bool
	Right   bool
	Plunger bool
}

// Ball is the single dynamic body.
type Ball struct {
	physics.Body
	Radius float64
}

// Plunger accumulates charge while held.
type Plunger struct {
	Charge float64 // 0..1
	held   bool
}

// update advances the charge and returns the charge released this tick, if
// the plunger was let go.
func (p *Plunger) update(held bool, dt, chargeTime float64) (float64, bool) {
	if held {
		p.held = true
		if chargeTime <= 0 {
			p.Charge = 1
		} else {
			p.Charge = mgl64.Clamp(p.Charge+dt/chargeTime, 0, 1)
		}
		return 0, false
	}
	if !p.held {
		return 0, false
	}
	charge := p.Charge
	p.held = false
	p.Charge = 0
	return charge, true
}

func (p *Plunger) reset() {
	p.Charge = 0
	p.held = false
}

// State is the complete mutable simulation state. The zero value is not
// usable; create one with New.
type State struct {
	Table  *Table
	Params Params

	Ball    Ball
	Left    *physics.Flipper
	Right   *physics.Flipper
	Ditches []*physics.Ditch
	Hits    HitTimers
	Plunger Plunger
	Score   Scorekeeper

	rng      *rand.Rand
	resolver physics.Resolver
	acc      Accumulator
	ticks    uint64
}

// New creates a simulation over table. rng drives energetic-bounce jitter and
// ditch launch variation; nil makes both deterministic without randomness.
func New(table *Table, params Params, rng *rand.Rand) *State {
	s := &State{
		Table:  table,
		Params: params,
		Left:   physics.NewFlipper(table.LeftPivot, table.Flipper, true),
		Right:  physics.NewFlipper(table.RightPivot, table.Flipper, false),
		Hits:   newHitTimers(table),
		rng:    rng,
		resolver: physics.Resolver{
			Friction: params.Friction,
			Jitter:   params.Jitter,
			Rand:     rng,
		},
	}
	s.Ditches = make([]*physics.Ditch, len(table.Ditches))
	for i, d := range table.Ditches {
		s.Ditches[i] = physics.NewDitch(d.Floor, d.Lid, params.Ditch)
	}
	s.acc = NewAccumulator(params.TickRate, params.MaxFrame)
	s.Score.Practice = params.Practice
	s.Reset()
	return s
}

// Reset starts a new game: full lives, zero score, fresh ball.
func (s *State) Reset() {
	s.Score.Reset(s.Params.Lives)
	s.ticks = 0
	s.acc.Reset()
	s.Hits.Clear()
	s.ResetBall()
}

// ResetBall puts the ball back on the plunger, lowers the flippers and
// reopens every ditch.
func (s *State) ResetBall() {
	s.Ball = Ball{
		Body:   physics.Body{Pos: s.Table.LaunchPos},
		Radius: s.Params.BallRadius,
	}
	s.Left.Reset()
	s.Right.Reset()
	for _, d := range s.Ditches {
		d.Reopen()
	}
	s.Plunger.reset()
}

// SetGravity changes the gravity magnitude mid-game.
func (s *State) SetGravity(g float64) {
	s.Params.Gravity = g
}

// Ticks returns the number of ticks simulated since the last Reset.
func (s *State) Ticks() uint64 {
	return s.ticks
}

// InPlungerLane reports whether the ball sits in the launch lane.
func (s *State) InPlungerLane() bool {
	return s.Table.PlungerLane.Contains(s.Ball.Pos)
}
