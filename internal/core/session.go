package core

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"mad-life/pkg/life"
)

// Session drives a grid the way the front ends expect: it starts paused,
// plays at a fixed step speed, steps once on demand and restarts from the
// initial seeds. It is safe for concurrent use.
type Session struct {
	mu     sync.RWMutex
	grid   *life.Grid
	seeds  []life.Seed
	timer  *FixedStep
	state  PlayState
	logger *log.Logger
	now    func() time.Time
}

// NewSession seeds grid and returns a paused session.
func NewSession(grid *life.Grid, seeds []life.Seed, step time.Duration, logger *log.Logger) (*Session, error) {
	if err := grid.Initialize(seeds); err != nil {
		return nil, err
	}
	return &Session{
		grid:   grid,
		seeds:  append([]life.Seed(nil), seeds...),
		timer:  NewFixedStep(step),
		logger: logger,
		now:    time.Now,
	}, nil
}

// Toggle switches between playing and paused and returns the new state.
func (s *Session) Toggle() PlayState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == Playing {
		s.state = Paused
	} else {
		s.state = Playing
	}
	s.timer.Restart(s.now())
	s.logger.Debug("toggled", "state", s.state, "generation", s.grid.Generation())
	return s.state
}

// Restart pauses, clears the grid and re-applies the initial seeds.
func (s *Session) Restart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Paused
	s.grid.Reset()
	if err := s.grid.Initialize(s.seeds); err != nil {
		// The seeds were accepted by NewSession on the same grid.
		panic(fmt.Sprintf("core: restart: %v", err))
	}
	s.timer.Restart(s.now())
	s.logger.Debug("restarted", "cells", len(s.seeds))
}

// StepOnce pauses and advances exactly one generation.
func (s *Session) StepOnce() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Paused
	s.update()
}

// Advance updates the grid once if the session is playing and a step is due.
func (s *Session) Advance(now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Playing || !s.timer.ShouldStep(now) {
		return false
	}
	s.update()
	return true
}

// Paint flips the cell at (row, col) between dead and the mode's first live
// state. Painted cells are not part of the seeds Restart restores.
func (s *Session) Paint(row, col int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := paintState[s.grid.Mode()]
	if s.grid.InBounds(row, col) && s.grid.Cell(row, col).Alive() {
		next = life.Dead
	}
	return s.grid.SetState(row, col, next)
}

var paintState = map[life.Mode]life.State{
	life.Basic:     life.Alive,
	life.Aging:     life.Alive,
	life.RuleBased: life.Alive,
	life.Custom:    life.R,
}

func (s *Session) update() {
	s.grid.Update()
	if gen := s.grid.Generation(); gen%100 == 0 {
		s.logger.Debug("generation", "n", gen, "population", s.grid.Population())
	}
}

// View runs fn with the grid locked against updates. fn must not keep the
// grid after returning.
func (s *Session) View(fn func(g *life.Grid)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.grid)
}

// State reports whether the session is playing.
func (s *Session) State() PlayState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Playing reports whether the session advances on its own.
func (s *Session) Playing() bool { return s.State() == Playing }

// Steps is the number of generations since the last restart.
func (s *Session) Steps() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.grid.Generation()
}

// Size returns the grid dimensions.
func (s *Session) Size() Size {
	return Size{W: s.grid.Cols(), H: s.grid.Rows()}
}

// StepSpeed is the delay between generations while playing.
func (s *Session) StepSpeed() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.timer.Step()
}

// ModeLabel names the mode for display, e.g. "RULE(B36/S23)".
func (s *Session) ModeLabel() string {
	cfg := s.grid.Config()
	if cfg.Mode == life.RuleBased {
		return "RULE(" + cfg.Rule + ")"
	}
	return cfg.Mode.String()
}
