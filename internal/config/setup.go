package config

import (
	"fmt"

	"github.com/charmbracelet/log"

	sim "mad-life/internal/core"
	"mad-life/pkg/life"
)

// Start builds the grid described by game and wraps it in a paused session
// pacing generations at the resolved step speed.
func Start(run Run, game Game, logger *log.Logger) (*sim.Session, error) {
	grid, err := life.New(game.GridConfig(run))
	if err != nil {
		return nil, err
	}
	session, err := sim.NewSession(grid, game.Seeds, StepSpeed(run, game), logger)
	if err != nil {
		return nil, fmt.Errorf("seed grid: %w", err)
	}
	game.LogSummary(logger)
	return session, nil
}
