package life

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDimensions = errors.New("grid dimensions must be positive")
	ErrInvalidRule       = errors.New("rule must have the form B<digits>/S<digits>")
	ErrUnknownMode       = errors.New("unknown game mode")
	ErrSeedOutOfBounds   = errors.New("seed coordinate out of bounds")
	ErrSeedState         = errors.New("invalid seed state")
)

// ConfigError reports a configuration value rejected before a grid is built.
type ConfigError struct {
	Field string
	Value string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s=%q: %v", e.Field, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// SeedError reports the first rejected entry of a seed batch. Index is the
// position of the entry in the batch.
type SeedError struct {
	Index int
	Seed  Seed
	Err   error
}

func (e *SeedError) Error() string {
	return fmt.Sprintf("seed %d (row=%d col=%d state=%v): %v", e.Index, e.Seed.Row, e.Seed.Col, e.Seed.State, e.Err)
}

func (e *SeedError) Unwrap() error { return e.Err }
