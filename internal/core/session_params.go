package core

import (
	"time"

	"mad-life/pkg/life"
)

var sessionControls = []ParameterControl{
	{Key: "step_ms", Label: "Step (ms)", Step: 10, Min: 10, Max: 2000},
	{Key: "workers", Label: "Workers", Step: 1, Min: 1, Max: 64},
}

// Parameters reports the grid, mode and run values shown on the HUD.
func (s *Session) Parameters() ParameterSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cfg := s.grid.Config()
	rule := "-"
	if cfg.Mode == life.RuleBased {
		rule = cfg.Rule
	}
	return ParameterSnapshot{Groups: []ParameterGroup{
		{
			Name: "Grid",
			Params: []Parameter{
				intParam("rows", "Rows", s.grid.Rows()),
				intParam("cols", "Cols", s.grid.Cols()),
				intParam("workers", "Workers", cfg.Workers),
			},
		},
		{
			Name: "Mode",
			Params: []Parameter{
				textParam("mode", "Mode", cfg.Mode.String()),
				textParam("rule", "Rule", rule),
			},
		},
		{
			Name: "Run",
			Params: []Parameter{
				textParam("state", "State", s.state.String()),
				intParam("generation", "Generation", s.grid.Generation()),
				intParam("population", "Population", s.grid.Population()),
				intParam("step_ms", "Step (ms)", int(s.timer.Step()/time.Millisecond)),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable parameters.
func (s *Session) ParameterControls() []ParameterControl {
	return append([]ParameterControl(nil), sessionControls...)
}

// SetIntParameter updates an adjustable parameter. It reports false for
// unknown keys.
func (s *Session) SetIntParameter(key string, value int) bool {
	var ctrl ParameterControl
	found := false
	for _, c := range sessionControls {
		if c.Key == key {
			ctrl, found = c, true
		}
	}
	if !found {
		return false
	}
	value = ctrl.Clamp(value)
	s.mu.Lock()
	defer s.mu.Unlock()
	switch key {
	case "step_ms":
		s.timer.SetStep(time.Duration(value) * time.Millisecond)
	case "workers":
		s.grid.SetWorkers(value)
	}
	s.logger.Debug("parameter changed", "key", key, "value", value)
	return true
}
