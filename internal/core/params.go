package core

import "strconv"

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeText denotes read-only labels such as the mode or rule.
	ParamTypeText ParamType = "text"
)

// Parameter describes a single value a session reports to the HUD.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the values exposed by a session at one moment.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Lookup finds a parameter by key.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return Parameter{}, false
}

// ParameterControl describes an adjustable integer parameter that should be
// exposed on the HUD.
type ParameterControl struct {
	Key   string
	Label string
	Step  int
	Min   int
	Max   int
}

// Clamp limits v to the control's bounds.
func (c ParameterControl) Clamp(v int) int {
	if v < c.Min {
		return c.Min
	}
	if v > c.Max {
		return c.Max
	}
	return v
}

func intParam(key, label string, v int) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeInt, Value: strconv.Itoa(v)}
}

func textParam(key, label, v string) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeText, Value: v}
}

// ParameterControlsProvider exposes HUD-adjustable parameters.
type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
}

// IntParameterSetter applies an integer parameter change. It reports false
// when the key is not adjustable.
type IntParameterSetter interface {
	SetIntParameter(key string, value int) bool
}
