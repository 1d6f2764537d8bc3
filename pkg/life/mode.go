package life

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode selects the transition rule applied to every cell of a grid.
type Mode uint8

const (
	Basic Mode = iota + 1
	Aging
	RuleBased
	Custom
)

var modeNames = map[Mode]string{
	Basic:     "BASIC",
	Aging:     "AGING",
	RuleBased: "RULE_BASED",
	Custom:    "CUSTOM",
}

// String returns the configuration-file name of the mode.
func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// ParseMode accepts a mode name (BASIC, AGING, RULE_BASED, CUSTOM; case and
// dash insensitive) or its 1-based number.
func ParseMode(s string) (Mode, error) {
	name := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", "_"))
	for m, n := range modeNames {
		if n == name {
			return m, nil
		}
	}
	if n, err := strconv.Atoi(name); err == nil {
		if _, ok := modeNames[Mode(n)]; ok && n > 0 {
			return Mode(n), nil
		}
	}
	return 0, &ConfigError{Field: "mode", Value: s, Err: ErrUnknownMode}
}

// Allows reports whether a cell of this mode may hold state s.
func (m Mode) Allows(s State) bool {
	switch m {
	case Basic, RuleBased:
		return s == Dead || s == Alive
	case Aging:
		return s == Dead || s == Alive || s == Old
	case Custom:
		return s == Dead || s == Old || s.Producible()
	}
	return false
}
