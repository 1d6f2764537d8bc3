package life

import (
	"slices"
	"strconv"
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// RuleSpec holds the neighbour counts of a B/S rule such as "B3/S23".
type RuleSpec struct {
	Birth   mapset.Set[int]
	Survive mapset.Set[int]
}

// ParseRule parses a rule string of the form B<digits>/S<digits>. Digits are
// neighbour counts 0-8; order and duplicates do not matter.
func ParseRule(rule string) (RuleSpec, error) {
	s := strings.TrimSpace(rule)
	bad := func() (RuleSpec, error) {
		return RuleSpec{}, &ConfigError{Field: "rule", Value: rule, Err: ErrInvalidRule}
	}
	if !strings.HasPrefix(s, "B") {
		return bad()
	}
	births, survives, ok := strings.Cut(s[1:], "/S")
	if !ok {
		return bad()
	}
	spec := RuleSpec{Birth: mapset.New[int](), Survive: mapset.New[int]()}
	if !addCounts(spec.Birth, births) || !addCounts(spec.Survive, survives) {
		return bad()
	}
	return spec, nil
}

func addCounts(set mapset.Set[int], digits string) bool {
	for _, ch := range digits {
		if ch < '0' || ch > '8' {
			return false
		}
		set.Put(int(ch - '0'))
	}
	return true
}

// Births reports whether a dead cell with n live neighbours is born.
func (r RuleSpec) Births(n int) bool { return r.Birth.Has(n) }

// Survives reports whether a live cell with n live neighbours survives.
func (r RuleSpec) Survives(n int) bool { return r.Survive.Has(n) }

// String renders the rule in canonical form with sorted digits.
func (r RuleSpec) String() string {
	var sb strings.Builder
	sb.WriteString("B")
	writeCounts(&sb, r.Birth)
	sb.WriteString("/S")
	writeCounts(&sb, r.Survive)
	return sb.String()
}

func writeCounts(sb *strings.Builder, set mapset.Set[int]) {
	counts := make([]int, 0, set.Size())
	set.Each(func(n int) { counts = append(counts, n) })
	slices.Sort(counts)
	for _, n := range counts {
		sb.WriteString(strconv.Itoa(n))
	}
}
