package puzzle

import (
	"fmt"
	"slices"

	"golang.org/x/exp/maps"
)

// Solver computes one puzzle answer from the raw input text.
type Solver func(input string) (int, error)

// Registry maps days to their ordered parts.
// The zero value is not usable; call NewRegistry.
type Registry struct {
	days map[int][]Solver
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{days: make(map[int][]Solver)}
}

// Register adds the parts of day, in order: parts[0] is part 1.
func (r *Registry) Register(day int, parts ...Solver) error {
	if day < 1 || day > 25 {
		return fmt.Errorf("%w: %d", ErrBadDay, day)
	}
	if len(parts) == 0 {
		return fmt.Errorf("%w: day %d", ErrNoParts, day)
	}
	if _, ok := r.days[day]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateDay, day)
	}
	for i, p := range parts {
		if p == nil {
			return fmt.Errorf("%w: day %d part %d is nil", ErrNoParts, day, i+1)
		}
	}
	r.days[day] = slices.Clone(parts)
	return nil
}

// MustRegister is like Register but panics on error.
// It is meant for static registration tables.
func (r *Registry) MustRegister(day int, parts ...Solver) {
	if err := r.Register(day, parts...); err != nil {
		panic(err)
	}
}

// Lookup returns the Solver for part (1-based) of day.
func (r *Registry) Lookup(day, part int) (Solver, error) {
	parts, ok := r.days[day]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDay, day)
	}
	if part < 1 || part > len(parts) {
		return nil, fmt.Errorf("%w: day %d part %d", ErrUnknownPart, day, part)
	}
	return parts[part-1], nil
}

// Parts returns how many parts day has, or 0 if it is not registered.
func (r *Registry) Parts(day int) int {
	return len(r.days[day])
}

// Days returns the registered days in ascending order.
func (r *Registry) Days() []int {
	days := maps.Keys(r.days)
	slices.Sort(days)
	return days
}

// Latest returns the highest registered day, or 0 when empty.
func (r *Registry) Latest() int {
	days := r.Days()
	if len(days) == 0 {
		return 0
	}
	return days[len(days)-1]
}
