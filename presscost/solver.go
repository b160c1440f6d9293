package presscost

import (
	"fmt"

	"github.com/katalvlaran/keypadchain/keypad"
	"github.com/katalvlaran/keypadchain/moves"
)

// Solver prices key presses through a chain of keypads.
// The outermost target is the numeric keypad; every layer above it is the
// directional keypad.
type Solver struct {
	numeric     *keypad.Keypad
	directional *keypad.Keypad
	cache       *Cache
	workers     int
	maxTrace    uint64
}

// New returns a Solver for the given door and robot-control keypads.
// Returns ErrNilKeypad if either is nil.
func New(numeric, directional *keypad.Keypad, opts ...Option) (*Solver, error) {
	if numeric == nil || directional == nil {
		return nil, ErrNilKeypad
	}
	s := &Solver{
		numeric:     numeric,
		directional: directional,
		workers:     defaultWorkers(),
		maxTrace:    DefaultMaxTraceLength,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.cache == nil {
		s.cache = NewCache()
	}
	return s, nil
}

// Numeric returns the door keypad.
func (s *Solver) Numeric() *keypad.Keypad { return s.numeric }

// Directional returns the robot-control keypad.
func (s *Solver) Directional() *keypad.Keypad { return s.directional }

// Cache returns the memo table in use.
func (s *Solver) Cache() *Cache { return s.cache }

// Cost returns the minimum number of human presses that move the pointer on
// pad from a to b and press b, with depth directional layers in between.
// Layers above pad always use the directional keypad.
// At depth 0 the result is the Manhattan distance plus one and no route is
// enumerated, so a layout whose gap blocks every shortest route still has a
// depth-0 cost; only depth >= 1 reports ErrNoValidRoute.
func (s *Solver) Cost(pad *keypad.Keypad, a, b keypad.Symbol, depth int) (uint64, error) {
	if pad == nil {
		return 0, ErrNilKeypad
	}
	if depth < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeDepth, depth)
	}
	return s.cost(pad, a, b, depth)
}

// NumericCost is Cost on the numeric keypad.
func (s *Solver) NumericCost(a, b keypad.Symbol, depth int) (uint64, error) {
	return s.Cost(s.numeric, a, b, depth)
}

// DirectionalCost is Cost on the directional keypad.
func (s *Solver) DirectionalCost(a, b keypad.Symbol, depth int) (uint64, error) {
	return s.Cost(s.directional, a, b, depth)
}

func (s *Solver) cost(pad *keypad.Keypad, a, b keypad.Symbol, depth int) (uint64, error) {
	if v, ok := s.cache.Load(pad, a, b, depth); ok {
		return v, nil
	}
	from, err := pad.PositionOf(a)
	if err != nil {
		return 0, err
	}
	to, err := pad.PositionOf(b)
	if err != nil {
		return 0, err
	}
	if depth == 0 {
		return uint64(from.Distance(to)) + 1, nil
	}

	var best uint64
	found := false
	for route := range moves.Routes(pad, from, to) {
		n, err := s.sequenceCost(s.directional, routeKeys(route), depth-1)
		if err != nil {
			return 0, err
		}
		if !found || n < best {
			best, found = n, true
		}
	}
	if !found {
		return 0, fmt.Errorf("%w: %q -> %q on %s keypad", ErrNoValidRoute, a, b, pad.Name())
	}

	return s.cache.LoadOrStore(pad, a, b, depth, best), nil
}

// sequenceCost prices typing keys on pad, starting from Activate.
func (s *Solver) sequenceCost(pad *keypad.Keypad, keys []keypad.Symbol, depth int) (uint64, error) {
	var total uint64
	prev := keypad.Activate
	for _, k := range keys {
		n, err := s.cost(pad, prev, k, depth)
		if err != nil {
			return 0, err
		}
		if total, err = add(total, n); err != nil {
			return 0, err
		}
		prev = k
	}
	return total, nil
}

// routeKeys turns a route into the directional keys that issue it,
// ending with the Activate press.
func routeKeys(route []moves.Move) []keypad.Symbol {
	keys := make([]keypad.Symbol, len(route)+1)
	for i, m := range route {
		keys[i] = m.Symbol()
	}
	keys[len(route)] = keypad.Activate
	return keys
}
