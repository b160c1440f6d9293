package presscost

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/keypadchain/keypad"
	"github.com/katalvlaran/keypadchain/moves"
)

// Presses returns one cheapest human press sequence that moves the pointer on
// pad from a to b and presses b. len(result) equals Cost(pad, a, b, depth).
// Among equally cheap routes the first one enumerated by moves.Routes wins.
// Fails with ErrTraceTooLong when the sequence would exceed the trace limit.
// Unlike Cost, a trace must spell out a route, so it fails with
// ErrNoValidRoute at depth 0 too when the gap blocks every shortest route.
func (s *Solver) Presses(pad *keypad.Keypad, a, b keypad.Symbol, depth int) (string, error) {
	n, err := s.Cost(pad, a, b, depth)
	if err != nil {
		return "", err
	}
	if n > s.maxTrace {
		return "", fmt.Errorf("%w: %d > %d", ErrTraceTooLong, n, s.maxTrace)
	}
	var sb strings.Builder
	sb.Grow(int(n))
	if err := s.trace(&sb, pad, a, b, depth); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// CodePresses returns one cheapest human press sequence that types code on
// the numeric keypad through depth layers.
func (s *Solver) CodePresses(code Code, depth int) (string, error) {
	n, err := s.CodeCost(code, depth)
	if err != nil {
		return "", err
	}
	if n > s.maxTrace {
		return "", fmt.Errorf("%w: code %s: %d > %d", ErrTraceTooLong, code, n, s.maxTrace)
	}
	var sb strings.Builder
	sb.Grow(int(n))
	prev := keypad.Activate
	for _, k := range code.Keys {
		if err := s.trace(&sb, s.numeric, prev, k, depth); err != nil {
			return "", err
		}
		prev = k
	}
	return sb.String(), nil
}

// trace writes the presses for a -> b on pad. Costs are already cached by
// the caller's Cost call, so each step only compares cached totals.
func (s *Solver) trace(sb *strings.Builder, pad *keypad.Keypad, a, b keypad.Symbol, depth int) error {
	from, err := pad.PositionOf(a)
	if err != nil {
		return err
	}
	to, err := pad.PositionOf(b)
	if err != nil {
		return err
	}

	var (
		best  []moves.Move
		bestN uint64
		found bool
	)
	for route := range moves.Routes(pad, from, to) {
		if depth == 0 {
			best, found = route, true
			break
		}
		n, err := s.sequenceCost(s.directional, routeKeys(route), depth-1)
		if err != nil {
			return err
		}
		if !found || n < bestN {
			best, bestN, found = route, n, true
		}
	}
	if !found {
		return fmt.Errorf("%w: %q -> %q on %s keypad", ErrNoValidRoute, a, b, pad.Name())
	}

	if depth == 0 {
		for _, k := range routeKeys(best) {
			sb.WriteByte(byte(k))
		}
		return nil
	}
	prev := keypad.Activate
	for _, k := range routeKeys(best) {
		if err := s.trace(sb, s.directional, prev, k, depth-1); err != nil {
			return err
		}
		prev = k
	}
	return nil
}
