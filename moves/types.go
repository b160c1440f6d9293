package moves

import (
	"errors"

	"github.com/katalvlaran/keypadchain/keypad"
)

var (
	// ErrCrossesGap indicates a route that steps onto the gap cell.
	ErrCrossesGap = errors.New("moves: route crosses the gap")
	// ErrOffKeypad indicates a route that leaves the keys of the keypad.
	ErrOffKeypad = errors.New("moves: route leaves the keypad")
)

// Move is one unit step of a controlled pointer.
type Move uint8

const (
	Up Move = iota
	Down
	Left
	Right
)

var (
	moveSymbols = [...]keypad.Symbol{Up: '^', Down: 'v', Left: '<', Right: '>'}
	moveNames   = [...]string{Up: "Up", Down: "Down", Left: "Left", Right: "Right"}
	moveDeltas  = [...]keypad.Position{Up: {X: 0, Y: -1}, Down: {X: 0, Y: 1}, Left: {X: -1, Y: 0}, Right: {X: 1, Y: 0}}
)

// Symbol returns the directional-keypad key that issues m.
func (m Move) Symbol() keypad.Symbol { return moveSymbols[m] }

// String returns the direction name.
func (m Move) String() string { return moveNames[m] }

// Apply returns p shifted one step in direction m.
func (m Move) Apply(p keypad.Position) keypad.Position {
	d := moveDeltas[m]
	return keypad.Position{X: p.X + d.X, Y: p.Y + d.Y}
}

// FromSymbol maps a directional-keypad arrow back to its Move.
// The second result is false for Activate and any non-arrow symbol.
func FromSymbol(s keypad.Symbol) (Move, bool) {
	for m, sym := range moveSymbols {
		if sym == s {
			return Move(m), true
		}
	}
	return 0, false
}

// Format renders a route as its arrow symbols, e.g. "<^^".
func Format(route []Move) string {
	b := make([]byte, len(route))
	for i, m := range route {
		b[i] = byte(m.Symbol())
	}
	return string(b)
}
