package moves

import (
	"fmt"
	"iter"
	"slices"

	"github.com/katalvlaran/keypadchain/keypad"
)

// Routes yields every shortest gap-free route on pad from one cell to another.
// Routes that issue their horizontal step earlier come first.
// from == to yields exactly one empty route. Each yielded slice is owned by
// the caller. The sequence is pure: ranging over it again gives the same routes.
func Routes(pad *keypad.Keypad, from, to keypad.Position) iter.Seq[[]Move] {
	return func(yield func([]Move) bool) {
		h, nh := Right, to.X-from.X
		if nh < 0 {
			h, nh = Left, -nh
		}
		v, nv := Down, to.Y-from.Y
		if nv < 0 {
			v, nv = Up, -nv
		}
		interleave(pad, from, h, nh, v, nv, make([]Move, 0, nh+nv), yield)
	}
}

// interleave extends prefix, standing at cell at, with the remaining nh
// steps of h and nv steps of v. It returns false once yield asks to stop.
func interleave(pad *keypad.Keypad, at keypad.Position, h Move, nh int, v Move, nv int, prefix []Move, yield func([]Move) bool) bool {
	if nh == 0 && nv == 0 {
		return yield(slices.Clone(prefix))
	}
	if nh > 0 {
		if next := h.Apply(at); passable(pad, next) {
			if !interleave(pad, next, h, nh-1, v, nv, append(prefix, h), yield) {
				return false
			}
		}
	}
	if nv > 0 {
		if next := v.Apply(at); passable(pad, next) {
			if !interleave(pad, next, h, nh, v, nv-1, append(prefix, v), yield) {
				return false
			}
		}
	}
	return true
}

// passable reports whether a pointer may rest on p.
func passable(pad *keypad.Keypad, p keypad.Position) bool {
	if p == pad.Gap() {
		return false
	}
	_, ok := pad.KeyAt(p)
	return ok
}

// All collects Routes into a slice.
func All(pad *keypad.Keypad, from, to keypad.Position) [][]Move {
	return slices.Collect(Routes(pad, from, to))
}

// Walk replays route on pad starting at from and returns the final cell.
// It fails with ErrCrossesGap or ErrOffKeypad at the first bad step.
func Walk(pad *keypad.Keypad, from keypad.Position, route []Move) (keypad.Position, error) {
	at := from
	for i, m := range route {
		at = m.Apply(at)
		if at == pad.Gap() {
			return at, fmt.Errorf("%w: step %d (%s) at %v", ErrCrossesGap, i, m, at)
		}
		if _, ok := pad.KeyAt(at); !ok {
			return at, fmt.Errorf("%w: step %d (%s) at %v", ErrOffKeypad, i, m, at)
		}
	}
	return at, nil
}
