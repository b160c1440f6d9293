package keypad

import "fmt"

// New builds a Keypad called name from layout, with gap as the forbidden cell.
// The layout slice is copied; later changes to it do not affect the Keypad.
// Returns ErrEmptyLayout, ErrNegativePosition, ErrZeroSymbol,
// ErrDuplicateKey, ErrDuplicatePosition or ErrKeyOnGap on a malformed layout.
// Complexity: O(K + W×H).
func New(name string, layout []Key, gap Position) (*Keypad, error) {
	if len(layout) == 0 {
		return nil, ErrEmptyLayout
	}
	if gap.X < 0 || gap.Y < 0 {
		return nil, fmt.Errorf("%w: gap at %v", ErrNegativePosition, gap)
	}

	w, h := gap.X+1, gap.Y+1
	positions := make(map[Symbol]Position, len(layout))
	order := make([]Symbol, 0, len(layout))
	for _, k := range layout {
		if k.Symbol == 0 {
			return nil, fmt.Errorf("%w: at %v", ErrZeroSymbol, k.Pos)
		}
		if k.Pos.X < 0 || k.Pos.Y < 0 {
			return nil, fmt.Errorf("%w: key %q at %v", ErrNegativePosition, k.Symbol, k.Pos)
		}
		if k.Pos == gap {
			return nil, fmt.Errorf("%w: key %q at %v", ErrKeyOnGap, k.Symbol, k.Pos)
		}
		if _, dup := positions[k.Symbol]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, k.Symbol)
		}
		positions[k.Symbol] = k.Pos
		order = append(order, k.Symbol)
		w = max(w, k.Pos.X+1)
		h = max(h, k.Pos.Y+1)
	}

	kp := &Keypad{
		name:      name,
		width:     w,
		height:    h,
		gap:       gap,
		cells:     make([]Symbol, w*h),
		positions: positions,
		order:     order,
	}
	for _, k := range layout {
		idx := kp.index(k.Pos)
		if kp.cells[idx] != 0 {
			return nil, fmt.Errorf("%w: %q and %q at %v", ErrDuplicatePosition, kp.cells[idx], k.Symbol, k.Pos)
		}
		kp.cells[idx] = k.Symbol
	}

	return kp, nil
}

// Name returns the label the keypad was built with.
func (kp *Keypad) Name() string { return kp.name }

// Width returns the number of grid columns.
func (kp *Keypad) Width() int { return kp.width }

// Height returns the number of grid rows.
func (kp *Keypad) Height() int { return kp.height }

// Gap returns the forbidden cell.
func (kp *Keypad) Gap() Position { return kp.gap }

// InBounds reports whether p lies within the keypad grid.
// Complexity: O(1).
func (kp *Keypad) InBounds(p Position) bool {
	return p.X >= 0 && p.X < kp.width && p.Y >= 0 && p.Y < kp.height
}

// PositionOf returns where s sits, or ErrUnknownKey.
// Complexity: O(1).
func (kp *Keypad) PositionOf(s Symbol) (Position, error) {
	p, ok := kp.positions[s]
	if !ok {
		return Position{}, fmt.Errorf("%w: %q on %s keypad", ErrUnknownKey, s, kp.name)
	}
	return p, nil
}

// Has reports whether s is a key on kp.
func (kp *Keypad) Has(s Symbol) bool {
	_, ok := kp.positions[s]
	return ok
}

// KeyAt returns the key at p. The second result is false for the gap,
// empty cells and positions outside the grid.
// Complexity: O(1).
func (kp *Keypad) KeyAt(p Position) (Symbol, bool) {
	if !kp.InBounds(p) {
		return 0, false
	}
	s := kp.cells[kp.index(p)]
	return s, s != 0
}

// Symbols returns the keys in layout order. The result is a fresh slice.
func (kp *Keypad) Symbols() []Symbol {
	out := make([]Symbol, len(kp.order))
	copy(out, kp.order)
	return out
}

// Len returns the number of keys.
func (kp *Keypad) Len() int { return len(kp.order) }

// index maps p to its row-major cell index.
func (kp *Keypad) index(p Position) int {
	return p.Y*kp.width + p.X
}
