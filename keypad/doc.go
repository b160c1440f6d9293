// Package keypad models a fixed grid of labeled buttons with one forbidden
// "gap" cell, as found on door and robot-control keypads.
//
// What:
//
//   - Keypad maps every key Symbol to its Position and back in O(1).
//   - The gap Position carries no key; a pointer must never rest on it.
//   - Two built-in layouts: Numeric (digits 0-9 plus Activate) and
//     Directional (^ v < > plus Activate).
//
// Layouts:
//
//	Numeric                 Directional
//	    0   1   2               0   1   2
//	  +---+---+---+                 +---+---+
//	0 | 7 | 8 | 9 |           0     | ^ | A |
//	  +---+---+---+             +---+---+---+
//	1 | 4 | 5 | 6 |           1 | < | v | > |
//	  +---+---+---+             +---+---+---+
//	2 | 1 | 2 | 3 |
//	  +---+---+---+
//	3     | 0 | A |
//	      +---+---+
//
// Complexity:
//
//   - New:        O(K) time and O(W×H) memory (K = number of keys).
//   - PositionOf: O(1).
//   - KeyAt:      O(1).
//
// Errors:
//
//   - ErrEmptyLayout:       layout has no keys.
//   - ErrNegativePosition:  a key or the gap lies at a negative coordinate.
//   - ErrZeroSymbol:        a key uses symbol 0, reserved for empty cells.
//   - ErrDuplicateKey:      a symbol appears twice.
//   - ErrDuplicatePosition: two keys share a cell.
//   - ErrKeyOnGap:          a key sits on the gap cell.
//   - ErrUnknownKey:        a lookup for a symbol not on the keypad.
//
// A Keypad is immutable once built and safe for concurrent readers.
package keypad
