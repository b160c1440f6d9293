package keypad

import "errors"

var (
	// ErrEmptyLayout indicates a layout with no keys.
	ErrEmptyLayout = errors.New("keypad: layout must contain at least one key")
	// ErrNegativePosition indicates a key or gap at a negative coordinate.
	ErrNegativePosition = errors.New("keypad: positions must be non-negative")
	// ErrDuplicateKey indicates the same symbol was placed twice.
	ErrDuplicateKey = errors.New("keypad: duplicate key symbol")
	// ErrDuplicatePosition indicates two keys occupy the same cell.
	ErrDuplicatePosition = errors.New("keypad: duplicate key position")
	// ErrZeroSymbol indicates a key with symbol 0, which marks empty cells.
	ErrZeroSymbol = errors.New("keypad: symbol 0 is reserved for empty cells")
	// ErrKeyOnGap indicates a key was placed on the gap cell.
	ErrKeyOnGap = errors.New("keypad: key placed on gap")
	// ErrUnknownKey indicates a symbol that does not exist on the keypad.
	ErrUnknownKey = errors.New("keypad: unknown key")
)
