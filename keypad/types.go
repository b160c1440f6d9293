package keypad

// Symbol is the label printed on a key, e.g. '7', 'A' or '^'.
type Symbol byte

// Activate is the key that presses whatever key the controlled pointer rests on.
// Both built-in layouts carry it, and every pointer starts there.
const Activate Symbol = 'A'

// String returns the symbol as a one-character string.
func (s Symbol) String() string { return string(rune(s)) }

// Position is a cell on the keypad grid: X is the column, Y the row,
// both counted from the top-left corner.
type Position struct {
	X, Y int
}

// Distance returns the Manhattan distance between p and q.
// Complexity: O(1).
func (p Position) Distance(q Position) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// Key places one Symbol at one Position.
type Key struct {
	Pos    Position
	Symbol Symbol
}

// Keypad is a read-only grid of keys with one gap cell.
// Width and Height cover every key and the gap.
// cells is row-major (y*width + x); a zero Symbol marks an empty cell.
type Keypad struct {
	name      string
	width     int
	height    int
	gap       Position
	cells     []Symbol
	positions map[Symbol]Position
	order     []Symbol
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
