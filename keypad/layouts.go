package keypad

import "slices"

// Names of the built-in keypads.
const (
	NumericName     = "numeric"
	DirectionalName = "directional"
)

// numericLayout is the door keypad: digits 0-9 and Activate, gap bottom-left.
var numericLayout = []Key{
	{Position{0, 0}, '7'}, {Position{1, 0}, '8'}, {Position{2, 0}, '9'},
	{Position{0, 1}, '4'}, {Position{1, 1}, '5'}, {Position{2, 1}, '6'},
	{Position{0, 2}, '1'}, {Position{1, 2}, '2'}, {Position{2, 2}, '3'},
	{Position{1, 3}, '0'}, {Position{2, 3}, 'A'},
}

// numericGap is the empty cell left of '0'.
var numericGap = Position{0, 3}

// directionalLayout is the robot-control keypad: arrows and Activate, gap top-left.
var directionalLayout = []Key{
	{Position{1, 0}, '^'}, {Position{2, 0}, 'A'},
	{Position{0, 1}, '<'}, {Position{1, 1}, 'v'}, {Position{2, 1}, '>'},
}

// directionalGap is the empty cell above '<'.
var directionalGap = Position{0, 0}

// Numeric builds a fresh numeric keypad.
func Numeric() *Keypad {
	return must(New(NumericName, numericLayout, numericGap))
}

// Directional builds a fresh directional keypad.
func Directional() *Keypad {
	return must(New(DirectionalName, directionalLayout, directionalGap))
}

// NumericLayout returns a copy of the numeric keypad's keys and gap.
func NumericLayout() ([]Key, Position) {
	return slices.Clone(numericLayout), numericGap
}

// DirectionalLayout returns a copy of the directional keypad's keys and gap.
func DirectionalLayout() ([]Key, Position) {
	return slices.Clone(directionalLayout), directionalGap
}

func must(kp *Keypad, err error) *Keypad {
	if err != nil {
		panic(err)
	}
	return kp
}
