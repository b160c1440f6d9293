package keypad_test

import (
	"fmt"

	"github.com/katalvlaran/keypadchain/keypad"
)

// ExampleNumeric shows key lookups in both directions on the door keypad.
func ExampleNumeric() {
	kp := keypad.Numeric()

	p, _ := kp.PositionOf('5')
	fmt.Println("5 at", p.X, p.Y)

	s, ok := kp.KeyAt(keypad.Position{X: 2, Y: 3})
	fmt.Println(s, ok)

	_, ok = kp.KeyAt(kp.Gap())
	fmt.Println("gap has key:", ok)

	// Output:
	// 5 at 1 1
	// A true
	// gap has key: false
}
