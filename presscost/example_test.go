package presscost_test

import (
	"fmt"

	"github.com/katalvlaran/keypadchain/keypad"
	"github.com/katalvlaran/keypadchain/presscost"
)

// ExampleSolver_Total prices the five sample door codes through two and
// twenty-five robot layers.
func ExampleSolver_Total() {
	s, err := presscost.New(keypad.Numeric(), keypad.Directional())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	codes := []presscost.Code{
		presscost.NewCode(29, "029A"),
		presscost.NewCode(980, "980A"),
		presscost.NewCode(179, "179A"),
		presscost.NewCode(456, "456A"),
		presscost.NewCode(379, "379A"),
	}

	for _, depth := range []int{2, 25} {
		total, err := s.Total(codes, depth)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("depth %d: %d\n", depth, total)
	}

	// Output:
	// depth 2: 126384
	// depth 25: 154115708116294
}

// ExampleSolver_CodePresses prints the human presses that type "029A"
// on the door keypad directly, with no robot layer in between.
func ExampleSolver_CodePresses() {
	s, _ := presscost.New(keypad.Numeric(), keypad.Directional())
	presses, _ := s.CodePresses(presscost.NewCode(29, "029A"), 0)
	fmt.Println(presses)

	// Output:
	// <A^A>^^AvvvA
}
