// Package moves enumerates the shortest pointer routes between two cells
// of a keypad.
//
// A shortest route from a to b always has a.Distance(b) unit steps: |dx|
// horizontal moves (all Left or all Right) and |dy| vertical moves (all Up or
// all Down). The order in which they are issued matters to whoever types
// them on the next keypad up the chain, and some orders drag the pointer
// over the gap. Routes therefore yields every distinct interleaving whose
// cells all hold a key, and nothing else.
//
// Complexity:
//
//   - Routes: O(C(n, |dx|) × n) time for n = |dx|+|dy|, O(n) memory per
//     yielded route. Branches that reach the gap are pruned at the first
//     offending step.
//   - Walk:   O(len(route)).
//
// Errors (Walk only):
//
//   - ErrCrossesGap: the route steps onto the keypad's gap.
//   - ErrOffKeypad:  the route leaves the grid or enters an empty cell.
package moves
