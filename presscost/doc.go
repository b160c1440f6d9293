// Package presscost computes the minimum number of human button presses
// needed to type codes through a chain of robot-operated keypads.
//
// What:
//
//   - The door keypad (numeric) is operated by a robot arm. That arm is
//     steered from a directional keypad operated by another robot, and so on
//     for depth layers. The human types on the outermost directional keypad.
//   - Cost(pad, a, b, depth) is the number of human presses that move the
//     innermost pointer on pad from key a to key b and press it.
//   - Total(codes, depth) sums Complexity(code) = CodeCost × code.Value.
//
// Why exhaustive routing:
//
//	Each layer must type its moves on the layer above, starting and ending on
//	Activate. Whether "<^" or "^<" is cheaper depends on what the upper
//	layers pay for it, and one of the two may cross the gap. Every shortest
//	gap-free route (package moves) is priced recursively and the minimum kept.
//
// Recurrence:
//
//	cost(a, b, 0) = dist(a, b) + 1
//	cost(a, b, d) = min over routes r from a to b of
//	                Σ cost'(x, y, d-1) for consecutive (x, y) in A r A
//
//	where cost' is taken on the directional keypad.
//
// Complexity:
//
//   - Results are memoized per (keypad, a, b, depth), so a chain of depth D
//     touches at most K²×(D+1) entries (K = keys on the keypad). Depth 25
//     costs a few hundred cache entries.
//   - Values grow roughly 2.5× per layer; arithmetic is checked and fails
//     with ErrOverflow instead of wrapping.
//
// Concurrency:
//
//	A Solver is safe for concurrent use. The Cache is guarded by a
//	sync.RWMutex with insert-if-absent semantics; two goroutines racing on
//	the same entry compute the same value, and the first store wins.
//	TotalContext fans codes out over an errgroup limited by WithWorkers.
//
// Errors:
//
//   - ErrNilKeypad:     New was given a nil keypad.
//   - ErrNegativeDepth: depth < 0.
//   - ErrNoValidRoute:  every shortest route crosses the gap (broken layout).
//   - ErrOverflow:      a press count does not fit in uint64.
//   - ErrTraceTooLong:  Presses would build a string beyond the trace limit.
//   - keypad.ErrUnknownKey is wrapped for symbols missing from a keypad.
package presscost
