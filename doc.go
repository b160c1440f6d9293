// Package keypadchain counts the fewest button presses needed to type door
// codes through a chain of robot-operated keypads.
//
// A human types on a directional keypad. That steers a robot pressing
// another directional keypad, and so on, until the last robot presses the
// numeric door keypad. Every layer starts with its pointer on Activate and
// must never pass over its keypad's gap.
//
// Everything is organized under three packages:
//
//	keypad/    — keypad layouts, key↔position lookup, the gap cell
//	moves/     — lazy enumeration of shortest gap-free pointer routes
//	presscost/ — memoized recursive cost, code totals, press traces
//
// The keypadchain command (cmd/keypadchain) reads codes such as "029A" and
// prints the summed complexity for chain depths 2 and 25:
//
//	go run ./cmd/keypadchain solve codes.txt
//
// The directional keypad every robot is steered from:
//
//	    +---+---+
//	    | ^ | A |
//	+---+---+---+
//	| < | v | > |
//	+---+---+---+
package keypadchain
