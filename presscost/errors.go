package presscost

import "errors"

var (
	// ErrNilKeypad indicates New was given a nil keypad.
	ErrNilKeypad = errors.New("presscost: keypad is nil")
	// ErrNegativeDepth indicates a negative chain depth.
	ErrNegativeDepth = errors.New("presscost: depth must be non-negative")
	// ErrNoValidRoute indicates every shortest route between two keys crosses the gap.
	ErrNoValidRoute = errors.New("presscost: no valid route")
	// ErrOverflow indicates a press count exceeded uint64.
	ErrOverflow = errors.New("presscost: press count overflows uint64")
	// ErrTraceTooLong indicates a press sequence longer than the trace limit.
	ErrTraceTooLong = errors.New("presscost: press sequence exceeds trace limit")
)
