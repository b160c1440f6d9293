package presscost

import (
	"runtime"

	"github.com/katalvlaran/keypadchain/keypad"
)

const (
	// DefaultMaxTraceLength bounds the strings built by Presses and CodePresses.
	DefaultMaxTraceLength = 1 << 20

	// MaxTraceLength is the largest trace limit a Solver accepts.
	MaxTraceLength = 1 << 30
)

// Code is one door code: its numeric part and the keys to type, trailing
// Activate included. "029A" is Code{Value: 29, Keys: "029A"}.
type Code struct {
	Value uint64
	Keys  []keypad.Symbol
}

// NewCode builds a Code from its numeric value and key text.
func NewCode(value uint64, keys string) Code {
	ks := make([]keypad.Symbol, len(keys))
	for i := 0; i < len(keys); i++ {
		ks[i] = keypad.Symbol(keys[i])
	}
	return Code{Value: value, Keys: ks}
}

// String returns the key text of c.
func (c Code) String() string {
	b := make([]byte, len(c.Keys))
	for i, k := range c.Keys {
		b[i] = byte(k)
	}
	return string(b)
}

// CodeResult is the evaluation of one code at one depth.
type CodeResult struct {
	Code       string `json:"code"`
	Value      uint64 `json:"value"`
	Presses    uint64 `json:"presses"`
	Complexity uint64 `json:"complexity"`
}

// DepthResult holds the per-code results and their total for one depth.
type DepthResult struct {
	Depth int          `json:"depth"`
	Total uint64       `json:"total"`
	Codes []CodeResult `json:"codes"`
}

// Report is the outcome of Solver.Report.
type Report struct {
	Depths       []DepthResult `json:"depths"`
	CacheEntries int           `json:"cache_entries"`
}

// Option configures a Solver.
// Option constructors panic on meaningless values; Solver methods never panic.
type Option func(*Solver)

// WithCache makes the Solver memoize into c, so several solvers built on the
// same keypads share results. Panics on nil.
func WithCache(c *Cache) Option {
	if c == nil {
		panic("presscost: WithCache(nil)")
	}
	return func(s *Solver) {
		s.cache = c
	}
}

// WithWorkers bounds how many codes TotalContext and Report evaluate at once.
// Panics if n < 1. Default is runtime.NumCPU().
func WithWorkers(n int) Option {
	if n < 1 {
		panic("presscost: WithWorkers(n) requires n >= 1")
	}
	return func(s *Solver) {
		s.workers = n
	}
}

// WithMaxTraceLength sets the longest press string Presses will build.
// Panics if n < 1; values above MaxTraceLength are lowered to it.
// Default is DefaultMaxTraceLength.
func WithMaxTraceLength(n uint64) Option {
	if n < 1 {
		panic("presscost: WithMaxTraceLength(n) requires n >= 1")
	}
	n = min(n, MaxTraceLength)
	return func(s *Solver) {
		s.maxTrace = n
	}
}

func defaultWorkers() int { return runtime.NumCPU() }
