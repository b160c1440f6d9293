package presscost

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// CodeCost returns the human presses needed to type code on the numeric
// keypad through depth directional layers.
func (s *Solver) CodeCost(code Code, depth int) (uint64, error) {
	if depth < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeDepth, depth)
	}
	n, err := s.sequenceCost(s.numeric, code.Keys, depth)
	if err != nil {
		return 0, fmt.Errorf("presscost: code %s: %w", code, err)
	}
	return n, nil
}

// Complexity returns CodeCost(code, depth) × code.Value.
func (s *Solver) Complexity(code Code, depth int) (uint64, error) {
	r, err := s.evaluate(code, depth)
	return r.Complexity, err
}

// Total returns the sum of Complexity over codes, evaluated in order on the
// calling goroutine. The first failing code aborts the sum.
func (s *Solver) Total(codes []Code, depth int) (uint64, error) {
	var total uint64
	for _, c := range codes {
		r, err := s.evaluate(c, depth)
		if err != nil {
			return 0, err
		}
		if total, err = add(total, r.Complexity); err != nil {
			return 0, fmt.Errorf("presscost: total at depth %d: %w", depth, err)
		}
	}
	return total, nil
}

// TotalContext is Total with codes evaluated concurrently on up to
// WithWorkers goroutines sharing the Solver's cache.
// It returns ctx.Err() if ctx is done before every code is evaluated.
func (s *Solver) TotalContext(ctx context.Context, codes []Code, depth int) (uint64, error) {
	res, err := s.DepthContext(ctx, codes, depth)
	if err != nil {
		return 0, err
	}
	return res.Total, nil
}

// DepthContext evaluates every code at depth concurrently and returns the
// per-code breakdown in input order along with the total.
func (s *Solver) DepthContext(ctx context.Context, codes []Code, depth int) (DepthResult, error) {
	out := DepthResult{Depth: depth, Codes: make([]CodeResult, len(codes))}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, c := range codes {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := s.evaluate(c, depth)
			if err != nil {
				return err
			}
			out.Codes[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return DepthResult{}, err
	}
	if err := ctx.Err(); err != nil {
		return DepthResult{}, err
	}

	var err error
	for _, r := range out.Codes {
		if out.Total, err = add(out.Total, r.Complexity); err != nil {
			return DepthResult{}, fmt.Errorf("presscost: total at depth %d: %w", depth, err)
		}
	}
	return out, nil
}

// Report evaluates codes at every depth, in the order given.
func (s *Solver) Report(ctx context.Context, codes []Code, depths []int) (*Report, error) {
	rep := &Report{Depths: make([]DepthResult, 0, len(depths))}
	for _, d := range depths {
		res, err := s.DepthContext(ctx, codes, d)
		if err != nil {
			return nil, err
		}
		rep.Depths = append(rep.Depths, res)
	}
	rep.CacheEntries = s.cache.Len()
	return rep, nil
}

func (s *Solver) evaluate(code Code, depth int) (CodeResult, error) {
	n, err := s.CodeCost(code, depth)
	if err != nil {
		return CodeResult{}, err
	}
	cx, err := mul(n, code.Value)
	if err != nil {
		return CodeResult{}, fmt.Errorf("presscost: code %s: %w", code, err)
	}
	return CodeResult{Code: code.String(), Value: code.Value, Presses: n, Complexity: cx}, nil
}
