// Package anneal - the search loop.
package anneal

import (
	"math/rand"

	"github.com/katalvlaran/mincover/core"
)

// Search runs the annealing walk on g and returns the best cover of
// exactly maxNode vertices it observed, together with that cover's
// covered-edge count.
//
// The walk:
//
//  1. Stop if the stagnation budget is exhausted or the iteration
//     bound is reached.
//  2. Propose a swap (see proposeSwap); if no non-member exists the
//     iteration advances and the temperature cools, nothing else.
//  3. Score the candidate incrementally and ask the scheduler to
//     accept(candidateCovered − bestCovered).
//  4. On accept, commit the swap. A strict improvement over the best
//     score snapshots the solution and resets stagnation; an accepted
//     non-improving move increments stagnation. Rejections leave the
//     stagnation counter untouched.
//  5. Cool the temperature and advance.
//
// The returned cover is the best snapshot, not the final state: the
// walk may leave the best point and never return.
//
// Validation (fail fast, in order): ErrNilGraph, ErrEmptyGraph,
// ErrBadMaxNode, ErrBadIterations, ErrBadTemperature,
// ErrBadCoolingRate, ErrBadEarlyStop.
//
// Complexity: O(V + E) setup plus O(MaxIteration · V) in the worst
// case (each iteration scans non-members once).
func Search(g *core.Graph, maxNode int, opts ...Option) (Result, error) {
	cfg := DefaultOptions(maxNode)
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return Result{}, ErrNilGraph
	}

	vertices := g.Vertices()
	n := len(vertices)
	if n == 0 {
		return Result{}, ErrEmptyGraph
	}
	if cfg.MaxNode <= 0 || cfg.MaxNode > n {
		return Result{}, ErrBadMaxNode
	}
	if cfg.MaxIteration < 0 {
		return Result{}, ErrBadIterations
	}
	if cfg.InitialTemp <= 0 {
		return Result{}, ErrBadTemperature
	}
	if cfg.EarlyStop < 0 {
		return Result{}, ErrBadEarlyStop
	}

	// An unset rate resolves to the law's default; an explicit rate
	// must lie strictly inside (0,1).
	rate := cfg.CoolingRate
	if rate == 0 {
		if cfg.CoolingLaw == CoolGeometric {
			rate = defaultGeometricRate
		} else {
			rate = defaultDecayRate
		}
	}
	if rate <= 0 || rate >= 1 {
		return Result{}, ErrBadCoolingRate
	}

	rng := rngFromSeed(cfg.Seed)

	// Initial solution: a uniform-random MaxNode-subset of the sorted
	// vertex list.
	state := newCoverState(g, sampleMembers(vertices, cfg.MaxNode, rng))

	// Degrees never change during the walk; index them once.
	degrees := make(map[string]int, n)
	for _, v := range vertices {
		d, err := g.Degree(v)
		if err != nil {
			return Result{}, err
		}
		degrees[v] = d
	}

	best := state.snapshot()
	bestCovered := state.covered

	sched := newScheduler(cfg.InitialTemp, rate, cfg.CoolingLaw, cfg.MaxIteration)
	stagnation := 0

	for i := 0; i < cfg.MaxIteration; i++ {
		if cfg.EarlyStop != EarlyStopDisabled && stagnation >= cfg.EarlyStop {
			break
		}

		out, in, ok := proposeSwap(state, vertices, degrees, cfg.MovePolicy, rng)
		if !ok {
			sched.cool(i)

			continue
		}

		candidateCovered := state.covered + state.swapDelta(out, in)

		if sched.accept(candidateCovered-bestCovered, rng) {
			state.applySwap(out, in)
			if state.covered > bestCovered {
				bestCovered = state.covered
				best = state.snapshot()
				stagnation = 0
			} else {
				stagnation++
			}
		}

		sched.cool(i)
	}

	return Result{Cover: best, Covered: bestCovered}, nil
}

// sampleMembers draws k distinct vertices uniformly at random via a
// partial Fisher–Yates shuffle of a copy of ids.
// Complexity: O(len(ids)).
func sampleMembers(ids []string, k int, rng *rand.Rand) []string {
	pool := append([]string(nil), ids...)
	for i := 0; i < k; i++ {
		j := i + rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool[:k]
}
