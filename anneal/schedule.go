// Package anneal - temperature state, acceptance rule and cooling laws.
package anneal

import (
	"math"
	"math/rand"
)

// scheduler owns the temperature of one run. It is created by Search
// and never shared; there is no process-wide annealing state.
type scheduler struct {
	temp         float64
	rate         float64
	law          CoolingLaw
	maxIteration int
}

func newScheduler(initialTemp, rate float64, law CoolingLaw, maxIteration int) *scheduler {
	return &scheduler{
		temp:         initialTemp,
		rate:         rate,
		law:          law,
		maxIteration: maxIteration,
	}
}

// accept decides whether a proposed move is taken. delta is the
// candidate's covered count minus the best-ever covered count.
//
//   - delta > 0: accept unconditionally (no rng draw).
//   - temperature ≤ 0: reject. exp with a non-positive divisor is
//     undefined or divergent, so unconditional acceptance of worse
//     moves is disabled once the schedule has fully cooled.
//   - otherwise: accept with probability exp(delta/temperature).
//
// Complexity: O(1).
func (s *scheduler) accept(delta int, rng *rand.Rand) bool {
	if delta > 0 {
		return true
	}
	if s.temp <= 0 {
		return false
	}

	return rng.Float64() < math.Exp(float64(delta)/s.temp)
}

// cool advances the temperature after iteration i.
//
//   - CoolGeometric:      T *= rate
//   - CoolGeometricDecay: T *= rate·(1 − i/maxIteration); the factor
//     shrinks toward zero as i approaches maxIteration, cooling faster
//     than the plain law. The result is clamped at zero.
//
// Complexity: O(1).
func (s *scheduler) cool(i int) {
	switch s.law {
	case CoolGeometric:
		s.temp *= s.rate
	default: // CoolGeometricDecay
		s.temp *= s.rate * (1 - float64(i)/float64(s.maxIteration))
	}

	if s.temp < 0 {
		s.temp = 0
	}
}
