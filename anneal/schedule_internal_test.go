package anneal

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScheduler_AcceptImprovement(t *testing.T) {
	s := newScheduler(0.0001, 0.95, CoolGeometric, 100)
	rng := rand.New(rand.NewSource(1))

	// Improvements are accepted regardless of temperature.
	assert.True(t, s.accept(1, rng))

	s.temp = 0
	assert.True(t, s.accept(5, rng))
}

func TestScheduler_RejectAtZeroTemperature(t *testing.T) {
	s := newScheduler(1500, 0.95, CoolGeometric, 100)
	s.temp = 0
	rng := rand.New(rand.NewSource(1))

	// Non-improving moves must be rejected once fully cooled; exp with
	// a non-positive divisor is never evaluated.
	for i := 0; i < 50; i++ {
		assert.False(t, s.accept(0, rng))
		assert.False(t, s.accept(-3, rng))
	}
}

func TestScheduler_HotAcceptsZeroDelta(t *testing.T) {
	// exp(0/T) == 1, so a zero-delta move is accepted whenever T > 0.
	s := newScheduler(1500, 0.95, CoolGeometric, 100)
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 50; i++ {
		assert.True(t, s.accept(0, rng))
	}
}

func TestScheduler_GeometricCooling(t *testing.T) {
	s := newScheduler(1000, 0.5, CoolGeometric, 10)

	s.cool(0)
	assert.InDelta(t, 500, s.temp, 1e-9)
	s.cool(1)
	assert.InDelta(t, 250, s.temp, 1e-9)
}

func TestScheduler_DecayCoolsFasterAndClamps(t *testing.T) {
	geo := newScheduler(1000, 0.9, CoolGeometric, 10)
	dec := newScheduler(1000, 0.9, CoolGeometricDecay, 10)

	for i := 0; i < 10; i++ {
		geo.cool(i)
		dec.cool(i)
		assert.LessOrEqual(t, dec.temp, geo.temp)
		assert.GreaterOrEqual(t, dec.temp, 0.0)
	}

	// At i == maxIteration−1 the decay factor is 1/maxIteration; the
	// temperature is essentially frozen out.
	assert.Less(t, dec.temp, 1.0)
}
