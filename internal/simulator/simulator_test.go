package simulator_test

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"codeberg.org/mvbarbosa/robodata/internal/simulator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateShape(t *testing.T) {
	sim := simulator.New()

	raw := sim.Generate()

	require.Len(t, raw.Motors, 3, "Expected exactly 3 motor readings")
	for i, m := range raw.Motors {
		assert.Equal(t, i+1, m.ID, "Motor IDs must be 1..3 in order")
	}
}

func TestGenerateRanges(t *testing.T) {
	sim := simulator.New()

	for i := 0; i < 100; i++ {
		raw := sim.Generate()

		for _, m := range raw.Motors {
			assert.GreaterOrEqual(t, m.Velocity, 130.0)
			assert.LessOrEqual(t, m.Velocity, 160.0)
			assert.GreaterOrEqual(t, m.CM, 10.0)
			assert.LessOrEqual(t, m.CM, 30.0)
			assert.GreaterOrEqual(t, m.Temperature, 65.0)
			assert.LessOrEqual(t, m.Temperature, 80.0)
		}

		assert.GreaterOrEqual(t, raw.Pallet.PalletID, 1)
		assert.LessOrEqual(t, raw.Pallet.PalletID, 100)

		for _, v := range []float64{raw.Centroid.X, raw.Centroid.Y, raw.Centroid.Z} {
			assert.GreaterOrEqual(t, v, -1.0)
			assert.LessOrEqual(t, v, 1.0)
		}
	}
}

func TestGenerateRounding(t *testing.T) {
	sim := simulator.New()

	raw := sim.Generate()

	for _, m := range raw.Motors {
		assert.InDelta(t, m.Velocity, math.Round(m.Velocity*10)/10, 1e-9, "velocity rounded to 1 decimal")
		assert.InDelta(t, m.CM, math.Round(m.CM*10)/10, 1e-9, "cm rounded to 1 decimal")
		assert.InDelta(t, m.Temperature, math.Round(m.Temperature*10)/10, 1e-9, "temperature rounded to 1 decimal")
	}

	for _, v := range []float64{raw.Centroid.X, raw.Centroid.Y, raw.Centroid.Z} {
		assert.InDelta(t, v, math.Round(v*100)/100, 1e-9, "centroid rounded to 2 decimals")
	}
}

func TestGenerateTimestamp(t *testing.T) {
	fixed := time.Date(2026, 8, 25, 12, 30, 0, 0, time.UTC)
	sim := simulator.NewWithSource(rand.NewSource(1), func() time.Time { return fixed })

	raw := sim.Generate()

	parsed, err := time.Parse(time.RFC3339Nano, raw.Pallet.RawTimestamp)
	require.NoError(t, err, "pallet timestamp must be ISO-8601")
	assert.True(t, parsed.Equal(fixed))
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	now := func() time.Time { return time.Unix(0, 0) }
	a := simulator.NewWithSource(rand.NewSource(42), now)
	b := simulator.NewWithSource(rand.NewSource(42), now)

	assert.Equal(t, a.Generate(), b.Generate(), "same seed must yield the same reading")
}
