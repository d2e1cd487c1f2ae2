// Package simulator produces synthetic raw hardware readings in place of
// the real robot bus. Value ranges match what the production hardware
// reports so downstream consumers see realistic data.
package simulator

import (
	"math"
	"math/rand"
	"time"

	"codeberg.org/mvbarbosa/robodata/internal/feed"
)

const motorCount = 3

// Simulator generates one RawReading per call. It holds its own random
// source so concurrent generators do not contend on the global one.
type Simulator struct {
	rng *rand.Rand
	now func() time.Time
}

func New() *Simulator {
	return &Simulator{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
		now: time.Now,
	}
}

// NewWithSource builds a simulator with an explicit random source and
// clock. Used by tests for reproducible output.
func NewWithSource(src rand.Source, now func() time.Time) *Simulator {
	return &Simulator{
		rng: rand.New(src),
		now: now,
	}
}

// Generate performs one full simulated collection pass: three motors
// with IDs 1..3 in order, one pallet reading stamped at the generation
// instant, and one gyroscope centroid reading. It always succeeds.
func (s *Simulator) Generate() feed.RawReading {
	motors := make([]feed.RawMotor, 0, motorCount)
	for id := 1; id <= motorCount; id++ {
		motors = append(motors, s.generateMotor(id))
	}

	return feed.RawReading{
		Motors:   motors,
		Pallet:   s.generatePallet(),
		Centroid: s.generateCentroid(),
	}
}

func (s *Simulator) generateMotor(id int) feed.RawMotor {
	return feed.RawMotor{
		ID:          id,
		Velocity:    round1(s.uniform(130.0, 160.0)),
		CM:          round1(s.uniform(10.0, 30.0)),
		Temperature: round1(s.uniform(65.0, 80.0)),
	}
}

func (s *Simulator) generatePallet() feed.RawPallet {
	return feed.RawPallet{
		PalletID:     1 + s.rng.Intn(100),
		RawTimestamp: s.now().UTC().Format(time.RFC3339Nano),
	}
}

func (s *Simulator) generateCentroid() feed.RawCentroid {
	return feed.RawCentroid{
		X: round2(s.uniform(-1.0, 1.0)),
		Y: round2(s.uniform(-1.0, 1.0)),
		Z: round2(s.uniform(-1.0, 1.0)),
	}
}

func (s *Simulator) uniform(low, high float64) float64 {
	return low + s.rng.Float64()*(high-low)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
