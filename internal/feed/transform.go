package feed

// Transform maps a raw hardware reading onto the public schema. It is a
// pure renaming and restructuring pass: no numeric value is altered and
// motor order is preserved.
func Transform(raw RawReading) Snapshot {
	motors := make([]Motor, 0, len(raw.Motors))
	for _, m := range raw.Motors {
		motors = append(motors, Motor{
			ID:          m.ID,
			Velocity:    m.Velocity,
			Distance:    m.CM,
			Temperature: m.Temperature,
		})
	}

	pallet := Pallet{
		ID:        raw.Pallet.PalletID,
		Timestamp: raw.Pallet.RawTimestamp,
	}

	return Snapshot{
		Motors:  motors,
		Pallets: []Pallet{pallet},
		Gyroscope: Gyroscope{
			Centroid: Centroid{
				X: raw.Centroid.X,
				Y: raw.Centroid.Y,
				Z: raw.Centroid.Z,
			},
		},
	}
}
