package feed

// Raw readings mirror what the hardware bus would deliver. They are
// ephemeral: produced by the simulator, consumed by Transform, never
// serialized or persisted.

// RawMotor is one motor's reading as it comes off the hardware.
type RawMotor struct {
	ID          int
	Velocity    float64
	CM          float64
	Temperature float64
}

// RawPallet carries the pallet scanner output. RawTimestamp is the
// ISO-8601 collection instant reported by the scanner.
type RawPallet struct {
	PalletID     int
	RawTimestamp string
}

// RawCentroid holds the gyroscope centroid axis components.
type RawCentroid struct {
	X float64
	Y float64
	Z float64
}

// RawReading aggregates one full hardware collection pass.
type RawReading struct {
	Motors   []RawMotor
	Pallet   RawPallet
	Centroid RawCentroid
}
