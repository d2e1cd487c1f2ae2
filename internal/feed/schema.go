package feed

// Public schema served over HTTP and written to disk. The JSON field
// names are the wire and storage contract and must not change; the
// original backend exposed "giroscopio" and "timestamp_coleta" and
// downstream consumers depend on them.

// Motor is a processed motor record. "distance" is the renamed raw
// centimeter field.
type Motor struct {
	ID          int     `json:"id"`
	Velocity    float64 `json:"velocity"`
	Distance    float64 `json:"distance"`
	Temperature float64 `json:"temperature"`
}

// Pallet is a processed pallet record.
type Pallet struct {
	ID        int    `json:"id"`
	Timestamp string `json:"timestamp"`
}

// Centroid holds the gyroscope centroid coordinates.
type Centroid struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Gyroscope nests the centroid under its own key.
type Gyroscope struct {
	Centroid Centroid `json:"centroid"`
}

// Snapshot is the full processed output of one collection cycle.
// Pallets always holds exactly one element per cycle; the schema keeps
// the list shape the original service exposed.
type Snapshot struct {
	Motors    []Motor   `json:"motors"`
	Pallets   []Pallet  `json:"pallets"`
	Gyroscope Gyroscope `json:"giroscopio"`
}

// HistoricalRecord pairs a Snapshot with the instant it was collected.
// Records are immutable once appended to the history.
type HistoricalRecord struct {
	CollectedAt string   `json:"timestamp_coleta"`
	Data        Snapshot `json:"data"`
}
