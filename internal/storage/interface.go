package storage

// DocumentStore persists whole JSON documents under stable names. It is
// the only durability surface the service has: two named documents, each
// fully overwritten on every successful cycle.
type DocumentStore interface {
	// Read deserializes the named document into v. A missing document
	// is reported with ErrDocumentNotFound; callers treat that as a
	// non-fatal "no prior state" condition.
	Read(name string, v any) error

	// Write serializes v and replaces the named document.
	Write(name string, v any) error
}

// Document names used by the state store.
const (
	CurrentDocument = "robot_data.json"
	HistoryDocument = "hist_data.json"
)
