// Package storage is the persistence port for store snapshots. State is
// written as string-serialized JSON records under fixed keys after every
// mutation; corrupt or missing records are treated as absent, never fatal.
package storage

// Fixed record keys, one per state slice.
const (
	AuthKey    = "flight_booking_auth"
	BookingKey = "flight_booking_state"
)

// SnapshotStore persists opaque snapshot records by key. Implementations
// must treat missing keys as (nil, false, nil), not as errors.
type SnapshotStore interface {
	Load(key string) ([]byte, bool, error)
	Save(key string, data []byte) error
	Delete(key string) error
}
