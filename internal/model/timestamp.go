// Package model defines the data structures used throughout the application.
package model

import "time"

// Timestamp is the opaque wire form of a store-resolved time:
//
//	{"_seconds": 1718000000}
//
// A nil *Timestamp marshals to JSON null, which is how unset or
// not-yet-resolved server timestamps are reported to clients.
type Timestamp struct {
	Seconds int64 `json:"_seconds"`
}

// NewTimestamp converts a store time into the wire wrapper.
// The zero time.Time means "unset" and yields nil.
func NewTimestamp(t time.Time) *Timestamp {
	if t.IsZero() {
		return nil
	}
	return &Timestamp{Seconds: t.Unix()}
}

// TimestampFromUnix is NewTimestamp for backends that keep epoch seconds.
// A zero value yields nil.
func TimestampFromUnix(sec int64) *Timestamp {
	if sec == 0 {
		return nil
	}
	return &Timestamp{Seconds: sec}
}

// Epoch returns the wrapped seconds, or 0 for a nil timestamp.
// Sorting treats missing timestamps as the epoch.
func (ts *Timestamp) Epoch() int64 {
	if ts == nil {
		return 0
	}
	return ts.Seconds
}
