package models

import "time"

// Interval represents a half-open time range [Start, End). Both endpoints are
// timezone-aware instants; Timezone records the IANA zone the range was
// expressed in.
type Interval struct {
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Timezone string    `json:"timezone"`
}

// CandidateSlot is a fixed-duration viewing slot offered to the user,
// presentation-ready for a conversational agent.
type CandidateSlot struct {
	Label    string `json:"time_display"` // e.g., "10:00 AM - 11:00 AM"
	Start    string `json:"start"`        // ISO 8601 with offset
	End      string `json:"end"`          // ISO 8601 with offset
	Timezone string `json:"timezone"`     // IANA zone id
}

// SlotListing is the caller-facing result of an availability lookup. When no
// slots are free, Message carries an explicit explanation instead of leaving
// the caller with a bare empty list.
type SlotListing struct {
	Date     string          `json:"date"`
	Timezone string          `json:"timezone"`
	Slots    []CandidateSlot `json:"slots,omitempty"`
	Message  string          `json:"message,omitempty"`
}
