package model

// Notification is one entry in the notifications collection, newest
// first. Time is a cached relative-time string derived from Timestamp
// (unix milliseconds, zero = backfill by position).
type Notification struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	Time      string `json:"time"`
	Icon      string `json:"icon"`
	Read      bool   `json:"read"`
	Timestamp int64  `json:"timestamp"`
}
