package domain

import "time"

// RefreshStats holds statistics about one cache refresh against the remote API.
type RefreshStats struct {
	Fetched   int
	Created   int
	Updated   int
	Published int
	Errors    int
	Duration  time.Duration
}
