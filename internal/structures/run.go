package structures

import "time"

type RunInfo struct {
	ID        string
	StartedAt time.Time
}
