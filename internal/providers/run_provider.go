package providers

import (
	"time"

	"forumcfg/internal/structures"

	"github.com/google/uuid"
)

func NewRunInfo() *structures.RunInfo {
	return &structures.RunInfo{
		ID:        uuid.NewString(),
		StartedAt: time.Now().UTC(),
	}
}
