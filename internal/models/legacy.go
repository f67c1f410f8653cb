package models

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// Legacy snapshot as exported by the old forum runtime module.

type LegacyTimestamp struct {
	Block Number `json:"block"`
	Time  Number `json:"time"`
}

type LegacyChildPosition struct {
	ParentID                Number `json:"parent_id"`
	ChildNrInParentCategory Number `json:"child_nr_in_parent_category"`
}

type LegacyModeration struct {
	ModeratedAt LegacyTimestamp `json:"moderated_at"`
	ModeratorID AccountID       `json:"moderator_id"`
	Rationale   string          `json:"rationale"`
	Kind        string          `json:"kind,omitempty"`
}

type LegacyTextChange struct {
	ExpiredAt LegacyTimestamp `json:"expired_at"`
	Text      string          `json:"text"`
}

type LegacyCategory struct {
	ID                          Number               `json:"id"`
	Title                       string               `json:"title"`
	Description                 string               `json:"description"`
	CreatedAt                   LegacyTimestamp      `json:"created_at"`
	Deleted                     bool                 `json:"deleted"`
	Archived                    bool                 `json:"archived"`
	NumDirectSubcategories      Number               `json:"num_direct_subcategories"`
	NumDirectUnmoderatedThreads Number               `json:"num_direct_unmoderated_threads"`
	NumDirectModeratedThreads   Number               `json:"num_direct_moderated_threads"`
	PositionInParentCategory    *LegacyChildPosition `json:"position_in_parent_category"`
	ModeratorID                 AccountID            `json:"moderator_id"`
}

type LegacyThread struct {
	ID                  Number            `json:"id"`
	Title               string            `json:"title"`
	CategoryID          Number            `json:"category_id"`
	NrInCategory        Number            `json:"nr_in_category"`
	Moderation          *LegacyModeration `json:"moderation"`
	NumUnmoderatedPosts Number            `json:"num_unmoderated_posts"`
	NumModeratedPosts   Number            `json:"num_moderated_posts"`
	CreatedAt           LegacyTimestamp   `json:"created_at"`
	AuthorID            AccountID         `json:"author_id"`
}

type LegacyPost struct {
	ID                Number             `json:"id"`
	ThreadID          Number             `json:"thread_id"`
	NrInThread        Number             `json:"nr_in_thread"`
	CurrentText       string             `json:"current_text"`
	Moderation        *LegacyModeration  `json:"moderation"`
	TextChangeHistory []LegacyTextChange `json:"text_change_history"`
	CreatedAt         LegacyTimestamp    `json:"created_at"`
	AuthorID          AccountID          `json:"author_id"`
}

// Entry is one `[id, record]` pair of a legacy collection.
type Entry[T any] struct {
	ID     uint64
	Record T
}

func (e *Entry[T]) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("expected [id, record] pair, got %d elements", len(pair))
	}
	var id Number
	if err := json.Unmarshal(pair[0], &id); err != nil {
		return fmt.Errorf("entry id: %w", err)
	}
	var rec T
	if err := json.Unmarshal(pair[1], &rec); err != nil {
		return fmt.Errorf("entry %d: %w", id, err)
	}
	e.ID = id.Uint64()
	e.Record = rec
	return nil
}

func (e Entry[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{e.ID, e.Record})
}

type ForumData struct {
	Categories []Entry[LegacyCategory] `json:"categories"`
	Threads    []Entry[LegacyThread]   `json:"threads"`
	Posts      []Entry[LegacyPost]     `json:"posts"`
}
