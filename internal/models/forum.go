package models

type BlockchainTimestamp struct {
	Block uint64 `json:"block"`
	Time  uint64 `json:"time"`
}

type ChildPositionInParentCategory struct {
	ParentID                uint64 `json:"parent_id"`
	ChildNrInParentCategory uint64 `json:"child_nr_in_parent_category"`
}

type ModerationAction struct {
	ModeratedAt BlockchainTimestamp `json:"moderated_at"`
	ModeratorID uint64              `json:"moderator_id"`
	Rationale   string              `json:"rationale"`
	Kind        string              `json:"kind,omitempty"`
}

type PostTextChange struct {
	ExpiredAt BlockchainTimestamp `json:"expired_at"`
	Text      string              `json:"text"`
}

type ForumUser struct {
	ID               uint64    `json:"id"`
	RoleAccount      AccountID `json:"role_account"`
	Name             string    `json:"name"`
	SelfIntroduction string    `json:"self_introduction"`
	PostFooter       *string   `json:"post_footer"`
}

type Moderator struct {
	ID               uint64    `json:"id"`
	RoleAccount      AccountID `json:"role_account"`
	Name             string    `json:"name"`
	SelfIntroduction string    `json:"self_introduction"`
}

type Category struct {
	ID                          uint64                         `json:"id"`
	Title                       string                         `json:"title"`
	Description                 string                         `json:"description"`
	CreatedAt                   BlockchainTimestamp            `json:"created_at"`
	Deleted                     bool                           `json:"deleted"`
	Archived                    bool                           `json:"archived"`
	NumDirectSubcategories      uint64                         `json:"num_direct_subcategories"`
	NumDirectUnmoderatedThreads uint64                         `json:"num_direct_unmoderated_threads"`
	NumDirectModeratedThreads   uint64                         `json:"num_direct_moderated_threads"`
	PositionInParentCategory    *ChildPositionInParentCategory `json:"position_in_parent_category"`
	StickyThreadIDs             []uint64                       `json:"sticky_thread_ids"`
}

type Thread struct {
	ID                  uint64              `json:"id"`
	Title               string              `json:"title"`
	CategoryID          uint64              `json:"category_id"`
	NrInCategory        uint64              `json:"nr_in_category"`
	Moderation          *ModerationAction   `json:"moderation"`
	NumUnmoderatedPosts uint64              `json:"num_unmoderated_posts"`
	NumModeratedPosts   uint64              `json:"num_moderated_posts"`
	CreatedAt           BlockchainTimestamp `json:"created_at"`
	AuthorID            uint64              `json:"author_id"`
}

type Post struct {
	ID                uint64              `json:"id"`
	ThreadID          uint64              `json:"thread_id"`
	NrInThread        uint64              `json:"nr_in_thread"`
	CurrentText       string              `json:"current_text"`
	Moderation        *ModerationAction   `json:"moderation"`
	TextChangeHistory []PostTextChange    `json:"text_change_history"`
	CreatedAt         BlockchainTimestamp `json:"created_at"`
	AuthorID          uint64              `json:"author_id"`
}

type Label struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

type CategoryModerator struct {
	CategoryID  uint64 `json:"category_id"`
	ModeratorID uint64 `json:"moderator_id"`
	Enabled     bool   `json:"enabled"`
}

type PostReaction struct {
	PostID      uint64 `json:"post_id"`
	ForumUserID uint64 `json:"forum_user_id"`
	Reaction    uint8  `json:"reaction"`
}

type EntityLabels struct {
	EntityID uint64   `json:"entity_id"`
	LabelIDs []uint64 `json:"label_ids"`
}
