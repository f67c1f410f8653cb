package models

import "fmt"

// InputValidationLengthConstraint bounds a text field to
// [Min, Min+MaxMinDiff] bytes.
type InputValidationLengthConstraint struct {
	Min        uint16 `json:"min"`
	MaxMinDiff uint16 `json:"max_min_diff"`
}

func (c InputValidationLengthConstraint) Max() int {
	return int(c.Min) + int(c.MaxMinDiff)
}

func (c InputValidationLengthConstraint) Check(length int) error {
	if length < int(c.Min) {
		return fmt.Errorf("text too short: %d < %d", length, c.Min)
	}
	if length > c.Max() {
		return fmt.Errorf("text too long: %d > %d", length, c.Max())
	}
	return nil
}

// ForumConfig is the genesis state handed to the new forum module.
type ForumConfig struct {
	ForumUserByID   []ForumUser `json:"forum_user_by_id"`
	NextForumUserID uint64      `json:"next_forum_user_id"`
	ModeratorByID   []Moderator `json:"moderator_by_id"`
	NextModeratorID uint64      `json:"next_moderator_id"`
	CategoryByID    []Category  `json:"category_by_id"`
	NextCategoryID  uint64      `json:"next_category_id"`
	ThreadByID      []Thread    `json:"thread_by_id"`
	NextThreadID    uint64      `json:"next_thread_id"`
	PostByID        []Post      `json:"post_by_id"`
	NextPostID      uint64      `json:"next_post_id"`

	ForumSudo           AccountID           `json:"forum_sudo"`
	CategoryByModerator []CategoryModerator `json:"category_by_moderator"`
	MaxCategoryDepth    uint64              `json:"max_category_depth"`
	ReactionByPost      []PostReaction      `json:"reaction_by_post"`

	CategoryTitleConstraint             InputValidationLengthConstraint `json:"category_title_constraint"`
	CategoryDescriptionConstraint       InputValidationLengthConstraint `json:"category_description_constraint"`
	ThreadTitleConstraint               InputValidationLengthConstraint `json:"thread_title_constraint"`
	PostTextConstraint                  InputValidationLengthConstraint `json:"post_text_constraint"`
	ThreadModerationRationaleConstraint InputValidationLengthConstraint `json:"thread_moderation_rationale_constraint"`
	PostModerationRationaleConstraint   InputValidationLengthConstraint `json:"post_moderation_rationale_constraint"`
	LabelNameConstraint                 InputValidationLengthConstraint `json:"label_name_constraint"`
	PollDescConstraint                  InputValidationLengthConstraint `json:"poll_desc_constraint"`
	PollItemsConstraint                 InputValidationLengthConstraint `json:"poll_items_constraint"`
	UserNameConstraint                  InputValidationLengthConstraint `json:"user_name_constraint"`
	UserSelfIntroductionConstraint      InputValidationLengthConstraint `json:"user_self_introduction_constraint"`
	PostFooterConstraint                InputValidationLengthConstraint `json:"post_footer_constraint"`

	LabelByID        []Label        `json:"label_by_id"`
	NextLabelID      uint64         `json:"next_label_id"`
	CategoryLabels   []EntityLabels `json:"category_labels"`
	ThreadLabels     []EntityLabels `json:"thread_labels"`
	MaxAppliedLabels uint64         `json:"max_applied_labels"`
}
