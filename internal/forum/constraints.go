package forum

import "forumcfg/internal/models"

const (
	MaxCategoryDepth = 5
	MaxAppliedLabels = 5
)

// Constraints is the text-length table installed into every genesis config.
type Constraints struct {
	CategoryTitle             models.InputValidationLengthConstraint
	CategoryDescription       models.InputValidationLengthConstraint
	ThreadTitle               models.InputValidationLengthConstraint
	PostText                  models.InputValidationLengthConstraint
	ThreadModerationRationale models.InputValidationLengthConstraint
	PostModerationRationale   models.InputValidationLengthConstraint
	LabelName                 models.InputValidationLengthConstraint
	PollDescription           models.InputValidationLengthConstraint
	PollItem                  models.InputValidationLengthConstraint
	UserName                  models.InputValidationLengthConstraint
	UserSelfIntroduction      models.InputValidationLengthConstraint
	PostFooter                models.InputValidationLengthConstraint
}

func NewValidation(min, maxMinDiff uint16) models.InputValidationLengthConstraint {
	return models.InputValidationLengthConstraint{Min: min, MaxMinDiff: maxMinDiff}
}

func DefaultConstraints() Constraints {
	return Constraints{
		CategoryTitle:             NewValidation(10, 140),
		CategoryDescription:       NewValidation(10, 140),
		ThreadTitle:               NewValidation(3, 43),
		PostText:                  NewValidation(1, 1001),
		ThreadModerationRationale: NewValidation(10, 2000),
		PostModerationRationale:   NewValidation(10, 2000),
		LabelName:                 NewValidation(10, 20),
		PollDescription:           NewValidation(10, 200),
		PollItem:                  NewValidation(4, 20),
		UserName:                  NewValidation(6, 20),
		UserSelfIntroduction:      NewValidation(10, 200),
		PostFooter:                NewValidation(10, 140),
	}
}

func (c Constraints) install(cfg *models.ForumConfig) {
	cfg.CategoryTitleConstraint = c.CategoryTitle
	cfg.CategoryDescriptionConstraint = c.CategoryDescription
	cfg.ThreadTitleConstraint = c.ThreadTitle
	cfg.PostTextConstraint = c.PostText
	cfg.ThreadModerationRationaleConstraint = c.ThreadModerationRationale
	cfg.PostModerationRationaleConstraint = c.PostModerationRationale
	cfg.LabelNameConstraint = c.LabelName
	cfg.PollDescConstraint = c.PollDescription
	cfg.PollItemsConstraint = c.PollItem
	cfg.UserNameConstraint = c.UserName
	cfg.UserSelfIntroductionConstraint = c.UserSelfIntroduction
	cfg.PostFooterConstraint = c.PostFooter
}
