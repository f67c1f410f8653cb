package services

import (
	"fmt"
	"time"

	"forumcfg/internal/forum"
	"forumcfg/internal/models"
	"forumcfg/internal/providers"
	"forumcfg/internal/snapshot"
)

const (
	StageLoad    = "load"
	StageInspect = "inspect"
	StageAdapt   = "adapt"
	StageExport  = "export"
)

type AdaptationServiceInterface interface {
	Inspect(data *models.ForumData) (*snapshot.Report, error)
	Adapt(data *models.ForumData, sudo models.AccountID) (*models.ForumConfig, *forum.Registry, error)
}

type AdaptationService struct {
	logger  providers.Logger
	metrics providers.MetricsProviderInterface
}

func NewAdaptationService(logger providers.Logger, metrics providers.MetricsProviderInterface) *AdaptationService {
	return &AdaptationService{logger: logger, metrics: metrics}
}

// Inspect reports on data and returns the report's error, if any.
func (s *AdaptationService) Inspect(data *models.ForumData) (*snapshot.Report, error) {
	start := time.Now()
	report := snapshot.Inspect(data)
	s.metrics.ObserveStageDuration(StageInspect, time.Since(start))

	s.logger.Infof(providers.TypeSnapshot, "Snapshot holds %d categories, %d threads, %d posts (max depth %d)",
		report.Categories, report.Threads, report.Posts, report.MaxDepth)
	for _, p := range report.Problems {
		s.logger.Errorf(providers.TypeSnapshot, "%s", p)
	}
	if report.MaxDepth > forum.MaxCategoryDepth {
		s.logger.Warnf(providers.TypeSnapshot, "Category nesting depth %d exceeds the new limit of %d", report.MaxDepth, forum.MaxCategoryDepth)
	}
	return report, report.Err()
}

// Adapt inspects data and, if it is consistent, turns it into a genesis config.
func (s *AdaptationService) Adapt(data *models.ForumData, sudo models.AccountID) (*models.ForumConfig, *forum.Registry, error) {
	if _, err := s.Inspect(data); err != nil {
		return nil, nil, err
	}

	start := time.Now()
	cfg, reg, err := forum.Adapt(data, sudo)
	s.metrics.ObserveStageDuration(StageAdapt, time.Since(start))
	if err != nil {
		return nil, nil, fmt.Errorf("adapt snapshot: %w", err)
	}

	s.metrics.SetIdentities("forum_user", reg.ForumUsers.Len())
	s.metrics.SetIdentities("moderator", reg.Moderators.Len())
	s.metrics.SetEntities("category", len(cfg.CategoryByID))
	s.metrics.SetEntities("thread", len(cfg.ThreadByID))
	s.metrics.SetEntities("post", len(cfg.PostByID))

	s.logger.Infof(providers.TypeAdapt, "Registered %d forum users and %d moderators", reg.ForumUsers.Len(), reg.Moderators.Len())

	for field, count := range ConstraintReport(cfg) {
		s.metrics.SetConstraintViolations(field, count)
		if count > 0 {
			s.logger.Warnf(providers.TypeAdapt, "%d legacy %s values violate the new length constraint", count, field)
		}
	}

	return cfg, reg, nil
}

// ConstraintReport counts, per text field, the legacy values outside the
// config's length constraints.
func ConstraintReport(cfg *models.ForumConfig) map[string]int {
	report := map[string]int{
		"category_title":              0,
		"category_description":        0,
		"thread_title":                0,
		"thread_moderation_rationale": 0,
		"post_text":                   0,
		"post_moderation_rationale":   0,
	}
	count := func(field string, c models.InputValidationLengthConstraint, text string) {
		if c.Check(len(text)) != nil {
			report[field]++
		}
	}

	for i := range cfg.CategoryByID {
		count("category_title", cfg.CategoryTitleConstraint, cfg.CategoryByID[i].Title)
		count("category_description", cfg.CategoryDescriptionConstraint, cfg.CategoryByID[i].Description)
	}
	for i := range cfg.ThreadByID {
		t := &cfg.ThreadByID[i]
		count("thread_title", cfg.ThreadTitleConstraint, t.Title)
		if t.Moderation != nil {
			count("thread_moderation_rationale", cfg.ThreadModerationRationaleConstraint, t.Moderation.Rationale)
		}
	}
	for i := range cfg.PostByID {
		p := &cfg.PostByID[i]
		count("post_text", cfg.PostTextConstraint, p.CurrentText)
		if p.Moderation != nil {
			count("post_moderation_rationale", cfg.PostModerationRationaleConstraint, p.Moderation.Rationale)
		}
	}
	return report
}
