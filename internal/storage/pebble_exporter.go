package storage

import (
	"fmt"
	"os"
	"time"

	"forumcfg/internal/models"
	"forumcfg/internal/providers"
	"forumcfg/internal/structures"

	"github.com/cockroachdb/pebble"
	json "github.com/goccy/go-json"
)

const (
	idPadWidth = 20

	MetaConfigKey = "meta:config"
	MetaRunKey    = "meta:run"

	PrefixCategory  = "category"
	PrefixThread    = "thread"
	PrefixPost      = "post"
	PrefixForumUser = "forum_user"
	PrefixModerator = "moderator"
)

func EntityKey(prefix string, id uint64) []byte {
	return []byte(fmt.Sprintf("%s:%0*d", prefix, idPadWidth, id))
}

// ConfigMeta is everything in ForumConfig except the entity collections.
type ConfigMeta struct {
	NextForumUserID  uint64           `json:"next_forum_user_id"`
	NextModeratorID  uint64           `json:"next_moderator_id"`
	NextCategoryID   uint64           `json:"next_category_id"`
	NextThreadID     uint64           `json:"next_thread_id"`
	NextPostID       uint64           `json:"next_post_id"`
	NextLabelID      uint64           `json:"next_label_id"`
	ForumSudo        models.AccountID `json:"forum_sudo"`
	MaxCategoryDepth uint64           `json:"max_category_depth"`
	MaxAppliedLabels uint64           `json:"max_applied_labels"`

	Constraints map[string]models.InputValidationLengthConstraint `json:"constraints"`
}

type RunMeta struct {
	RunID     string `json:"run_id"`
	CreatedAt string `json:"created_at"`
	Source    string `json:"source"`
}

// PebbleExporter writes one key per entity into a fresh pebble store, the
// layout the new forum node bulk-loads at genesis.
type PebbleExporter struct {
	path   string
	source string
	run    *structures.RunInfo
	logger providers.Logger
}

func NewPebbleExporter(path, source string, run *structures.RunInfo, logger providers.Logger) *PebbleExporter {
	return &PebbleExporter{path: path, source: source, run: run, logger: logger}
}

// Export builds a fresh store in a sibling temp directory and swaps it in
// over any previous output once the batch is committed.
func (p *PebbleExporter) Export(cfg *models.ForumConfig) error {
	tmp := p.path + ".tmp"
	if err := os.RemoveAll(tmp); err != nil {
		return fmt.Errorf("failed to clear %s: %w", tmp, err)
	}

	written, err := p.write(tmp, cfg)
	if err != nil {
		os.RemoveAll(tmp)
		return err
	}

	old := p.path + ".old"
	if err := os.RemoveAll(old); err != nil {
		os.RemoveAll(tmp)
		return fmt.Errorf("failed to clear %s: %w", old, err)
	}
	if err := os.Rename(p.path, old); err != nil && !os.IsNotExist(err) {
		os.RemoveAll(tmp)
		return fmt.Errorf("failed to move previous store aside: %w", err)
	}
	if err := os.Rename(tmp, p.path); err != nil {
		return fmt.Errorf("failed to move store into place: %w", err)
	}
	if err := os.RemoveAll(old); err != nil {
		p.logger.Warnf(providers.TypeExport, "Unable to remove previous store %s: %s", old, err)
	}

	p.logger.Infof(providers.TypeExport, "Wrote %d keys to pebble store %s", written, p.path)
	return nil
}

func (p *PebbleExporter) write(dir string, cfg *models.ForumConfig) (written int, err error) {
	db, err := pebble.Open(dir, &pebble.Options{
		ErrorIfExists: true,
		Logger:        pebbleLogger{logger: p.logger},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to open pebble store %s: %w", dir, err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close pebble store %s: %w", dir, cerr)
		}
	}()

	batch := db.NewBatch()
	defer batch.Close()

	put := func(key []byte, value interface{}) error {
		data, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("failed to marshal %s: %w", key, err)
		}
		if err := batch.Set(key, data, nil); err != nil {
			return fmt.Errorf("failed to store %s: %w", key, err)
		}
		written++
		return nil
	}

	if err := put([]byte(MetaConfigKey), configMeta(cfg)); err != nil {
		return written, err
	}
	if err := put([]byte(MetaRunKey), RunMeta{
		RunID:     p.run.ID,
		CreatedAt: p.run.StartedAt.UTC().Format(time.RFC3339),
		Source:    p.source,
	}); err != nil {
		return written, err
	}

	for i := range cfg.CategoryByID {
		if err := put(EntityKey(PrefixCategory, cfg.CategoryByID[i].ID), &cfg.CategoryByID[i]); err != nil {
			return written, err
		}
	}
	for i := range cfg.ThreadByID {
		if err := put(EntityKey(PrefixThread, cfg.ThreadByID[i].ID), &cfg.ThreadByID[i]); err != nil {
			return written, err
		}
	}
	for i := range cfg.PostByID {
		if err := put(EntityKey(PrefixPost, cfg.PostByID[i].ID), &cfg.PostByID[i]); err != nil {
			return written, err
		}
	}
	for i := range cfg.ForumUserByID {
		if err := put(EntityKey(PrefixForumUser, cfg.ForumUserByID[i].ID), &cfg.ForumUserByID[i]); err != nil {
			return written, err
		}
	}
	for i := range cfg.ModeratorByID {
		if err := put(EntityKey(PrefixModerator, cfg.ModeratorByID[i].ID), &cfg.ModeratorByID[i]); err != nil {
			return written, err
		}
	}

	if err := batch.Commit(pebble.Sync); err != nil {
		return written, fmt.Errorf("failed to commit batch: %w", err)
	}
	return written, nil
}

// pebbleLogger routes pebble's own messages into the export log channel.
type pebbleLogger struct {
	logger providers.Logger
}

func (l pebbleLogger) Infof(format string, args ...interface{}) {
	l.logger.Debugf(providers.TypeExport, format, args...)
}

func (l pebbleLogger) Errorf(format string, args ...interface{}) {
	l.logger.Errorf(providers.TypeExport, format, args...)
}

func (l pebbleLogger) Fatalf(format string, args ...interface{}) {
	l.logger.Fatalf(providers.TypeExport, format, args...)
}

func configMeta(cfg *models.ForumConfig) ConfigMeta {
	return ConfigMeta{
		NextForumUserID:  cfg.NextForumUserID,
		NextModeratorID:  cfg.NextModeratorID,
		NextCategoryID:   cfg.NextCategoryID,
		NextThreadID:     cfg.NextThreadID,
		NextPostID:       cfg.NextPostID,
		NextLabelID:      cfg.NextLabelID,
		ForumSudo:        cfg.ForumSudo,
		MaxCategoryDepth: cfg.MaxCategoryDepth,
		MaxAppliedLabels: cfg.MaxAppliedLabels,
		Constraints: map[string]models.InputValidationLengthConstraint{
			"category_title":              cfg.CategoryTitleConstraint,
			"category_description":        cfg.CategoryDescriptionConstraint,
			"thread_title":                cfg.ThreadTitleConstraint,
			"post_text":                   cfg.PostTextConstraint,
			"thread_moderation_rationale": cfg.ThreadModerationRationaleConstraint,
			"post_moderation_rationale":   cfg.PostModerationRationaleConstraint,
			"label_name":                  cfg.LabelNameConstraint,
			"poll_desc":                   cfg.PollDescConstraint,
			"poll_items":                  cfg.PollItemsConstraint,
			"user_name":                   cfg.UserNameConstraint,
			"user_self_introduction":      cfg.UserSelfIntroductionConstraint,
			"post_footer":                 cfg.PostFooterConstraint,
		},
	}
}
