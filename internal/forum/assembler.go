package forum

import "forumcfg/internal/models"

// Assemble builds the genesis config around r. Labels, reactions and the
// category/moderator and category/label associations are left empty: the
// legacy snapshot carries nothing to fill them with.
func Assemble(sudo models.AccountID, r *Remapped) *models.ForumConfig {
	cfg := &models.ForumConfig{
		ForumUserByID: r.ForumUsers,
		ModeratorByID: r.Moderators,
		CategoryByID:  r.Categories,
		ThreadByID:    r.Threads,
		PostByID:      r.Posts,

		ForumSudo:           sudo,
		CategoryByModerator: []models.CategoryModerator{},
		MaxCategoryDepth:    MaxCategoryDepth,
		ReactionByPost:      []models.PostReaction{},

		LabelByID:        []models.Label{},
		NextLabelID:      1,
		CategoryLabels:   []models.EntityLabels{},
		ThreadLabels:     []models.EntityLabels{},
		MaxAppliedLabels: MaxAppliedLabels,
	}

	cfg.NextForumUserID = nextID(len(r.ForumUsers), func(i int) uint64 { return r.ForumUsers[i].ID })
	cfg.NextModeratorID = nextID(len(r.Moderators), func(i int) uint64 { return r.Moderators[i].ID })
	cfg.NextCategoryID = nextID(len(r.Categories), func(i int) uint64 { return r.Categories[i].ID })
	cfg.NextThreadID = nextID(len(r.Threads), func(i int) uint64 { return r.Threads[i].ID })
	cfg.NextPostID = nextID(len(r.Posts), func(i int) uint64 { return r.Posts[i].ID })

	DefaultConstraints().install(cfg)

	return cfg
}

// nextID is one past the largest id, or 1 for an empty collection.
func nextID(n int, id func(int) uint64) uint64 {
	var highest uint64
	for i := 0; i < n; i++ {
		if v := id(i); v > highest {
			highest = v
		}
	}
	return highest + 1
}
