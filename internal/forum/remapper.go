package forum

import (
	"sort"

	"forumcfg/internal/models"
)

const (
	roleAuthor    = "author"
	roleModerator = "moderator"
)

type Remapped struct {
	Categories []models.Category
	Threads    []models.Thread
	Posts      []models.Post
	ForumUsers []models.ForumUser
	Moderators []models.Moderator
}

// Remap rewrites every legacy entity against reg. The first reference reg
// cannot resolve aborts the whole remap.
func Remap(data *models.ForumData, reg *Registry) (*Remapped, error) {
	out := &Remapped{
		Categories: make([]models.Category, 0, len(data.Categories)),
		Threads:    make([]models.Thread, 0, len(data.Threads)),
		Posts:      make([]models.Post, 0, len(data.Posts)),
	}

	for _, e := range data.Categories {
		out.Categories = append(out.Categories, remapCategory(e.ID, &e.Record))
	}

	for _, e := range data.Threads {
		t, err := remapThread(e.ID, &e.Record, reg)
		if err != nil {
			return nil, err
		}
		out.Threads = append(out.Threads, t)
	}

	for _, e := range data.Posts {
		p, err := remapPost(e.ID, &e.Record, reg)
		if err != nil {
			return nil, err
		}
		out.Posts = append(out.Posts, p)
	}

	sort.SliceStable(out.Categories, func(i, j int) bool { return out.Categories[i].ID < out.Categories[j].ID })
	sort.SliceStable(out.Threads, func(i, j int) bool { return out.Threads[i].ID < out.Threads[j].ID })
	sort.SliceStable(out.Posts, func(i, j int) bool { return out.Posts[i].ID < out.Posts[j].ID })

	out.ForumUsers = synthesizeForumUsers(reg.ForumUsers)
	out.Moderators = synthesizeModerators(reg.Moderators)

	return out, nil
}

func remapCategory(id uint64, c *models.LegacyCategory) models.Category {
	cat := models.Category{
		ID:                          id,
		Title:                       c.Title,
		Description:                 c.Description,
		CreatedAt:                   timestamp(c.CreatedAt),
		Deleted:                     c.Deleted,
		Archived:                    c.Archived,
		NumDirectSubcategories:      c.NumDirectSubcategories.Uint64(),
		NumDirectUnmoderatedThreads: c.NumDirectUnmoderatedThreads.Uint64(),
		NumDirectModeratedThreads:   c.NumDirectModeratedThreads.Uint64(),
		StickyThreadIDs:             []uint64{},
	}
	if pos := c.PositionInParentCategory; pos != nil {
		cat.PositionInParentCategory = &models.ChildPositionInParentCategory{
			ParentID:                pos.ParentID.Uint64(),
			ChildNrInParentCategory: pos.ChildNrInParentCategory.Uint64(),
		}
	}
	return cat
}

func remapThread(id uint64, t *models.LegacyThread, reg *Registry) (models.Thread, error) {
	author, ok := reg.ForumUsers.Lookup(t.AuthorID)
	if !ok {
		return models.Thread{}, &LookupError{Entity: "thread", ID: id, Role: roleAuthor, Account: t.AuthorID}
	}
	moderation, err := remapModeration("thread", id, t.Moderation, reg)
	if err != nil {
		return models.Thread{}, err
	}
	return models.Thread{
		ID:                  id,
		Title:               t.Title,
		CategoryID:          t.CategoryID.Uint64(),
		NrInCategory:        t.NrInCategory.Uint64(),
		Moderation:          moderation,
		NumUnmoderatedPosts: t.NumUnmoderatedPosts.Uint64(),
		NumModeratedPosts:   t.NumModeratedPosts.Uint64(),
		CreatedAt:           timestamp(t.CreatedAt),
		AuthorID:            author,
	}, nil
}

func remapPost(id uint64, p *models.LegacyPost, reg *Registry) (models.Post, error) {
	author, ok := reg.ForumUsers.Lookup(p.AuthorID)
	if !ok {
		return models.Post{}, &LookupError{Entity: "post", ID: id, Role: roleAuthor, Account: p.AuthorID}
	}
	moderation, err := remapModeration("post", id, p.Moderation, reg)
	if err != nil {
		return models.Post{}, err
	}
	history := make([]models.PostTextChange, 0, len(p.TextChangeHistory))
	for _, change := range p.TextChangeHistory {
		history = append(history, models.PostTextChange{
			ExpiredAt: timestamp(change.ExpiredAt),
			Text:      change.Text,
		})
	}
	return models.Post{
		ID:                id,
		ThreadID:          p.ThreadID.Uint64(),
		NrInThread:        p.NrInThread.Uint64(),
		CurrentText:       p.CurrentText,
		Moderation:        moderation,
		TextChangeHistory: history,
		CreatedAt:         timestamp(p.CreatedAt),
		AuthorID:          author,
	}, nil
}

func remapModeration(entity string, id uint64, m *models.LegacyModeration, reg *Registry) (*models.ModerationAction, error) {
	if m == nil {
		return nil, nil
	}
	moderator, ok := reg.Moderators.Lookup(m.ModeratorID)
	if !ok {
		return nil, &LookupError{Entity: entity, ID: id, Role: roleModerator, Account: m.ModeratorID}
	}
	return &models.ModerationAction{
		ModeratedAt: timestamp(m.ModeratedAt),
		ModeratorID: moderator,
		Rationale:   m.Rationale,
		Kind:        m.Kind,
	}, nil
}

func synthesizeForumUsers(m *IdentityMap) []models.ForumUser {
	accounts := m.Accounts()
	users := make([]models.ForumUser, 0, len(accounts))
	for i, acc := range accounts {
		users = append(users, models.ForumUser{ID: uint64(i + 1), RoleAccount: acc})
	}
	return users
}

func synthesizeModerators(m *IdentityMap) []models.Moderator {
	accounts := m.Accounts()
	mods := make([]models.Moderator, 0, len(accounts))
	for i, acc := range accounts {
		mods = append(mods, models.Moderator{ID: uint64(i + 1), RoleAccount: acc})
	}
	return mods
}

func timestamp(t models.LegacyTimestamp) models.BlockchainTimestamp {
	return models.BlockchainTimestamp{Block: t.Block.Uint64(), Time: t.Time.Uint64()}
}
