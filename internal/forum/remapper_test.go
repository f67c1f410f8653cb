package forum

import (
	"errors"
	"testing"

	"forumcfg/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemap_CategoryCarriesHierarchyAndCounters(t *testing.T) {
	c := category(2, account(1))
	c.Record.Deleted = true
	c.Record.Archived = true
	c.Record.NumDirectSubcategories = 3
	c.Record.NumDirectUnmoderatedThreads = 4
	c.Record.NumDirectModeratedThreads = 5
	c.Record.PositionInParentCategory = &models.LegacyChildPosition{ParentID: 1, ChildNrInParentCategory: 7}
	data := &models.ForumData{Categories: []models.Entry[models.LegacyCategory]{category(1, account(1)), c}}

	out, err := Remap(data, BuildIdentityRegistry(data.Categories, nil, nil))
	require.NoError(t, err)
	require.Len(t, out.Categories, 2)

	got := out.Categories[1]
	assert.Equal(t, uint64(2), got.ID)
	assert.Equal(t, "General discussion", got.Title)
	assert.Equal(t, "Everything that does not fit elsewhere", got.Description)
	assert.Equal(t, models.BlockchainTimestamp{Block: 1, Time: 1000}, got.CreatedAt)
	assert.True(t, got.Deleted)
	assert.True(t, got.Archived)
	assert.Equal(t, uint64(3), got.NumDirectSubcategories)
	assert.Equal(t, uint64(4), got.NumDirectUnmoderatedThreads)
	assert.Equal(t, uint64(5), got.NumDirectModeratedThreads)
	require.NotNil(t, got.PositionInParentCategory)
	assert.Equal(t, uint64(1), got.PositionInParentCategory.ParentID)
	assert.Equal(t, uint64(7), got.PositionInParentCategory.ChildNrInParentCategory)
	assert.NotNil(t, got.StickyThreadIDs)
	assert.Empty(t, got.StickyThreadIDs)

	assert.Nil(t, out.Categories[0].PositionInParentCategory)
}

func TestRemap_ThreadAuthorAndModerator(t *testing.T) {
	author := account(0xaa)
	mod := account(0xee)
	th := thread(4, 1, author)
	th.Record.Moderation = moderated(mod, "duplicate of another thread")
	th.Record.NumUnmoderatedPosts = 2
	th.Record.NumModeratedPosts = 1
	data := &models.ForumData{
		Categories: []models.Entry[models.LegacyCategory]{category(1, account(0x01))},
		Threads:    []models.Entry[models.LegacyThread]{th},
	}
	reg := BuildIdentityRegistry(data.Categories, data.Threads, data.Posts)

	out, err := Remap(data, reg)
	require.NoError(t, err)
	require.Len(t, out.Threads, 1)

	got := out.Threads[0]
	authorID, _ := reg.ForumUsers.Lookup(author)
	modID, _ := reg.Moderators.Lookup(mod)
	assert.Equal(t, authorID, got.AuthorID)
	require.NotNil(t, got.Moderation)
	assert.Equal(t, modID, got.Moderation.ModeratorID)
	assert.Equal(t, uint64(2), modID)
	assert.Equal(t, "duplicate of another thread", got.Moderation.Rationale)
	assert.Equal(t, "hide", got.Moderation.Kind)
	assert.Equal(t, models.BlockchainTimestamp{Block: 9, Time: 9000}, got.Moderation.ModeratedAt)
	assert.Equal(t, "Welcome", got.Title)
	assert.Equal(t, uint64(1), got.CategoryID)
	assert.Equal(t, uint64(4), got.NrInCategory)
	assert.Equal(t, uint64(2), got.NumUnmoderatedPosts)
	assert.Equal(t, uint64(1), got.NumModeratedPosts)
	assert.Equal(t, models.BlockchainTimestamp{Block: 2, Time: 2000}, got.CreatedAt)
}

func TestRemap_PostCopiesHistory(t *testing.T) {
	p := post(1, 1, account(0x0a))
	p.Record.TextChangeHistory = []models.LegacyTextChange{
		{ExpiredAt: ts(5, 5000), Text: "first draft"},
		{ExpiredAt: ts(6, 6000), Text: "second draft"},
	}
	data := &models.ForumData{Posts: []models.Entry[models.LegacyPost]{p}}

	out, err := Remap(data, BuildIdentityRegistry(nil, nil, data.Posts))
	require.NoError(t, err)
	require.Len(t, out.Posts, 1)

	got := out.Posts[0]
	assert.Equal(t, uint64(1), got.AuthorID)
	assert.Nil(t, got.Moderation)
	assert.Equal(t, "hello", got.CurrentText)
	assert.Equal(t, []models.PostTextChange{
		{ExpiredAt: models.BlockchainTimestamp{Block: 5, Time: 5000}, Text: "first draft"},
		{ExpiredAt: models.BlockchainTimestamp{Block: 6, Time: 6000}, Text: "second draft"},
	}, got.TextChangeHistory)
}

func TestRemap_SynthesizesUsersAndModeratorsInIDOrder(t *testing.T) {
	data := &models.ForumData{
		Categories: []models.Entry[models.LegacyCategory]{category(1, account(0x20)), category(2, account(0x10))},
		Threads:    []models.Entry[models.LegacyThread]{thread(1, 1, account(0x02)), thread(2, 1, account(0x01))},
	}

	out, err := Remap(data, BuildIdentityRegistry(data.Categories, data.Threads, nil))
	require.NoError(t, err)

	assert.Equal(t, []models.ForumUser{
		{ID: 1, RoleAccount: account(0x02)},
		{ID: 2, RoleAccount: account(0x01)},
	}, out.ForumUsers)
	assert.Equal(t, []models.Moderator{
		{ID: 1, RoleAccount: account(0x20)},
		{ID: 2, RoleAccount: account(0x10)},
	}, out.Moderators)
}

func TestRemap_SortsEntitiesByID(t *testing.T) {
	data := &models.ForumData{
		Threads: []models.Entry[models.LegacyThread]{thread(3, 1, account(1)), thread(1, 1, account(1)), thread(2, 1, account(1))},
	}

	out, err := Remap(data, BuildIdentityRegistry(nil, data.Threads, nil))
	require.NoError(t, err)

	ids := make([]uint64, 0, len(out.Threads))
	for _, th := range out.Threads {
		ids = append(ids, th.ID)
	}
	assert.Equal(t, []uint64{1, 2, 3}, ids)
}

func TestRemap_UnknownAuthorFails(t *testing.T) {
	data := &models.ForumData{
		Threads: []models.Entry[models.LegacyThread]{thread(1, 1, account(1))},
		Posts:   []models.Entry[models.LegacyPost]{post(8, 1, account(2))},
	}
	// registry built from threads only misses the post author
	reg := BuildIdentityRegistry(nil, data.Threads, nil)

	out, err := Remap(data, reg)
	assert.Nil(t, out)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownAccount))

	var lookupErr *LookupError
	require.True(t, errors.As(err, &lookupErr))
	assert.Equal(t, "post", lookupErr.Entity)
	assert.Equal(t, uint64(8), lookupErr.ID)
	assert.Equal(t, "author", lookupErr.Role)
	assert.Equal(t, account(2), lookupErr.Account)
	assert.Contains(t, err.Error(), "post 8: author 0x0202")
}

func TestRemap_UnknownModeratorFails(t *testing.T) {
	th := thread(5, 1, account(1))
	th.Record.Moderation = moderated(account(9), "not allowed here at all")
	data := &models.ForumData{Threads: []models.Entry[models.LegacyThread]{th}}
	reg := &Registry{ForumUsers: NewIdentityMap(), Moderators: NewIdentityMap()}
	reg.ForumUsers.Observe(account(1))

	_, err := Remap(data, reg)
	var lookupErr *LookupError
	require.True(t, errors.As(err, &lookupErr))
	assert.Equal(t, "thread", lookupErr.Entity)
	assert.Equal(t, "moderator", lookupErr.Role)
}
