package forum

import (
	"testing"

	"forumcfg/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityMap_ObserveAssignsSequentialIDs(t *testing.T) {
	m := NewIdentityMap()

	id, added := m.Observe(account(1))
	assert.Equal(t, uint64(1), id)
	assert.True(t, added)

	id, added = m.Observe(account(2))
	assert.Equal(t, uint64(2), id)
	assert.True(t, added)

	assert.Equal(t, 2, m.Len())
	assert.Equal(t, uint64(3), m.Next())
}

func TestIdentityMap_ObserveKnownAccountIsNoop(t *testing.T) {
	m := NewIdentityMap()
	m.Observe(account(1))
	m.Observe(account(2))

	id, added := m.Observe(account(1))
	assert.Equal(t, uint64(1), id)
	assert.False(t, added)
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, uint64(3), m.Next())
}

func TestIdentityMap_Empty(t *testing.T) {
	m := NewIdentityMap()
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, uint64(1), m.Next())
	assert.Empty(t, m.Accounts())

	_, ok := m.Lookup(account(1))
	assert.False(t, ok)
}

func TestIdentityMap_AccountsInIDOrder(t *testing.T) {
	m := NewIdentityMap()
	m.Observe(account(9))
	m.Observe(account(3))
	m.Observe(account(9))
	m.Observe(account(5))

	assert.Equal(t, []models.AccountID{account(9), account(3), account(5)}, m.Accounts())
}

func TestIdentityMap_AccountsReturnsCopy(t *testing.T) {
	m := NewIdentityMap()
	m.Observe(account(1))

	accounts := m.Accounts()
	accounts[0] = account(7)

	assert.Equal(t, account(1), m.Accounts()[0])
}

func TestBuildIdentityRegistry_SameAuthorAcrossFiftyPosts(t *testing.T) {
	a1 := account(0xa1)
	posts := make([]models.Entry[models.LegacyPost], 0, 50)
	for i := uint64(1); i <= 50; i++ {
		posts = append(posts, post(i, 1, a1))
	}

	reg := BuildIdentityRegistry(nil, nil, posts)

	assert.Equal(t, 1, reg.ForumUsers.Len())
	id, ok := reg.ForumUsers.Lookup(a1)
	require.True(t, ok)
	assert.Equal(t, uint64(1), id)
	assert.Equal(t, uint64(2), reg.ForumUsers.Next())
}

func TestBuildIdentityRegistry_RolesAreIndependent(t *testing.T) {
	m1 := account(0x01)
	both := account(0xbb)

	categories := []models.Entry[models.LegacyCategory]{category(1, m1)}
	threads := []models.Entry[models.LegacyThread]{thread(1, 1, account(0x02)), thread(2, 1, both)}
	p := post(1, 1, account(0x03))
	p.Record.Moderation = moderated(both, "off topic for sure")
	posts := []models.Entry[models.LegacyPost]{p}

	reg := BuildIdentityRegistry(categories, threads, posts)

	userID, ok := reg.ForumUsers.Lookup(both)
	require.True(t, ok)
	modID, ok := reg.Moderators.Lookup(both)
	require.True(t, ok)

	assert.Equal(t, uint64(2), userID)
	assert.Equal(t, uint64(2), modID)
	_, ok = reg.Moderators.Lookup(account(0x02))
	assert.False(t, ok, "authors must not leak into moderators")
	_, ok = reg.ForumUsers.Lookup(m1)
	assert.False(t, ok, "moderators must not leak into users")
}

func TestBuildIdentityRegistry_DualRoleGetsUnrelatedIDs(t *testing.T) {
	x := account(0x77)
	categories := []models.Entry[models.LegacyCategory]{
		category(1, account(0x10)),
		category(2, account(0x11)),
		category(3, x),
	}
	threads := []models.Entry[models.LegacyThread]{thread(1, 1, x)}

	reg := BuildIdentityRegistry(categories, threads, nil)

	userID, _ := reg.ForumUsers.Lookup(x)
	modID, _ := reg.Moderators.Lookup(x)
	assert.Equal(t, uint64(1), userID)
	assert.Equal(t, uint64(3), modID)
}

func TestBuildIdentityRegistry_ScanOrder(t *testing.T) {
	a, b, c := account(0x0a), account(0x0b), account(0x0c)
	ma, mb, mc := account(0xa0), account(0xb0), account(0xc0)

	categories := []models.Entry[models.LegacyCategory]{category(1, mb)}
	th := thread(1, 1, b)
	th.Record.Moderation = moderated(mc, "locked by moderator")
	threads := []models.Entry[models.LegacyThread]{th, thread(2, 1, c)}
	p := post(1, 1, a)
	p.Record.Moderation = moderated(ma, "spam removed by moderator")
	posts := []models.Entry[models.LegacyPost]{p, post(2, 1, b)}

	reg := BuildIdentityRegistry(categories, threads, posts)

	assert.Equal(t, []models.AccountID{b, c, a}, reg.ForumUsers.Accounts())
	assert.Equal(t, []models.AccountID{mb, mc, ma}, reg.Moderators.Accounts())
}

func TestBuildIdentityRegistry_Empty(t *testing.T) {
	reg := BuildIdentityRegistry(nil, nil, nil)
	assert.Equal(t, 0, reg.ForumUsers.Len())
	assert.Equal(t, 0, reg.Moderators.Len())
}
