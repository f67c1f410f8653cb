package forum

import "forumcfg/internal/models"

// IdentityMap assigns dense ids, starting at 1, to accounts in the order
// they are first observed.
type IdentityMap struct {
	ids   map[models.AccountID]uint64
	order []models.AccountID
}

func NewIdentityMap() *IdentityMap {
	return &IdentityMap{ids: make(map[models.AccountID]uint64)}
}

// Observe returns the id of acc, assigning the next one if acc is new.
func (m *IdentityMap) Observe(acc models.AccountID) (uint64, bool) {
	if id, ok := m.ids[acc]; ok {
		return id, false
	}
	m.order = append(m.order, acc)
	id := uint64(len(m.order))
	m.ids[acc] = id
	return id, true
}

func (m *IdentityMap) Lookup(acc models.AccountID) (uint64, bool) {
	id, ok := m.ids[acc]
	return id, ok
}

func (m *IdentityMap) Len() int {
	return len(m.order)
}

// Next is the id the next new account would receive.
func (m *IdentityMap) Next() uint64 {
	return uint64(len(m.order)) + 1
}

// Accounts returns the observed accounts ordered by id; Accounts()[i] has id i+1.
func (m *IdentityMap) Accounts() []models.AccountID {
	out := make([]models.AccountID, len(m.order))
	copy(out, m.order)
	return out
}

type Registry struct {
	ForumUsers *IdentityMap
	Moderators *IdentityMap
}

// BuildIdentityRegistry scans categories, then threads, then posts. Authors
// land in ForumUsers and moderators in Moderators; the two id sequences are
// independent, so one account may hold a different id in each.
func BuildIdentityRegistry(categories []models.Entry[models.LegacyCategory], threads []models.Entry[models.LegacyThread], posts []models.Entry[models.LegacyPost]) *Registry {
	reg := &Registry{
		ForumUsers: NewIdentityMap(),
		Moderators: NewIdentityMap(),
	}

	for _, c := range categories {
		reg.Moderators.Observe(c.Record.ModeratorID)
	}
	for _, t := range threads {
		reg.ForumUsers.Observe(t.Record.AuthorID)
		if t.Record.Moderation != nil {
			reg.Moderators.Observe(t.Record.Moderation.ModeratorID)
		}
	}
	for _, p := range posts {
		reg.ForumUsers.Observe(p.Record.AuthorID)
		if p.Record.Moderation != nil {
			reg.Moderators.Observe(p.Record.Moderation.ModeratorID)
		}
	}

	return reg
}
