package forum

import "forumcfg/internal/models"

func account(b byte) models.AccountID {
	var acc models.AccountID
	for i := range acc {
		acc[i] = b
	}
	return acc
}

func ts(block, time uint64) models.LegacyTimestamp {
	return models.LegacyTimestamp{Block: models.Number(block), Time: models.Number(time)}
}

func category(id uint64, moderator models.AccountID) models.Entry[models.LegacyCategory] {
	return models.Entry[models.LegacyCategory]{ID: id, Record: models.LegacyCategory{
		ID:          models.Number(id),
		Title:       "General discussion",
		Description: "Everything that does not fit elsewhere",
		CreatedAt:   ts(1, 1000),
		ModeratorID: moderator,
	}}
}

func thread(id, categoryID uint64, author models.AccountID) models.Entry[models.LegacyThread] {
	return models.Entry[models.LegacyThread]{ID: id, Record: models.LegacyThread{
		ID:           models.Number(id),
		Title:        "Welcome",
		CategoryID:   models.Number(categoryID),
		NrInCategory: models.Number(id),
		CreatedAt:    ts(2, 2000),
		AuthorID:     author,
	}}
}

func post(id, threadID uint64, author models.AccountID) models.Entry[models.LegacyPost] {
	return models.Entry[models.LegacyPost]{ID: id, Record: models.LegacyPost{
		ID:          models.Number(id),
		ThreadID:    models.Number(threadID),
		NrInThread:  models.Number(id),
		CurrentText: "hello",
		CreatedAt:   ts(3, 3000),
		AuthorID:    author,
	}}
}

func moderated(moderator models.AccountID, rationale string) *models.LegacyModeration {
	return &models.LegacyModeration{
		ModeratedAt: ts(9, 9000),
		ModeratorID: moderator,
		Rationale:   rationale,
		Kind:        "hide",
	}
}
