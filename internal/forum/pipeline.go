// Package forum turns a legacy forum snapshot into the genesis config of the
// new forum module: accounts are deduplicated into per-role numeric ids and
// every category, thread and post is rewritten against them.
//
// Everything here is pure and in-memory; loading and persisting live in the
// snapshot and storage packages.
package forum

import "forumcfg/internal/models"

func Adapt(data *models.ForumData, sudo models.AccountID) (*models.ForumConfig, *Registry, error) {
	reg := BuildIdentityRegistry(data.Categories, data.Threads, data.Posts)

	remapped, err := Remap(data, reg)
	if err != nil {
		return nil, nil, err
	}

	return Assemble(sudo, remapped), reg, nil
}
