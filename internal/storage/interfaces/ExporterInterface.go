package interfaces

import "forumcfg/internal/models"

type ExporterInterface interface {
	Export(cfg *models.ForumConfig) error
}
