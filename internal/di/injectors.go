//go:build wireinject
// +build wireinject

package di

import (
	"forumcfg/internal"
	"forumcfg/internal/providers"
	"forumcfg/internal/services"
	"forumcfg/internal/snapshot"
	"forumcfg/internal/storage"
	"forumcfg/internal/structures"

	wire "github.com/google/wire"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewRunInfo,

		storage.NewZstdCompressor,
		storage.NewExporter,
		snapshot.NewLoader,
		services.NewAdaptationService,
		wire.Bind(new(services.AdaptationServiceInterface), new(*services.AdaptationService)),
		internal.NewApp,
	)

	return nil, nil
}
