package internal

import (
	"fmt"
	"io"
	"time"

	"forumcfg/internal/forum"
	"forumcfg/internal/models"
	"forumcfg/internal/providers"
	"forumcfg/internal/services"
	"forumcfg/internal/snapshot"
	"forumcfg/internal/storage/interfaces"
	"forumcfg/internal/structures"
)

type App struct {
	conf       *structures.Config
	run        *structures.RunInfo
	logger     providers.Logger
	metrics    providers.MetricsProviderInterface
	compressor interfaces.CompressorInterface
	loader     *snapshot.Loader
	service    services.AdaptationServiceInterface
	exporter   interfaces.ExporterInterface
}

func NewApp(conf *structures.Config, run *structures.RunInfo, logger providers.Logger, metrics providers.MetricsProviderInterface, compressor interfaces.CompressorInterface, loader *snapshot.Loader, service services.AdaptationServiceInterface, exporter interfaces.ExporterInterface) *App {
	return &App{
		conf:       conf,
		run:        run,
		logger:     logger,
		metrics:    metrics,
		compressor: compressor,
		loader:     loader,
		service:    service,
		exporter:   exporter,
	}
}

// Adapt runs the whole pipeline. Nothing is exported unless every stage
// before it succeeded.
func (a *App) Adapt() error {
	a.logger.Infof(providers.TypeApp, "Starting %s run %s", a.conf.AppName, a.run.ID)
	defer a.flushMetrics()

	sudo, err := models.ParseAccountID(a.conf.Forum.Sudo)
	if err != nil {
		return fmt.Errorf("forum sudo: %w", err)
	}

	data, err := a.load()
	if err != nil {
		return err
	}

	cfg, _, err := a.service.Adapt(data, sudo)
	if err != nil {
		a.logger.Errorf(providers.TypeApp, "Run %s aborted: %s", a.run.ID, err)
		return err
	}

	start := time.Now()
	err = a.exporter.Export(cfg)
	a.metrics.ObserveStageDuration(services.StageExport, time.Since(start))
	if err != nil {
		a.logger.Errorf(providers.TypeExport, "Export to %s failed: %s", a.conf.Output.Path, err)
		return fmt.Errorf("export: %w", err)
	}

	a.logger.Infof(providers.TypeApp, "Run %s finished in %s", a.run.ID, time.Since(a.run.StartedAt).Round(time.Millisecond))
	return nil
}

// Inspect loads and checks the snapshot, printing a summary to w.
func (a *App) Inspect(w io.Writer) error {
	data, err := a.load()
	if err != nil {
		return err
	}

	report, inspectErr := a.service.Inspect(data)
	reg := forum.BuildIdentityRegistry(data.Categories, data.Threads, data.Posts)

	fmt.Fprintf(w, "Snapshot %s\n", a.conf.Input.Path)
	fmt.Fprintf(w, "  Categories:     %d\n", report.Categories)
	fmt.Fprintf(w, "  Threads:        %d\n", report.Threads)
	fmt.Fprintf(w, "  Posts:          %d\n", report.Posts)
	fmt.Fprintf(w, "  Max depth:      %d (limit %d)\n", report.MaxDepth, forum.MaxCategoryDepth)
	fmt.Fprintf(w, "  Forum users:    %d\n", reg.ForumUsers.Len())
	fmt.Fprintf(w, "  Moderators:     %d\n", reg.Moderators.Len())
	if len(report.Problems) > 0 {
		fmt.Fprintf(w, "  Problems:       %d\n", len(report.Problems))
		for _, p := range report.Problems {
			fmt.Fprintf(w, "    - %s\n", p)
		}
	}
	return inspectErr
}

func (a *App) Close() {
	a.compressor.Close()
	a.logger.Close()
}

func (a *App) load() (*models.ForumData, error) {
	start := time.Now()
	data, err := a.loader.Load(a.conf.Input.Path)
	a.metrics.ObserveStageDuration(services.StageLoad, time.Since(start))
	if err != nil {
		a.logger.Errorf(providers.TypeSnapshot, "Unable to load snapshot: %s", err)
		return nil, err
	}
	a.logger.Debugf(providers.TypeSnapshot, "Loaded snapshot %s", a.conf.Input.Path)
	return data, nil
}

func (a *App) flushMetrics() {
	if err := a.metrics.Flush(); err != nil {
		a.logger.Errorf(providers.TypeMetrics, "Unable to write metrics: %s", err)
	}
}
