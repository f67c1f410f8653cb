package providers

import (
	"time"

	"forumcfg/internal/structures"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type MetricsProviderInterface interface {
	SetIdentities(role string, count int)
	SetEntities(kind string, count int)
	SetConstraintViolations(field string, count int)
	ObserveStageDuration(stage string, duration time.Duration)
	Flush() error
}

type MetricsProvider struct {
	registry             *prometheus.Registry
	textfile             string
	identities           *prometheus.GaugeVec
	entities             *prometheus.GaugeVec
	constraintViolations *prometheus.GaugeVec
	stageDuration        *prometheus.HistogramVec
}

func (m *MetricsProvider) SetIdentities(role string, count int) {
	m.identities.WithLabelValues(role).Set(float64(count))
}

func (m *MetricsProvider) SetEntities(kind string, count int) {
	m.entities.WithLabelValues(kind).Set(float64(count))
}

func (m *MetricsProvider) SetConstraintViolations(field string, count int) {
	m.constraintViolations.WithLabelValues(field).Set(float64(count))
}

func (m *MetricsProvider) ObserveStageDuration(stage string, duration time.Duration) {
	m.stageDuration.WithLabelValues(stage).Observe(duration.Seconds())
}

// Flush writes the registry in text exposition format for the node_exporter
// textfile collector. A run has no HTTP endpoint to scrape.
func (m *MetricsProvider) Flush() error {
	if m.textfile == "" {
		return nil
	}
	return prometheus.WriteToTextfile(m.textfile, m.registry)
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &MetricsProvider{
		registry: reg,
		textfile: conf.Metrics.Textfile,

		identities: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "forumcfg_identities",
			Help: "Numeric identities assigned per role",
		}, []string{"role"}),

		entities: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "forumcfg_entities",
			Help: "Entities written to the genesis config per kind",
		}, []string{"kind"}),

		constraintViolations: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "forumcfg_constraint_violations",
			Help: "Legacy texts violating the new length constraints per field",
		}, []string{"field"}),

		stageDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "forumcfg_stage_duration_seconds",
			Help:    "Duration of each pipeline stage in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"stage"}),
	}
}

// noopMetrics is a no-op implementation for when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) SetIdentities(_ string, _ int)                  {}
func (n *noopMetrics) SetEntities(_ string, _ int)                    {}
func (n *noopMetrics) SetConstraintViolations(_ string, _ int)        {}
func (n *noopMetrics) ObserveStageDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) Flush() error                                   { return nil }
