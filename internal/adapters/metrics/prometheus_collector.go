package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/spacerover/spacerover-go/internal/application/simulation"
)

const (
	// Namespace for all metrics
	namespace = "spacerover"
	// Subsystem for gameplay metrics
	subsystem = "game"
)

// Registry is the global Prometheus registry for all metrics. It stays nil
// while metrics are disabled.
var Registry *prometheus.Registry

// InitRegistry initializes the Prometheus registry
// Should be called once at application startup if metrics are enabled
func InitRegistry() {
	Registry = prometheus.NewRegistry()
}

// GetRegistry returns the global Prometheus registry
// Returns nil if metrics are not initialized
func GetRegistry() *prometheus.Registry {
	return Registry
}

// IsEnabled returns true if metrics collection is enabled
func IsEnabled() bool {
	return Registry != nil
}

// register adds collectors to the global registry, if there is one
func register(collectors ...prometheus.Collector) error {
	if Registry == nil {
		return nil // Metrics not enabled
	}
	for _, c := range collectors {
		if err := Registry.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// GameMetrics records everything a simulation session reports
type GameMetrics struct {
	*RaceMetricsCollector
	*CommandMetricsCollector
}

var _ simulation.MetricsRecorder = (*GameMetrics)(nil)

// NewGameMetrics creates the race and command collectors
func NewGameMetrics() *GameMetrics {
	return &GameMetrics{
		RaceMetricsCollector:    NewRaceMetricsCollector(),
		CommandMetricsCollector: NewCommandMetricsCollector(),
	}
}

// Register registers both collectors with the global registry
func (m *GameMetrics) Register() error {
	if err := m.RaceMetricsCollector.Register(); err != nil {
		return err
	}
	return m.CommandMetricsCollector.Register()
}
