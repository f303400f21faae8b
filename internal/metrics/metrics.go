package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Results used as label values. ResultMisconfigured marks runs that failed
// on server setup, such as a taxonomy without the default category.
const (
	ResultOK            = "ok"
	ResultUnavailable   = "unavailable"
	ResultMalformed     = "malformed"
	ResultInvalid       = "invalid"
	ResultFailed        = "failed"
	ResultMisconfigured = "misconfigured"
)

// Metrics tracks list generation and item mutations. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	Generations        *prometheus.CounterVec
	GenerationDuration prometheus.Histogram
	ItemMutations      *prometheus.CounterVec
	OptimisticRollback *prometheus.CounterVec
}

// New registers all metrics on reg. Pass prometheus.DefaultRegisterer in
// production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Generations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "listic_list_generations_total",
			Help: "Recipe-to-list generation runs by result",
		}, []string{"result"}),
		GenerationDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "listic_list_generation_duration_seconds",
			Help:    "Duration of recipe-to-list generation including the extraction call",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 40},
		}),
		ItemMutations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "listic_item_mutations_total",
			Help: "Item add/update/delete operations by result",
		}, []string{"op", "result"}),
		OptimisticRollback: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "listic_optimistic_rollbacks_total",
			Help: "Optimistic cache patches undone after a failed remote write",
		}, []string{"op"}),
	}
}

// ObserveGeneration records one generation run.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveGeneration(start time.Time, result string) {
	if m == nil {
		return
	}
	m.Generations.WithLabelValues(result).Inc()
	m.GenerationDuration.Observe(time.Since(start).Seconds())
}

// IncrementItemMutation records one item write.
func (m *Metrics) IncrementItemMutation(op, result string) {
	if m == nil {
		return
	}
	m.ItemMutations.WithLabelValues(op, result).Inc()
}

// IncrementRollback records one restored cache snapshot.
func (m *Metrics) IncrementRollback(op string) {
	if m == nil {
		return
	}
	m.OptimisticRollback.WithLabelValues(op).Inc()
}
