package game

import (
	"time"

	"github.com/annel0/hexvoxel/internal/world"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics - Prometheus-метрики сессии.
// Нулевой указатель допустим: методы ничего не делают.
type Metrics struct {
	transitions  *prometheus.CounterVec
	dropped      prometheus.Counter
	fills        *prometheus.CounterVec
	tickDuration prometheus.Histogram
}

// NewMetrics создаёт метрики и регистрирует их в reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hexvoxel",
			Name:      "layer_transitions_total",
			Help:      "Выполненные переходы между слоями.",
		}, []string{"to"}),
		dropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "hexvoxel",
			Name:      "transitions_dropped_total",
			Help:      "Переходы, отброшенные правилом последнего события в тике.",
		}),
		fills: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hexvoxel",
			Name:      "chunk_fills_total",
			Help:      "Заполнения воксельного чанка по тегу местности.",
		}, []string{"terrain"}),
		tickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "hexvoxel",
			Name:      "tick_duration_seconds",
			Help:      "Длительность одного тика сессии.",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05},
		}),
	}

	reg.MustRegister(m.transitions, m.dropped, m.fills, m.tickDuration)
	return m
}

func (m *Metrics) transitioned(to Layer) {
	if m == nil {
		return
	}
	m.transitions.WithLabelValues(to.String()).Inc()
}

func (m *Metrics) droppedTransitions(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.dropped.Add(float64(n))
}

func (m *Metrics) chunkFilled(t world.Terrain) {
	if m == nil {
		return
	}
	m.fills.WithLabelValues(t.String()).Inc()
}

func (m *Metrics) observeTick(d time.Duration) {
	if m == nil {
		return
	}
	m.tickDuration.Observe(d.Seconds())
}
