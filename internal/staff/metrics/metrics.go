package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the staff module.
// Tracks hires, rejections, removals, changes, headcount and operation latency.
type Metrics struct {
	EmployeesHired    prometheus.Counter
	HiresRejected     *prometheus.CounterVec
	EmployeesRemoved  prometheus.Counter
	EmployeesChanged  prometheus.Counter
	Headcount         prometheus.Gauge
	OperationDuration *prometheus.HistogramVec
}

// New creates the staff metrics and registers them on reg. A nil reg uses the
// default Prometheus registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		EmployeesHired: factory.NewCounter(prometheus.CounterOpts{
			Name: "staffbook_employees_hired_total",
			Help: "Total number of employees added to the book",
		}),
		HiresRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "staffbook_hires_rejected_total",
			Help: "Total number of rejected hires by reason",
		}, []string{"reason"}),
		EmployeesRemoved: factory.NewCounter(prometheus.CounterOpts{
			Name: "staffbook_employees_removed_total",
			Help: "Total number of employees removed from the book",
		}),
		EmployeesChanged: factory.NewCounter(prometheus.CounterOpts{
			Name: "staffbook_employees_changed_total",
			Help: "Total number of department or salary changes applied",
		}),
		Headcount: factory.NewGauge(prometheus.GaugeOpts{
			Name: "staffbook_headcount",
			Help: "Number of occupied slots in the book",
		}),
		OperationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "staffbook_operation_duration_seconds",
			Help:    "Duration of book operations (linear scans over every slot)",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		}, []string{"operation"}),
	}
}

// IncrementHired records a successful hire and the resulting headcount.
func (m *Metrics) IncrementHired(headcount int) {
	m.EmployeesHired.Inc()
	m.Headcount.Set(float64(headcount))
}

// IncrementRejected records a hire that did not make it into the book.
func (m *Metrics) IncrementRejected(reason string) {
	m.HiresRejected.WithLabelValues(reason).Inc()
}

// IncrementRemoved records a removal and the resulting headcount.
func (m *Metrics) IncrementRemoved(headcount int) {
	m.EmployeesRemoved.Inc()
	m.Headcount.Set(float64(headcount))
}

// IncrementChanged records an applied change.
func (m *Metrics) IncrementChanged() {
	m.EmployeesChanged.Inc()
}

// ObserveOperation records the duration of a book operation.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveOperation(operation string, start time.Time) {
	m.OperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
