package directory

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts where employee data came from and how logins ended.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	fetches *prometheus.CounterVec
	logins  *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		fetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "idcard",
			Subsystem: "directory",
			Name:      "fetches_total",
			Help:      "Employee lookups by the source that answered them.",
		}, []string{"source"}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "idcard",
			Subsystem: "directory",
			Name:      "logins_total",
			Help:      "Login attempts by result.",
		}, []string{"result"}),
	}
	reg.MustRegister(m.fetches, m.logins)
	return m
}

func (m *Metrics) observeFetch(source Source) {
	if m == nil {
		return
	}
	m.fetches.WithLabelValues(string(source)).Inc()
}

func (m *Metrics) observeLogin(ok bool) {
	if m == nil {
		return
	}
	result := "failure"
	if ok {
		result = "success"
	}
	m.logins.WithLabelValues(result).Inc()
}
