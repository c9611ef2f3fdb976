// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "detailing_crm"

// Poll outcomes.
const (
	PollOK       = "ok"
	PollFailed   = "failed"
	PollRejected = "rejected"
	PollStale    = "stale"
)

// Signature counts the tablet signature workflow. A nil *Signature is valid
// and records nothing.
type Signature struct {
	requests    *prometheus.CounterVec
	polls       *prometheus.CounterVec
	terminal    *prometheus.CounterVec
	completions prometheus.Counter
	cancels     *prometheus.CounterVec
}

// NewSignature registers the signature collectors on reg.
func NewSignature(reg prometheus.Registerer) *Signature {
	f := promauto.With(reg)
	return &Signature{
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "signature",
			Name:      "requests_total",
			Help:      "Signature requests sent to the signature service, by result.",
		}, []string{"result"}),
		polls: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "signature",
			Name:      "polls_total",
			Help:      "Signature status polls, by outcome.",
		}, []string{"outcome"}),
		terminal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "signature",
			Name:      "terminal_total",
			Help:      "Signature sessions that reached a terminal status.",
		}, []string{"status"}),
		completions: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "signature",
			Name:      "completion_callbacks_total",
			Help:      "Completion callbacks invoked after a signed document became available.",
		}),
		cancels: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "signature",
			Name:      "cancellations_total",
			Help:      "Signature cancellations, by remote result.",
		}, []string{"result"}),
	}
}

func (m *Signature) Request(ok bool) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(result(ok)).Inc()
}

func (m *Signature) Poll(outcome string) {
	if m == nil {
		return
	}
	m.polls.WithLabelValues(outcome).Inc()
}

func (m *Signature) Terminal(status string) {
	if m == nil {
		return
	}
	m.terminal.WithLabelValues(status).Inc()
}

func (m *Signature) Completed() {
	if m == nil {
		return
	}
	m.completions.Inc()
}

func (m *Signature) Cancel(ok bool) {
	if m == nil {
		return
	}
	m.cancels.WithLabelValues(result(ok)).Inc()
}

func result(ok bool) string {
	if ok {
		return "ok"
	}
	return "error"
}
