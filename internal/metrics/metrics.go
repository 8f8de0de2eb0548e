package metrics

import "github.com/prometheus/client_golang/prometheus"

// Lead intake outcomes
const (
	OutcomeAccepted  = "accepted"
	OutcomeRejected  = "rejected"
	OutcomeSpam      = "spam"
	OutcomeMalformed = "malformed"
)

// Dispatch results
const (
	DispatchSent    = "sent"
	DispatchFailed  = "failed"
	DispatchSkipped = "skipped"
)

// LeadMetrics exposes counters for lead intake and notification dispatch.
// A nil *LeadMetrics is valid and records nothing.
type LeadMetrics struct {
	leadsTotal    *prometheus.CounterVec
	dispatchTotal *prometheus.CounterVec
}

func NewLeadMetrics(reg prometheus.Registerer) *LeadMetrics {
	m := &LeadMetrics{
		leadsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "leads",
			Name:      "received_total",
			Help:      "Lead submissions by intake outcome",
		}, []string{"outcome"}),
		dispatchTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "leads",
			Name:      "dispatch_total",
			Help:      "Lead notification dispatches by result",
		}, []string{"status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.leadsTotal, m.dispatchTotal)
	return m
}

func (m *LeadMetrics) ObserveLead(outcome string) {
	if m == nil {
		return
	}
	m.leadsTotal.WithLabelValues(outcome).Inc()
}

func (m *LeadMetrics) ObserveDispatch(status string) {
	if m == nil {
		return
	}
	m.dispatchTotal.WithLabelValues(status).Inc()
}
