package metrics

import "github.com/prometheus/client_golang/prometheus"

// LeadMetrics exposes counters/histograms for lead submissions.
type LeadMetrics struct {
	submissionsTotal *prometheus.CounterVec
	webhookLatency   *prometheus.HistogramVec
}

func NewLeadMetrics(reg prometheus.Registerer) *LeadMetrics {
	m := &LeadMetrics{
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dental",
			Subsystem: "leads",
			Name:      "submissions_total",
			Help:      "Total lead submissions by form and outcome",
		}, []string{"form_type", "outcome"}),
		webhookLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "dental",
			Subsystem: "leads",
			Name:      "webhook_latency_seconds",
			Help:      "Latency of the lead webhook POST",
			Buckets:   prometheus.DefBuckets,
		}, []string{"form_type"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.submissionsTotal, m.webhookLatency)
	return m
}

func (m *LeadMetrics) ObserveSubmission(formType, outcome string) {
	if m == nil {
		return
	}
	m.submissionsTotal.WithLabelValues(formType, outcome).Inc()
}

func (m *LeadMetrics) ObserveWebhookLatency(formType string, seconds float64) {
	if m == nil {
		return
	}
	m.webhookLatency.WithLabelValues(formType).Observe(seconds)
}
