package folio

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// metrics holds the application counters, registered on a per-App registry.
type metrics struct {
	registry *prometheus.Registry
	chat     *prometheus.CounterVec
	contact  *prometheus.CounterVec
	saves    *prometheus.CounterVec
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		chat: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "folio_chat_requests_total",
			Help: "Chat requests by outcome.",
		}, []string{"outcome"}),
		contact: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "folio_contact_submissions_total",
			Help: "Contact form submissions by outcome.",
		}, []string{"outcome"}),
		saves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "folio_document_saves_total",
			Help: "Document saves by outcome.",
		}, []string{"outcome"}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.chat, m.contact, m.saves,
	)
	return m
}
