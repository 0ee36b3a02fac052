package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type Metrics struct {
	Registry      *prometheus.Registry
	Registrations *prometheus.CounterVec
	Payments      prometheus.Counter
	PaidAmount    prometheus.Counter
	Prints        *prometheus.CounterVec
	RenderCache   *prometheus.CounterVec
	WsClients     prometheus.Gauge
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		Registrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tambua",
			Name:      "registrations_total",
			Help:      "Registrations recorded by kind.",
		}, []string{"kind"}),
		Payments: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tambua",
			Name:      "fine_payments_total",
			Help:      "Fine payment receipts issued.",
		}),
		PaidAmount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tambua",
			Name:      "fine_paid_amount_cdf_total",
			Help:      "Amount collected through the payment desk, in CDF.",
		}),
		Prints: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tambua",
			Name:      "prints_total",
			Help:      "Documents printed by type.",
		}, []string{"document_type"}),
		RenderCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tambua",
			Name:      "render_cache_total",
			Help:      "Rendered document cache lookups.",
		}, []string{"result"}),
		WsClients: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "tambua",
			Name:      "activity_feed_clients",
			Help:      "Connected activity feed clients.",
		}),
	}

	m.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.Registrations, m.Payments, m.PaidAmount, m.Prints, m.RenderCache, m.WsClients,
	)
	return m
}
