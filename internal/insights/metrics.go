package insights

import (
	"net/http"
	"time"

	"github.com/IsaacDSC/hotelhook/internal/domain"
	"github.com/IsaacDSC/hotelhook/pkg/httpadapter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "hotelhook"

const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// Recorder counts extraction paths and delivery outcomes.
type Recorder struct {
	registry    *prometheus.Registry
	extractions *prometheus.CounterVec
	deliveries  *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		extractions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "extractions_total",
			Help:      "Task extractions by path (structured, heuristic, model) and outcome.",
		}, []string{"path", "outcome"}),
		deliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deliveries_total",
			Help:      "Telegram deliveries by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "webhook_duration_seconds",
			Help:      "Webhook handling time by response status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"status"}),
	}

	r.registry.MustRegister(
		r.extractions,
		r.deliveries,
		r.duration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return r
}

func (r *Recorder) Extracted(path string, ok bool) {
	outcome := OutcomeOK
	if !ok {
		outcome = OutcomeFailed
	}
	r.extractions.WithLabelValues(path, outcome).Inc()
}

func (r *Recorder) Delivered(d domain.Delivery) {
	r.deliveries.WithLabelValues(DeliveryOutcome(d)).Inc()
}

func (r *Recorder) Observed(status int, started time.Time) {
	r.duration.WithLabelValues(http.StatusText(status)).Observe(time.Since(started).Seconds())
}

func DeliveryOutcome(d domain.Delivery) string {
	switch {
	case d.OK:
		return OutcomeOK
	case d.Error == domain.DeliveryRejected:
		return OutcomeRejected
	default:
		return OutcomeFailed
	}
}

func GetMetricsHandler(r *Recorder) httpadapter.HttpHandle {
	h := promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
	return httpadapter.HttpHandle{
		Path:    "GET /metrics",
		Handler: h.ServeHTTP,
	}
}
