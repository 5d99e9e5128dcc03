package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	SubmissionsTotal         *prometheus.CounterVec
	AttachmentsUploadedTotal prometheus.Counter
	AttachmentUploadSeconds  prometheus.Histogram
}

func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith registers the metrics against a caller-supplied registerer, which
// keeps tests isolated from the process-wide default registry.
func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		SubmissionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "msp_submissions_total",
			Help: "Total number of application submissions by outcome",
		}, []string{"outcome"}),
		AttachmentsUploadedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "msp_attachments_uploaded_total",
			Help: "Total number of attachment images uploaded to the intake service",
		}),
		AttachmentUploadSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "msp_attachment_upload_seconds",
			Help:    "Duration of individual attachment uploads",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

func (m *Metrics) ObserveSubmission(outcome string) {
	m.SubmissionsTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveAttachmentUpload(d time.Duration) {
	m.AttachmentsUploadedTotal.Inc()
	m.AttachmentUploadSeconds.Observe(d.Seconds())
}
