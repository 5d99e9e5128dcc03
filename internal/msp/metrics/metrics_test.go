package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveSubmission(t *testing.T) {
	m := NewWith(prometheus.NewRegistry())

	m.ObserveSubmission("completed")
	m.ObserveSubmission("completed")
	m.ObserveSubmission("failed")

	assert.Equal(t, float64(2), testutil.ToFloat64(m.SubmissionsTotal.WithLabelValues("completed")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.SubmissionsTotal.WithLabelValues("failed")))
}

func TestObserveAttachmentUpload(t *testing.T) {
	m := NewWith(prometheus.NewRegistry())

	m.ObserveAttachmentUpload(120 * time.Millisecond)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.AttachmentsUploadedTotal))
}
