// Package submitter drives the end-to-end submission transaction: map the
// domain model to a wire document, upload every attachment, then submit the
// document and write the issued reference number back onto the model.
package submitter

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"mspdirect/internal/msp/codec"
	"mspdirect/internal/msp/mapper"
	"mspdirect/internal/msp/metrics"
	"mspdirect/internal/msp/models"
	"mspdirect/internal/msp/wire"
	domainerrors "mspdirect/pkg/domain-errors"
)

// Service submits applications to the MSP intake service. A Service is
// stateless across calls; each Submit owns its own pipeline state.
type Service struct {
	transport Transport
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

type Option func(*Service)

// WithMetrics attaches submission metrics. Metrics are optional; a nil
// receiver is never observed.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func New(transport Transport, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{transport: transport, logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit runs one submission transaction. On success the caller's
// application carries the server-issued reference number — the single
// mutation this core performs on caller-owned state. On failure the returned
// *Error names the stage that failed; nothing is retried and already
// accepted attachments are not rolled back.
func (s *Service) Submit(ctx context.Context, app models.Application) error {
	if err := s.submit(ctx, app); err != nil {
		s.observe("failed")
		return err
	}
	s.observe("completed")
	return nil
}

func (s *Service) submit(ctx context.Context, app models.Application) error {
	base := app.Base()

	doc, err := mapper.Document(app)
	if err != nil {
		return failedAt(StageMapping, err)
	}

	// Token check runs after mapping but before any network activity.
	if strings.TrimSpace(base.AuthorizationToken) == "" {
		return failedAt(StageMapping,
			domainerrors.New(domainerrors.CodePrecondition, "missing authorization token"))
	}

	images := app.AllImages()
	if err := s.uploadAttachments(ctx, base, images); err != nil {
		return failedAt(StageUploadingAttachments, err)
	}

	return s.submitDocument(ctx, base, doc)
}

// uploadAttachments fans out one concurrent upload per attachment and joins
// on the first error. Siblings are deliberately not cancelled when one
// upload fails: the plain errgroup issues no cancellation signal, so
// in-flight uploads run to completion and their results are discarded.
func (s *Service) uploadAttachments(ctx context.Context, base *models.ApplicationBase, images []models.Image) error {
	if len(images) == 0 {
		return nil
	}

	var g errgroup.Group
	for _, img := range images {
		img := img
		g.Go(func() error {
			return s.uploadAttachment(ctx, base, img)
		})
	}
	return g.Wait()
}

func (s *Service) uploadAttachment(ctx context.Context, base *models.ApplicationBase, img models.Image) error {
	body, err := img.Bytes()
	if err != nil {
		return domainerrors.Wrap(domainerrors.CodeInvalidInput, "decode attachment content", err)
	}

	start := time.Now()
	resp, err := s.transport.UploadAttachment(ctx, AttachmentUpload{
		Token:           base.AuthorizationToken,
		ApplicationUUID: base.UUID.String(),
		AttachmentUUID:  img.UUID.String(),
		ContentType:     img.ContentType,
		Size:            img.Size,
		DocumentType:    wire.AttachmentDocumentTypeSupport,
		Body:            body,
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "attachment upload failed",
			"application_uuid", base.UUID,
			"attachment_uuid", img.UUID,
			"error", err,
		)
		return err
	}

	if s.metrics != nil {
		s.metrics.ObserveAttachmentUpload(time.Since(start))
	}
	s.logger.DebugContext(ctx, "attachment uploaded",
		"application_uuid", base.UUID,
		"attachment_uuid", img.UUID,
		"status", resp.Status,
	)
	return nil
}

func (s *Service) submitDocument(ctx context.Context, base *models.ApplicationBase, doc *wire.Document) error {
	body, err := codec.EncodeDocument(doc)
	if err != nil {
		return failedAt(StageSubmittingDocument, err)
	}

	resp, err := s.transport.SubmitDocument(ctx, DocumentSubmit{
		Token:           base.AuthorizationToken,
		ApplicationUUID: base.UUID.String(),
		Body:            body,
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "document submit failed",
			"application_uuid", base.UUID,
			"error", err,
		)
		return failedAt(StageSubmittingDocument, err)
	}

	base.ReferenceNumber = resp.ReferenceNumber
	s.logger.InfoContext(ctx, "application submitted",
		"application_uuid", base.UUID,
		"reference_number", resp.ReferenceNumber,
	)
	return nil
}

func (s *Service) observe(outcome string) {
	if s.metrics != nil {
		s.metrics.ObserveSubmission(outcome)
	}
}
