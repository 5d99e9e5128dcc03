package submitter

import (
	"context"

	"mspdirect/internal/msp/wire"
)

// Transport performs the two outbound calls a submission needs. The
// production implementation lives in the intake package; tests inject fakes.
// Retries, timeouts, and connection handling belong to the transport, not to
// the orchestrator.
type Transport interface {
	UploadAttachment(ctx context.Context, req AttachmentUpload) (*wire.Response, error)
	SubmitDocument(ctx context.Context, req DocumentSubmit) (*wire.Response, error)
}

// AttachmentUpload carries one attachment to the intake service.
type AttachmentUpload struct {
	Token           string
	ApplicationUUID string
	AttachmentUUID  string
	ContentType     string
	Size            int64
	DocumentType    string
	Body            []byte
}

// DocumentSubmit carries the serialized wire document.
type DocumentSubmit struct {
	Token           string
	ApplicationUUID string
	Body            []byte
}
