package submitter_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mspdirect/internal/msp/mapper"
	"mspdirect/internal/msp/metrics"
	"mspdirect/internal/msp/models"
	"mspdirect/internal/msp/submitter"
	"mspdirect/internal/msp/wire"
	domainerrors "mspdirect/pkg/domain-errors"
	"mspdirect/pkg/testutil"

	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
)

// fakeTransport records calls and fails uploads for the configured
// attachment UUIDs. Safe for the concurrent upload fan-out.
type fakeTransport struct {
	mu              sync.Mutex
	uploads         []submitter.AttachmentUpload
	submits         []submitter.DocumentSubmit
	failUploads     map[string]error
	submitResponse  *wire.Response
	submitErr       error
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{
		failUploads:    map[string]error{},
		submitResponse: &wire.Response{ReferenceNumber: "1234567890", Status: "0"},
	}
}

func (f *fakeTransport) UploadAttachment(_ context.Context, req submitter.AttachmentUpload) (*wire.Response, error) {
	f.mu.Lock()
	f.uploads = append(f.uploads, req)
	f.mu.Unlock()

	if err, ok := f.failUploads[req.AttachmentUUID]; ok {
		return nil, err
	}
	return &wire.Response{Status: "200"}, nil
}

func (f *fakeTransport) SubmitDocument(_ context.Context, req submitter.DocumentSubmit) (*wire.Response, error) {
	f.mu.Lock()
	f.submits = append(f.submits, req)
	f.mu.Unlock()

	if f.submitErr != nil {
		return nil, f.submitErr
	}
	return f.submitResponse, nil
}

func TestSubmit_Success(t *testing.T) {
	transport := newFakeTransport()
	svc := submitter.New(transport, testutil.Logger())

	app := testutil.EnrolmentApplication()
	require.NoError(t, svc.Submit(context.Background(), app))

	assert.Equal(t, "1234567890", app.ReferenceNumber, "reference number written back onto the application")

	require.Len(t, transport.uploads, 1)
	upload := transport.uploads[0]
	assert.Equal(t, app.UUID.String(), upload.ApplicationUUID)
	assert.Equal(t, app.Applicant.Documents[0].UUID.String(), upload.AttachmentUUID)
	assert.Equal(t, "token-abc", upload.Token)
	assert.Equal(t, "image/jpeg", upload.ContentType)
	assert.Equal(t, wire.AttachmentDocumentTypeSupport, upload.DocumentType)
	assert.Equal(t, []byte("id-card"), upload.Body)

	require.Len(t, transport.submits, 1)
	assert.Equal(t, app.UUID.String(), transport.submits[0].ApplicationUUID)
	assert.Contains(t, string(transport.submits[0].Body), "<ns2:application")
}

func TestSubmit_NoAttachments(t *testing.T) {
	transport := newFakeTransport()
	svc := submitter.New(transport, testutil.Logger())

	app := testutil.AssistanceApplication()
	require.NoError(t, svc.Submit(context.Background(), app))

	assert.Empty(t, transport.uploads, "no uploads for an application without attachments")
	assert.Len(t, transport.submits, 1)
}

func TestSubmit_UploadFailureAbortsDocumentSubmit(t *testing.T) {
	transport := newFakeTransport()
	svc := submitter.New(transport, testutil.Logger())

	app := testutil.EnrolmentApplication()
	spouse := testutil.Applicant()
	spouse.FirstName = "Noor"
	spouse.Relationship = models.RelationshipSpouse
	spouse.Documents = []models.Image{testutil.JPEGImage("marriage-cert"), testutil.PDFImage("visa")}
	app.Spouse = &spouse

	failed := spouse.Documents[0]
	transport.failUploads[failed.UUID.String()] = domainerrors.New(domainerrors.CodeTransport, "intake returned 500")

	err := svc.Submit(context.Background(), app)
	require.Error(t, err)

	var subErr *submitter.Error
	require.ErrorAs(t, err, &subErr)
	assert.Equal(t, submitter.StageUploadingAttachments, subErr.Stage)
	assert.Equal(t, domainerrors.CodeTransport, domainerrors.CodeOf(err))

	assert.Empty(t, transport.submits, "document must not be submitted after a failed upload")
	assert.Empty(t, app.ReferenceNumber)
	// Siblings are not cancelled, so every upload is still attempted.
	assert.Len(t, transport.uploads, 3)
}

func TestSubmit_MissingToken(t *testing.T) {
	transport := newFakeTransport()
	svc := submitter.New(transport, testutil.Logger())

	app := testutil.EnrolmentApplication()
	app.AuthorizationToken = "   "

	err := svc.Submit(context.Background(), app)
	require.Error(t, err)

	var subErr *submitter.Error
	require.ErrorAs(t, err, &subErr)
	assert.Equal(t, submitter.StageMapping, subErr.Stage)
	assert.Equal(t, domainerrors.CodePrecondition, domainerrors.CodeOf(err))

	assert.Empty(t, transport.uploads, "no network activity without a token")
	assert.Empty(t, transport.submits)
}

func TestSubmit_MappingFailure(t *testing.T) {
	transport := newFakeTransport()
	svc := submitter.New(transport, testutil.Logger())

	app := testutil.EnrolmentApplication()
	app.Applicant.Documents[0].ContentType = "image/gif"

	err := svc.Submit(context.Background(), app)
	require.Error(t, err)

	var subErr *submitter.Error
	require.ErrorAs(t, err, &subErr)
	assert.Equal(t, submitter.StageMapping, subErr.Stage)
	assert.ErrorIs(t, err, mapper.ErrUnsupportedContentType)

	assert.Empty(t, transport.uploads)
	assert.Empty(t, transport.submits)
}

func TestSubmit_DocumentSubmitFailure(t *testing.T) {
	transport := newFakeTransport()
	transport.submitErr = domainerrors.New(domainerrors.CodeDecode, "malformed response")
	svc := submitter.New(transport, testutil.Logger())

	app := testutil.EnrolmentApplication()

	err := svc.Submit(context.Background(), app)
	require.Error(t, err)

	var subErr *submitter.Error
	require.ErrorAs(t, err, &subErr)
	assert.Equal(t, submitter.StageSubmittingDocument, subErr.Stage)
	assert.Equal(t, domainerrors.CodeDecode, domainerrors.CodeOf(err))
	assert.Empty(t, app.ReferenceNumber)
}

func TestSubmit_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewWith(reg)

	transport := newFakeTransport()
	svc := submitter.New(transport, testutil.Logger(), submitter.WithMetrics(m))

	require.NoError(t, svc.Submit(context.Background(), testutil.EnrolmentApplication()))

	app := testutil.EnrolmentApplication()
	app.AuthorizationToken = ""
	require.Error(t, svc.Submit(context.Background(), app))

	assert.Equal(t, float64(1), promtestutil.ToFloat64(m.SubmissionsTotal.WithLabelValues("completed")))
	assert.Equal(t, float64(1), promtestutil.ToFloat64(m.SubmissionsTotal.WithLabelValues("failed")))
	assert.Equal(t, float64(1), promtestutil.ToFloat64(m.AttachmentsUploadedTotal))
}
