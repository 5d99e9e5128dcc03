// Package intake implements the submitter's Transport against the MSP
// intake service's HTTP API.
package intake

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"mspdirect/internal/msp/codec"
	"mspdirect/internal/msp/submitter"
	"mspdirect/internal/msp/wire"
	domainerrors "mspdirect/pkg/domain-errors"
)

const programArea = "enrolment"

// Client is a thin resty wrapper around the two intake endpoints. It holds
// read-only configuration and is safe for concurrent use across uploads.
type Client struct {
	http   *resty.Client
	logger *slog.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &Client{
		http:   httpClient,
		logger: logger,
	}
}

// UploadAttachment POSTs one attachment's raw bytes to
// /MSPDESubmitAttachment/{applicationUUID}/attachment/{attachmentUUID}.
// The intake service keys the upload off the query parameters; the response
// body is empty, so the typed response is synthesized from the HTTP status.
func (c *Client) UploadAttachment(ctx context.Context, req submitter.AttachmentUpload) (*wire.Response, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"programArea":            programArea,
			"attachmentDocumentType": req.DocumentType,
			"contentType":            req.ContentType,
			"imageSize":              strconv.FormatInt(req.Size, 10),
		}).
		SetHeader("Content-Type", req.ContentType).
		SetHeader("Access-Control-Allow-Origin", "*").
		SetHeader("X-Authorization", "Bearer "+req.Token).
		SetBody(req.Body).
		SetPathParams(map[string]string{
			"applicationUUID": req.ApplicationUUID,
			"attachmentUUID":  req.AttachmentUUID,
		}).
		Post("/MSPDESubmitAttachment/{applicationUUID}/attachment/{attachmentUUID}")
	if err != nil {
		return nil, domainerrors.Wrap(domainerrors.CodeTransport, "upload attachment", err)
	}
	if resp.IsError() {
		return nil, c.errorFromResponse("upload attachment", resp)
	}

	return &wire.Response{Status: strconv.Itoa(resp.StatusCode())}, nil
}

// SubmitDocument POSTs the serialized wire document to
// /MSPDESubmitApplication/{applicationUUID} and decodes the XML response.
func (c *Client) SubmitDocument(ctx context.Context, req submitter.DocumentSubmit) (*wire.Response, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("programArea", programArea).
		SetHeader("Content-Type", "application/xml").
		SetHeader("X-Authorization", "Bearer "+req.Token).
		SetBody(req.Body).
		SetPathParam("applicationUUID", req.ApplicationUUID).
		Post("/MSPDESubmitApplication/{applicationUUID}")
	if err != nil {
		return nil, domainerrors.Wrap(domainerrors.CodeTransport, "submit document", err)
	}
	if resp.IsError() {
		return nil, c.errorFromResponse("submit document", resp)
	}

	decoded, err := codec.DecodeResponse(resp.Body())
	if err != nil {
		return nil, err
	}
	return decoded, nil
}

// errorFromResponse builds a transport error from a non-2xx reply,
// surfacing a structured error body when the service sent one.
func (c *Client) errorFromResponse(op string, resp *resty.Response) error {
	c.logger.Error("intake request rejected",
		"operation", op,
		"status_code", resp.StatusCode(),
	)

	if decoded, err := codec.DecodeResponse(resp.Body()); err == nil && decoded.Message != "" {
		return domainerrors.Newf(domainerrors.CodeTransport, "%s: intake returned %d: %s",
			op, resp.StatusCode(), decoded.Message)
	}
	return domainerrors.Newf(domainerrors.CodeTransport, "%s: intake returned %d",
		op, resp.StatusCode())
}
