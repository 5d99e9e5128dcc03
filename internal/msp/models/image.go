package models

import (
	"encoding/base64"
	"strings"

	"github.com/google/uuid"
)

// Image is one supporting document captured by the form wizard: identity,
// content type, byte size, and the base64-encoded content. The content may
// carry a browser-style "data:<mime>;base64," prefix.
type Image struct {
	UUID        uuid.UUID `json:"uuid"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	FileContent string    `json:"file_content"`
}

// Bytes decodes the image content into raw bytes, stripping a data URI
// prefix when present.
func (i Image) Bytes() ([]byte, error) {
	payload := i.FileContent
	if strings.HasPrefix(payload, "data:") {
		if idx := strings.Index(payload, ","); idx >= 0 {
			payload = payload[idx+1:]
		}
	}
	return base64.StdEncoding.DecodeString(payload)
}
