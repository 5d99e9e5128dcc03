package codec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mspdirect/internal/msp/wire"
)

// The intake service is byte-picky about the declaration and the qualified
// root, so the minimal document shape is pinned exactly.
func TestEncodeDocumentGoldenShape(t *testing.T) {
	doc := &wire.Document{
		Application: wire.Application{
			UUID: "c3b6f9e0-6a54-4aa5-b6ef-8f29e7f0a001",
		},
	}

	out, err := EncodeDocument(doc)
	require.NoError(t, err)

	golden := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<ns2:application xmlns:ns2="http://www.gov.bc.ca/hibc/applicationTypes">` +
		`<uuid>c3b6f9e0-6a54-4aa5-b6ef-8f29e7f0a001</uuid>` +
		`</ns2:application>`
	assert.Equal(t, golden, string(out))
}

func TestEncodeDocumentSections(t *testing.T) {
	doc := &wire.Document{
		Application: wire.Application{
			UUID: "c3b6f9e0-6a54-4aa5-b6ef-8f29e7f0a002",
			EnrolmentApplication: &wire.EnrolmentApplication{
				Applicant: wire.Applicant{
					Name:      wire.Name{FirstName: "Ada", LastName: "Bowen"},
					Residency: wire.NewResidency(),
				},
			},
			Attachments: &wire.Attachments{},
		},
	}

	out, err := EncodeDocument(doc)
	require.NoError(t, err)
	s := string(out)

	assert.Contains(t, s, "<enrolmentApplication>")
	assert.Contains(t, s, "<firstName>Ada</firstName>")
	// Y/N defaults baked in by NewResidency survive encoding.
	assert.Contains(t, s, "<hasPreviousCoverage>N</hasPreviousCoverage>")
	assert.Contains(t, s, "<beenOutsideBCMoreThan>N</beenOutsideBCMoreThan>")
	assert.Contains(t, s, "<isFullTimeStudent>N</isFullTimeStudent>")
	// Present-but-empty attachments section, required on the enrolment path.
	assert.Contains(t, s, "<attachments></attachments>")
	assert.NotContains(t, s, "<assistanceApplication>")
}

func TestDecodeResponse(t *testing.T) {
	payload := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<ns2:response xmlns:ns2="http://www.gov.bc.ca/hibc/applicationTypes">` +
		`<referenceNumber>1234567890</referenceNumber>` +
		`<status>0</status>` +
		`</ns2:response>`

	resp, err := DecodeResponse([]byte(payload))
	require.NoError(t, err)
	assert.Equal(t, "1234567890", resp.ReferenceNumber)
	assert.Equal(t, "0", resp.Status)
}

func TestDecodeResponseRoundTrip(t *testing.T) {
	ref := "9876543210"
	payload := `<ns2:response xmlns:ns2="http://www.gov.bc.ca/hibc/applicationTypes">` +
		`<referenceNumber>` + ref + `</referenceNumber></ns2:response>`

	resp, err := DecodeResponse([]byte(payload))
	require.NoError(t, err)
	assert.Equal(t, ref, resp.ReferenceNumber)
}

func TestDecodeResponseMalformed(t *testing.T) {
	_, err := DecodeResponse([]byte(`{"referenceNumber": "not xml"}`))
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "decode intake response"))
}
