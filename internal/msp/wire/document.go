package wire

import "encoding/xml"

// AttachmentDocumentTypeSupport is the fixed document-type tag for every
// attachment. The form wizard never collects a document type, so everything
// is submitted as a supporting document.
const AttachmentDocumentTypeSupport = "SupportDocument"

// Document is the root of one submission. It is created, populated,
// serialized, and discarded within a single submission call.
type Document struct {
	Application Application
}

// Application is the document root element. Exactly one of
// EnrolmentApplication or AssistanceApplication is populated, determined by
// the domain application kind.
//
// The element name carries the ns2 prefix expected by the legacy intake
// service; the codec fills XMLNS at encode time so the prefix resolves.
type Application struct {
	XMLName xml.Name `xml:"ns2:application"`
	XMLNS   string   `xml:"xmlns:ns2,attr,omitempty"`

	UUID string `xml:"uuid"`

	EnrolmentApplication  *EnrolmentApplication  `xml:"enrolmentApplication,omitempty"`
	AssistanceApplication *AssistanceApplication `xml:"assistanceApplication,omitempty"`

	Attachments *Attachments `xml:"attachments,omitempty"`
}

// Attachments wraps the attachment list. A nil *Attachments omits the
// section entirely; a non-nil value with an empty slice emits an empty one.
// The two application kinds rely on that distinction.
type Attachments struct {
	Attachment []Attachment `xml:"attachment"`
}

type Attachment struct {
	AttachmentDocumentType string `xml:"attachmentDocumentType,omitempty"`
	AttachmentUUID         string `xml:"attachmentUuid,omitempty"`
	ContentType            string `xml:"contentType,omitempty"`
	Description            string `xml:"description,omitempty"`
}
