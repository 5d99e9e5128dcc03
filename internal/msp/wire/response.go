package wire

import "encoding/xml"

// Response is the intake service's reply envelope payload. Document submits
// return it as XML under a namespaced response element; attachment uploads
// synthesize one from the HTTP status code.
type Response struct {
	XMLName         xml.Name `xml:"response"`
	ReferenceNumber string   `xml:"referenceNumber,omitempty"`
	Status          string   `xml:"status,omitempty"`
	Message         string   `xml:"message,omitempty"`
}
