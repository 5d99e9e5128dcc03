// Package codec serializes wire documents for the MSP intake service and
// decodes its responses.
//
// The legacy service requires the document root to be namespace-qualified as
// ns2:application and the payload to open with a fixed XML declaration. The
// original client patched the serialized string after the fact; here the
// serializer emits the qualified root directly and a golden test pins the
// exact byte shape the service expects.
package codec

import (
	"encoding/xml"

	"mspdirect/internal/msp/wire"
	domainerrors "mspdirect/pkg/domain-errors"
)

// NamespaceURI qualifies the document root element.
const NamespaceURI = "http://www.gov.bc.ca/hibc/applicationTypes"

const xmlDeclaration = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`

// EncodeDocument renders the document as the declaration followed by the
// ns2-qualified application element.
func EncodeDocument(doc *wire.Document) ([]byte, error) {
	app := doc.Application
	app.XMLNS = NamespaceURI

	body, err := xml.Marshal(app)
	if err != nil {
		return nil, domainerrors.Wrap(domainerrors.CodeInternal, "encode application document", err)
	}
	return append([]byte(xmlDeclaration), body...), nil
}

// DecodeResponse unwraps the service's response envelope into a typed
// response. The envelope's namespace prefix is not constrained; only the
// local element name matters.
func DecodeResponse(data []byte) (*wire.Response, error) {
	var resp wire.Response
	if err := xml.Unmarshal(data, &resp); err != nil {
		return nil, domainerrors.Wrap(domainerrors.CodeDecode, "decode intake response", err)
	}
	return &resp, nil
}
