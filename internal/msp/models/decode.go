package models

import (
	"encoding/json"
	"io"

	domainerrors "mspdirect/pkg/domain-errors"
)

// ParseKind constructs a Kind from external input.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindEnrolment:
		return KindEnrolment, nil
	case KindAssistance:
		return KindAssistance, nil
	default:
		return "", domainerrors.Newf(domainerrors.CodeInvalidInput, "unknown application kind %q", s)
	}
}

// DecodeApplication reads a JSON-encoded application of the given kind.
// Used by the CLI to load a model produced by the form wizard.
func DecodeApplication(kind Kind, r io.Reader) (Application, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	switch kind {
	case KindEnrolment:
		var app EnrolmentApplication
		if err := dec.Decode(&app); err != nil {
			return nil, domainerrors.Wrap(domainerrors.CodeInvalidInput, "decode enrolment application", err)
		}
		return &app, nil
	case KindAssistance:
		var app AssistanceApplication
		if err := dec.Decode(&app); err != nil {
			return nil, domainerrors.Wrap(domainerrors.CodeInvalidInput, "decode assistance application", err)
		}
		return &app, nil
	default:
		return nil, domainerrors.Newf(domainerrors.CodeInvalidInput, "unknown application kind %q", kind)
	}
}
