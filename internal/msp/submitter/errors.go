package submitter

// Stage identifies where in the submission pipeline a failure occurred.
// One submission moves Mapping → UploadingAttachments → SubmittingDocument;
// the first failing stage aborts the rest.
type Stage string

const (
	StageMapping              Stage = "mapping"
	StageUploadingAttachments Stage = "uploading_attachments"
	StageSubmittingDocument   Stage = "submitting_document"
)

// Error annotates a submission failure with the stage it occurred at. The
// underlying cause carries a domain-errors code for finer classification
// (precondition, transport, decode).
type Error struct {
	Stage Stage
	Err   error
}

func (e *Error) Error() string {
	return "submission failed at " + string(e.Stage) + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

func failedAt(stage Stage, err error) *Error {
	return &Error{Stage: stage, Err: err}
}
