package ingestion

import "fmt"

// UnsupportedTypeError is returned when a document's sniffed MIME type has no extractor
type UnsupportedTypeError struct {
	Source   string
	MIMEType string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported document type %s for %s", e.MIMEType, e.Source)
}

// ExtractionError wraps a failure while pulling text out of a document
type ExtractionError struct {
	Source string
	Format string
	Cause  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract %s text from %s: %v", e.Format, e.Source, e.Cause)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
