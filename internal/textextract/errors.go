package textextract

import "fmt"

// UnsupportedFormatError is returned when the declared document format is neither pdf nor docx.
// The caller has to resubmit the document in a supported format.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported document format %q: only pdf and docx are allowed", e.Format)
}

// ExtractionError is returned when the document bytes cannot be read as the declared format:
// a corrupt container, an encrypted PDF or a parser failure.
type ExtractionError struct {
	Format Format
	Reason string
	Err    error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("extracting text from %s: %s: %v", e.Format, e.Reason, e.Err)
	}
	return fmt.Sprintf("extracting text from %s: %s", e.Format, e.Reason)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}
