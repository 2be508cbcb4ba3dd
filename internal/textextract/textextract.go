// Package textextract converts résumé documents into plain text.
package textextract

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv"
	"github.com/ledongthuc/pdf"
)

// Format is the declared type of a RawDocument.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
)

// RawDocument is the caller-owned input of a single extraction call.
type RawDocument struct {
	Data   []byte
	Format string
}

// ExtractedText holds one segment per page (PDF) or paragraph (DOCX) in document order.
type ExtractedText struct {
	Segments []string
}

// String joins the segments with newline separators.
func (t ExtractedText) String() string {
	return strings.Join(t.Segments, "\n")
}

// ParseFormat validates a format tag. Tags are case-insensitive and may carry a leading dot.
func ParseFormat(tag string) (Format, error) {
	cleaned := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(tag)), ".")
	switch Format(cleaned) {
	case FormatPDF:
		return FormatPDF, nil
	case FormatDOCX:
		return FormatDOCX, nil
	default:
		return "", &UnsupportedFormatError{Format: tag}
	}
}

// FormatFromFilename returns the format tag implied by the file extension.
func FormatFromFilename(name string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
}

// Extract returns the text of the document. It fails with *UnsupportedFormatError or *ExtractionError.
func Extract(doc RawDocument) (ExtractedText, error) {
	format, err := ParseFormat(doc.Format)
	if err != nil {
		return ExtractedText{}, err
	}

	if len(doc.Data) == 0 {
		return ExtractedText{}, &ExtractionError{Format: format, Reason: "document is empty"}
	}

	switch format {
	case FormatPDF:
		return extractPDF(doc.Data)
	default:
		return extractDOCX(doc.Data)
	}
}

func extractPDF(data []byte) (text ExtractedText, err error) {
	// The pdf reader panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			text = ExtractedText{}
			err = &ExtractionError{Format: FormatPDF, Reason: "malformed document", Err: fmt.Errorf("%v", r)}
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		if errors.Is(err, pdf.ErrInvalidPassword) {
			return ExtractedText{}, &ExtractionError{Format: FormatPDF, Reason: "document is encrypted", Err: err}
		}
		return ExtractedText{}, &ExtractionError{Format: FormatPDF, Reason: "failed to read pdf", Err: err}
	}

	numPages := reader.NumPage()
	segments := make([]string, 0, numPages)
	for i := 1; i <= numPages; i++ {
		segments = append(segments, pageText(reader.Page(i)))
	}

	return ExtractedText{Segments: segments}, nil
}

// pageText never fails: a page without extractable text yields an empty segment.
func pageText(page pdf.Page) string {
	if page.V.IsNull() {
		return ""
	}
	text, err := page.GetPlainText(nil)
	if err != nil {
		return ""
	}
	return text
}

func extractDOCX(data []byte) (text ExtractedText, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ExtractedText{}
			err = &ExtractionError{Format: FormatDOCX, Reason: "malformed document", Err: fmt.Errorf("%v", r)}
		}
	}()

	body, _, err := docconv.ConvertDocx(bytes.NewReader(data))
	if err != nil {
		return ExtractedText{}, &ExtractionError{Format: FormatDOCX, Reason: "failed to read docx", Err: err}
	}

	var paragraphs []string
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		paragraphs = append(paragraphs, line)
	}

	return ExtractedText{Segments: paragraphs}, nil
}
