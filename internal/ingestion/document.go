// Package ingestion turns resume and job-description sources (files, raw
// bytes, job posting URLs) into cleaned plain text with metadata.
package ingestion

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/gabriel-vasile/mimetype"
	"github.com/jonathan/resume-analyzer/internal/fetch"
)

// Document is cleaned text ready for analysis
type Document struct {
	Text     string
	Title    string
	Metadata *Metadata
}

// FromFile reads a document from disk and extracts its text
func FromFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %w", err)
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return FromBytes(data, path)
}

// FromBytes sniffs the MIME type of data and extracts its text. Plain text,
// Markdown, HTML, PDF and DOCX are supported.
func FromBytes(data []byte, source string) (doc *Document, err error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return newDocument("", source, "text/plain"), nil
	}

	mtype := mimetype.Detect(data)
	format := formatFor(mtype)
	if format == "" {
		return nil, &UnsupportedTypeError{Source: source, MIMEType: mtype.String()}
	}

	defer func() {
		if r := recover(); r != nil {
			doc, err = nil, &ExtractionError{Source: source, Format: format, Cause: fmt.Errorf("%v", r)}
		}
	}()

	raw, err := extractors[format](data)
	if err != nil {
		return nil, &ExtractionError{Source: source, Format: format, Cause: err}
	}

	doc = newDocument(raw, source, mtype.String())
	if format == formatHTML {
		doc.Title = htmlTitle(string(data))
	}
	slog.Debug("document ingested",
		slog.String("document_id", doc.Metadata.ID.String()),
		slog.String("source", source),
		slog.String("mime_type", doc.Metadata.MIMEType),
		slog.Int("chars", doc.Metadata.Chars))
	return doc, nil
}

// FromURL fetches a job posting and extracts its main text using the
// selectors of the detected job board platform. Non-HTML responses (a
// posting served as PDF, for example) go through FromBytes.
func FromURL(ctx context.Context, urlStr string, opts *fetch.Options) (*Document, error) {
	result, err := fetch.URL(ctx, urlStr, opts)
	if err != nil {
		return nil, err
	}

	body := []byte(result.HTML)
	if formatFor(mimetype.Detect(body)) != formatHTML {
		return FromBytes(body, urlStr)
	}

	content, noise := fetch.PostingSelectors(urlStr)
	text, err := fetch.ExtractMainText(result.HTML, content, noise...)
	if err != nil {
		return nil, &ExtractionError{Source: urlStr, Format: formatHTML, Cause: err}
	}

	doc := newDocument(text, urlStr, "text/html")
	doc.Title = htmlTitle(result.HTML)
	doc.Metadata.Platform = string(fetch.DetectPlatform(urlStr))
	slog.Debug("posting ingested",
		slog.String("document_id", doc.Metadata.ID.String()),
		slog.String("source", urlStr),
		slog.String("platform", doc.Metadata.Platform),
		slog.Int("chars", doc.Metadata.Chars))
	return doc, nil
}

func newDocument(raw, source, mimeType string) *Document {
	text := CleanText(raw)
	return &Document{
		Text:     text,
		Metadata: NewMetadata(text, source, mimeType),
	}
}

// formatFor maps a sniffed MIME type to an extractor, walking up the
// type hierarchy so that text subtypes fall back to plain text.
func formatFor(mtype *mimetype.MIME) string {
	for m := mtype; m != nil; m = m.Parent() {
		switch {
		case m.Is("text/html"):
			return formatHTML
		case m.Is("application/pdf"):
			return formatPDF
		case m.Is("application/vnd.openxmlformats-officedocument.wordprocessingml.document"):
			return formatDOCX
		case m.Is("text/plain"):
			return formatText
		}
	}
	return ""
}
