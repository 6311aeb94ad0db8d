// Package ingestion extracts plain text from uploaded resume and job
// description documents (PDF, DOCX, HTML, plain text). It is a collaborator
// in front of the engine: the engine itself only ever sees extracted text.
package ingestion

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// SupportedExtension reports whether the file extension is one we can
// extract text from.
func SupportedExtension(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf", ".docx", ".doc", ".html", ".htm", ".txt", ".md":
		return true
	default:
		return false
	}
}

// ExtractText reads a document and returns its plain text, dispatching on the
// file extension. Unsupported extensions are an error; a readable document
// with no text content yields an empty string, which downstream scoring
// treats as degenerate input rather than a failure.
func ExtractText(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return extractPDF(data)
	case ".docx", ".doc":
		return extractDOCX(data)
	case ".html", ".htm":
		return extractHTML(data)
	case ".txt", ".md":
		return CleanText(string(data)), nil
	default:
		return "", fmt.Errorf("unsupported file type: %s", filepath.Ext(filename))
	}
}

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue // skip unextractable pages, keep the rest
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	return CleanText(b.String()), nil
}

func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	return CleanText(stripXMLTags(content)), nil
}

// stripXMLTags drops raw WordprocessingML markup, keeping text runs separated
// by spaces.
func stripXMLTags(content string) string {
	var b strings.Builder
	inTag := false
	for _, r := range content {
		switch {
		case r == '<':
			inTag = true
			b.WriteByte(' ')
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func extractHTML(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to parse html: %w", err)
	}
	doc.Find("script, style, noscript").Remove()
	return CleanText(doc.Find("body").Text()), nil
}

// ExtractFromReader is ExtractText for streaming sources like multipart
// uploads.
func ExtractFromReader(filename string, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}
	return ExtractText(filename, data)
}
