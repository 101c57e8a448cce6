// Package pdfcheck is the client-side gate in front of resume uploads:
// only PDFs up to 10 MB ever reach the wire. It can also extract a local
// plain-text preview, the client-side counterpart of the backend's
// asynchronous extraction.
package pdfcheck

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// MaxUploadSize mirrors the backend's 10 MB resume limit.
const MaxUploadSize = 10 << 20

// Validate rejects non-PDF and oversized files before any network call.
func Validate(path string) error {
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return fmt.Errorf("only PDF files can be uploaded (got %q)", filepath.Base(path))
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat resume file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%q is a directory, not a PDF file", filepath.Base(path))
	}
	if info.Size() > MaxUploadSize {
		return fmt.Errorf("file is %.1f MB; the upload limit is 10 MB", float64(info.Size())/(1<<20))
	}
	return nil
}

// Preview extracts up to maxRunes of plain text from the PDF locally.
// The pdf library panics on some malformed files, so that is trapped and
// returned as an error.
func Preview(path string, maxRunes int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("extract text from %q: %v", filepath.Base(path), r)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open PDF: %w", err)
	}
	defer f.Close()

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract text: %w", err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", fmt.Errorf("read extracted text: %w", err)
	}

	text = strings.TrimSpace(buf.String())
	if maxRunes > 0 {
		runes := []rune(text)
		if len(runes) > maxRunes {
			text = string(runes[:maxRunes]) + "…"
		}
	}
	return text, nil
}
