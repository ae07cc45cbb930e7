package services

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

// ExtractTextFromPDF concatenates the plain text of every page. Pages that
// fail to parse are skipped rather than aborting the whole document.
func ExtractTextFromPDF(r io.Reader) (string, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return "", fmt.Errorf("reading PDF: %w", err)
	}
	return extractText(buf.Bytes())
}

func extractText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("cannot open PDF reader: %w", err)
	}

	var textBuilder bytes.Buffer
	pages := reader.NumPage()
	for i := 1; i <= pages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		textBuilder.WriteString(content)
	}

	return textBuilder.String(), nil
}

// PDFPageCount reports the number of pages in the document.
func PDFPageCount(data []byte) (int, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, fmt.Errorf("cannot open PDF reader: %w", err)
	}
	return reader.NumPage(), nil
}

// Truncate caps text at max bytes without splitting a rune; AI prompts carry
// a fixed character budget. Invalid bytes already present in the extracted
// text pass through untouched.
func Truncate(text string, max int) string {
	if len(text) <= max {
		return text
	}
	if max < 0 {
		max = 0
	}
	cut := max
	// Back up only when the cut lands inside a multi-byte rune.
	for cut > 0 && cut > max-utf8.UTFMax && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}
