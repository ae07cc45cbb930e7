package services

import (
	"bytes"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// PreviewPageCount is how much of a note an unsubscribed student may see.
const PreviewPageCount = 2

// PreviewPDF builds a new document containing at most the first maxPages
// pages of the input. Documents already within the limit pass through
// untouched.
func PreviewPDF(data []byte, maxPages int) ([]byte, error) {
	if maxPages < 1 {
		return nil, fmt.Errorf("preview needs at least one page")
	}

	total, err := PDFPageCount(data)
	if err != nil {
		return nil, err
	}
	if total <= maxPages {
		return data, nil
	}

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	var out bytes.Buffer
	if err := api.Trim(bytes.NewReader(data), &out, []string{PageSelection(total, maxPages)}, conf); err != nil {
		return nil, fmt.Errorf("trimming PDF preview: %w", err)
	}
	return out.Bytes(), nil
}

// PageSelection renders the pdfcpu page selector for the first min(total,
// maxPages) pages.
func PageSelection(total, maxPages int) string {
	last := maxPages
	if total < last {
		last = total
	}
	if last <= 1 {
		return "1"
	}
	return fmt.Sprintf("1-%d", last)
}
