// Package render generates the synthetic pages of a submittal packet: the
// cover sheet, the section dividers, and the error placeholders. Each call
// produces exactly one US Letter page as a standalone PDF; the assembler owns
// ordering and merging.
package render

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// Brand holds the fixed organization constants printed on generated pages.
// It is injected at construction so tests can substitute their own values.
type Brand struct {
	Header       string
	SectionBadge string
	OrgName      string
	OrgAddress   string
	OrgPhone     string
	SupportEmail string
	Version      string
}

// Renderer draws packet pages. It carries no mutable state; every method is
// self-contained and safe to call in any order.
type Renderer struct {
	brand Brand
}

// New creates a Renderer with the given brand constants.
func New(brand Brand) *Renderer {
	return &Renderer{brand: brand}
}

func newLetterPage() *fpdf.Fpdf {
	doc := fpdf.New("P", "pt", "Letter", "")
	doc.SetAutoPageBreak(false, 0)
	doc.SetMargins(0, 0, 0)
	doc.AddPage()
	return doc
}

func output(doc *fpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize rendered page: %w", err)
	}
	return buf.Bytes(), nil
}

// checkRow is one checkbox line: its label and whether the box is marked.
type checkRow struct {
	Label   string
	Checked bool
}

// drawCheckbox draws one checkbox glyph with its label. Checked boxes get a
// filled interior with a mark; the label always renders.
func drawCheckbox(doc *fpdf.Fpdf, x, y float64, row checkRow) {
	doc.SetDrawColor(40, 40, 40)
	doc.SetLineWidth(0.8)
	doc.Rect(x, y, checkboxSize, checkboxSize, "D")
	if row.Checked {
		doc.SetFillColor(40, 40, 40)
		doc.Rect(x+1.5, y+1.5, checkboxSize-3, checkboxSize-3, "F")
		doc.SetFont("Helvetica", "B", 7)
		doc.SetTextColor(255, 255, 255)
		doc.Text(x+2.3, y+7.2, "X")
	}
	doc.SetFont("Helvetica", "", 9)
	doc.SetTextColor(0, 0, 0)
	doc.Text(x+checkboxSize+6, y+7.5, row.Label)
}
