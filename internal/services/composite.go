package services

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// newPDFConfig returns the pdfcpu configuration used throughout the pipeline.
// Validation is relaxed: submitted documents come from many authoring tools
// and strict validation rejects real-world files that still merge cleanly.
func newPDFConfig() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}

// pageNumberStampDesc fixes the footer stamp geometry: small Helvetica,
// anchored bottom-right, absolute scale so source page sizes don't distort it.
const pageNumberStampDesc = "font:Helvetica, points:9, scale:1 abs, pos:br, off:-40 24, rot:0"

// CompositeDocument is the single output artifact being assembled: an ordered,
// append-only sequence of PDF segments. It is owned exclusively by one
// assembly run, mutated only by appends, serialized once, then discarded.
type CompositeDocument struct {
	segments [][]byte
	pages    int
}

// NewCompositeDocument creates an empty composite document.
func NewCompositeDocument() *CompositeDocument {
	return &CompositeDocument{}
}

// AppendPage appends one single-page segment (a rendered cover, divider, or
// error page, or one copied source page).
func (c *CompositeDocument) AppendPage(page []byte) {
	c.AppendSegment(page, 1)
}

// AppendSegment appends a PDF segment spanning pageCount pages.
func (c *CompositeDocument) AppendSegment(pdf []byte, pageCount int) {
	c.segments = append(c.segments, pdf)
	c.pages += pageCount
}

// PageCount reports the number of pages appended so far.
func (c *CompositeDocument) PageCount() int {
	return c.pages
}

// Finalize merges the segments in append order, runs the page-numbering pass
// over the merged result, and returns the serialized packet. It must be
// called exactly once, after all content has been appended.
func (c *CompositeDocument) Finalize() ([]byte, error) {
	if len(c.segments) == 0 {
		return nil, fmt.Errorf("composite document has no pages")
	}

	readers := make([]io.ReadSeeker, len(c.segments))
	for i, seg := range c.segments {
		readers[i] = bytes.NewReader(seg)
	}

	var merged bytes.Buffer
	if err := api.MergeRaw(readers, &merged, false, newPDFConfig()); err != nil {
		return nil, fmt.Errorf("failed to merge packet segments: %w", err)
	}

	numbered, err := StampPageNumbers(merged.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to number packet pages: %w", err)
	}
	return numbered, nil
}

// StampPageNumbers draws a right-aligned footer number on every page of pdf,
// using the page's 1-based absolute position. Because the numeral is resolved
// from final position rather than incremented, re-running the pass reproduces
// the same numbers.
func StampPageNumbers(pdf []byte) ([]byte, error) {
	wm, err := api.TextWatermark("%p", pageNumberStampDesc, true, false, types.POINTS)
	if err != nil {
		return nil, fmt.Errorf("failed to build page number stamp: %w", err)
	}

	var out bytes.Buffer
	if err := api.AddWatermarks(bytes.NewReader(pdf), &out, nil, wm, newPDFConfig()); err != nil {
		return nil, fmt.Errorf("failed to stamp page numbers: %w", err)
	}
	return out.Bytes(), nil
}
