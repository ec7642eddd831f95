package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/pacificaeng/submittalflow/internal/models"
	"github.com/pacificaeng/submittalflow/internal/render"
)

// Fetcher supplies raw source-document bytes for a retrieval address.
// Implemented by fetch.Fetcher; tests substitute fakes.
type Fetcher interface {
	Fetch(ctx context.Context, address string) ([]byte, error)
}

// Error-page messages. Fetch and parse failures share one user-facing text;
// the log record carries the distinguishing cause.
const (
	msgDocumentNotLoaded = "Document could not be loaded"
	msgProcessingFailed  = "Document processing failed"
)

// Assembler runs the packet pipeline: cover sheet, then per document a
// divider plus its content (or error placeholders), then the one final
// numbering pass. Documents are processed strictly sequentially in input
// order; failures are absorbed at three granularities (per page, per
// document load, per document catch-all) so one bad document can never abort
// the packet.
type Assembler struct {
	fetcher  Fetcher
	renderer *render.Renderer
}

// NewAssembler creates an Assembler from its two collaborators.
func NewAssembler(fetcher Fetcher, renderer *render.Renderer) *Assembler {
	return &Assembler{fetcher: fetcher, renderer: renderer}
}

// Assemble produces the finished packet for one request. The only error
// returns are whole-run failures (cover rendering, merge, numbering); every
// per-document problem degrades to an error page inside the packet.
func (a *Assembler) Assemble(ctx context.Context, req *models.AssemblePacketRequest) (*models.PacketResult, error) {
	logCtx := slog.With("projectName", req.Project.ProjectName, "documentCount", len(req.Documents))
	logCtx.Info("Starting packet assembly.")

	comp := NewCompositeDocument()

	cover, err := a.renderer.CoverPage(req.Project)
	if err != nil {
		return nil, fmt.Errorf("failed to render cover page: %w", err)
	}
	comp.AppendPage(cover)

	for i, ref := range req.Documents {
		a.appendDocument(ctx, logCtx.With("documentId", ref.ID, "position", i+1), comp, ref)
	}

	pdf, err := comp.Finalize()
	if err != nil {
		return nil, fmt.Errorf("failed to finalize packet: %w", err)
	}

	result := &models.PacketResult{
		Filename:  models.PacketFilename(req.Project.ProjectName),
		PageCount: comp.PageCount(),
		PDF:       pdf,
	}
	logCtx.Info("Packet assembly complete.", "pageCount", result.PageCount, "filename", result.Filename)
	return result, nil
}

// appendDocument contributes one document's divider plus content to the
// composite. It never returns an error: anything unexpected, including
// panics out of the PDF layer, is recovered here and substituted with a
// single generic error page so the remaining documents still process.
func (a *Assembler) appendDocument(ctx context.Context, logCtx *slog.Logger, comp *CompositeDocument, ref models.DocumentReference) {
	defer func() {
		if rec := recover(); rec != nil {
			logCtx.Error("Recovered from unexpected failure while processing document.", "panic", rec)
			a.appendErrorPage(logCtx, comp, ref.Name, msgProcessingFailed)
		}
	}()

	divider, err := a.renderer.DividerPage(ref.Name, ref.Category, comp.PageCount()+1)
	if err != nil {
		logCtx.Error("Failed to render divider page.", "error", err)
		a.appendErrorPage(logCtx, comp, ref.Name, msgProcessingFailed)
		return
	}
	comp.AppendPage(divider)

	data, err := a.fetcher.Fetch(ctx, ref.Address)
	if err != nil {
		logCtx.Warn("Source document unavailable.", "error", err)
		a.appendErrorPage(logCtx, comp, ref.Name, msgDocumentNotLoaded)
		return
	}

	a.copySourcePages(logCtx, comp, ref, data)
}

// copySourcePages parses one fetched document and copies its pages into the
// composite in original order. Copying each page is an independent operation:
// a page that cannot be extracted is replaced by one error page identifying
// its position, and its siblings still transfer.
func (a *Assembler) copySourcePages(logCtx *slog.Logger, comp *CompositeDocument, ref models.DocumentReference, data []byte) {
	conf := newPDFConfig()
	source := bytes.NewReader(data)

	total, err := api.PageCount(source, conf)
	if err != nil || total == 0 {
		logCtx.Warn("Source document could not be parsed.", "error", err, "bytes", len(data))
		a.appendErrorPage(logCtx, comp, ref.Name, msgDocumentNotLoaded)
		return
	}

	for page := 1; page <= total; page++ {
		if _, err := source.Seek(0, io.SeekStart); err != nil {
			logCtx.Warn("Failed to rewind source document.", "page", page, "error", err)
			a.appendErrorPage(logCtx, comp, ref.Name, copyFailureMessage(page, total))
			continue
		}

		var buf bytes.Buffer
		if err := api.Trim(source, &buf, []string{strconv.Itoa(page)}, conf); err != nil {
			logCtx.Warn("Failed to copy source page.", "page", page, "error", err)
			a.appendErrorPage(logCtx, comp, ref.Name, copyFailureMessage(page, total))
			continue
		}
		comp.AppendSegment(buf.Bytes(), 1)
	}
}

func copyFailureMessage(page, total int) string {
	return fmt.Sprintf("Page %d of %d could not be copied", page, total)
}

func (a *Assembler) appendErrorPage(logCtx *slog.Logger, comp *CompositeDocument, docName, message string) {
	page, err := a.renderer.ErrorPage(docName, message)
	if err != nil {
		// Nothing left to substitute; the packet loses this placeholder.
		logCtx.Error("Failed to render error page.", "error", err)
		return
	}
	comp.AppendPage(page)
}
