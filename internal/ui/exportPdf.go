package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"SketchBoard/internal/export"
	"SketchBoard/internal/render"
)

// Exporter saves the board's current elements as a PDF page the size of
// the board widget.
type Exporter struct {
	board    *BoardWidget
	renderer *render.Renderer
}

// NewExporter returns an Exporter drawing w's elements with r.
func NewExporter(w *BoardWidget, r *render.Renderer) *Exporter {
	return &Exporter{board: w, renderer: r}
}

// Show asks for a destination file and writes the PDF there.
func (e *Exporter) Show(window fyne.Window) {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, window)
			return
		}
		if writer == nil {
			return
		}
		if err := e.Write(writer); err != nil {
			dialog.ShowError(err, window)
		}
	}, window)
	fd.SetFileName("board.pdf")
	fd.Show()
}

// Write renders the PDF into writer and closes it.
func (e *Exporter) Write(writer fyne.URIWriteCloser) error {
	defer func() {
		if err := writer.Close(); err != nil {
			log.Printf("[UI] Error closing %s: %v", writer.URI(), err)
		}
	}()

	els := e.board.Board().Elements()
	size := e.board.Size()
	if err := export.ExportPDF(writer, e.renderer, els, float64(size.Width), float64(size.Height)); err != nil {
		e.board.SetStatus("Export failed")
		return fmt.Errorf("export %s: %w", writer.URI(), err)
	}
	e.board.SetStatus(fmt.Sprintf("Exported %d elements", len(els)))
	return nil
}
