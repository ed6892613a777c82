// Package export writes a canvas snapshot to a vector PDF page.
package export

import (
	"image/color"
	"io"
	"log"

	"SketchBoard/internal/raster"
	"SketchBoard/internal/render"
	"SketchBoard/internal/state"

	"github.com/jung-kurt/gofpdf"
)

// ascent approximates the distance from the top of a Helvetica line to its
// baseline, as a fraction of the font size.
const ascent = 0.8

// Surface implements render.Surface on a gofpdf document. Units are points,
// so one canvas pixel maps to one point.
type Surface struct {
	pdf      *gofpdf.Fpdf
	fontSize float64
}

// NewSurface starts a one-page document of the given size.
func NewSurface(width, height float64) *Surface {
	p := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: width, Ht: height},
	})
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.AddPage()
	p.SetFont("Helvetica", "", raster.DefaultFontSize)
	return &Surface{pdf: p, fontSize: raster.DefaultFontSize}
}

func rgb(c color.Color) (int, int, int) {
	r, g, b, _ := c.RGBA()
	return int(r >> 8), int(g >> 8), int(b >> 8)
}

func (s *Surface) Push() { s.pdf.TransformBegin() }
func (s *Surface) Pop()  { s.pdf.TransformEnd() }

func (s *Surface) SetStrokeColor(c color.Color) { s.pdf.SetDrawColor(rgb(c)) }

func (s *Surface) SetFillColor(c color.Color) {
	s.pdf.SetFillColor(rgb(c))
	s.pdf.SetTextColor(rgb(c))
}

func (s *Surface) SetLineWidth(w float64)           { s.pdf.SetLineWidth(w) }
func (s *Surface) MoveTo(x, y float64)              { s.pdf.MoveTo(x, y) }
func (s *Surface) LineTo(x, y float64)              { s.pdf.LineTo(x, y) }
func (s *Surface) QuadraticTo(cx, cy, x, y float64) { s.pdf.CurveTo(cx, cy, x, y) }
func (s *Surface) ClosePath()                       { s.pdf.ClosePath() }
func (s *Surface) Stroke()                          { s.pdf.DrawPath("D") }
func (s *Surface) Fill()                            { s.pdf.DrawPath("F") }
func (s *Surface) Translate(x, y float64)           { s.pdf.TransformTranslate(x, y) }

func (s *Surface) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	s.pdf.CurveBezierCubicTo(c1x, c1y, c2x, c2y, x, y)
}

// Scale takes factors; gofpdf expects percentages.
func (s *Surface) Scale(sx, sy float64) {
	s.pdf.TransformScale(sx*100, sy*100, 0, 0)
}

// SetFont uses Helvetica at the size named in desc.
func (s *Surface) SetFont(desc string) {
	s.fontSize = raster.FontSize(desc)
	s.pdf.SetFont("Helvetica", "", s.fontSize)
}

// FillText draws text with its top edge at y.
func (s *Surface) FillText(text string, x, y float64) {
	if text == "" {
		return
	}
	s.pdf.Text(x, y+s.fontSize*ascent, text)
}

// Write renders the document to w.
func (s *Surface) Write(w io.Writer) error {
	return s.pdf.Output(w)
}

// ExportPDF renders elements onto a page of the given size and writes it to
// w. Elements keep their canvas coordinates; the view transform is not
// applied.
func ExportPDF(w io.Writer, r *render.Renderer, elements []state.Element, width, height float64) error {
	s := NewSurface(width, height)
	for _, el := range elements {
		r.Draw(s, el)
	}
	if err := s.Write(w); err != nil {
		return err
	}
	log.Printf("[EXPORT] Wrote %d elements to PDF", len(elements))
	return nil
}
