// Package raster implements render.Surface on top of fogleman/gg so frames
// can be shown as images by the UI.
package raster

import (
	"image"
	"image/color"
	"log"
	"regexp"
	"strconv"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFontSize is used when a font descriptor carries no pixel size.
const DefaultFontSize = 20

var fontSizePattern = regexp.MustCompile(`(\d+(?:\.\d+)?)px`)

var (
	regularOnce sync.Once
	regular     *truetype.Font
	regularErr  error

	facesMu sync.Mutex
	faces   = make(map[float64]font.Face)
)

func regularFont() (*truetype.Font, error) {
	regularOnce.Do(func() {
		regular, regularErr = truetype.Parse(goregular.TTF)
	})
	return regular, regularErr
}

// Surface draws into an RGBA image.
type Surface struct {
	dc   *gg.Context
	fill color.Color
	line color.Color
}

// New returns a Surface of the given pixel size cleared to background.
func New(width, height int, background color.Color) *Surface {
	dc := gg.NewContext(width, height)
	dc.SetColor(background)
	dc.Clear()

	s := &Surface{
		dc:   dc,
		fill: color.Black,
		line: color.Black,
	}
	s.applyColors()
	return s
}

// Image returns the rendered frame.
func (s *Surface) Image() image.Image { return s.dc.Image() }

func (s *Surface) applyColors() {
	s.dc.SetFillStyle(gg.NewSolidPattern(s.fill))
	s.dc.SetStrokeStyle(gg.NewSolidPattern(s.line))
}

func (s *Surface) Push() { s.dc.Push() }
func (s *Surface) Pop()  { s.dc.Pop() }

func (s *Surface) SetStrokeColor(c color.Color) {
	s.line = c
	s.applyColors()
}

func (s *Surface) SetFillColor(c color.Color) {
	s.fill = c
	s.applyColors()
}

func (s *Surface) SetLineWidth(w float64)           { s.dc.SetLineWidth(w) }
func (s *Surface) MoveTo(x, y float64)              { s.dc.MoveTo(x, y) }
func (s *Surface) LineTo(x, y float64)              { s.dc.LineTo(x, y) }
func (s *Surface) QuadraticTo(cx, cy, x, y float64) { s.dc.QuadraticTo(cx, cy, x, y) }
func (s *Surface) ClosePath()                       { s.dc.ClosePath() }
func (s *Surface) Stroke()                          { s.dc.Stroke() }
func (s *Surface) Fill()                            { s.dc.Fill() }
func (s *Surface) Translate(x, y float64)           { s.dc.Translate(x, y) }
func (s *Surface) Scale(sx, sy float64)             { s.dc.Scale(sx, sy) }

func (s *Surface) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	s.dc.CubicTo(c1x, c1y, c2x, c2y, x, y)
}

// SetFont selects the built-in face at the pixel size named in desc, e.g.
// "21px Virgil". The family part is ignored.
func (s *Surface) SetFont(desc string) {
	face, err := faceOfSize(FontSize(desc))
	if err != nil {
		log.Printf("[RASTER] Failed to parse font: %v", err)
		return
	}
	s.dc.SetFontFace(face)
}

// faceOfSize returns the shared face for size, creating it on first use.
// Faces outlive a single Surface so every frame reuses them.
func faceOfSize(size float64) (font.Face, error) {
	facesMu.Lock()
	defer facesMu.Unlock()

	if face, ok := faces[size]; ok {
		return face, nil
	}
	f, err := regularFont()
	if err != nil {
		return nil, err
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	faces[size] = face
	return face, nil
}

// FillText draws text with its top edge at y.
func (s *Surface) FillText(text string, x, y float64) {
	if text == "" {
		return
	}
	s.dc.DrawStringAnchored(text, x, y, 0, 1)
}

// FontSize extracts the pixel size from a CSS-like font descriptor.
func FontSize(desc string) float64 {
	m := fontSizePattern.FindStringSubmatch(desc)
	if m == nil {
		return DefaultFontSize
	}
	size, err := strconv.ParseFloat(m[1], 64)
	if err != nil || size <= 0 {
		return DefaultFontSize
	}
	return size
}
