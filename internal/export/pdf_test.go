package export

import (
	"bytes"
	"testing"

	"SketchBoard/internal/render"
	"SketchBoard/internal/rough"
	"SketchBoard/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ render.Surface = (*Surface)(nil)

func TestExportPDF(t *testing.T) {
	f := state.NewFactory(rough.NewGenerator())

	var els []state.Element
	for _, k := range []state.Kind{state.KindLine, state.KindRectangle, state.KindEllipse} {
		el, err := f.Create(string(k), k, 10, 10, 120, 80, state.Options{StrokeColor: "black", StrokeWidth: 1, Roughness: 1, Seed: 5})
		require.NoError(t, err)
		els = append(els, el)
	}

	fd, err := f.Create("fd", state.KindFreedraw, 0, 0, 0, 0, state.Options{StrokeColor: "red", StrokeWidth: 1})
	require.NoError(t, err)
	fd, err = f.Update(fd, state.UpdateOptions{X2: 40, Y2: 60, Pressure: 0.5})
	require.NoError(t, err)

	txt, err := f.Create("t", state.KindText, 20, 20, 20, 20, state.Options{StrokeColor: "blue", StrokeWidth: 1})
	require.NoError(t, err)
	txt, err = f.Update(txt, state.UpdateOptions{X1: 20, Y1: 20, X2: 80, Y2: 35, Text: "note", Font: "15px sans-serif"})
	require.NoError(t, err)

	els = append(els, fd, txt)

	var buf bytes.Buffer
	require.NoError(t, ExportPDF(&buf, render.New(rough.NewCanvas()), els, 400, 300))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestExportEmptyCanvas(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportPDF(&buf, render.New(rough.NewCanvas()), nil, 100, 100))
	assert.NotZero(t, buf.Len())
}
