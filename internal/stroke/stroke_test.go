package stroke

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderOptions(size float64) Options {
	return Options{
		Size:             size,
		Thinning:         0.5,
		Smoothing:        0.5,
		Streamline:       0.5,
		Easing:           Linear,
		SimulatePressure: true,
		Start:            Cap{Cap: true},
		End:              Cap{Cap: true},
	}
}

func TestBounds(t *testing.T) {
	tests := []struct {
		name   string
		points []Point
		want   Size
	}{
		{"empty", nil, Size{}},
		{"single", []Point{{X: 3, Y: 4}}, Size{}},
		{"diagonal", []Point{{X: 0, Y: 0}, {X: 10, Y: 5}}, Size{Width: 10, Height: 5}},
		{"negative extent", []Point{{X: 5, Y: 5}, {X: -5, Y: 8}, {X: 2, Y: -1}}, Size{Width: 10, Height: 9}},
		{"pressure ignored", []Point{{X: 1, Y: 1, Pressure: 9}, {X: 2, Y: 3, Pressure: 0}}, Size{Width: 1, Height: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Bounds(tt.points))
		})
	}
}

func TestBoundsGrowsMonotonically(t *testing.T) {
	walk := []Point{{X: 0, Y: 0}, {X: 4, Y: 1}, {X: -3, Y: 2}, {X: 1, Y: -6}, {X: 2, Y: 2}, {X: 9, Y: 9}}

	var prev Size
	for i := 1; i <= len(walk); i++ {
		got := Bounds(walk[:i])
		assert.GreaterOrEqual(t, got.Width, prev.Width, "width shrank at %d", i)
		assert.GreaterOrEqual(t, got.Height, prev.Height, "height shrank at %d", i)
		prev = got
	}
	assert.Equal(t, Size{Width: 12, Height: 15}, prev)
}

func TestOutlineEmpty(t *testing.T) {
	assert.Empty(t, Outline(nil, renderOptions(8)))
	assert.Empty(t, Outline([]Point{{X: 1, Y: 1}}, renderOptions(0)))
	assert.True(t, StrokeToPath(nil, renderOptions(8)).Empty())
}

func TestOutlineSinglePointIsDot(t *testing.T) {
	poly := Outline([]Point{{X: 50, Y: 50, Pressure: 0.5}}, renderOptions(8))
	require.NotEmpty(t, poly)

	for _, p := range poly {
		assert.False(t, math.IsNaN(p.X) || math.IsNaN(p.Y))
		assert.InDelta(t, 50, p.X, 8)
		assert.InDelta(t, 50, p.Y, 8)
	}
}

func TestOutlineEnclosesStroke(t *testing.T) {
	var pts []Point
	for i := 0; i <= 40; i++ {
		pts = append(pts, Point{X: float64(i) * 5, Y: 100, Pressure: 0.5})
	}

	poly := Outline(pts, renderOptions(16))
	require.NotEmpty(t, poly)

	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, p := range poly {
		require.False(t, math.IsNaN(p.X) || math.IsNaN(p.Y))
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}

	assert.Less(t, minY, 100.0)
	assert.Greater(t, maxY, 100.0)
	// The radius never exceeds three quarters of the size.
	assert.LessOrEqual(t, maxY-minY, 2*0.75*16+0.001)
	assert.Less(t, minX, 10.0)
	assert.Greater(t, maxX, 190.0)
}

func TestToPath(t *testing.T) {
	square := []Vec{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	p := ToPath(square)

	require.Len(t, p.Cmds, len(square)+2)
	assert.Equal(t, Cmd{Op: MoveTo, Args: [4]float64{0, 0}}, p.Cmds[0])
	assert.Equal(t, Cmd{Op: QuadTo, Args: [4]float64{10, 0, 10, 5}}, p.Cmds[2])
	// The last curve wraps back to the midpoint of the closing edge.
	assert.Equal(t, Cmd{Op: QuadTo, Args: [4]float64{0, 10, 0, 5}}, p.Cmds[4])
	assert.Equal(t, Close, p.Cmds[5].Op)
}

func TestCacheInvalidatesOnAppend(t *testing.T) {
	pts := []Point{{X: 0, Y: 0}, {X: 20, Y: 0}, {X: 40, Y: 5}}
	var c Cache

	first := c.Path(pts, renderOptions(8))
	again := c.Path(pts, renderOptions(8))
	require.NotEmpty(t, first.Cmds)
	assert.Same(t, &first.Cmds[0], &again.Cmds[0], "unchanged points must reuse the cached path")

	grown := append(append([]Point(nil), pts...), Point{X: 80, Y: 30})
	next := c.Path(grown, renderOptions(8))
	assert.NotSame(t, &first.Cmds[0], &next.Cmds[0])
	assert.Equal(t, StrokeToPath(grown, renderOptions(8)), next)
}
