package svgpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToSVGPath(t *testing.T) {
	p := mustParse(t, "M 0 0 L 10 0 Q 15 5 10 10 Z")
	assert.Equal(t,
		"M0.000,0.000 L10.000,0.000 Q15.000,5.000,10.000,10.000 L0.000,0.000",
		p.ToSVGPath())

	// the normalized form parses back to the same operations
	assert.Equal(t, p, mustParse(t, p.ToSVGPath()))
}

func TestPathRecordsDrawerCalls(t *testing.T) {
	var p Path
	p.Start(Point{X: 1, Y: 1})
	p.Line(Point{X: 2, Y: 1})
	p.QuadBezier(Point{X: 3, Y: 1}, Point{X: 3, Y: 2})
	p.CubeBezier(Point{X: 3, Y: 3}, Point{X: 2, Y: 3}, Point{X: 1, Y: 3})
	p.Stop(true)
	p.Stop(false) // records nothing

	require.Len(t, p, 5)
	assert.Equal(t, Close{}, p[4])

	// replaying on a fresh path reproduces the operations
	var rec Path
	p.AddTo(&rec)
	assert.Equal(t, p, rec)

	p.Clear()
	assert.Empty(t, p)
}

func TestAddRect(t *testing.T) {
	var p Path
	p.AddRect(0, 0, 4, 2)
	assert.Equal(t, Path{
		MoveTo{X: 0, Y: 0},
		LineTo{X: 4, Y: 0},
		LineTo{X: 4, Y: 2},
		LineTo{X: 0, Y: 2},
		Close{},
	}, p)
}

func TestAddRoundRect(t *testing.T) {
	var p Path
	p.AddRoundRect(0, 0, 10, 10, 2, 2)
	require.Len(t, p, 10) // a move, four sides, four corner arcs, a close
	assert.Equal(t, MoveTo{X: 2, Y: 0}, p[0])
	assert.Equal(t, QuadTo{{X: 10, Y: 0}, {X: 10, Y: 2}}, p[2])
	assert.Equal(t, Close{}, p[9])

	// degenerate radii fall back to a plain rectangle
	var q Path
	q.AddRoundRect(0, 0, 10, 10, 0, 2)
	assert.Equal(t, MoveTo{X: 0, Y: 0}, q[0])
}

func TestAddPolygon(t *testing.T) {
	pts := []Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 2, Y: 3}}
	var p Path
	p.AddPolygon(pts)
	assert.Equal(t, Path{
		MoveTo{X: 0, Y: 0},
		LineTo{X: 4, Y: 0},
		LineTo{X: 2, Y: 3},
		Close{},
	}, p)

	// too few points add nothing
	var q Path
	q.AddPolyline(pts[:1])
	assert.Empty(t, q)
}
