package svgicon

import (
	"errors"
	"strings"
	"testing"

	"github.com/Jorge-Gonzalez/svg-paths-to-pixi/svgpath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseIcon(t *testing.T, iconPath string) *SvgIcon {
	t.Helper()
	icon, errSvg := ReadIcon(iconPath, WarnErrorMode)
	if errSvg != nil {
		t.Fatal(errSvg)
	}
	return icon
}

func TestTriangleIcon(t *testing.T) {
	icon := parseIcon(t, "testdata/triangle.svg")
	assert.Equal(t, Bounds{X: 0, Y: 0, W: 20, H: 20}, icon.ViewBox)
	assert.Equal(t, []string{"triangle"}, icon.Titles)
	assert.Equal(t, []string{"a filled triangle"}, icon.Descriptions)

	require.Len(t, icon.Paths, 1)
	assert.Equal(t, svgpath.Path{
		svgpath.MoveTo{X: 2, Y: 18},
		svgpath.LineTo{X: 10, Y: 2},
		svgpath.LineTo{X: 18, Y: 18},
		svgpath.LineTo{X: 2, Y: 18}, // Z compiles to a closing line
	}, icon.Paths[0])
}

func TestShapesIcon(t *testing.T) {
	icon := parseIcon(t, "testdata/shapes.svg")
	// two rects, a line, a polyline and a polygon
	require.Len(t, icon.Paths, 5)

	assert.Equal(t, svgpath.Path{
		svgpath.MoveTo{X: 10, Y: 10},
		svgpath.LineTo{X: 40, Y: 10},
		svgpath.LineTo{X: 40, Y: 30},
		svgpath.LineTo{X: 10, Y: 30},
		svgpath.Close{},
	}, icon.Paths[0])

	// the rounded rect carries quadratic corner arcs
	hasQuad := false
	for _, op := range icon.Paths[1] {
		if _, ok := op.(svgpath.QuadTo); ok {
			hasQuad = true
		}
	}
	assert.True(t, hasQuad)

	assert.Equal(t, svgpath.Path{
		svgpath.MoveTo{X: 0, Y: 50},
		svgpath.LineTo{X: 100, Y: 50},
	}, icon.Paths[2])

	assert.Equal(t, svgpath.Close{}, icon.Paths[4][len(icon.Paths[4])-1])
}

func TestCurvesIcon(t *testing.T) {
	icon := parseIcon(t, "testdata/curves.svg")
	// width/height stand in for a missing viewBox
	assert.Equal(t, Bounds{W: 40, H: 40}, icon.ViewBox)
	assert.Equal(t, "40", icon.Width)

	require.Len(t, icon.Paths, 1)
	kinds := make([]string, 0, len(icon.Paths[0]))
	for _, op := range icon.Paths[0] {
		switch op.(type) {
		case svgpath.MoveTo:
			kinds = append(kinds, "M")
		case svgpath.LineTo:
			kinds = append(kinds, "L")
		case svgpath.QuadTo:
			kinds = append(kinds, "Q")
		case svgpath.CubicTo:
			kinds = append(kinds, "C")
		}
	}
	// the final Z emits nothing: the last T already returned to the
	// subpath start
	assert.Equal(t, []string{"M", "C", "C", "Q", "Q"}, kinds)
}

func TestArcIsRejected(t *testing.T) {
	// path parse errors are fatal whatever the error mode
	_, err := ReadIcon("testdata/arc.svg", IgnoreErrorMode)
	require.Error(t, err)
	var perr *svgpath.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, svgpath.UnsupportedCommand, perr.Kind)
}

func TestUnknownElementModes(t *testing.T) {
	// circles are not supported: strict mode rejects them,
	// ignore mode keeps the rest of the document
	_, err := ReadIcon("testdata/circle.svg", StrictErrorMode)
	require.Error(t, err)

	icon, err := ReadIcon("testdata/circle.svg", IgnoreErrorMode)
	require.NoError(t, err)
	assert.Len(t, icon.Paths, 1)
}

func TestInvalidXML(t *testing.T) {
	_, err := ReadIcon("testdata/triangle.svg", StrictErrorMode)
	require.NoError(t, err)

	_, err = ReadIcon("testdata/missing.svg", StrictErrorMode)
	require.Error(t, err)

	// truncated document
	_, err = ReadIconStream(strings.NewReader(`<svg viewBox="0 0 1 1">`), IgnoreErrorMode)
	require.Error(t, err)

	// no xml at all
	_, err = ReadIconStream(strings.NewReader("plain text"), IgnoreErrorMode)
	require.Error(t, err)
}
