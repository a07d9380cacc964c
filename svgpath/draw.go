package svgpath

// Given a compiled path, implements how to replay it on a driver.
// The driver performs the actual draw operations, such as a
// rasterizer to output .png images, but doesn't need any knowledge
// of the path mini-language.

// Drawer knows how to do the actual draw operations.
// Coordinates are always absolute when they reach the Drawer.
type Drawer interface {
	// Start starts a new subpath at the given point.
	Start(a Point)

	// Line adds a line from the current point to `b`
	Line(b Point)

	// QuadBezier adds a quadratic bezier curve to the path
	QuadBezier(b, c Point)

	// CubeBezier adds a cubic bezier curve to the path
	CubeBezier(b, c, d Point)

	// Stop closes the subpath to its start point if `closeLoop` is true.
	// The compiler realizes Z commands as plain lines (see DrawPath),
	// so only producers needing explicit subpath-closing metadata,
	// such as polygon shapes, pass true.
	Stop(closeLoop bool)
}

var _ Drawer = (*Path)(nil) // a Path records the operations replayed on it

// starts a new subpath at the given point.
func (op MoveTo) drawTo(d Drawer) {
	d.Stop(false) // implicit stop if currently in path
	d.Start(Point(op))
}

// draw a line
func (op LineTo) drawTo(d Drawer) {
	d.Line(Point(op))
}

// draw a quadratic bezier curve
func (op QuadTo) drawTo(d Drawer) {
	d.QuadBezier(op[0], op[1])
}

// draw a cubic bezier curve
func (op CubicTo) drawTo(d Drawer) {
	d.CubeBezier(op[0], op[1], op[2])
}

func (op Close) drawTo(d Drawer) {
	d.Stop(true)
}

// AddTo replays the path p on the driver `d`, in order.
func (p Path) AddTo(d Drawer) {
	for _, op := range p {
		op.drawTo(d)
	}
	d.Stop(false)
}
