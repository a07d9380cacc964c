package svgpath

// This file implements the stateful compilation of the path
// mini-language: command segments are expanded into single-purpose
// canonical operations, relative coordinates are resolved against the
// running current point, and the smooth curve shorthands are
// completed by reflecting the previous control point.

// pathCursor holds the state mutated while compiling one path string.
// A fresh cursor backs every call, so independent strings may be
// parsed concurrently with no coordination.
type pathCursor struct {
	path                   Path
	curX, curY             float64 // current point
	pathStartX, pathStartY float64 // start of the current subpath
	cntlPtX, cntlPtY       float64 // last control point of the previous curve
	lastKey                byte    // command letter of the previous operation group
	points                 []float64
	seg                    rawSegment // segment being expanded, kept for error reports
}

type cmdFunc func(c *pathCursor) error

// cmdFuncs maps each supported command letter to its handler,
// resolved once at package initialization.
var cmdFuncs = map[byte]cmdFunc{
	'M': (*pathCursor).moveTo, 'm': (*pathCursor).moveTo,
	'L': (*pathCursor).lineTo, 'l': (*pathCursor).lineTo,
	'H': (*pathCursor).hLineTo, 'h': (*pathCursor).hLineTo,
	'V': (*pathCursor).vLineTo, 'v': (*pathCursor).vLineTo,
	'Q': (*pathCursor).quadTo, 'q': (*pathCursor).quadTo,
	'T': (*pathCursor).quadSmoothTo, 't': (*pathCursor).quadSmoothTo,
	'C': (*pathCursor).cubeTo, 'c': (*pathCursor).cubeTo,
	'S': (*pathCursor).cubeSmoothTo, 's': (*pathCursor).cubeSmoothTo,
	'Z': (*pathCursor).closePath, 'z': (*pathCursor).closePath,
}

// addSeg expands one command segment into canonical operations.
func (c *pathCursor) addSeg(seg rawSegment) error {
	c.seg = seg
	vals, err := seg.scanNumbers()
	if err != nil {
		return err
	}
	c.points = vals
	fn, ok := cmdFuncs[seg.command]
	if !ok {
		return seg.newError(UnsupportedCommand)
	}
	return fn(c)
}

// relative reports whether the segment being expanded uses relative
// coordinates.
func (c *pathCursor) relative() bool {
	return c.seg.command >= 'a'
}

// hasSetsOrMore errors unless the scanned values split into one or
// more groups of sz.
func (c *pathCursor) hasSetsOrMore(sz int) error {
	if len(c.points) == 0 || len(c.points)%sz != 0 {
		return c.seg.newError(MalformedArguments)
	}
	return nil
}

// valsToAbs offsets every (x, y) pair by the current point. It runs
// once over the whole segment, before any of the segment's own
// operations move the current point.
func (c *pathCursor) valsToAbs() {
	for i := range c.points {
		if i%2 == 0 {
			c.points[i] += c.curX
		} else {
			c.points[i] += c.curY
		}
	}
}

// synthAxisPairs expands the single-axis arguments of H/V commands
// into full (x, y) pairs, so that both share the plain line pipeline.
// Absolute commands pair each value with the untouched axis of the
// current point; relative ones synthesize a zero displacement on it,
// leaving the offset to valsToAbs.
func (c *pathCursor) synthAxisPairs(vertical bool) {
	pairs := make([]float64, 0, len(c.points)*2)
	for _, v := range c.points {
		switch {
		case vertical && c.relative():
			pairs = append(pairs, 0, v)
		case vertical:
			pairs = append(pairs, c.curX, v)
		case c.relative():
			pairs = append(pairs, v, 0)
		default:
			pairs = append(pairs, v, c.curY)
		}
	}
	c.points = pairs
}

// reflectControlQuad synthesizes the leading control point of a
// smooth quadratic command by reflecting the previous control point
// through the current point. When the previous operation is not part
// of the quadratic family, the control point degrades to the current
// point itself.
func (c *pathCursor) reflectControlQuad() Point {
	switch c.lastKey {
	case 'q', 'Q', 't', 'T':
		return Point{X: 2*c.curX - c.cntlPtX, Y: 2*c.curY - c.cntlPtY}
	default:
		return Point{X: c.curX, Y: c.curY}
	}
}

// reflectControlCube is the cubic analog of reflectControlQuad.
func (c *pathCursor) reflectControlCube() Point {
	switch c.lastKey {
	case 'c', 'C', 's', 'S':
		return Point{X: 2*c.curX - c.cntlPtX, Y: 2*c.curY - c.cntlPtY}
	default:
		return Point{X: c.curX, Y: c.curY}
	}
}

// start emits a MoveTo and begins a new subpath.
func (c *pathCursor) start(a Point) {
	c.path.Start(a)
	c.curX, c.curY = a.X, a.Y
	c.pathStartX, c.pathStartY = a.X, a.Y
}

// line emits a LineTo.
func (c *pathCursor) line(b Point) {
	c.path.Line(b)
	c.curX, c.curY = b.X, b.Y
}

// quad emits a QuadTo and records its control point.
func (c *pathCursor) quad(ctrl, to Point) {
	c.path.QuadBezier(ctrl, to)
	c.cntlPtX, c.cntlPtY = ctrl.X, ctrl.Y
	c.curX, c.curY = to.X, to.Y
}

// cube emits a CubicTo and records its trailing control point.
func (c *pathCursor) cube(ctrl1, ctrl2, to Point) {
	c.path.CubeBezier(ctrl1, ctrl2, to)
	c.cntlPtX, c.cntlPtY = ctrl2.X, ctrl2.Y
	c.curX, c.curY = to.X, to.Y
}

func (c *pathCursor) moveTo() error {
	if err := c.hasSetsOrMore(2); err != nil {
		return err
	}
	if c.relative() {
		c.valsToAbs()
	}
	c.start(Point{X: c.points[0], Y: c.points[1]})
	c.lastKey = c.seg.command
	// extra coordinate groups are implicit line commands
	for i := 2; i+1 < len(c.points); i += 2 {
		c.line(Point{X: c.points[i], Y: c.points[i+1]})
		c.lastKey = c.seg.command
	}
	return nil
}

func (c *pathCursor) lineTo() error {
	if err := c.hasSetsOrMore(2); err != nil {
		return err
	}
	if c.relative() {
		c.valsToAbs()
	}
	c.lineGroups()
	return nil
}

func (c *pathCursor) hLineTo() error {
	if err := c.hasSetsOrMore(1); err != nil {
		return err
	}
	c.synthAxisPairs(false)
	if c.relative() {
		c.valsToAbs()
	}
	c.lineGroups()
	return nil
}

func (c *pathCursor) vLineTo() error {
	if err := c.hasSetsOrMore(1); err != nil {
		return err
	}
	c.synthAxisPairs(true)
	if c.relative() {
		c.valsToAbs()
	}
	c.lineGroups()
	return nil
}

// lineGroups emits one LineTo per resolved coordinate pair.
func (c *pathCursor) lineGroups() {
	for i := 0; i+1 < len(c.points); i += 2 {
		c.line(Point{X: c.points[i], Y: c.points[i+1]})
		c.lastKey = c.seg.command
	}
}

func (c *pathCursor) quadTo() error {
	if err := c.hasSetsOrMore(4); err != nil {
		return err
	}
	if c.relative() {
		c.valsToAbs()
	}
	for i := 0; i+3 < len(c.points); i += 4 {
		c.quad(Point{X: c.points[i], Y: c.points[i+1]},
			Point{X: c.points[i+2], Y: c.points[i+3]})
		c.lastKey = c.seg.command
	}
	return nil
}

func (c *pathCursor) quadSmoothTo() error {
	if err := c.hasSetsOrMore(2); err != nil {
		return err
	}
	if c.relative() {
		c.valsToAbs()
	}
	// the reflection is recomputed for every group, so repeated
	// shorthands chain off each other's control points
	for i := 0; i+1 < len(c.points); i += 2 {
		ctrl := c.reflectControlQuad()
		c.quad(ctrl, Point{X: c.points[i], Y: c.points[i+1]})
		c.lastKey = c.seg.command
	}
	return nil
}

func (c *pathCursor) cubeTo() error {
	if err := c.hasSetsOrMore(6); err != nil {
		return err
	}
	if c.relative() {
		c.valsToAbs()
	}
	for i := 0; i+5 < len(c.points); i += 6 {
		c.cube(Point{X: c.points[i], Y: c.points[i+1]},
			Point{X: c.points[i+2], Y: c.points[i+3]},
			Point{X: c.points[i+4], Y: c.points[i+5]})
		c.lastKey = c.seg.command
	}
	return nil
}

func (c *pathCursor) cubeSmoothTo() error {
	if err := c.hasSetsOrMore(4); err != nil {
		return err
	}
	if c.relative() {
		c.valsToAbs()
	}
	for i := 0; i+3 < len(c.points); i += 4 {
		ctrl1 := c.reflectControlCube()
		c.cube(ctrl1, Point{X: c.points[i], Y: c.points[i+1]},
			Point{X: c.points[i+2], Y: c.points[i+3]})
		c.lastKey = c.seg.command
	}
	return nil
}

// closePath realizes Z as a line back to the subpath start, so that
// drivers need no dedicated close primitive. The degenerate
// zero-length segment is suppressed. Either way the current point
// ends up on the subpath start, keeping subsequent relative commands
// on path-language convention.
func (c *pathCursor) closePath() error {
	if len(c.points) != 0 {
		return c.seg.newError(MalformedArguments)
	}
	if c.curX != c.pathStartX || c.curY != c.pathStartY {
		c.line(Point{X: c.pathStartX, Y: c.pathStartY})
	}
	c.lastKey = c.seg.command
	return nil
}

// ParsePath compiles the path mini-language string d into its
// canonical operation sequence. The empty (or blank) string compiles
// to an empty path. Any error aborts the whole parse and no
// operations are returned.
func ParsePath(d string) (Path, error) {
	segs, err := tokenizePath(d)
	if err != nil {
		return nil, err
	}
	c := &pathCursor{}
	for _, seg := range segs {
		if err := c.addSeg(seg); err != nil {
			return nil, err
		}
	}
	return c.path, nil
}

// DrawPath compiles d and replays the resulting operations on the
// driver, in order. Nothing reaches the driver when the parse fails.
func DrawPath(d string, drawer Drawer) error {
	p, err := ParsePath(d)
	if err != nil {
		return err
	}
	p.AddTo(drawer)
	return nil
}
