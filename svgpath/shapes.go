package svgpath

// This file implements the transformation from
// high level shapes to their path equivalent

// AddRect appends an axis-aligned rectangle outline to the path.
func (p *Path) AddRect(minX, minY, maxX, maxY float64) {
	p.Start(Point{X: minX, Y: minY})
	p.Line(Point{X: maxX, Y: minY})
	p.Line(Point{X: maxX, Y: maxY})
	p.Line(Point{X: minX, Y: maxY})
	p.Stop(true)
}

// AddRoundRect appends a rectangle with corners rounded by radius rx
// in the x axis and ry in the y axis. Corners are approximated with
// single quadratic arcs.
func (p *Path) AddRoundRect(minX, minY, maxX, maxY, rx, ry float64) {
	if rx <= 0 || ry <= 0 {
		p.AddRect(minX, minY, maxX, maxY)
		return
	}
	if w := maxX - minX; w < rx*2 {
		rx = w / 2
	}
	if h := maxY - minY; h < ry*2 {
		ry = h / 2
	}
	p.Start(Point{X: minX + rx, Y: minY})
	p.Line(Point{X: maxX - rx, Y: minY})
	p.QuadBezier(Point{X: maxX, Y: minY}, Point{X: maxX, Y: minY + ry})
	p.Line(Point{X: maxX, Y: maxY - ry})
	p.QuadBezier(Point{X: maxX, Y: maxY}, Point{X: maxX - rx, Y: maxY})
	p.Line(Point{X: minX + rx, Y: maxY})
	p.QuadBezier(Point{X: minX, Y: maxY}, Point{X: minX, Y: maxY - ry})
	p.Line(Point{X: minX, Y: minY + ry})
	p.QuadBezier(Point{X: minX, Y: minY}, Point{X: minX + rx, Y: minY})
	p.Stop(true)
}

// AddPolyline appends line segments through the given points.
func (p *Path) AddPolyline(pts []Point) {
	if len(pts) < 2 {
		return
	}
	p.Start(pts[0])
	for _, pt := range pts[1:] {
		p.Line(pt)
	}
}

// AddPolygon appends a closed polygon through the given points.
func (p *Path) AddPolygon(pts []Point) {
	if len(pts) < 2 {
		return
	}
	p.AddPolyline(pts)
	p.Stop(true)
}
