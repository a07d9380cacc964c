package svgicon

import (
	"encoding/xml"
	"errors"
	"strconv"
	"strings"

	"github.com/Jorge-Gonzalez/svg-paths-to-pixi/svgpath"
)

var errParamMismatch = errors.New("param mismatch")

// iconCursor is used while parsing SVG files
type iconCursor struct {
	icon                    *SvgIcon
	path                    svgpath.Path
	points                  []float64
	inTitleText, inDescText bool
	errorMode               ErrorMode
}

// splitOnCommaOrSpace returns a list of strings after splitting the input on comma and space delimiters
func splitOnCommaOrSpace(s string) []string {
	return strings.FieldsFunc(s,
		func(r rune) bool {
			return r == ',' || r == ' '
		})
}

// getPoints reads a whitespace or comma separated list of numbers
// into c.points.
func (c *iconCursor) getPoints(v string) error {
	chunks := splitOnCommaOrSpace(v)
	c.points = c.points[:0]
	for _, chunk := range chunks {
		f, err := strconv.ParseFloat(chunk, 64)
		if err != nil {
			return err
		}
		c.points = append(c.points, f)
	}
	return nil
}

type svgFunc func(c *iconCursor, attrs []xml.Attr) error

var drawFuncs = map[string]svgFunc{
	"svg":      svgF,
	"g":        gF,
	"line":     lineF,
	"rect":     rectF,
	"polyline": polylineF,
	"polygon":  polygonF,
	"path":     pathF,
	"desc":     descF,
	"title":    titleF,
}

func svgF(c *iconCursor, attrs []xml.Attr) error {
	c.icon.ViewBox = Bounds{}
	var width, height float64
	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "viewBox":
			err = c.getPoints(attr.Value)
			if len(c.points) != 4 {
				return errParamMismatch
			}
			c.icon.ViewBox.X = c.points[0]
			c.icon.ViewBox.Y = c.points[1]
			c.icon.ViewBox.W = c.points[2]
			c.icon.ViewBox.H = c.points[3]
		case "width":
			c.icon.Width = attr.Value
			width, err = strconv.ParseFloat(attr.Value, 64)
		case "height":
			c.icon.Height = attr.Value
			height, err = strconv.ParseFloat(attr.Value, 64)
		}
		if err != nil {
			return err
		}
	}
	if c.icon.ViewBox.W == 0 {
		c.icon.ViewBox.W = width
	}
	if c.icon.ViewBox.H == 0 {
		c.icon.ViewBox.H = height
	}
	return nil
}

func gF(*iconCursor, []xml.Attr) error { return nil } // groups carry no geometry of their own

func rectF(c *iconCursor, attrs []xml.Attr) error {
	var x, y, w, h, rx, ry float64
	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "x":
			x, err = strconv.ParseFloat(attr.Value, 64)
		case "y":
			y, err = strconv.ParseFloat(attr.Value, 64)
		case "width":
			w, err = strconv.ParseFloat(attr.Value, 64)
		case "height":
			h, err = strconv.ParseFloat(attr.Value, 64)
		case "rx":
			rx, err = strconv.ParseFloat(attr.Value, 64)
		case "ry":
			ry, err = strconv.ParseFloat(attr.Value, 64)
		}
		if err != nil {
			return err
		}
	}
	if w == 0 || h == 0 {
		return nil
	}
	c.path.AddRoundRect(x, y, x+w, y+h, rx, ry)
	return nil
}

func lineF(c *iconCursor, attrs []xml.Attr) error {
	var x1, x2, y1, y2 float64
	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "x1":
			x1, err = strconv.ParseFloat(attr.Value, 64)
		case "x2":
			x2, err = strconv.ParseFloat(attr.Value, 64)
		case "y1":
			y1, err = strconv.ParseFloat(attr.Value, 64)
		case "y2":
			y2, err = strconv.ParseFloat(attr.Value, 64)
		}
		if err != nil {
			return err
		}
	}
	c.path.AddPolyline([]svgpath.Point{{X: x1, Y: y1}, {X: x2, Y: y2}})
	return nil
}

func (c *iconCursor) readPolyPoints(attrs []xml.Attr) ([]svgpath.Point, error) {
	for _, attr := range attrs {
		if attr.Name.Local != "points" {
			continue
		}
		if err := c.getPoints(attr.Value); err != nil {
			return nil, err
		}
		if len(c.points)%2 != 0 {
			return nil, errors.New("polygon has odd number of points")
		}
	}
	pts := make([]svgpath.Point, 0, len(c.points)/2)
	for i := 0; i+1 < len(c.points); i += 2 {
		pts = append(pts, svgpath.Point{X: c.points[i], Y: c.points[i+1]})
	}
	return pts, nil
}

func polylineF(c *iconCursor, attrs []xml.Attr) error {
	pts, err := c.readPolyPoints(attrs)
	if err != nil {
		return err
	}
	c.path.AddPolyline(pts)
	return nil
}

func polygonF(c *iconCursor, attrs []xml.Attr) error {
	pts, err := c.readPolyPoints(attrs)
	if err != nil {
		return err
	}
	c.path.AddPolygon(pts)
	return nil
}

func pathF(c *iconCursor, attrs []xml.Attr) error {
	for _, attr := range attrs {
		if attr.Name.Local != "d" {
			continue
		}
		p, err := svgpath.ParsePath(attr.Value)
		if err != nil {
			return err
		}
		c.path = append(c.path, p...)
	}
	return nil
}

func descF(c *iconCursor, attrs []xml.Attr) error {
	c.inDescText = true
	c.icon.Descriptions = append(c.icon.Descriptions, "")
	return nil
}

func titleF(c *iconCursor, attrs []xml.Attr) error {
	c.inTitleText = true
	c.icon.Titles = append(c.icon.Titles, "")
	return nil
}
