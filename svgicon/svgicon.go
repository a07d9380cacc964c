// Provides parsing of SVG documents into an abstract path
// representation, which can then be consumed by painting drivers.
// See for example the svgraster package.
// Only the geometry of a sub-set of SVG is read: styling, transforms
// and units are not interpreted.
package svgicon

import (
	"encoding/xml"
	"errors"
	"io"
	"log"
	"os"

	"github.com/Jorge-Gonzalez/svg-paths-to-pixi/svgpath"
	"golang.org/x/net/html/charset"
)

// ErrorMode determines how unhandled SVG elements are treated.
type ErrorMode uint8

const (
	// IgnoreErrorMode skips unhandled elements silently.
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode logs a warning for unhandled elements.
	WarnErrorMode
	// StrictErrorMode aborts the parse on unhandled elements.
	StrictErrorMode
)

// Bounds defines a bounding box, such as a viewport.
type Bounds struct{ X, Y, W, H float64 }

// SvgIcon holds the geometry of a parsed SVG.
type SvgIcon struct {
	ViewBox      Bounds
	Titles       []string // Title elements collect here
	Descriptions []string // Description elements collect here
	Paths        []svgpath.Path

	Width, Height string // top level width and height attributes
}

// ReadIconStream reads the icon from the given io.Reader.
// This only supports a sub-set of SVG, but is enough to extract the
// outlines of many icons. errMode determines if the icon ignores,
// errors out, or logs a warning if it does not handle an element
// found in the icon file.
func ReadIconStream(stream io.Reader, errMode ErrorMode) (*SvgIcon, error) {
	icon := &SvgIcon{}
	cursor := &iconCursor{icon: icon, errorMode: errMode}
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	seenTag := false
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				if !seenTag {
					return nil, errors.New("invalid svg xml icon")
				}
				break
			}
			return icon, err
		}
		// Inspect the type of the XML token
		switch se := t.(type) {
		case xml.StartElement:
			seenTag = true
			if err := cursor.readStartElement(se); err != nil {
				return icon, err
			}
		case xml.EndElement:
			switch se.Name.Local {
			case "title":
				cursor.inTitleText = false
			case "desc":
				cursor.inDescText = false
			}
		case xml.CharData:
			if cursor.inTitleText {
				icon.Titles[len(icon.Titles)-1] += string(se)
			}
			if cursor.inDescText {
				icon.Descriptions[len(icon.Descriptions)-1] += string(se)
			}
		}
	}
	return icon, nil
}

// ReadIcon reads the icon from the named file.
// See ReadIconStream for details.
func ReadIcon(iconFile string, errMode ErrorMode) (*SvgIcon, error) {
	fin, errf := os.Open(iconFile)
	if errf != nil {
		return nil, errf
	}
	defer fin.Close()
	return ReadIconStream(fin, errMode)
}

// handleError applies the cursor's error mode to an unhandled element.
func (c *iconCursor) handleError(errStr string) error {
	if c.errorMode == StrictErrorMode {
		return errors.New(errStr)
	} else if c.errorMode == WarnErrorMode {
		log.Println(errStr)
	}
	return nil
}

func (c *iconCursor) readStartElement(se xml.StartElement) error {
	df, ok := drawFuncs[se.Name.Local]
	if !ok {
		return c.handleError("Cannot process svg element " + se.Name.Local)
	}
	if err := df(c, se.Attr); err != nil {
		return err
	}
	if len(c.path) > 0 {
		// the cursor parsed a path from the xml element
		pathCopy := append(svgpath.Path{}, c.path...)
		c.icon.Paths = append(c.icon.Paths, pathCopy)
		c.path.Clear()
	}
	return nil
}
