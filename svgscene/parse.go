package svgscene

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/net/html/charset"

	"github.com/svgview/svgview/svgmath"
)

// ErrorMode controls how recoverable problems (unrecognized tags,
// unsupported elements) are handled while parsing.
type ErrorMode uint8

const (
	// IgnoreErrorMode skips the offending element silently.
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode skips the offending element and logs a warning.
	WarnErrorMode
	// StrictErrorMode aborts parsing on the first problem.
	StrictErrorMode
)

// ErrMissingSVGTag is returned when the input ends, or a shape occurs,
// before an outermost svg element is open.
var ErrMissingSVGTag = errors.New("svgscene: missing outermost <svg> element")

// StructuralError reports an end tag that does not close the element
// currently open.
type StructuralError struct {
	Tag      string // the end tag encountered
	Expected string // the open tag it should have closed, if any
}

func (e StructuralError) Error() string {
	if e.Expected == "" {
		return fmt.Sprintf("svgscene: end tag </%s> without matching start tag", e.Tag)
	}
	return fmt.Sprintf("svgscene: end tag </%s> closes open element <%s>", e.Tag, e.Expected)
}

// default canvas size when the svg tag declares no dimensions
var defaultDimension = svgmath.Vec2[float64]{X: 300, Y: 150}

// ReadFile parses the SVG file found at path.
func ReadFile(path string, mode ErrorMode) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, mode)
}

// Read parses an SVG document from r in a single streaming pass. It
// returns as soon as the outermost svg element is closed.
//
// XML encodings other than UTF-8 are honored when declared.
func Read(r io.Reader, mode ErrorMode) (*Document, error) {
	p := parser{mode: mode}
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			return nil, ErrMissingSVGTag
		}
		if err != nil {
			return nil, fmt.Errorf("svgscene: invalid document: %w", err)
		}
		switch tok := tok.(type) {
		case xml.StartElement:
			if err := p.startElement(tok); err != nil {
				return nil, err
			}
		case xml.EndElement:
			doc, err := p.endElement(tok)
			if err != nil {
				return nil, err
			}
			if doc != nil {
				return doc, nil
			}
		}
	}
}

// frame is an open tag awaiting its end tag. The parser keeps two
// parallel stacks, one of frames and one of resolved styles, pushed
// and popped together for every recognized tag.
type frame struct {
	name     string // local tag name that must close this frame
	root     bool   // outermost svg
	style    Style
	dim      svgmath.Vec2[float64]
	elements []Element
}

type parser struct {
	mode   ErrorMode
	styles []Style
	frames []frame
}

func (p *parser) topStyle() Style {
	if len(p.styles) == 0 {
		return DefaultStyle
	}
	return p.styles[len(p.styles)-1]
}

func (p *parser) appendElement(el Element) {
	top := &p.frames[len(p.frames)-1]
	top.elements = append(top.elements, el)
}

// report handles a recoverable problem according to the error mode.
func (p *parser) report(format string, args ...interface{}) error {
	switch p.mode {
	case WarnErrorMode:
		log.Printf("svgscene: "+format, args...)
	case StrictErrorMode:
		return fmt.Errorf("svgscene: "+format, args...)
	}
	return nil
}

func isShapeTag(name string) bool {
	switch name {
	case "point", "rect", "line", "polyline", "polygon", "circle", "ellipse", "image":
		return true
	}
	return false
}

func (p *parser) startElement(se xml.StartElement) error {
	name := se.Name.Local
	switch {
	case name == "svg":
		dim := defaultDimension
		for _, attr := range se.Attr {
			var err error
			switch attr.Name.Local {
			case "width":
				dim.X, err = parseLength(attr.Value)
			case "height":
				dim.Y, err = parseLength(attr.Value)
			}
			if err != nil {
				return err
			}
		}
		p.styles = append(p.styles, DefaultStyle)
		p.frames = append(p.frames, frame{name: name, root: len(p.frames) == 0, style: DefaultStyle, dim: dim})
	case name == "g":
		if len(p.frames) == 0 {
			return ErrMissingSVGTag
		}
		style, err := p.topStyle().withAttrs(se.Attr)
		if err != nil {
			return err
		}
		p.styles = append(p.styles, style)
		p.frames = append(p.frames, frame{name: name, style: style})
	case isShapeTag(name):
		if len(p.frames) == 0 {
			return ErrMissingSVGTag
		}
		style, err := p.topStyle().withAttrs(se.Attr)
		if err != nil {
			return err
		}
		el, err := p.shape(name, style, se.Attr)
		if err != nil {
			return err
		}
		if el != nil {
			p.appendElement(el)
		}
		// shapes still occupy both stacks so their end tags pop cleanly
		p.styles = append(p.styles, style)
		p.frames = append(p.frames, frame{name: name})
	default:
		return p.report("unrecognized tag <%s>", name)
	}
	return nil
}

// endElement pops the matching frame. It returns the finished document
// when the outermost svg element closes.
func (p *parser) endElement(ee xml.EndElement) (*Document, error) {
	name := ee.Name.Local
	if name != "svg" && name != "g" && !isShapeTag(name) {
		return nil, p.report("unrecognized end tag </%s>", name)
	}
	if len(p.frames) == 0 {
		return nil, StructuralError{Tag: name}
	}
	top := p.frames[len(p.frames)-1]
	if top.name != name {
		return nil, StructuralError{Tag: name, Expected: top.name}
	}
	p.frames = p.frames[:len(p.frames)-1]
	p.styles = p.styles[:len(p.styles)-1]
	switch {
	case top.root:
		return &Document{Dimension: top.dim, Elements: top.elements}, nil
	case name == "svg", name == "g":
		p.appendElement(Group{Style: top.style, Elements: top.elements})
	}
	return nil, nil
}

// shape builds the element for a shape start tag. Rects with zero
// width and height collapse to a Point.
func (p *parser) shape(name string, style Style, attrs []xml.Attr) (Element, error) {
	switch name {
	case "point":
		var pos svgmath.Vec2[float64]
		for _, attr := range attrs {
			var err error
			switch attr.Name.Local {
			case "x":
				pos.X, err = parseNumber(attr.Value)
			case "y":
				pos.Y, err = parseNumber(attr.Value)
			}
			if err != nil {
				return nil, err
			}
		}
		return Point{Style: style, Position: pos}, nil
	case "rect":
		var pos, dim, corners svgmath.Vec2[float64]
		var hasRx, hasRy bool
		for _, attr := range attrs {
			var err error
			switch attr.Name.Local {
			case "x":
				pos.X, err = parseLength(attr.Value)
			case "y":
				pos.Y, err = parseLength(attr.Value)
			case "width":
				dim.X, err = parseLength(attr.Value)
			case "height":
				dim.Y, err = parseLength(attr.Value)
			case "rx":
				corners.X, err = parseLength(attr.Value)
				hasRx = true
			case "ry":
				corners.Y, err = parseLength(attr.Value)
				hasRy = true
			}
			if err != nil {
				return nil, err
			}
		}
		// a lone rx or ry sets both radii
		if hasRx && !hasRy {
			corners.Y = corners.X
		} else if hasRy && !hasRx {
			corners.X = corners.Y
		}
		if dim.X == 0 && dim.Y == 0 {
			return Point{Style: style, Position: pos}, nil
		}
		return Rect{Style: style, Position: pos, Dimension: dim, Corners: corners}, nil
	case "line":
		var from, to svgmath.Vec2[float64]
		for _, attr := range attrs {
			var err error
			switch attr.Name.Local {
			case "x1":
				from.X, err = parseLength(attr.Value)
			case "y1":
				from.Y, err = parseLength(attr.Value)
			case "x2":
				to.X, err = parseLength(attr.Value)
			case "y2":
				to.Y, err = parseLength(attr.Value)
			}
			if err != nil {
				return nil, err
			}
		}
		return Line{Style: style, From: from, To: to}, nil
	case "polyline", "polygon":
		var points []svgmath.Vec2[float64]
		for _, attr := range attrs {
			if attr.Name.Local != "points" {
				continue
			}
			var err error
			if points, err = parsePointList(attr.Value); err != nil {
				return nil, err
			}
		}
		if name == "polygon" {
			return Polygon{Style: style, Points: points}, nil
		}
		return Polyline{Style: style, Points: points}, nil
	case "circle", "ellipse":
		var center, radius svgmath.Vec2[float64]
		for _, attr := range attrs {
			var err error
			switch attr.Name.Local {
			case "cx":
				center.X, err = parseLength(attr.Value)
			case "cy":
				center.Y, err = parseLength(attr.Value)
			case "r":
				radius.X, err = parseLength(attr.Value)
				radius.Y = radius.X
			case "rx":
				radius.X, err = parseLength(attr.Value)
			case "ry":
				radius.Y, err = parseLength(attr.Value)
			}
			if err != nil {
				return nil, err
			}
		}
		return Ellipse{Style: style, Center: center, Radius: radius}, nil
	case "image":
		var pos, dim svgmath.Vec2[float64]
		for _, attr := range attrs {
			var err error
			switch attr.Name.Local {
			case "x":
				pos.X, err = parseLength(attr.Value)
			case "y":
				pos.Y, err = parseLength(attr.Value)
			case "width":
				dim.X, err = parseLength(attr.Value)
			case "height":
				dim.Y, err = parseLength(attr.Value)
			}
			if err != nil {
				return nil, err
			}
		}
		if err := p.report("unsupported element <image>, it will not be rendered"); err != nil {
			return nil, err
		}
		return Image{Style: style, Position: pos, Dimension: dim}, nil
	}
	return nil, nil
}
