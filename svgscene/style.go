package svgscene

import (
	"encoding/xml"

	"golang.org/x/image/math/fixed"

	"github.com/svgview/svgview/svgmath"
)

// toFixed converts a float to its fixed.Int26_6 representation.
func toFixed(f float64) fixed.Int26_6 { return fixed.Int26_6(f * 64) }

// Style is the resolved presentation state of an element. A child's
// style starts as a copy of its parent's, then its own attributes are
// overlaid, except for Transform which is never inherited: it holds
// only the element's own transform attribute and is accumulated down
// the tree by consumers.
type Style struct {
	FillColor   Color
	StrokeColor Color
	StrokeWidth float64
	MiterLimit  fixed.Int26_6
	Transform   svgmath.Mat3[float64]
}

// DefaultStyle is the root of the cascade: no fill, no stroke, a
// one-pixel stroke width and the SVG default miter limit of 4.
var DefaultStyle = Style{
	StrokeWidth: 1,
	MiterLimit:  toFixed(4),
	Transform:   svgmath.Identity[float64](),
}

// withAttrs overlays the style attributes found in attrs onto a copy
// of the parent style. Unrelated attributes are left for the caller.
func (parent Style) withAttrs(attrs []xml.Attr) (Style, error) {
	out := parent
	out.Transform = svgmath.Identity[float64]()
	for _, attr := range attrs {
		var err error
		switch attr.Name.Local {
		case "fill":
			out.FillColor = parseColor(attr.Value)
		case "stroke":
			out.StrokeColor = parseColor(attr.Value)
		case "stroke-width":
			out.StrokeWidth, err = parseLength(attr.Value)
		case "stroke-miterlimit":
			var ml float64
			ml, err = parseNumber(attr.Value)
			if err == nil {
				out.MiterLimit = toFixed(ml)
			}
		case "fill-opacity":
			var op float64
			op, err = parseNumber(attr.Value)
			if err == nil {
				out.FillColor.A = opacityByte(op)
			}
		case "stroke-opacity":
			var op float64
			op, err = parseNumber(attr.Value)
			if err == nil {
				out.StrokeColor.A = opacityByte(op)
			}
		case "transform":
			out.Transform, err = parseTransform(attr.Value)
		}
		if err != nil {
			return Style{}, err
		}
	}
	return out, nil
}

func opacityByte(op float64) uint8 {
	switch {
	case op <= 0:
		return 0
	case op >= 1:
		return 255
	}
	return uint8(op * 255)
}
