package svgrender

import (
	"github.com/svgview/svgview/svgmath"
	"github.com/svgview/svgview/svgscene"
)

// Object is a document placed in the world at a position.
type Object struct {
	Position svgmath.Vec2[float32]
	Document *svgscene.Document
}

// Dimension returns the document's canvas size.
func (o Object) Dimension() svgmath.Vec2[float32] {
	return svgmath.Vec2[float32]{
		X: float32(o.Document.Dimension.X),
		Y: float32(o.Document.Dimension.Y),
	}
}

// CenterViewerOn fits the viewer onto the object's canvas.
func CenterViewerOn(v Viewer, o Object) {
	v.CenterOnObject(o.Position, o.Dimension())
}

// BuildObjectOperations flattens the object's document, offset to its
// world position.
func BuildObjectOperations(o Object) []Operation {
	placed := *o.Document
	if o.Position != (svgmath.Vec2[float32]{}) {
		offset := svgscene.Group{Style: svgscene.DefaultStyle, Elements: o.Document.Elements}
		offset.Style.Transform = svgmath.Translate(float64(o.Position.X), float64(o.Position.Y))
		placed.Elements = []svgscene.Element{offset}
	}
	return BuildOperations(&placed)
}
