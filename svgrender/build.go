package svgrender

import (
	"github.com/svgview/svgview/svgmath"
	"github.com/svgview/svgview/svgscene"
)

// BuildOperations flattens a scene tree into drawing operations in
// document order. Transforms accumulate down the tree and vertex
// positions are baked into world coordinates, so consecutive point and
// line runs can be merged into single operations.
func BuildOperations(doc *svgscene.Document) []Operation {
	b := builder{}
	b.walk(doc.Elements, svgmath.Identity[float64]())
	return b.ops
}

type builder struct {
	ops []Operation
}

func (b *builder) walk(elements []svgscene.Element, parent svgmath.Mat3[float64]) {
	for _, el := range elements {
		switch el := el.(type) {
		case svgscene.Group:
			b.walk(el.Elements, parent.Mul(el.Style.Transform))
		case svgscene.Point:
			m := parent.Mul(el.Style.Transform)
			if color, ok := effectiveColor(el.Style); ok {
				b.appendPoints(pack([]svgmath.Vec2[float64]{el.Position}, m, color))
			}
		case svgscene.Line:
			m := parent.Mul(el.Style.Transform)
			if color, ok := effectiveColor(el.Style); ok {
				b.appendLines(pack([]svgmath.Vec2[float64]{el.From, el.To}, m, color))
			}
		case svgscene.Polyline:
			m := parent.Mul(el.Style.Transform)
			b.stroke(el.Points, el.Style, m, false)
		case svgscene.Polygon:
			m := parent.Mul(el.Style.Transform)
			b.ring(el.Points, el.Style, m)
		case svgscene.Rect:
			m := parent.Mul(el.Style.Transform)
			b.ring(rectRing(el), el.Style, m)
		case svgscene.Ellipse:
			m := parent.Mul(el.Style.Transform)
			b.ring(ellipseRing(el), el.Style, m)
		case svgscene.Image:
			// not renderable, already reported by the parser
		}
	}
}

// ring emits the fill and outline of a closed ring.
func (b *builder) ring(ring []svgmath.Vec2[float64], style svgscene.Style, m svgmath.Mat3[float64]) {
	if style.FillColor.A > 0 {
		if triangles, ok := Triangulate(ring); ok {
			op := FillTriangles{
				Vertices: pack(ring, m, style.FillColor),
				Indices:  make([]uint32, 0, 3*len(triangles)),
			}
			for _, tri := range triangles {
				op.Indices = append(op.Indices, uint32(tri[0]), uint32(tri[1]), uint32(tri[2]))
			}
			b.ops = append(b.ops, op)
		}
	}
	b.stroke(ring, style, m, true)
}

// stroke emits a joined outline with adjacency padding, closed or open.
func (b *builder) stroke(points []svgmath.Vec2[float64], style svgscene.Style, m svgmath.Mat3[float64], closed bool) {
	if style.StrokeColor.A == 0 || style.StrokeWidth <= 0 || len(points) < 2 {
		return
	}
	n := len(points)
	padded := make([]svgmath.Vec2[float64], 0, n+3)
	if closed {
		padded = append(padded, points[n-1])
		padded = append(padded, points...)
		padded = append(padded, points[0], points[1])
	} else {
		padded = append(padded, points[0])
		padded = append(padded, points...)
		padded = append(padded, points[n-1])
	}
	b.ops = append(b.ops, DrawAdjacentLines{
		Vertices:   pack(padded, m, style.StrokeColor),
		Width:      float32(style.StrokeWidth),
		MiterLimit: float32(style.MiterLimit) / 64,
		Closed:     closed,
	})
}

// appendPoints merges into a trailing DrawPoints operation when there
// is one, preserving draw order.
func (b *builder) appendPoints(vertices []float32) {
	if n := len(b.ops); n > 0 {
		if last, ok := b.ops[n-1].(DrawPoints); ok {
			last.Vertices = append(last.Vertices, vertices...)
			b.ops[n-1] = last
			return
		}
	}
	b.ops = append(b.ops, DrawPoints{Vertices: vertices})
}

func (b *builder) appendLines(vertices []float32) {
	if n := len(b.ops); n > 0 {
		if last, ok := b.ops[n-1].(DrawLines); ok {
			last.Vertices = append(last.Vertices, vertices...)
			b.ops[n-1] = last
			return
		}
	}
	b.ops = append(b.ops, DrawLines{Vertices: vertices})
}

// effectiveColor picks the color for point and line primitives: the
// fill when one is set, otherwise the stroke. A transparent result
// drops the primitive entirely.
func effectiveColor(style svgscene.Style) (svgscene.Color, bool) {
	color := style.FillColor
	if color.IsNone() {
		color = style.StrokeColor
	}
	return color, color.A > 0
}

// pack transforms points to world space and interleaves them with the
// color, in the backend vertex layout.
func pack(points []svgmath.Vec2[float64], m svgmath.Mat3[float64], color svgscene.Color) []float32 {
	r := float32(color.R) / 255
	g := float32(color.G) / 255
	bl := float32(color.B) / 255
	a := float32(color.A) / 255
	out := make([]float32, 0, len(points)*VertexStride)
	for _, p := range points {
		w := m.Apply(p)
		out = append(out, float32(w.X), float32(w.Y), r, g, bl, a)
	}
	return out
}
