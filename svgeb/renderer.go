package svgeb

import (
	"image/color"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/svgview/svgview/svgmath"
	"github.com/svgview/svgview/svgrender"
)

var _ svgrender.Backend = (*Renderer)(nil) // assert interface conformance

// on-screen extent of point primitives, in pixels
const pointSize = 2

var (
	whiteOnce  sync.Once
	whiteImage *ebiten.Image
)

// whitePixel is the uniform source image for DrawTriangles, so vertex
// colors pass through unchanged.
func whitePixel() *ebiten.Image {
	whiteOnce.Do(func() {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
	})
	return whiteImage
}

// Renderer draws operations onto an ebiten image. The view transform
// is expected to produce pixel coordinates on the target, as a
// PixelViewer does.
type Renderer struct {
	target *ebiten.Image
}

// New returns a renderer drawing onto target.
func New(target *ebiten.Image) *Renderer {
	return &Renderer{target: target}
}

// Clear resets the target to opaque white.
func (r *Renderer) Clear() {
	r.target.Fill(color.White)
}

// Present is a no-op: ebiten flushes the target itself.
func (r *Renderer) Present() {}

// Submit draws the operations in order through the view transform.
func (r *Renderer) Submit(ops []svgrender.Operation, view svgmath.Mat3[float32]) {
	for _, op := range ops {
		switch op := op.(type) {
		case svgrender.FillTriangles:
			r.fillTriangles(op, view)
		case svgrender.DrawPoints:
			r.drawPoints(op, view)
		case svgrender.DrawLines:
			r.drawLines(op, view)
		case svgrender.DrawAdjacentLines:
			r.drawAdjacentLines(op, view)
		}
	}
}

func vertex(p vec2f, c [4]float32) ebiten.Vertex {
	return ebiten.Vertex{
		DstX: p.X, DstY: p.Y,
		SrcX: 1.5, SrcY: 1.5,
		ColorR: c[0], ColorG: c[1], ColorB: c[2], ColorA: c[3],
	}
}

func viewScale(m svgmath.Mat3[float32]) float32 {
	det := float64(m[0][0]*m[1][1] - m[0][1]*m[1][0])
	return float32(math.Sqrt(math.Abs(det)))
}

func (r *Renderer) fillTriangles(op svgrender.FillTriangles, view svgmath.Mat3[float32]) {
	batches, indices := fillBatches(op, view)
	for i := range batches {
		r.target.DrawTriangles(batches[i], indices[i], whitePixel(), nil)
	}
}

// fillBatches converts an indexed fill into DrawTriangles arguments.
// DrawTriangles indexes with uint16, so fills with more vertices than
// that are split into per-triangle batches instead of sharing one
// vertex array.
func fillBatches(op svgrender.FillTriangles, view svgmath.Mat3[float32]) (batches [][]ebiten.Vertex, indices [][]uint16) {
	n := svgrender.VertexCount(op.Vertices)
	if n <= math.MaxUint16 {
		vs := make([]ebiten.Vertex, n)
		for i := 0; i < n; i++ {
			pos, c := svgrender.VertexAt(op.Vertices, i)
			vs[i] = vertex(view.Apply(pos), c)
		}
		is := make([]uint16, len(op.Indices))
		for i, idx := range op.Indices {
			is[i] = uint16(idx)
		}
		return [][]ebiten.Vertex{vs}, [][]uint16{is}
	}
	const chunk = 3 * ((math.MaxUint16 + 1) / 3)
	for start := 0; start < len(op.Indices); start += chunk {
		end := min(start+chunk, len(op.Indices))
		vs := make([]ebiten.Vertex, 0, end-start)
		is := make([]uint16, 0, end-start)
		for _, idx := range op.Indices[start:end] {
			pos, c := svgrender.VertexAt(op.Vertices, int(idx))
			is = append(is, uint16(len(vs)))
			vs = append(vs, vertex(view.Apply(pos), c))
		}
		batches = append(batches, vs)
		indices = append(indices, is)
	}
	return batches, indices
}

func (r *Renderer) drawPoints(op svgrender.DrawPoints, view svgmath.Mat3[float32]) {
	const half = pointSize / 2.0
	for i := 0; i < svgrender.VertexCount(op.Vertices); i++ {
		pos, c := svgrender.VertexAt(op.Vertices, i)
		p := view.Apply(pos)
		vs := []ebiten.Vertex{
			vertex(vec2f{X: p.X - half, Y: p.Y - half}, c),
			vertex(vec2f{X: p.X + half, Y: p.Y - half}, c),
			vertex(vec2f{X: p.X + half, Y: p.Y + half}, c),
			vertex(vec2f{X: p.X - half, Y: p.Y + half}, c),
		}
		r.target.DrawTriangles(vs, []uint16{0, 1, 2, 0, 2, 3}, whitePixel(), nil)
	}
}

func (r *Renderer) drawLines(op svgrender.DrawLines, view svgmath.Mat3[float32]) {
	n := svgrender.VertexCount(op.Vertices)
	for i := 0; i+1 < n; i += 2 {
		a, c := svgrender.VertexAt(op.Vertices, i)
		b, _ := svgrender.VertexAt(op.Vertices, i+1)
		r.strokeRibbon([]vec2f{view.Apply(a), view.Apply(b)}, c, 1, 4, false)
	}
}

func (r *Renderer) drawAdjacentLines(op svgrender.DrawAdjacentLines, view svgmath.Mat3[float32]) {
	core := svgrender.StrokeCore(op)
	if len(core) < 2 {
		return
	}
	for i, p := range core {
		core[i] = view.Apply(p)
	}
	_, c := svgrender.VertexAt(op.Vertices, 1)
	r.strokeRibbon(core, c, op.Width*viewScale(view), op.MiterLimit, op.Closed)
}

func (r *Renderer) strokeRibbon(points []vec2f, c [4]float32, width, miterLimit float32, closed bool) {
	normals := miterNormals(points, closed, miterLimit)
	quads := ribbon(points, normals, width)
	vs := make([]ebiten.Vertex, len(quads))
	for i, p := range quads {
		vs[i] = vertex(p, c)
	}
	r.target.DrawTriangles(vs, ribbonIndices(len(points), closed), whitePixel(), nil)
}
