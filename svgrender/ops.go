package svgrender

import "github.com/svgview/svgview/svgmath"

// Vertices are packed as interleaved float32 attributes: two position
// components followed by four color components.
const (
	PosSize      = 2
	ColorSize    = 4
	VertexStride = PosSize + ColorSize
)

// Operation is one drawing command. Vertex positions are stored in
// world coordinates; backends apply the viewer transform on top.
type Operation interface {
	operation()
}

// DrawPoints draws each vertex as an isolated point.
type DrawPoints struct {
	Vertices []float32
}

// DrawLines draws every consecutive vertex pair as a segment.
type DrawLines struct {
	Vertices []float32
}

// DrawAdjacentLines draws a connected stroke with joins. The vertex
// run carries one padding vertex at each end to give the joins their
// neighbor context: for a closed outline the pattern is
// [last, p0..plast, p0, p1], for an open one the first and last points
// are duplicated. Backends drop the padding and join the core run.
type DrawAdjacentLines struct {
	Vertices   []float32
	Width      float32
	MiterLimit float32
	Closed     bool
}

// FillTriangles fills an indexed triangle list. Indices run counter-
// clockwise per triangle.
type FillTriangles struct {
	Vertices []float32
	Indices  []uint32
}

func (DrawPoints) operation()        {}
func (DrawLines) operation()         {}
func (DrawAdjacentLines) operation() {}
func (FillTriangles) operation()     {}

// Backend executes operations against an output surface. A frame is a
// Clear, any number of Submit calls, then a Present.
type Backend interface {
	Clear()
	Submit(ops []Operation, view svgmath.Mat3[float32])
	Present()
}

// VertexAt unpacks vertex i of a packed attribute slice.
func VertexAt(vertices []float32, i int) (pos svgmath.Vec2[float32], color [4]float32) {
	v := vertices[i*VertexStride:]
	pos = svgmath.Vec2[float32]{X: v[0], Y: v[1]}
	copy(color[:], v[2:6])
	return pos, color
}

// VertexCount returns the number of packed vertices in the slice.
func VertexCount(vertices []float32) int { return len(vertices) / VertexStride }

// StrokeCore strips the adjacency padding from a joined stroke and
// returns the positions of the points actually drawn: the full ring
// for a closed stroke, the polyline for an open one.
func StrokeCore(op DrawAdjacentLines) []svgmath.Vec2[float32] {
	n := VertexCount(op.Vertices)
	end := n - 1
	if op.Closed {
		end = n - 2
	}
	if end <= 1 {
		return nil
	}
	core := make([]svgmath.Vec2[float32], 0, end-1)
	for i := 1; i < end; i++ {
		pos, _ := VertexAt(op.Vertices, i)
		core = append(core, pos)
	}
	return core
}
