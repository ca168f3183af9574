package svgrender

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svgview/svgview/svgmath"
	"github.com/svgview/svgview/svgscene"
)

var (
	red   = svgscene.Color{R: 255, A: 255}
	green = svgscene.Color{G: 255, A: 255}
)

func styled(fill, stroke svgscene.Color) svgscene.Style {
	s := svgscene.DefaultStyle
	s.FillColor = fill
	s.StrokeColor = stroke
	return s
}

func docOf(elements ...svgscene.Element) *svgscene.Document {
	return &svgscene.Document{
		Dimension: svgmath.Vec2[float64]{X: 100, Y: 100},
		Elements:  elements,
	}
}

func TestBuildFilledRect(t *testing.T) {
	doc := docOf(svgscene.Rect{
		Style:     styled(red, svgscene.Color{}),
		Position:  svgmath.Vec2[float64]{X: 1, Y: 2},
		Dimension: svgmath.Vec2[float64]{X: 10, Y: 20},
	})
	ops := BuildOperations(doc)
	require.Len(t, ops, 1)

	fill, ok := ops[0].(FillTriangles)
	require.True(t, ok)
	assert.Equal(t, 4, VertexCount(fill.Vertices))
	assert.Len(t, fill.Indices, 6)

	pos, color := VertexAt(fill.Vertices, 0)
	assert.Equal(t, vecf{X: 1, Y: 2}, pos)
	assert.Equal(t, [4]float32{1, 0, 0, 1}, color)
}

func TestBuildPointColorFallback(t *testing.T) {
	// a point with no fill takes the stroke color
	doc := docOf(svgscene.Point{
		Style:    styled(svgscene.Color{}, green),
		Position: svgmath.Vec2[float64]{X: 3, Y: 4},
	})
	ops := BuildOperations(doc)
	require.Len(t, ops, 1)

	points, ok := ops[0].(DrawPoints)
	require.True(t, ok)
	pos, color := VertexAt(points.Vertices, 0)
	assert.Equal(t, vecf{X: 3, Y: 4}, pos)
	assert.Equal(t, [4]float32{0, 1, 0, 1}, color)
}

func TestBuildSkipsInvisible(t *testing.T) {
	// neither fill nor stroke: nothing to draw
	doc := docOf(
		svgscene.Point{Style: svgscene.DefaultStyle},
		svgscene.Line{Style: svgscene.DefaultStyle, To: svgmath.Vec2[float64]{X: 1, Y: 1}},
	)
	assert.Empty(t, BuildOperations(doc))
}

func TestBuildMergesConsecutiveRuns(t *testing.T) {
	pt := func(x float64) svgscene.Point {
		return svgscene.Point{Style: styled(red, svgscene.Color{}), Position: svgmath.Vec2[float64]{X: x}}
	}
	line := svgscene.Line{Style: styled(green, svgscene.Color{}), To: svgmath.Vec2[float64]{X: 1}}

	doc := docOf(pt(0), pt(1), pt(2), line, line, pt(3))
	ops := BuildOperations(doc)
	require.Len(t, ops, 3)

	points := ops[0].(DrawPoints)
	assert.Equal(t, 3, VertexCount(points.Vertices))

	lines := ops[1].(DrawLines)
	assert.Equal(t, 4, VertexCount(lines.Vertices))

	trailing := ops[2].(DrawPoints)
	assert.Equal(t, 1, VertexCount(trailing.Vertices))
}

func TestBuildGroupTransformAccumulates(t *testing.T) {
	inner := svgscene.DefaultStyle
	inner.Transform = svgmath.Translate(5.0, 5.0)
	doc := docOf(svgscene.Group{
		Style: inner,
		Elements: []svgscene.Element{
			svgscene.Point{Style: styled(red, svgscene.Color{}), Position: svgmath.Vec2[float64]{X: 1, Y: 1}},
		},
	})
	ops := BuildOperations(doc)
	require.Len(t, ops, 1)
	pos, _ := VertexAt(ops[0].(DrawPoints).Vertices, 0)
	assert.Equal(t, vecf{X: 6, Y: 6}, pos)
}

func TestBuildPolygonStroke(t *testing.T) {
	style := styled(svgscene.Color{}, green)
	style.StrokeWidth = 2
	doc := docOf(svgscene.Polygon{
		Style:  style,
		Points: []svgmath.Vec2[float64]{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}},
	})
	ops := BuildOperations(doc)
	require.Len(t, ops, 1)

	stroke := ops[0].(DrawAdjacentLines)
	assert.True(t, stroke.Closed)
	assert.Equal(t, float32(2), stroke.Width)
	assert.Equal(t, float32(4), stroke.MiterLimit)

	// adjacency padding wraps the ring: last, ring, first, second
	require.Equal(t, 6, VertexCount(stroke.Vertices))
	wantX := []float32{4, 0, 4, 4, 0, 4}
	wantY := []float32{4, 0, 0, 4, 0, 0}
	for i := range wantX {
		pos, _ := VertexAt(stroke.Vertices, i)
		assert.Equal(t, vecf{X: wantX[i], Y: wantY[i]}, pos, "vertex %d", i)
	}
}

func TestBuildPolylineStroke(t *testing.T) {
	doc := docOf(svgscene.Polyline{
		Style:  styled(svgscene.Color{}, green),
		Points: []svgmath.Vec2[float64]{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}},
	})
	ops := BuildOperations(doc)
	require.Len(t, ops, 1)

	stroke := ops[0].(DrawAdjacentLines)
	assert.False(t, stroke.Closed)
	// open runs duplicate their endpoints as padding
	require.Equal(t, 5, VertexCount(stroke.Vertices))
	first, _ := VertexAt(stroke.Vertices, 0)
	second, _ := VertexAt(stroke.Vertices, 1)
	assert.Equal(t, first, second)
	last, _ := VertexAt(stroke.Vertices, 4)
	penultimate, _ := VertexAt(stroke.Vertices, 3)
	assert.Equal(t, last, penultimate)
}

func TestStrokeCore(t *testing.T) {
	style := styled(svgscene.Color{}, green)
	ring := []svgmath.Vec2[float64]{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}}

	closed := BuildOperations(docOf(svgscene.Polygon{Style: style, Points: ring}))[0].(DrawAdjacentLines)
	core := StrokeCore(closed)
	require.Len(t, core, 3)
	assert.Equal(t, vecf{X: 0, Y: 0}, core[0])
	assert.Equal(t, vecf{X: 4, Y: 4}, core[2])

	open := BuildOperations(docOf(svgscene.Polyline{Style: style, Points: ring}))[0].(DrawAdjacentLines)
	core = StrokeCore(open)
	require.Len(t, core, 3)
	assert.Equal(t, vecf{X: 0, Y: 0}, core[0])
	assert.Equal(t, vecf{X: 4, Y: 4}, core[2])
}

func TestBuildFillAndStrokeOrder(t *testing.T) {
	doc := docOf(svgscene.Rect{
		Style:     styled(red, green),
		Dimension: svgmath.Vec2[float64]{X: 2, Y: 2},
	})
	ops := BuildOperations(doc)
	require.Len(t, ops, 2)
	_, isFill := ops[0].(FillTriangles)
	_, isStroke := ops[1].(DrawAdjacentLines)
	assert.True(t, isFill, "the fill draws under the outline")
	assert.True(t, isStroke)
}

func TestBuildEllipse(t *testing.T) {
	doc := docOf(svgscene.Ellipse{
		Style:  styled(red, svgscene.Color{}),
		Center: svgmath.Vec2[float64]{X: 5, Y: 5},
		Radius: svgmath.Vec2[float64]{X: 2, Y: 2},
	})
	ops := BuildOperations(doc)
	require.Len(t, ops, 1)
	fill := ops[0].(FillTriangles)
	assert.Equal(t, ellipseSegments, VertexCount(fill.Vertices))
	assert.Len(t, fill.Indices, 3*(ellipseSegments-2))
}

func TestBuildSelfIntersectingPolygon(t *testing.T) {
	// the fill is dropped but the outline still draws
	doc := docOf(svgscene.Polygon{
		Style:  styled(red, green),
		Points: []svgmath.Vec2[float64]{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 1}},
	})
	ops := BuildOperations(doc)
	require.Len(t, ops, 1)
	_, isStroke := ops[0].(DrawAdjacentLines)
	assert.True(t, isStroke)
}

func TestBuildObjectOperations(t *testing.T) {
	obj := Object{
		Position: vecf{X: 10, Y: 20},
		Document: docOf(svgscene.Point{
			Style:    styled(red, svgscene.Color{}),
			Position: svgmath.Vec2[float64]{X: 1, Y: 1},
		}),
	}
	ops := BuildObjectOperations(obj)
	require.Len(t, ops, 1)
	pos, _ := VertexAt(ops[0].(DrawPoints).Vertices, 0)
	assert.Equal(t, vecf{X: 11, Y: 21}, pos)

	assert.Equal(t, vecf{X: 100, Y: 100}, obj.Dimension())

	v := NewPixelViewer(200, 200)
	CenterViewerOn(v, obj)
	assert.Equal(t, vecf{X: 60, Y: 70}, v.Center())
}
