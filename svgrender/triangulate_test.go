package svgrender

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svgview/svgview/svgmath"
)

type vec = svgmath.Vec2[float64]

// triangleWinding is the doubled signed area of a triangle of the
// ring, positive when its indices run counter-clockwise.
func triangleWinding(ring []vec, tri Triangle) float64 {
	a, b, c := ring[tri[0]], ring[tri[1]], ring[tri[2]]
	return b.Sub(a).Cross(c.Sub(a))
}

func TestSignedArea(t *testing.T) {
	square := []vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	assert.Equal(t, 1.0, signedArea(square))

	reversed := []vec{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 0}}
	assert.Equal(t, -1.0, signedArea(reversed))

	assert.Equal(t, 0.0, signedArea([]vec{{X: 0, Y: 0}, {X: 5, Y: 5}}))
	assert.Equal(t, 0.0, signedArea([]vec{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}}))
}

func TestTriangulateTriangle(t *testing.T) {
	tris, ok := Triangulate([]vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}})
	require.True(t, ok)
	assert.Equal(t, []Triangle{{0, 1, 2}}, tris)
}

func TestTriangulateSquare(t *testing.T) {
	square := []vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	tris, ok := Triangulate(square)
	require.True(t, ok)
	require.Len(t, tris, 2)
	for _, tri := range tris {
		assert.Greater(t, triangleWinding(square, tri), 0.0)
	}
	// the two triangles cover the full area
	total := 0.0
	for _, tri := range tris {
		total += triangleWinding(square, tri) / 2
	}
	assert.InDelta(t, 1, total, 1e-12)
}

func TestTriangulateClockwiseInput(t *testing.T) {
	square := []vec{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 0}}
	tris, ok := Triangulate(square)
	require.True(t, ok)
	require.Len(t, tris, 2)
	// output triangles still wind counter-clockwise
	for _, tri := range tris {
		assert.Greater(t, triangleWinding(square, tri), 0.0)
	}
}

func TestTriangulateConcave(t *testing.T) {
	// an arrowhead with a reflex vertex at the notch
	arrow := []vec{{X: 0, Y: 0}, {X: 4, Y: 2}, {X: 8, Y: 0}, {X: 4, Y: 6}}
	tris, ok := Triangulate(arrow)
	require.True(t, ok)
	require.Len(t, tris, 2)
	total := 0.0
	for _, tri := range tris {
		w := triangleWinding(arrow, tri)
		assert.Greater(t, w, 0.0)
		total += w / 2
	}
	assert.InDelta(t, signedArea(arrow), total, 1e-12)
}

func TestTriangulateDegenerate(t *testing.T) {
	_, ok := Triangulate([]vec{})
	assert.False(t, ok)

	_, ok = Triangulate([]vec{{X: 0, Y: 0}, {X: 1, Y: 1}})
	assert.False(t, ok)

	// collinear ring has zero area
	_, ok = Triangulate([]vec{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}})
	assert.False(t, ok)
}

func TestTriangulateCollinearVertices(t *testing.T) {
	// a square with a redundant vertex in the middle of an edge
	ring := []vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}
	tris, ok := Triangulate(ring)
	require.True(t, ok)
	total := 0.0
	for _, tri := range tris {
		total += triangleWinding(ring, tri) / 2
	}
	assert.InDelta(t, 4, total, 1e-12)
	for _, tri := range tris {
		assert.NotContains(t, tri[:], 1, "the collinear vertex is dropped")
	}
}

func TestTriangulateSelfIntersecting(t *testing.T) {
	hourglass := []vec{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	_, ok := Triangulate(hourglass)
	assert.False(t, ok)
}

func TestIsSimple(t *testing.T) {
	assert.True(t, isSimple([]vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}))
	assert.False(t, isSimple([]vec{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 1}}))

	// adjacent edges sharing an endpoint do not count as crossing
	assert.True(t, isSimple([]vec{{X: 0, Y: 0}, {X: 4, Y: 2}, {X: 8, Y: 0}, {X: 4, Y: 6}}))

	// vertical edges are handled as point events of the sweep
	bowtie := []vec{{X: 0, Y: 0}, {X: 2, Y: 2}, {X: 2, Y: 0}, {X: 0, Y: 2}}
	assert.False(t, isSimple(bowtie))
	assert.True(t, isSimple([]vec{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}))
}

func TestTriangulateLargeRing(t *testing.T) {
	ring := ellipseRing(ellipseAt(0, 0, 10, 5))
	tris, ok := Triangulate(ring)
	require.True(t, ok)
	assert.Len(t, tris, len(ring)-2)
}
