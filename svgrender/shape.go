package svgrender

import (
	"math"

	"github.com/svgview/svgview/svgmath"
	"github.com/svgview/svgview/svgscene"
)

// polygon sampling resolutions
const (
	ellipseSegments = 256
	cornerSegments  = 16
)

// ellipseRing samples an ellipse as a closed ring.
func ellipseRing(e svgscene.Ellipse) []svgmath.Vec2[float64] {
	ring := make([]svgmath.Vec2[float64], ellipseSegments)
	for i := range ring {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / ellipseSegments)
		ring[i] = svgmath.Vec2[float64]{
			X: e.Center.X + e.Radius.X*cos,
			Y: e.Center.Y + e.Radius.Y*sin,
		}
	}
	return ring
}

// rectRing lowers a rect to a closed ring, sampling quarter arcs for
// rounded corners. Corner radii are clamped to half the side lengths.
func rectRing(r svgscene.Rect) []svgmath.Vec2[float64] {
	x, y := r.Position.X, r.Position.Y
	w, h := r.Dimension.X, r.Dimension.Y
	rx := math.Min(math.Max(r.Corners.X, 0), w/2)
	ry := math.Min(math.Max(r.Corners.Y, 0), h/2)
	if rx == 0 || ry == 0 {
		return []svgmath.Vec2[float64]{
			{X: x, Y: y},
			{X: x + w, Y: y},
			{X: x + w, Y: y + h},
			{X: x, Y: y + h},
		}
	}
	ring := make([]svgmath.Vec2[float64], 0, 4*(cornerSegments+1))
	// corner arc centers, visited from the top left corner onwards
	arc := func(cx, cy, fromDeg float64) {
		for i := 0; i <= cornerSegments; i++ {
			sin, cos := math.Sincos((fromDeg + 90*float64(i)/cornerSegments) * math.Pi / 180)
			ring = append(ring, svgmath.Vec2[float64]{X: cx + rx*cos, Y: cy + ry*sin})
		}
	}
	arc(x+rx, y+ry, 180)
	arc(x+w-rx, y+ry, 270)
	arc(x+w-rx, y+h-ry, 0)
	arc(x+rx, y+h-ry, 90)
	return ring
}
