// Package svgeb is an ebiten backend: it executes drawing operations
// with DrawTriangles calls against an ebiten image, thickening line
// primitives into ribbon meshes.
package svgeb

import (
	"github.com/svgview/svgview/svgmath"
)

type vec2f = svgmath.Vec2[float32]

func perpendicular(v vec2f) vec2f { return vec2f{X: -v.Y, Y: v.X} }

// miterNormals returns one unit-ish offset normal per point, averaging
// the adjoining segment normals and stretching the result so the joint
// keeps its visual width. The stretch is clamped to limit so near
// reversals do not produce spikes.
func miterNormals(points []vec2f, closed bool, limit float32) []vec2f {
	n := len(points)
	normals := make([]vec2f, n)
	segNormal := func(i, j int) (vec2f, bool) {
		d, err := points[j].Sub(points[i]).Normalize()
		if err != nil {
			return vec2f{}, false
		}
		return perpendicular(d), true
	}
	for i := range points {
		var prev, next vec2f
		havePrev, haveNext := false, false
		if i > 0 || closed {
			prev, havePrev = segNormal((i+n-1)%n, i)
		}
		if i < n-1 || closed {
			next, haveNext = segNormal(i, (i+1)%n)
		}
		switch {
		case havePrev && haveNext:
			avg, err := prev.Add(next).Normalize()
			if err != nil {
				// straight reversal, fall back to one side
				normals[i] = prev
				continue
			}
			scale := limit
			if dot := avg.Dot(prev); dot > 1/limit {
				scale = 1 / dot
			}
			normals[i] = avg.Scale(scale)
		case havePrev:
			normals[i] = prev
		case haveNext:
			normals[i] = next
		}
	}
	return normals
}

// ribbon builds the two offset vertices per point for a stroke of the
// given width.
func ribbon(points []vec2f, normals []vec2f, width float32) []vec2f {
	half := width / 2
	out := make([]vec2f, 0, 2*len(points))
	for i, p := range points {
		off := normals[i].Scale(half)
		out = append(out, p.Add(off), p.Sub(off))
	}
	return out
}

// ribbonIndices triangulates the ribbon strip, wrapping around for
// closed strokes.
func ribbonIndices(pointCount int, closed bool) []uint16 {
	segments := pointCount - 1
	if closed {
		segments = pointCount
	}
	out := make([]uint16, 0, 6*segments)
	for s := 0; s < segments; s++ {
		a := uint16(2 * s)
		b := uint16(2 * ((s + 1) % pointCount))
		out = append(out, a, a+1, b, a+1, b+1, b)
	}
	return out
}
