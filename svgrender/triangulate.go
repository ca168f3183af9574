// Package svgrender turns a parsed scene tree into flat drawing
// operations that a Backend can execute, and provides the viewers that
// map world coordinates onto a viewport.
package svgrender

import (
	"log"
	"sort"
	"sync"

	"github.com/svgview/svgview/svgmath"
)

// Triangle indexes three vertices of the ring passed to Triangulate.
type Triangle [3]int

var nonSimpleOnce sync.Once

func warnNonSimple() {
	nonSimpleOnce.Do(func() {
		log.Println("svgrender: self-intersecting polygon, fill skipped (reported once)")
	})
}

// Triangulate decomposes a simple polygon into triangles by ear
// clipping. The emitted triangles wind counter-clockwise regardless of
// the input winding.
//
// It reports false for rings it cannot fill: fewer than three
// vertices, zero area, self-intersecting outlines (warned once per
// process) and rings where no ear can be found.
func Triangulate[T svgmath.Float](ring []svgmath.Vec2[T]) ([]Triangle, bool) {
	if !isSimple(ring) {
		warnNonSimple()
		return nil, false
	}
	area := signedArea(ring)
	if area == 0 {
		return nil, false
	}
	ccw := area > 0

	// remaining ring positions, with collinear vertices removed up front
	verts := make([]int, 0, len(ring))
	for i := range ring {
		verts = append(verts, i)
	}
	for i := 0; i < len(verts); {
		if turn(ring, verts, i) == 0 {
			verts = append(verts[:i], verts[i+1:]...)
		} else {
			i++
		}
	}
	if len(verts) < 3 {
		return nil, false
	}

	triangles := make([]Triangle, 0, len(verts)-2)
	for len(verts) > 3 {
		ear := -1
		for i := range verts {
			if isEar(ring, verts, i, ccw) {
				ear = i
				break
			}
		}
		if ear < 0 {
			return nil, false
		}
		triangles = append(triangles, orient(ring, verts, ear, ccw))
		verts = append(verts[:ear], verts[ear+1:]...)
	}
	triangles = append(triangles, orient(ring, verts, 1, ccw))
	return triangles, true
}

// signedArea is the shoelace sum: positive for counter-clockwise
// rings, negative for clockwise ones.
func signedArea[T svgmath.Float](ring []svgmath.Vec2[T]) T {
	if len(ring) < 3 {
		return 0
	}
	var sum T
	for i, p := range ring {
		q := ring[(i+1)%len(ring)]
		sum += p.Cross(q)
	}
	return sum / 2
}

// turn classifies the corner at ring position i of the remaining
// vertices: positive for a left turn, negative for a right turn, zero
// when the three vertices are collinear.
func turn[T svgmath.Float](ring []svgmath.Vec2[T], verts []int, i int) T {
	n := len(verts)
	a := ring[verts[(i+n-1)%n]]
	b := ring[verts[i]]
	c := ring[verts[(i+1)%n]]
	return c.Sub(b).Cross(a.Sub(b))
}

// isEar reports whether the corner at position i is convex for the
// ring winding and contains no other remaining vertex.
func isEar[T svgmath.Float](ring []svgmath.Vec2[T], verts []int, i int, ccw bool) bool {
	t := turn(ring, verts, i)
	if ccw && t <= 0 || !ccw && t >= 0 {
		return false
	}
	n := len(verts)
	prev, next := (i+n-1)%n, (i+1)%n
	a, b, c := ring[verts[prev]], ring[verts[i]], ring[verts[next]]
	for j := range verts {
		if j == prev || j == i || j == next {
			continue
		}
		if inTriangle(ring[verts[j]], a, b, c, ccw) {
			return false
		}
	}
	return true
}

// inTriangle tests p against the three half planes of triangle abc,
// counting points on an edge as inside.
func inTriangle[T svgmath.Float](p, a, b, c svgmath.Vec2[T], ccw bool) bool {
	if !ccw {
		a, c = c, a
	}
	return b.Sub(a).Cross(p.Sub(a)) >= 0 &&
		c.Sub(b).Cross(p.Sub(b)) >= 0 &&
		a.Sub(c).Cross(p.Sub(c)) >= 0
}

// orient emits the triangle at position i so its indices run
// counter-clockwise for either input winding.
func orient[T svgmath.Float](ring []svgmath.Vec2[T], verts []int, i int, ccw bool) Triangle {
	n := len(verts)
	prev, next := verts[(i+n-1)%n], verts[(i+1)%n]
	if ccw {
		return Triangle{prev, verts[i], next}
	}
	return Triangle{next, verts[i], prev}
}

// isSimple sweeps the ring's edges along the x axis and reports
// whether no two non-adjacent edges cross. Vertical edges enter and
// leave the sweep at the same coordinate, entries first, so they are
// still tested against everything they overlap.
func isSimple[T svgmath.Float](ring []svgmath.Vec2[T]) bool {
	n := len(ring)
	if n < 4 {
		return true
	}
	type event struct {
		x     T
		enter bool
		edge  int
	}
	events := make([]event, 0, 2*n)
	for i := 0; i < n; i++ {
		a, b := ring[i], ring[(i+1)%n]
		lo, hi := a.X, b.X
		if lo > hi {
			lo, hi = hi, lo
		}
		events = append(events, event{lo, true, i}, event{hi, false, i})
	}
	sort.Slice(events, func(i, j int) bool {
		if events[i].x != events[j].x {
			return events[i].x < events[j].x
		}
		return events[i].enter && !events[j].enter
	})

	active := make([]int, 0, n)
	for _, ev := range events {
		if !ev.enter {
			for k, e := range active {
				if e == ev.edge {
					active = append(active[:k], active[k+1:]...)
					break
				}
			}
			continue
		}
		for _, other := range active {
			d := (ev.edge - other + n) % n
			if d == 1 || d == n-1 {
				continue
			}
			if edgesCross(ring[ev.edge], ring[(ev.edge+1)%n], ring[other], ring[(other+1)%n]) {
				return false
			}
		}
		active = append(active, ev.edge)
	}
	return true
}

// edgesCross reports whether segments ab and cd properly cross: each
// segment's endpoints lie strictly on opposite sides of the other's
// supporting line a*x + b*y + c = 0.
func edgesCross[T svgmath.Float](a, b, c, d svgmath.Vec2[T]) bool {
	return oppositeSides(a, b, c, d) && oppositeSides(c, d, a, b)
}

func oppositeSides[T svgmath.Float](a, b, p, q svgmath.Vec2[T]) bool {
	la, lb := b.Y-a.Y, a.X-b.X
	lc := -(la*a.X + lb*a.Y)
	s := la*p.X + lb*p.Y + lc
	t := la*q.X + lb*q.Y + lc
	return s > 0 && t < 0 || s < 0 && t > 0
}
