// Package svgscene reads a restricted SVG dialect into a scene tree.
//
// The supported elements are the basic shapes (point-like and zero-size
// rects, lines, polylines, rects, polygons, ellipses and circles) plus
// the g and nested svg containers. Path data, text and CSS are out of
// scope. Unknown tags are reported through the chosen ErrorMode and
// otherwise skipped, so real-world files still load.
package svgscene

import "github.com/svgview/svgview/svgmath"

// Document is the root of a parsed scene: the canvas size declared by
// the outermost svg tag and its direct children in document order.
type Document struct {
	// Dimension is the width and height of the canvas, in pixels.
	Dimension svgmath.Vec2[float64]
	Elements  []Element
}

// Element is a node of the scene tree: either a Group or one of the
// shape types. The set of implementations is closed.
type Element interface {
	element()
}

// Group is a container element. Its style is the resolved cascade for
// its children, and its transform applies to everything below it.
type Group struct {
	Style    Style
	Elements []Element
}

// Point is a single positioned vertex, from a point element or a rect
// with zero width and height.
type Point struct {
	Style    Style
	Position svgmath.Vec2[float64]
}

// Line is a straight segment between two points.
type Line struct {
	Style    Style
	From, To svgmath.Vec2[float64]
}

// Polyline is an open run of connected segments.
type Polyline struct {
	Style  Style
	Points []svgmath.Vec2[float64]
}

// Rect is an axis-aligned rectangle, optionally with rounded corners.
// Corners holds the x and y corner radii; zero means square corners.
type Rect struct {
	Style     Style
	Position  svgmath.Vec2[float64]
	Dimension svgmath.Vec2[float64]
	Corners   svgmath.Vec2[float64]
}

// Polygon is a closed ring of vertices.
type Polygon struct {
	Style  Style
	Points []svgmath.Vec2[float64]
}

// Ellipse is centered on Center with per-axis radii. Circles parse to
// an Ellipse with equal radii.
type Ellipse struct {
	Style          Style
	Center, Radius svgmath.Vec2[float64]
}

// Image records an image reference. Rendering it is not supported; the
// element is kept so callers can see what was skipped.
type Image struct {
	Style     Style
	Position  svgmath.Vec2[float64]
	Dimension svgmath.Vec2[float64]
}

func (Group) element()    {}
func (Point) element()    {}
func (Line) element()     {}
func (Polyline) element() {}
func (Rect) element()     {}
func (Polygon) element()  {}
func (Ellipse) element()  {}
func (Image) element()    {}
