package svgrender

import (
	"math"

	"github.com/svgview/svgview/svgmath"
)

// Viewer maps world coordinates onto a viewport through a pan/zoom
// transform. The world point at Center always lands on the middle of
// the viewport.
//
// Pan deltas are divided by the current zoom, so on-screen pan speed
// does not depend on the zoom level.
type Viewer interface {
	// CenterOnObject pans and zooms so the axis-aligned box at pos
	// with size dim fills the viewport.
	CenterOnObject(pos, dim svgmath.Vec2[float32])
	MoveTo(center svgmath.Vec2[float32])
	MoveBy(delta svgmath.Vec2[float32])
	// MoveByPixels pans by a viewport-pixel delta.
	MoveByPixels(delta svgmath.Vec2[float32])
	ZoomTo(zoom float32)
	// ZoomBy multiplies the current zoom by factor.
	ZoomBy(factor float32)
	// Resize updates the viewport dimensions, in pixels.
	Resize(w, h float32)

	Center() svgmath.Vec2[float32]
	Zoom() float32
	// Transform returns the current world-to-view matrix.
	Transform() svgmath.Mat3[float32]
	// WorldToView transforms a world point into view coordinates.
	WorldToView(p svgmath.Vec2[float32]) svgmath.Vec2[float32]
}

// fitZoom picks the zoom that fits a box of size dim into the extents
// (extentX, extentY), degrading to 1 instead of an infinite zoom for
// flat boxes.
func fitZoom(dim svgmath.Vec2[float32], extentX, extentY float32) float32 {
	if dim.X == 0 || dim.Y == 0 {
		return 1
	}
	zoom := float32(math.Min(float64(extentX/dim.X), float64(extentY/dim.Y)))
	if math.IsInf(float64(zoom), 0) {
		return 1
	}
	return zoom
}

// PixelViewer maps world coordinates to pixel coordinates with the
// origin at the top left of the viewport, for raster style targets.
type PixelViewer struct {
	center        svgmath.Vec2[float32]
	zoom          float32
	width, height float32
	transform     svgmath.Mat3[float32]

	// OnResize, when set, is notified after Resize with the new
	// viewport dimensions.
	OnResize func(w, h float32)
}

var _ Viewer = (*PixelViewer)(nil)

// NewPixelViewer returns a viewer over a w by h pixel viewport,
// looking at the world origin at zoom 1.
func NewPixelViewer(w, h float32) *PixelViewer {
	v := &PixelViewer{zoom: 1, width: w, height: h}
	v.update()
	return v
}

func (v *PixelViewer) update() {
	move := svgmath.Translate(-v.center.X, -v.center.Y)
	scale := svgmath.Scale(v.zoom, v.zoom)
	recenter := svgmath.Translate(v.width/2, v.height/2)
	v.transform = move.Mul(scale).Mul(recenter)
}

func (v *PixelViewer) CenterOnObject(pos, dim svgmath.Vec2[float32]) {
	v.center = pos.Add(dim.Scale(0.5))
	v.zoom = fitZoom(dim, v.width, v.height)
	v.update()
}

func (v *PixelViewer) MoveTo(center svgmath.Vec2[float32]) {
	v.center = center
	v.update()
}

func (v *PixelViewer) MoveBy(delta svgmath.Vec2[float32]) {
	v.center = v.center.Add(delta.Scale(1 / v.zoom))
	v.update()
}

func (v *PixelViewer) MoveByPixels(delta svgmath.Vec2[float32]) {
	v.MoveBy(delta)
}

func (v *PixelViewer) ZoomTo(zoom float32) {
	v.zoom = zoom
	v.update()
}

func (v *PixelViewer) ZoomBy(factor float32) {
	v.zoom *= factor
	v.update()
}

func (v *PixelViewer) Resize(w, h float32) {
	v.width, v.height = w, h
	v.update()
	if v.OnResize != nil {
		v.OnResize(w, h)
	}
}

func (v *PixelViewer) Center() svgmath.Vec2[float32] { return v.center }

func (v *PixelViewer) Zoom() float32 { return v.zoom }

func (v *PixelViewer) Transform() svgmath.Mat3[float32] { return v.transform }

func (v *PixelViewer) WorldToView(p svgmath.Vec2[float32]) svgmath.Vec2[float32] {
	return v.transform.Apply(p)
}

// NDCViewer maps world coordinates to normalized device coordinates in
// [-1, 1], correcting for the viewport aspect ratio, for GPU style
// targets.
type NDCViewer struct {
	center        svgmath.Vec2[float32]
	zoom          float32
	width, height float32
	transform     svgmath.Mat3[float32]

	OnResize func(w, h float32)
}

var _ Viewer = (*NDCViewer)(nil)

// NewNDCViewer returns a viewer over a w by h pixel viewport, looking
// at the world origin at zoom 1.
func NewNDCViewer(w, h float32) *NDCViewer {
	v := &NDCViewer{zoom: 1, width: w, height: h}
	v.update()
	return v
}

// scales returns the per-axis zoom, shrinking the wider axis so one
// world unit stays square on screen.
func (v *NDCViewer) scales() (sx, sy float32) {
	aspect := v.width / v.height
	if aspect > 1 {
		return v.zoom / aspect, v.zoom
	}
	return v.zoom, v.zoom * aspect
}

func (v *NDCViewer) update() {
	sx, sy := v.scales()
	move := svgmath.Translate(-v.center.X, -v.center.Y)
	v.transform = move.Mul(svgmath.Scale(sx, sy))
}

func (v *NDCViewer) CenterOnObject(pos, dim svgmath.Vec2[float32]) {
	v.center = pos.Add(dim.Scale(0.5))
	// the NDC viewport spans 2 units in each direction
	v.zoom = fitZoom(dim, 2, 2)
	v.update()
}

func (v *NDCViewer) MoveTo(center svgmath.Vec2[float32]) {
	v.center = center
	v.update()
}

func (v *NDCViewer) MoveBy(delta svgmath.Vec2[float32]) {
	v.center = v.center.Add(delta.Scale(1 / v.zoom))
	v.update()
}

func (v *NDCViewer) MoveByPixels(delta svgmath.Vec2[float32]) {
	sx, sy := v.scales()
	v.center.X += delta.X * 2 / v.width / sx
	v.center.Y += delta.Y * 2 / v.height / sy
	v.update()
}

func (v *NDCViewer) ZoomTo(zoom float32) {
	v.zoom = zoom
	v.update()
}

func (v *NDCViewer) ZoomBy(factor float32) {
	v.zoom *= factor
	v.update()
}

func (v *NDCViewer) Resize(w, h float32) {
	v.width, v.height = w, h
	v.update()
	if v.OnResize != nil {
		v.OnResize(w, h)
	}
}

func (v *NDCViewer) Center() svgmath.Vec2[float32] { return v.center }

func (v *NDCViewer) Zoom() float32 { return v.zoom }

func (v *NDCViewer) Transform() svgmath.Mat3[float32] { return v.transform }

func (v *NDCViewer) WorldToView(p svgmath.Vec2[float32]) svgmath.Vec2[float32] {
	return v.transform.Apply(p)
}
