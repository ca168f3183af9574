package svgrender

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/svgview/svgview/svgmath"
)

// Animator drives a Viewer with tweened pan and zoom. Call Update once
// per frame with the elapsed time.
type Animator struct {
	viewer Viewer

	x, y *gween.Tween
	zoom *gween.Tween
}

// NewAnimator wraps the given viewer.
func NewAnimator(v Viewer) *Animator {
	return &Animator{viewer: v}
}

// GlideTo starts panning towards center over duration seconds,
// replacing any pan in progress.
func (a *Animator) GlideTo(center svgmath.Vec2[float32], duration float32, fn ease.TweenFunc) {
	from := a.viewer.Center()
	a.x = gween.New(from.X, center.X, duration, fn)
	a.y = gween.New(from.Y, center.Y, duration, fn)
}

// ZoomTo starts zooming towards zoom over duration seconds, replacing
// any zoom in progress.
func (a *Animator) ZoomTo(zoom float32, duration float32, fn ease.TweenFunc) {
	a.zoom = gween.New(a.viewer.Zoom(), zoom, duration, fn)
}

// Animating reports whether any tween is still in progress.
func (a *Animator) Animating() bool {
	return a.x != nil || a.y != nil || a.zoom != nil
}

// Update advances the active tweens by dt seconds and applies them to
// the viewer. It reports whether anything changed.
func (a *Animator) Update(dt float32) bool {
	changed := false
	if a.x != nil {
		x, doneX := a.x.Update(dt)
		y, doneY := a.y.Update(dt)
		a.viewer.MoveTo(svgmath.Vec2[float32]{X: x, Y: y})
		if doneX && doneY {
			a.x, a.y = nil, nil
		}
		changed = true
	}
	if a.zoom != nil {
		z, done := a.zoom.Update(dt)
		a.viewer.ZoomTo(z)
		if done {
			a.zoom = nil
		}
		changed = true
	}
	return changed
}
