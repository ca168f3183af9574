// Implements a raster backend executing drawing operations
// into an image, by wrapping rasterx.
package svgraster

import (
	"image"
	"image/color"
	"image/draw"
	"io"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"github.com/svgview/svgview/svgmath"
	"github.com/svgview/svgview/svgrender"
	"github.com/svgview/svgview/svgscene"
)

var _ svgrender.Backend = (*Renderer)(nil) // assert interface conformance

// side of the square drawn for point primitives, in pixels
const pointSize = 2

type Renderer struct {
	img    *image.RGBA
	dasher *rasterx.Dasher // to avoid shared state
	filler *rasterx.Filler // we use separated instances
}

// New returns a renderer drawing into a fresh white image of the given
// pixel size.
func New(width, height int) *Renderer {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	rd := &Renderer{
		img:    img,
		dasher: rasterx.NewDasher(width, height, scanner),
		filler: rasterx.NewFiller(width, height, scanner),
	}
	rd.Clear()
	return rd
}

// Image exposes the rendering target.
func (rd *Renderer) Image() *image.RGBA { return rd.img }

// RenderToImage parses the SVG stream and rasters it at its declared
// size, seen through a viewer fitted to the whole canvas.
func RenderToImage(svg io.Reader) (*image.RGBA, error) {
	doc, err := svgscene.Read(svg, svgscene.IgnoreErrorMode)
	if err != nil {
		return nil, err
	}
	w, h := int(doc.Dimension.X), int(doc.Dimension.Y)
	viewer := svgrender.NewPixelViewer(float32(w), float32(h))
	svgrender.CenterViewerOn(viewer, svgrender.Object{Document: doc})

	rd := New(w, h)
	rd.Submit(svgrender.BuildOperations(doc), viewer.Transform())
	rd.Present()
	return rd.img, nil
}

// Clear resets the target to opaque white.
func (rd *Renderer) Clear() {
	draw.Draw(rd.img, rd.img.Bounds(), image.White, image.Point{}, draw.Src)
	rd.dasher.Clear()
	rd.filler.Clear()
}

// Present is a no-op: the image is complete after Submit.
func (rd *Renderer) Present() {}

// Submit executes the operations in order, mapping their world
// coordinates through the view transform.
func (rd *Renderer) Submit(ops []svgrender.Operation, view svgmath.Mat3[float32]) {
	for _, op := range ops {
		switch op := op.(type) {
		case svgrender.FillTriangles:
			rd.fillTriangles(op, view)
		case svgrender.DrawPoints:
			rd.drawPoints(op, view)
		case svgrender.DrawLines:
			rd.drawLines(op, view)
		case svgrender.DrawAdjacentLines:
			rd.drawAdjacentLines(op, view)
		}
	}
}

func toFixedPoint(p svgmath.Vec2[float32]) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(p.X * 64), Y: fixed.Int26_6(p.Y * 64)}
}

func toNRGBA(c [4]float32) color.NRGBA {
	return color.NRGBA{
		R: uint8(c[0]*255 + 0.5),
		G: uint8(c[1]*255 + 0.5),
		B: uint8(c[2]*255 + 0.5),
		A: uint8(c[3]*255 + 0.5),
	}
}

// viewScale estimates the uniform scale factor of the view transform,
// used to express world-space stroke widths in pixels.
func viewScale(m svgmath.Mat3[float32]) float32 {
	det := float64(m[0][0]*m[1][1] - m[0][1]*m[1][0])
	return float32(math.Sqrt(math.Abs(det)))
}

func (rd *Renderer) fillTriangles(op svgrender.FillTriangles, view svgmath.Mat3[float32]) {
	if len(op.Indices) == 0 {
		return
	}
	_, c := svgrender.VertexAt(op.Vertices, 0)
	rd.filler.Scanner.SetColor(toNRGBA(c))
	for i := 0; i+2 < len(op.Indices); i += 3 {
		a, _ := svgrender.VertexAt(op.Vertices, int(op.Indices[i]))
		b, _ := svgrender.VertexAt(op.Vertices, int(op.Indices[i+1]))
		c, _ := svgrender.VertexAt(op.Vertices, int(op.Indices[i+2]))
		rd.filler.Start(toFixedPoint(view.Apply(a)))
		rd.filler.Line(toFixedPoint(view.Apply(b)))
		rd.filler.Line(toFixedPoint(view.Apply(c)))
		rd.filler.Stop(true)
	}
	rd.filler.Draw()
	rd.filler.Clear()
}

func (rd *Renderer) drawPoints(op svgrender.DrawPoints, view svgmath.Mat3[float32]) {
	const half = pointSize / 2.0
	for i := 0; i < svgrender.VertexCount(op.Vertices); i++ {
		pos, c := svgrender.VertexAt(op.Vertices, i)
		p := view.Apply(pos)
		rd.filler.Scanner.SetColor(toNRGBA(c))
		rd.filler.Start(toFixedPoint(svgmath.Vec2[float32]{X: p.X - half, Y: p.Y - half}))
		rd.filler.Line(toFixedPoint(svgmath.Vec2[float32]{X: p.X + half, Y: p.Y - half}))
		rd.filler.Line(toFixedPoint(svgmath.Vec2[float32]{X: p.X + half, Y: p.Y + half}))
		rd.filler.Line(toFixedPoint(svgmath.Vec2[float32]{X: p.X - half, Y: p.Y + half}))
		rd.filler.Stop(true)
		rd.filler.Draw()
		rd.filler.Clear()
	}
}

func (rd *Renderer) setStroke(width, miterLimit float32) {
	rd.dasher.SetStroke(
		fixed.Int26_6(width*64), fixed.Int26_6(miterLimit*64),
		rasterx.ButtCap, rasterx.ButtCap, rasterx.FlatGap, rasterx.Miter,
		nil, 0,
	)
}

func (rd *Renderer) drawLines(op svgrender.DrawLines, view svgmath.Mat3[float32]) {
	rd.setStroke(1, 4)
	n := svgrender.VertexCount(op.Vertices)
	for i := 0; i+1 < n; i += 2 {
		a, c := svgrender.VertexAt(op.Vertices, i)
		b, _ := svgrender.VertexAt(op.Vertices, i+1)
		rd.dasher.Scanner.SetColor(toNRGBA(c))
		rd.dasher.Start(toFixedPoint(view.Apply(a)))
		rd.dasher.Line(toFixedPoint(view.Apply(b)))
		rd.dasher.Stop(false)
		rd.dasher.Draw()
		rd.dasher.Clear()
	}
}

func (rd *Renderer) drawAdjacentLines(op svgrender.DrawAdjacentLines, view svgmath.Mat3[float32]) {
	core := svgrender.StrokeCore(op)
	if len(core) < 2 {
		return
	}
	_, c := svgrender.VertexAt(op.Vertices, 1)
	rd.dasher.Scanner.SetColor(toNRGBA(c))
	rd.setStroke(op.Width*viewScale(view), op.MiterLimit)

	rd.dasher.Start(toFixedPoint(view.Apply(core[0])))
	for _, p := range core[1:] {
		rd.dasher.Line(toFixedPoint(view.Apply(p)))
	}
	rd.dasher.Stop(op.Closed)
	rd.dasher.Draw()
	rd.dasher.Clear()
}
