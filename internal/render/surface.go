// Package render paints the strip grid onto an immediate-mode canvas.
package render

import "github.com/tfriedel6/canvas"

// Surface is the subset of an HTML5-style 2D context the renderer needs.
// *canvas.Canvas satisfies it.
type Surface interface {
	Width() int
	Height() int

	SetFillStyle(value ...interface{})
	SetStrokeStyle(value ...interface{})
	SetLineWidth(width float64)
	SetGlobalAlpha(alpha float64)

	FillRect(x, y, w, h float64)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadraticCurveTo(x1, y1, x2, y2 float64)
	Stroke()

	Save()
	Restore()
	Translate(x, y float64)
	Rotate(angle float64)
}

// gradientSurface is implemented by surfaces that support linear gradients.
type gradientSurface interface {
	CreateLinearGradient(x0, y0, x1, y1 float64) *canvas.LinearGradient
}

var _ Surface = (*canvas.Canvas)(nil)
