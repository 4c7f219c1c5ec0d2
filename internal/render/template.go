package render

import (
	"image/color"

	"github.com/fogleman/gg"

	"fieldgen-server/internal/field"
)

var (
	colorWall      = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	colorStartZone = color.RGBA{R: 192, G: 192, B: 192, A: 255}
	colorParking   = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	colorMarker    = color.RGBA{R: 0, G: 0, B: 255, A: 255}
)

// drawTemplate paints the empty mat: the black outer wall ring, the white
// playing surface and the thin guide lines for the radii and arcs.
func drawTemplate(dc *gg.Context) {
	dc.SetRGB(0, 0, 0)
	dc.Clear()

	dc.SetRGB(1, 1, 1)
	dc.DrawRectangle(field.WallThickness, field.WallThickness, field.FieldSize, field.FieldSize)
	dc.Fill()

	for _, ln := range templateLines() {
		fillRect(dc, ln, colorWall)
	}
}

// templateLines returns the guide lines of the empty mat in canvas
// coordinates.
func templateLines() []field.Rect {
	const (
		size  = field.FieldSize
		inner = field.InnerBorder
		mid   = field.MiddleRadius
	)

	return []field.Rect{
		// Borders between the straight sections and the central section,
		// doubling as the outermost radii of the neighboring sections.
		hline(inner, 0, size),
		hline(size-inner, 0, size),
		vline(inner, 0, size),
		vline(size-inner, 0, size),

		// Arcs of the north and south sections.
		hline(field.FirstArc, inner, size-inner),
		hline(field.SecondArc, inner, size-inner),
		hline(size-field.FirstArc, inner, size-inner),
		hline(size-field.SecondArc, inner, size-inner),

		// Arcs of the west and east sections.
		vline(field.FirstArc, inner, size-inner),
		vline(field.SecondArc, inner, size-inner),
		vline(size-field.FirstArc, inner, size-inner),
		vline(size-field.SecondArc, inner, size-inner),

		// Middle radii of the four sections.
		vline(mid, 0, inner),
		vline(mid, size-inner, size),
		hline(mid, 0, inner),
		hline(mid, size-inner, size),
	}
}

// hline is a horizontal guide line at interior height y spanning [x0, x1).
func hline(y, x0, x1 int) field.Rect {
	const half = field.GuideThickness / 2
	return field.Rect{
		X0: x0 + field.WallThickness,
		Y0: y - half + field.WallThickness,
		X1: x1 + field.WallThickness,
		Y1: y + half + field.WallThickness,
	}
}

// vline is a vertical guide line at interior width x spanning [y0, y1).
func vline(x, y0, y1 int) field.Rect {
	const half = field.GuideThickness / 2
	return field.Rect{
		X0: x - half + field.WallThickness,
		Y0: y0 + field.WallThickness,
		X1: x + half + field.WallThickness,
		Y1: y1 + field.WallThickness,
	}
}

func fillRect(dc *gg.Context, r field.Rect, c color.Color) {
	dc.SetColor(c)
	dc.DrawRectangle(float64(r.X0), float64(r.Y0), float64(r.Dx()), float64(r.Dy()))
	dc.Fill()
}
