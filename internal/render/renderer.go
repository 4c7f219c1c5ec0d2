// Package render draws validated layouts onto the game mat template and
// encodes the result as PNG.
package render

import (
	"bytes"
	"image/png"
	"log/slog"

	"github.com/fogleman/gg"

	"fieldgen-server/internal/field"
	"fieldgen-server/internal/shared/errors"
)

type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	logger.Debug("Initializing render service")

	return &Service{logger: logger}
}

// PNG renders the layout onto the mat and returns the encoded image. The
// same layout always renders to the same bytes.
func (s *Service) PNG(l *field.Layout) ([]byte, error) {
	logger := s.logger.With("component", "render_service", "operation", "render_png", "challenge", l.Challenge)
	logger.Debug("Rendering layout")

	els, err := l.Elements()
	if err != nil {
		logger.Error("Layout cannot be drawn", "error", err)
		return nil, errors.WrapRender("layout cannot be drawn", err)
	}

	dc := gg.NewContext(field.CanvasSize, field.CanvasSize)
	drawTemplate(dc)

	// The start zone is a painted area of the mat, everything else stands
	// on top of it.
	for _, el := range els {
		if el.Kind == field.KindStartZone {
			fillRect(dc, el.Rect, colorStartZone)
		}
	}
	for _, el := range els {
		if el.Kind == field.KindWallSegment {
			fillRect(dc, el.Rect, colorWall)
		}
	}
	for _, el := range els {
		if el.Kind != field.KindObstacle {
			continue
		}
		c, ok := el.Color.RGBA()
		if !ok {
			return nil, errors.Renderf("unknown obstacle color %q", el.Color)
		}
		fillRect(dc, el.Rect, c)
	}
	if l.Parking != nil {
		first, second, ok := field.ParkingBarrierRects(l.Parking.Section)
		if !ok {
			return nil, errors.Renderf("parking section %q is not drawable", l.Parking.Section)
		}
		fillRect(dc, first, colorParking)
		fillRect(dc, second, colorParking)
	}

	if err := drawDirectionMarker(dc, l.Direction); err != nil {
		logger.Error("Layout cannot be drawn", "error", err)
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, dc.Image()); err != nil {
		logger.Error("Failed to encode image", "error", err)
		return nil, errors.WrapRender("failed to encode image", err)
	}

	logger.Debug("Layout rendered", "bytes", buf.Len())
	return buf.Bytes(), nil
}

// drawDirectionMarker draws the driving direction arc in the central
// section: three quarters of a circle with an arrow head at the end the
// vehicle drives toward.
func drawDirectionMarker(dc *gg.Context, d field.Direction) error {
	cx := float64(field.FieldSize)/2 + field.WallThickness
	cy := cx
	r := float64(field.DirectionArcRadius)

	dc.SetColor(colorMarker)
	dc.SetLineWidth(field.DirectionArcThickness)
	dc.DrawArc(cx, cy, r, gg.Radians(-90), gg.Radians(180))
	dc.Stroke()

	switch d {
	case field.Clockwise:
		// Arrow head at the left end of the arc, pointing down.
		dc.DrawLine(cx-r, cy, cx-r-30, cy+80)
		dc.Stroke()
		dc.DrawLine(cx-r, cy, cx-r+50, cy+75)
		dc.Stroke()
	case field.Counterclockwise:
		// Arrow head at the top end of the arc, pointing right.
		dc.DrawLine(cx, cy-r, cx+80, cy-r-30)
		dc.Stroke()
		dc.DrawLine(cx, cy-r, cx+75, cy-r+50)
		dc.Stroke()
	default:
		return errors.Renderf("unknown driving direction %q", d)
	}

	return nil
}
