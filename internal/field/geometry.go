package field

// The mat is modeled at 1 px per mm: a 3 m by 3 m playing surface inside a
// 10 px outer wall. Straight-section geometry is expressed in a local frame
// whose depth axis runs from the outer wall toward the central section and
// whose span axis runs across the field in the North section's orientation;
// the other three sections are rotations of the same frame.
const (
	FieldSize     = 3000
	WallThickness = 10
	CanvasSize    = FieldSize + 2*WallThickness

	FirstArc    = 400
	SecondArc   = FirstArc + 200
	InnerBorder = SecondArc + 400

	LeftRadius   = InnerBorder
	MiddleRadius = FieldSize / 2
	RightRadius  = FieldSize - InnerBorder

	GuideThickness = 2

	ObstacleSize = 100

	ParkingBarrierThickness = 20
	ParkingBarrierLength    = 200
	ParkingBarrierGap       = 300

	DirectionArcRadius    = 350
	DirectionArcThickness = 20
)

// Point is a section-local coordinate pair: depth from the outer wall and
// span across the field.
type Point struct {
	Depth int
	Span  int
}

// Rect is a half-open pixel rectangle [X0,X1) x [Y0,Y1) in canvas
// coordinates, outer wall included.
type Rect struct {
	X0, Y0, X1, Y1 int
}

func (r Rect) Dx() int { return r.X1 - r.X0 }

func (r Rect) Dy() int { return r.Y1 - r.Y0 }

func (r Rect) Empty() bool { return r.X0 >= r.X1 || r.Y0 >= r.Y1 }

// Intersect returns the overlap of two rectangles; the result is empty when
// they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	out := Rect{
		X0: max(r.X0, o.X0),
		Y0: max(r.Y0, o.Y0),
		X1: min(r.X1, o.X1),
		Y1: min(r.Y1, o.Y1),
	}
	if out.Empty() {
		return Rect{}
	}
	return out
}

func (r Rect) Overlaps(o Rect) bool { return !r.Intersect(o).Empty() }

// InBounds reports whether the rectangle lies entirely on the canvas.
func (r Rect) InBounds() bool {
	return r.X0 >= 0 && r.Y0 >= 0 && r.X1 <= CanvasSize && r.Y1 <= CanvasSize
}

// rectOnSection maps a section-local rectangle, given as two corner points
// in depth/span coordinates, onto the canvas. The North section reads
// top-down, the others are rotations; the outer wall offset is applied last.
func rectOnSection(sec Section, a, b Point) (Rect, bool) {
	d0, d1 := minMax(a.Depth, b.Depth)
	s0, s1 := minMax(a.Span, b.Span)

	var r Rect
	switch sec {
	case North:
		r = Rect{X0: s0, Y0: d0, X1: s1, Y1: d1}
	case South:
		r = Rect{X0: FieldSize - s1, Y0: FieldSize - d1, X1: FieldSize - s0, Y1: FieldSize - d0}
	case West:
		r = Rect{X0: d0, Y0: FieldSize - s1, X1: d1, Y1: FieldSize - s0}
	case East:
		r = Rect{X0: FieldSize - d1, Y0: s0, X1: FieldSize - d0, Y1: s1}
	default:
		return Rect{}, false
	}

	r.X0 += WallThickness
	r.X1 += WallThickness
	r.Y0 += WallThickness
	r.Y1 += WallThickness
	return r, true
}

func minMax(a, b int) (lo, hi int) {
	if a > b {
		return b, a
	}
	return a, b
}

// ObstacleRect returns the canvas rectangle of an obstacle centered on the
// given intersection of the given section.
func ObstacleRect(sec Section, slot Intersection) (Rect, bool) {
	p, ok := slot.Point()
	if !ok {
		return Rect{}, false
	}
	half := ObstacleSize / 2
	return rectOnSection(sec,
		Point{Depth: p.Depth - half, Span: p.Span - half},
		Point{Depth: p.Depth + half, Span: p.Span + half},
	)
}

// StartZoneRect returns the canvas rectangle of a start zone of the given
// section.
func StartZoneRect(sec Section, zone StartZone) (Rect, bool) {
	a, b, ok := zone.Corners()
	if !ok {
		return Rect{}, false
	}
	pa, ok := a.Point()
	if !ok {
		return Rect{}, false
	}
	pb, ok := b.Point()
	if !ok {
		return Rect{}, false
	}
	return rectOnSection(sec, pa, pb)
}

// ParkingBarrierRects returns the canvas rectangles of the two parking lot
// barriers of the given section. The barriers stand flush against the outer
// wall, one barrier width past the left radius, separated by the lot width.
func ParkingBarrierRects(sec Section) (first, second Rect, ok bool) {
	firstLeft := LeftRadius
	secondLeft := firstLeft + ParkingBarrierThickness + ParkingBarrierGap

	first, ok = rectOnSection(sec,
		Point{Depth: 0, Span: firstLeft},
		Point{Depth: ParkingBarrierLength, Span: firstLeft + ParkingBarrierThickness},
	)
	if !ok {
		return Rect{}, Rect{}, false
	}
	second, ok = rectOnSection(sec,
		Point{Depth: 0, Span: secondLeft},
		Point{Depth: ParkingBarrierLength, Span: secondLeft + ParkingBarrierThickness},
	)
	if !ok {
		return Rect{}, Rect{}, false
	}
	return first, second, true
}

// WallSet records, per side of the mat, whether the interior wall is
// extended toward the outer wall. A default wall runs along the inner
// border; an extended wall runs along the second arc of its section.
type WallSet struct {
	North bool
	East  bool
	South bool
	West  bool
}

// SetExtended marks the wall on the given side as extended.
func (w *WallSet) SetExtended(sec Section) {
	switch sec {
	case North:
		w.North = true
	case East:
		w.East = true
	case South:
		w.South = true
	case West:
		w.West = true
	}
}

// Extended reports whether the wall on the given side is extended.
func (w WallSet) Extended(sec Section) bool {
	switch sec {
	case North:
		return w.North
	case East:
		return w.East
	case South:
		return w.South
	case West:
		return w.West
	}
	return false
}

// Depth returns the section-local depth of the wall on the given side.
func (w WallSet) Depth(sec Section) int {
	if w.Extended(sec) {
		return SecondArc
	}
	return InnerBorder
}

// WallSegmentRect returns the canvas rectangle of one side's interior wall
// segment. Segments span between the two neighboring sides' walls, so each
// rectangle depends on the whole set; adjacent segments share 10x10 corner
// joints.
func WallSegmentRect(w WallSet, side Section) (Rect, bool) {
	half := WallThickness / 2

	// Wall positions in interior coordinates.
	yN := w.Depth(North)
	xW := w.Depth(West)
	yS := FieldSize - w.Depth(South)
	xE := FieldSize - w.Depth(East)

	var r Rect
	switch side {
	case North:
		r = Rect{X0: xW - half, Y0: yN - half, X1: xE + half, Y1: yN + half}
	case South:
		r = Rect{X0: xW - half, Y0: yS - half, X1: xE + half, Y1: yS + half}
	case West:
		r = Rect{X0: xW - half, Y0: yN - half, X1: xW + half, Y1: yS + half}
	case East:
		r = Rect{X0: xE - half, Y0: yN - half, X1: xE + half, Y1: yS + half}
	default:
		return Rect{}, false
	}

	r.X0 += WallThickness
	r.X1 += WallThickness
	r.Y0 += WallThickness
	r.Y1 += WallThickness
	return r, true
}
