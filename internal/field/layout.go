package field

import "fmt"

// ElementKind tags one drawable item of a layout.
type ElementKind string

const (
	KindWallSegment ElementKind = "wall-segment"
	KindObstacle    ElementKind = "obstacle"
	KindStartZone   ElementKind = "starting-zone"
	KindParking     ElementKind = "parking-section"
)

// Element is one placed item of a layout together with its canvas-space
// rectangle. Only the fields relevant to the kind are set; the rectangle of
// a parking element is the bounding box of its two barriers.
type Element struct {
	Kind    ElementKind
	Section Section
	Slot    Intersection
	Zone    StartZone
	Color   ObstacleColor
	Rect    Rect
}

// StartPlacement locates the vehicle start zone.
type StartPlacement struct {
	Section Section
	Zone    StartZone
}

// PlacedObstacle is one traffic-sign obstacle on an intersection of a
// straight section.
type PlacedObstacle struct {
	Section Section
	Slot    Intersection
	Color   ObstacleColor
}

// ParkingPlacement locates the parking lot barriers.
type ParkingPlacement struct {
	Section Section
}

// Layout is one concrete arrangement of field elements for a single
// request. A generated layout always satisfies Validate; it is consumed
// read-only by the renderer and discarded after the response.
type Layout struct {
	Challenge ChallengeType
	Direction Direction
	Walls     WallSet
	Start     StartPlacement
	Obstacles []PlacedObstacle
	Parking   *ParkingPlacement
}

// Elements flattens the layout into its drawable element list: four wall
// segments, the start zone, the obstacles, and the parking section when
// present. It fails when any part of the layout names a section, zone,
// intersection or color outside the field vocabulary.
func (l *Layout) Elements() ([]Element, error) {
	els := make([]Element, 0, 6+len(l.Obstacles))

	for _, side := range Sections() {
		r, ok := WallSegmentRect(l.Walls, side)
		if !ok {
			return nil, fmt.Errorf("wall segment on unknown side %q", side)
		}
		els = append(els, Element{Kind: KindWallSegment, Section: side, Rect: r})
	}

	r, ok := StartZoneRect(l.Start.Section, l.Start.Zone)
	if !ok {
		return nil, fmt.Errorf("start zone %q in section %q is not drawable", l.Start.Zone, l.Start.Section)
	}
	els = append(els, Element{Kind: KindStartZone, Section: l.Start.Section, Zone: l.Start.Zone, Rect: r})

	for _, o := range l.Obstacles {
		r, ok := ObstacleRect(o.Section, o.Slot)
		if !ok {
			return nil, fmt.Errorf("obstacle at %q in section %q is not drawable", o.Slot, o.Section)
		}
		if !o.Color.Valid() {
			return nil, fmt.Errorf("obstacle at %q in section %q has unknown color %q", o.Slot, o.Section, o.Color)
		}
		els = append(els, Element{Kind: KindObstacle, Section: o.Section, Slot: o.Slot, Color: o.Color, Rect: r})
	}

	if l.Parking != nil {
		first, second, ok := ParkingBarrierRects(l.Parking.Section)
		if !ok {
			return nil, fmt.Errorf("parking section %q is not drawable", l.Parking.Section)
		}
		bbox := Rect{
			X0: min(first.X0, second.X0),
			Y0: min(first.Y0, second.Y0),
			X1: max(first.X1, second.X1),
			Y1: max(first.Y1, second.Y1),
		}
		els = append(els, Element{Kind: KindParking, Section: l.Parking.Section, Rect: bbox})
	}

	return els, nil
}

// Validate checks the layout invariants: known challenge and direction,
// exactly one start zone, a parking section exactly when the challenge is
// the obstacle challenge, every element inside the field boundary, and no
// overlap between wall segments and obstacles. Wall segments may share
// their corner joints but must not otherwise overlap.
func (l *Layout) Validate() error {
	if !l.Challenge.Valid() {
		return fmt.Errorf("unknown challenge type %q", l.Challenge)
	}
	if !l.Direction.Valid() {
		return fmt.Errorf("unknown driving direction %q", l.Direction)
	}

	switch l.Challenge {
	case ChallengeOpen:
		if l.Parking != nil {
			return fmt.Errorf("open challenge layout must not have a parking section")
		}
	case ChallengeObstacle:
		if l.Parking == nil {
			return fmt.Errorf("obstacle challenge layout must have a parking section")
		}
	}

	for _, o := range l.Obstacles {
		if !o.Slot.Placeable() {
			return fmt.Errorf("intersection %q in section %q is not an obstacle slot", o.Slot, o.Section)
		}
	}

	els, err := l.Elements()
	if err != nil {
		return err
	}

	var solids []Element // wall segments and obstacles, the overlap-checked kinds
	for _, el := range els {
		if !el.Rect.InBounds() {
			return fmt.Errorf("%s in section %q extends outside the field boundary", el.Kind, el.Section)
		}
		if el.Kind == KindWallSegment || el.Kind == KindObstacle {
			solids = append(solids, el)
		}
	}

	for i := 0; i < len(solids); i++ {
		for j := i + 1; j < len(solids); j++ {
			a, b := solids[i], solids[j]
			ov := a.Rect.Intersect(b.Rect)
			if ov.Empty() {
				continue
			}
			if a.Kind == KindWallSegment && b.Kind == KindWallSegment && isWallJoint(ov) {
				continue
			}
			return fmt.Errorf("%s overlaps %s at (%d,%d)", describeElement(a), describeElement(b), ov.X0, ov.Y0)
		}
	}

	if l.Parking != nil {
		first, second, _ := ParkingBarrierRects(l.Parking.Section)
		for _, el := range solids {
			if el.Rect.Overlaps(first) || el.Rect.Overlaps(second) {
				return fmt.Errorf("%s overlaps the parking barriers", describeElement(el))
			}
		}
	}

	return nil
}

// isWallJoint reports whether an overlap between two wall segments is the
// shared corner square where perpendicular segments meet.
func isWallJoint(ov Rect) bool {
	return ov.Dx() <= WallThickness && ov.Dy() <= WallThickness
}

func describeElement(el Element) string {
	switch el.Kind {
	case KindObstacle:
		return fmt.Sprintf("obstacle at %s/%s", el.Section, el.Slot)
	case KindWallSegment:
		return fmt.Sprintf("%s wall segment", el.Section)
	default:
		return string(el.Kind)
	}
}
