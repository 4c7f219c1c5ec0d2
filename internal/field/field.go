// Package field models the WRO Future Engineers game field: the mat
// geometry, the named placement vocabulary (sections, intersections, start
// zones) and validated layouts of placed elements.
package field

import "image/color"

type ChallengeType string

const (
	ChallengeOpen     ChallengeType = "open"
	ChallengeObstacle ChallengeType = "obstacle"
)

func (c ChallengeType) Valid() bool {
	return c == ChallengeOpen || c == ChallengeObstacle
}

// Direction is the driving direction of the vehicle around the mat.
type Direction string

const (
	Clockwise        Direction = "cw"
	Counterclockwise Direction = "ccw"
)

func (d Direction) Valid() bool {
	return d == Clockwise || d == Counterclockwise
}

// Section names one of the four straight sections of the mat. The corner
// and central sections never hold placed elements.
type Section string

const (
	North Section = "north"
	East  Section = "east"
	South Section = "south"
	West  Section = "west"
)

// Sections returns the straight sections in a stable order.
func Sections() []Section {
	return []Section{North, East, South, West}
}

func (s Section) Valid() bool {
	switch s {
	case North, East, South, West:
		return true
	}
	return false
}

// Intersection names one of the twelve points where radii and arcs of a
// straight section meet. T1..T4 and X1, X2 are the obstacle slots; the
// remaining points anchor start zones.
type Intersection string

const (
	TopLeft      Intersection = "top-left"
	TopMiddle    Intersection = "top-middle"
	TopRight     Intersection = "top-right"
	T4           Intersection = "T4"
	X2           Intersection = "X2"
	T3           Intersection = "T3"
	T2           Intersection = "T2"
	X1           Intersection = "X1"
	T1           Intersection = "T1"
	BottomLeft   Intersection = "bottom-left"
	BottomMiddle Intersection = "bottom-middle"
	BottomRight  Intersection = "bottom-right"
)

// Point returns the intersection's section-local coordinates (depth from
// the outer wall, span across the field). ok is false for an unknown name.
func (i Intersection) Point() (p Point, ok bool) {
	switch i {
	case TopLeft:
		return Point{0, LeftRadius}, true
	case TopMiddle:
		return Point{0, MiddleRadius}, true
	case TopRight:
		return Point{0, RightRadius}, true
	case T4:
		return Point{FirstArc, LeftRadius}, true
	case X2:
		return Point{FirstArc, MiddleRadius}, true
	case T3:
		return Point{FirstArc, RightRadius}, true
	case T2:
		return Point{SecondArc, LeftRadius}, true
	case X1:
		return Point{SecondArc, MiddleRadius}, true
	case T1:
		return Point{SecondArc, RightRadius}, true
	case BottomLeft:
		return Point{InnerBorder, LeftRadius}, true
	case BottomMiddle:
		return Point{InnerBorder, MiddleRadius}, true
	case BottomRight:
		return Point{InnerBorder, RightRadius}, true
	}
	return Point{}, false
}

// Placeable reports whether obstacles may occupy the intersection.
func (i Intersection) Placeable() bool {
	switch i {
	case T1, T2, T3, T4, X1, X2:
		return true
	}
	return false
}

// StartZone names one of the six vehicle start zones of a straight section.
// Z1/Z2 sit against the central section, Z3/Z4 between the arcs, Z5/Z6
// against the outer wall.
type StartZone string

const (
	Z1 StartZone = "Z1"
	Z2 StartZone = "Z2"
	Z3 StartZone = "Z3"
	Z4 StartZone = "Z4"
	Z5 StartZone = "Z5"
	Z6 StartZone = "Z6"
)

// StartZones returns all start zones in a stable order.
func StartZones() []StartZone {
	return []StartZone{Z1, Z2, Z3, Z4, Z5, Z6}
}

// Corners returns the two intersections spanning the zone's rectangle.
func (z StartZone) Corners() (a, b Intersection, ok bool) {
	switch z {
	case Z1:
		return X1, BottomRight, true
	case Z2:
		return T2, BottomMiddle, true
	case Z3:
		return X2, T1, true
	case Z4:
		return T4, X1, true
	case Z5:
		return TopMiddle, T3, true
	case Z6:
		return TopLeft, X2, true
	}
	return "", "", false
}

func (z StartZone) Valid() bool {
	_, _, ok := z.Corners()
	return ok
}

// ObstacleColor is the color of a traffic-sign obstacle. Green signs are
// passed on the right, red signs on the left; the renderer only cares about
// the paint.
type ObstacleColor string

const (
	GreenObstacle ObstacleColor = "green"
	RedObstacle   ObstacleColor = "red"
)

func (c ObstacleColor) Valid() bool {
	return c == GreenObstacle || c == RedObstacle
}

// RGBA returns the paint color for the obstacle. ok is false for an
// unknown color name.
func (c ObstacleColor) RGBA() (rgba color.RGBA, ok bool) {
	switch c {
	case GreenObstacle:
		return color.RGBA{R: 68, G: 214, B: 44, A: 255}, true
	case RedObstacle:
		return color.RGBA{R: 238, G: 39, B: 55, A: 255}, true
	}
	return color.RGBA{}, false
}
