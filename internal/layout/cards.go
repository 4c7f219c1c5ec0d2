package layout

import "fieldgen-server/internal/field"

// cardObstacle is one obstacle of a randomization card, placed relative to
// the straight section the card is assigned to.
type cardObstacle struct {
	Slot  field.Intersection
	Color field.ObstacleColor
}

// obstacleCards is the deck of obstacle arrangements for a single straight
// section. The mixed-color two-obstacle arrangements appear twice so that
// they are drawn twice as often as the single-color ones.
var obstacleCards = [][]cardObstacle{
	// Single obstacle per section
	{{field.T1, field.GreenObstacle}}, // 0
	{{field.T1, field.RedObstacle}},   // 1
	{{field.X1, field.GreenObstacle}}, // 2
	{{field.X1, field.RedObstacle}},   // 3
	{{field.T2, field.GreenObstacle}}, // 4
	{{field.T2, field.RedObstacle}},   // 5
	{{field.T3, field.GreenObstacle}}, // 6
	{{field.T3, field.RedObstacle}},   // 7
	{{field.X2, field.GreenObstacle}}, // 8
	{{field.X2, field.RedObstacle}},   // 9
	{{field.T4, field.GreenObstacle}}, // 10
	{{field.T4, field.RedObstacle}},   // 11

	// T3 and T2 pairs
	{{field.T3, field.GreenObstacle}, {field.T2, field.GreenObstacle}}, // 12
	{{field.T3, field.GreenObstacle}, {field.T2, field.RedObstacle}},   // 13
	{{field.T3, field.RedObstacle}, {field.T2, field.GreenObstacle}},   // 14
	{{field.T3, field.RedObstacle}, {field.T2, field.RedObstacle}},     // 15

	// T1 and T4 pairs
	{{field.T1, field.GreenObstacle}, {field.T4, field.GreenObstacle}}, // 16
	{{field.T1, field.GreenObstacle}, {field.T4, field.RedObstacle}},   // 17
	{{field.T1, field.RedObstacle}, {field.T4, field.GreenObstacle}},   // 18
	{{field.T1, field.RedObstacle}, {field.T4, field.RedObstacle}},     // 19

	// T1 and T2 pairs
	{{field.T1, field.GreenObstacle}, {field.T2, field.GreenObstacle}}, // 20
	{{field.T1, field.GreenObstacle}, {field.T2, field.RedObstacle}},   // 21
	{{field.T1, field.RedObstacle}, {field.T2, field.GreenObstacle}},   // 22
	{{field.T1, field.GreenObstacle}, {field.T2, field.RedObstacle}},   // 23
	{{field.T1, field.RedObstacle}, {field.T2, field.GreenObstacle}},   // 24
	{{field.T1, field.RedObstacle}, {field.T2, field.RedObstacle}},     // 25

	// T3 and T4 pairs
	{{field.T3, field.GreenObstacle}, {field.T4, field.GreenObstacle}}, // 26
	{{field.T3, field.GreenObstacle}, {field.T4, field.RedObstacle}},   // 27
	{{field.T3, field.RedObstacle}, {field.T4, field.GreenObstacle}},   // 28
	{{field.T3, field.GreenObstacle}, {field.T4, field.RedObstacle}},   // 29
	{{field.T3, field.RedObstacle}, {field.T4, field.GreenObstacle}},   // 30
	{{field.T3, field.RedObstacle}, {field.T4, field.RedObstacle}},     // 31
}

// mandatoryCards maps each obstacle color to the card putting a single
// obstacle of that color on X2. One of the two is always on the mat so that
// every run has to handle an obstacle on the central radius.
var mandatoryCards = map[field.ObstacleColor]int{
	field.GreenObstacle: 8,
	field.RedObstacle:   9,
}

// requiredCards are the mixed-color pair cards on the second arc or the
// first arc. One of them is always on the mat.
var requiredCards = []int{21, 22, 27, 28}

// facingSlots lists, per driving direction and start zone, the
// intersections directly in front of the parked vehicle. An obstacle there
// would touch the vehicle before it moves, so such a zone cannot be used.
var facingSlots = map[field.Direction]map[field.StartZone][]field.Intersection{
	field.Clockwise: {
		field.Z3: {field.T1, field.T3},
		field.Z4: {field.X1, field.X2},
	},
	field.Counterclockwise: {
		field.Z3: {field.X1, field.X2},
		field.Z4: {field.T2, field.T4},
	},
}

// parkingBlockedSlots are the intersections that must stay free in the
// section holding the parking lot.
var parkingBlockedSlots = []field.Intersection{field.T3, field.T4, field.X2}

// obstacleStartZones are the start zones used in obstacle challenge rounds.
// The vehicle starts between the two arcs, next to the parking lot row.
var obstacleStartZones = []field.StartZone{field.Z3, field.Z4}

// cardHasSlot reports whether the card places an obstacle on any of the
// given intersections.
func cardHasSlot(card []cardObstacle, slots []field.Intersection) bool {
	for _, o := range card {
		for _, slot := range slots {
			if o.Slot == slot {
				return true
			}
		}
	}
	return false
}

// cardStartZones returns the obstacle challenge start zones that stay clear
// of the card's obstacles for the given driving direction.
func cardStartZones(card []cardObstacle, direction field.Direction) []field.StartZone {
	var zones []field.StartZone
	for _, zone := range obstacleStartZones {
		if !cardHasSlot(card, facingSlots[direction][zone]) {
			zones = append(zones, zone)
		}
	}
	return zones
}

// cardColorCount returns the number of green and red obstacles on the card.
func cardColorCount(card []cardObstacle) (greens, reds int) {
	for _, o := range card {
		switch o.Color {
		case field.GreenObstacle:
			greens++
		case field.RedObstacle:
			reds++
		}
	}
	return greens, reds
}
