// Package layout randomizes game field layouts according to the official
// challenge rules: wall positions and the start zone for the open
// challenge, obstacle cards, the start zone and the parking lot for the
// obstacle challenge.
package layout

import (
	"log/slog"
	"math/rand"
	"slices"
	"sync"
	"time"

	"fieldgen-server/internal/field"
	"fieldgen-server/internal/shared/errors"
)

// Request describes one layout to generate. An empty Direction means the
// service picks the driving direction at random.
type Request struct {
	Challenge   field.ChallengeType
	Direction   field.Direction
	FixedCenter bool
}

type Service struct {
	logger      *slog.Logger
	maxAttempts int

	mu  sync.Mutex
	rng *rand.Rand
}

// NewService creates the layout randomization service. A zero seed draws
// the seed from the clock; a fixed seed reproduces the same sequence of
// layouts across runs.
func NewService(seed int64, maxAttempts int, logger *slog.Logger) *Service {
	logger.Debug("Initializing layout service", "max_attempts", maxAttempts, "seeded", seed != 0)

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Service{
		logger:      logger,
		maxAttempts: maxAttempts,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

// Generate builds one random layout for the request and validates it
// before returning.
func (s *Service) Generate(req Request) (*field.Layout, error) {
	logger := s.logger.With("component", "layout_service", "operation", "generate", "challenge", req.Challenge, "direction", req.Direction)
	logger.Debug("Generating layout")

	if !req.Challenge.Valid() {
		return nil, errors.Validationf("unknown challenge type %q", req.Challenge)
	}
	if req.Direction != "" && !req.Direction.Valid() {
		return nil, errors.Validationf("unknown driving direction %q", req.Direction)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	direction := req.Direction
	if direction == "" {
		direction = s.randomDirection()
	}

	var l *field.Layout
	var err error
	switch req.Challenge {
	case field.ChallengeOpen:
		l = s.generateOpen(direction, req.FixedCenter)
	case field.ChallengeObstacle:
		l, err = s.generateObstacle(direction)
	}
	if err != nil {
		logger.Error("Failed to generate layout", "error", err)
		return nil, err
	}

	if err := l.Validate(); err != nil {
		logger.Error("Generated layout is invalid", "error", err)
		return nil, errors.WrapGeneration("generated layout is invalid", err)
	}

	logger.Info("Layout generated", "resolved_direction", direction, "obstacles", len(l.Obstacles))
	return l, nil
}

// generateOpen rolls the wall configuration and the start zone for an open
// challenge round. With a fixed center all walls stay on the inner border.
func (s *Service) generateOpen(direction field.Direction, fixedCenter bool) *field.Layout {
	var walls field.WallSet
	if !fixedCenter {
		sides := field.Sections()
		count := s.rng.Intn(len(sides) + 1)
		for _, i := range s.rng.Perm(len(sides))[:count] {
			walls.SetExtended(sides[i])
		}
	}

	startSection := s.pickSection()

	zones := field.StartZones()
	if walls.Extended(startSection) {
		// An extended wall cuts off the two zones between it and the
		// central section.
		zones = []field.StartZone{field.Z3, field.Z4, field.Z5, field.Z6}
	}
	zone := zones[s.rng.Intn(len(zones))]

	return &field.Layout{
		Challenge: field.ChallengeOpen,
		Direction: direction,
		Walls:     walls,
		Start:     field.StartPlacement{Section: startSection, Zone: zone},
	}
}

// generateObstacle draws obstacle cards until a combination satisfies the
// acceptance rules, then assigns each card to a section and places the
// start zone and the parking lot.
func (s *Service) generateObstacle(direction field.Direction) (*field.Layout, error) {
	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		if l, ok := s.tryObstacleLayout(direction); ok {
			return l, nil
		}
	}
	return nil, errors.Generationf("no acceptable obstacle combination after %d attempts", s.maxAttempts)
}

// tryObstacleLayout makes one randomization attempt. ok is false when the
// drawn card combination violates an acceptance rule.
func (s *Service) tryObstacleLayout(direction field.Direction) (*field.Layout, bool) {
	colors := []field.ObstacleColor{field.GreenObstacle, field.RedObstacle}
	mandatory := mandatoryCards[colors[s.rng.Intn(len(colors))]]
	required := requiredCards[s.rng.Intn(len(requiredCards))]
	free := s.pickDistinctCards(2, mandatory, required)

	chosen := append([]int{mandatory, required}, free...)

	// Acceptance rules: the color counts stay balanced, at least five
	// obstacles in total, at least one card leaves a start zone clear and
	// at least one card fits the parking section.
	greens, reds, total := 0, 0, 0
	zonesByCard := make(map[int][]field.StartZone)
	var startCards, parkingCards []int
	for _, idx := range chosen {
		card := obstacleCards[idx]
		total += len(card)
		g, r := cardColorCount(card)
		greens += g
		reds += r

		if zones := cardStartZones(card, direction); len(zones) > 0 {
			startCards = append(startCards, idx)
			zonesByCard[idx] = zones
		}
		if !cardHasSlot(card, parkingBlockedSlots) {
			parkingCards = append(parkingCards, idx)
		}
	}

	if diff := greens - reds; diff < -1 || diff > 1 {
		return nil, false
	}
	if total < 5 || len(startCards) == 0 || len(parkingCards) == 0 {
		return nil, false
	}

	// Each chosen card lands on its own straight section.
	secs := field.Sections()
	sectionOf := make(map[int]field.Section, len(chosen))
	for i, p := range s.rng.Perm(len(secs)) {
		sectionOf[chosen[i]] = secs[p]
	}

	var obstacles []field.PlacedObstacle
	for _, idx := range chosen {
		for _, o := range obstacleCards[idx] {
			obstacles = append(obstacles, field.PlacedObstacle{
				Section: sectionOf[idx],
				Slot:    o.Slot,
				Color:   o.Color,
			})
		}
	}

	startCard := startCards[s.rng.Intn(len(startCards))]
	parkingCard := parkingCards[s.rng.Intn(len(parkingCards))]
	zones := zonesByCard[startCard]
	zone := zones[s.rng.Intn(len(zones))]

	return &field.Layout{
		Challenge: field.ChallengeObstacle,
		Direction: direction,
		Start:     field.StartPlacement{Section: sectionOf[startCard], Zone: zone},
		Obstacles: obstacles,
		Parking:   &field.ParkingPlacement{Section: sectionOf[parkingCard]},
	}, true
}

// pickDistinctCards picks n distinct card indices outside the exclude list.
func (s *Service) pickDistinctCards(n int, exclude ...int) []int {
	out := make([]int, 0, n)
	for _, idx := range s.rng.Perm(len(obstacleCards)) {
		if slices.Contains(exclude, idx) {
			continue
		}
		out = append(out, idx)
		if len(out) == n {
			break
		}
	}
	return out
}

func (s *Service) pickSection() field.Section {
	secs := field.Sections()
	return secs[s.rng.Intn(len(secs))]
}

func (s *Service) randomDirection() field.Direction {
	if s.rng.Intn(2) == 0 {
		return field.Clockwise
	}
	return field.Counterclockwise
}
