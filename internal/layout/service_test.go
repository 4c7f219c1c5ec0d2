package layout

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldgen-server/internal/field"
	"fieldgen-server/internal/shared/errors"
)

func testService(seed int64) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(seed, 100, logger)
}

func TestGenerateRejectsUnknownRequests(t *testing.T) {
	s := testService(1)

	_, err := s.Generate(Request{Challenge: "sprint"})
	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeValidation, errors.GetType(err))

	_, err = s.Generate(Request{Challenge: field.ChallengeOpen, Direction: "widdershins"})
	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeValidation, errors.GetType(err))
}

func TestGenerateResolvesRandomDirection(t *testing.T) {
	s := testService(7)

	for i := 0; i < 20; i++ {
		l, err := s.Generate(Request{Challenge: field.ChallengeOpen})
		require.NoError(t, err)
		assert.True(t, l.Direction.Valid())
	}
}

func TestGenerateOpenChallenge(t *testing.T) {
	s := testService(42)

	sawExtendedStartSide := false
	for i := 0; i < 200; i++ {
		l, err := s.Generate(Request{Challenge: field.ChallengeOpen, Direction: field.Clockwise})
		require.NoError(t, err)

		assert.Equal(t, field.ChallengeOpen, l.Challenge)
		assert.Empty(t, l.Obstacles)
		assert.Nil(t, l.Parking)
		assert.True(t, l.Start.Section.Valid())
		assert.True(t, l.Start.Zone.Valid())

		if l.Walls.Extended(l.Start.Section) {
			sawExtendedStartSide = true
			assert.NotContains(t, []field.StartZone{field.Z1, field.Z2}, l.Start.Zone,
				"zones behind an extended wall must not be used")
		}
	}

	// 200 rounds make a run without this case vanishingly unlikely.
	assert.True(t, sawExtendedStartSide, "expected at least one extended start side")
}

func TestGenerateOpenChallengeFixedCenter(t *testing.T) {
	s := testService(42)

	for i := 0; i < 50; i++ {
		l, err := s.Generate(Request{
			Challenge:   field.ChallengeOpen,
			Direction:   field.Counterclockwise,
			FixedCenter: true,
		})
		require.NoError(t, err)
		assert.Equal(t, field.WallSet{}, l.Walls, "fixed center keeps all walls on the inner border")
	}
}

func TestGenerateObstacleChallenge(t *testing.T) {
	s := testService(42)

	for _, direction := range []field.Direction{field.Clockwise, field.Counterclockwise} {
		for i := 0; i < 50; i++ {
			l, err := s.Generate(Request{Challenge: field.ChallengeObstacle, Direction: direction})
			require.NoError(t, err)

			assert.Equal(t, field.WallSet{}, l.Walls, "obstacle rounds keep all walls on the inner border")
			require.NotNil(t, l.Parking)
			assert.GreaterOrEqual(t, len(l.Obstacles), 5)
			assert.Contains(t, obstacleStartZones, l.Start.Zone)

			greens, reds := 0, 0
			sawX2 := false
			for _, o := range l.Obstacles {
				switch o.Color {
				case field.GreenObstacle:
					greens++
				case field.RedObstacle:
					reds++
				}
				if o.Slot == field.X2 {
					sawX2 = true
				}

				if o.Section == l.Parking.Section {
					assert.NotContains(t, parkingBlockedSlots, o.Slot,
						"parking section slot %s must stay free", o.Slot)
				}
				if o.Section == l.Start.Section {
					assert.NotContains(t, facingSlots[direction][l.Start.Zone], o.Slot,
						"obstacle %s faces the vehicle in zone %s", o.Slot, l.Start.Zone)
				}
			}

			assert.True(t, sawX2, "an obstacle on X2 is always present")
			assert.LessOrEqual(t, greens-reds, 1)
			assert.LessOrEqual(t, reds-greens, 1)
		}
	}
}

// hasMixedArcPair reports whether some section holds exactly a mixed-color
// obstacle pair on T1+T2 or on T3+T4.
func hasMixedArcPair(l *field.Layout) bool {
	perSection := map[field.Section][]field.PlacedObstacle{}
	for _, o := range l.Obstacles {
		perSection[o.Section] = append(perSection[o.Section], o)
	}

	for _, obs := range perSection {
		if len(obs) != 2 || obs[0].Color == obs[1].Color {
			continue
		}
		slots := map[field.Intersection]bool{obs[0].Slot: true, obs[1].Slot: true}
		if (slots[field.T1] && slots[field.T2]) || (slots[field.T3] && slots[field.T4]) {
			return true
		}
	}
	return false
}

func TestGenerateObstacleIncludesMixedArcPair(t *testing.T) {
	s := testService(11)

	for i := 0; i < 50; i++ {
		l, err := s.Generate(Request{Challenge: field.ChallengeObstacle, Direction: field.Counterclockwise})
		require.NoError(t, err)
		assert.True(t, hasMixedArcPair(l), "a mixed-color pair on T1+T2 or T3+T4 is always dealt")
	}
}

func TestGenerateVariesAcrossCalls(t *testing.T) {
	s := testService(99)

	first, err := s.Generate(Request{Challenge: field.ChallengeOpen, Direction: field.Clockwise})
	require.NoError(t, err)

	varied := false
	for i := 0; i < 9; i++ {
		l, err := s.Generate(Request{Challenge: field.ChallengeOpen, Direction: field.Clockwise})
		require.NoError(t, err)
		if l.Walls != first.Walls || l.Start != first.Start {
			varied = true
		}
	}
	assert.True(t, varied, "consecutive layouts should not all repeat")
}

func TestGenerateObstacleSectionsHoldAtMostOneCard(t *testing.T) {
	s := testService(3)

	l, err := s.Generate(Request{Challenge: field.ChallengeObstacle, Direction: field.Clockwise})
	require.NoError(t, err)

	perSection := map[field.Section]int{}
	for _, o := range l.Obstacles {
		perSection[o.Section]++
	}
	for sec, n := range perSection {
		assert.LessOrEqual(t, n, 2, "section %s holds more obstacles than any card has", sec)
	}
}

func TestGenerateIsReproducibleWithFixedSeed(t *testing.T) {
	reqs := []Request{
		{Challenge: field.ChallengeOpen},
		{Challenge: field.ChallengeObstacle, Direction: field.Clockwise},
		{Challenge: field.ChallengeOpen, FixedCenter: true},
		{Challenge: field.ChallengeObstacle},
	}

	a, b := testService(1234), testService(1234)
	for _, req := range reqs {
		la, err := a.Generate(req)
		require.NoError(t, err)
		lb, err := b.Generate(req)
		require.NoError(t, err)
		assert.Equal(t, la, lb)
	}
}

func TestGenerateObstacleGivesUpAfterMaxAttempts(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := NewService(1, 0, logger)

	_, err := s.Generate(Request{Challenge: field.ChallengeObstacle, Direction: field.Clockwise})
	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeGeneration, errors.GetType(err))
}
