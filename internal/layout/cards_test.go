package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldgen-server/internal/field"
)

func TestObstacleCardsAreWellFormed(t *testing.T) {
	assert.Len(t, obstacleCards, 32)

	for i, card := range obstacleCards {
		require.NotEmpty(t, card, "card %d", i)
		for _, o := range card {
			assert.True(t, o.Slot.Placeable(), "card %d uses %s", i, o.Slot)
			assert.True(t, o.Color.Valid(), "card %d uses %s", i, o.Color)
		}
	}
}

func TestMandatoryCardsPutOneObstacleOnX2(t *testing.T) {
	for color, idx := range mandatoryCards {
		card := obstacleCards[idx]
		require.Len(t, card, 1)
		assert.Equal(t, field.X2, card[0].Slot)
		assert.Equal(t, color, card[0].Color)
	}
}

func TestRequiredCardsAreMixedColorPairs(t *testing.T) {
	for _, idx := range requiredCards {
		card := obstacleCards[idx]
		require.Len(t, card, 2, "card %d", idx)
		assert.NotEqual(t, card[0].Color, card[1].Color, "card %d", idx)
	}
}

func TestCardStartZones(t *testing.T) {
	tests := []struct {
		name      string
		card      []cardObstacle
		direction field.Direction
		want      []field.StartZone
	}{
		{
			name:      "empty slot rows leave both zones clear",
			card:      nil,
			direction: field.Clockwise,
			want:      []field.StartZone{field.Z3, field.Z4},
		},
		{
			name:      "X2 faces Z4 clockwise",
			card:      obstacleCards[mandatoryCards[field.GreenObstacle]],
			direction: field.Clockwise,
			want:      []field.StartZone{field.Z3},
		},
		{
			name:      "X2 faces Z3 counterclockwise",
			card:      obstacleCards[mandatoryCards[field.RedObstacle]],
			direction: field.Counterclockwise,
			want:      []field.StartZone{field.Z4},
		},
		{
			name: "T2 faces Z4 counterclockwise",
			card: []cardObstacle{
				{field.T1, field.GreenObstacle},
				{field.T2, field.RedObstacle},
			},
			direction: field.Counterclockwise,
			want:      []field.StartZone{field.Z3},
		},
		{
			name: "T1 and T3 block Z3 clockwise",
			card: []cardObstacle{
				{field.T1, field.RedObstacle},
				{field.T3, field.GreenObstacle},
			},
			direction: field.Clockwise,
			want:      []field.StartZone{field.Z4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cardStartZones(tt.card, tt.direction))
		})
	}
}

func TestCardHasSlot(t *testing.T) {
	card := []cardObstacle{{field.T3, field.GreenObstacle}, {field.T2, field.RedObstacle}}

	assert.True(t, cardHasSlot(card, parkingBlockedSlots), "T3 conflicts with the parking section")
	assert.False(t, cardHasSlot(card, []field.Intersection{field.X1, field.X2}))
	assert.False(t, cardHasSlot(nil, parkingBlockedSlots))
}

func TestCardColorCount(t *testing.T) {
	greens, reds := cardColorCount(obstacleCards[21])
	assert.Equal(t, 1, greens)
	assert.Equal(t, 1, reds)

	greens, reds = cardColorCount(obstacleCards[mandatoryCards[field.GreenObstacle]])
	assert.Equal(t, 1, greens)
	assert.Equal(t, 0, reds)
}
