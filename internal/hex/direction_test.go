package hex

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectionNextCycles(t *testing.T) {
	for _, start := range Directions {
		d := start
		for i := 0; i < 6; i++ {
			d = d.Next()
		}
		assert.Equal(t, start, d)
	}
	assert.Equal(t, East, Down.Next())
	assert.Equal(t, Down, South.Next())
}

func TestDirectionTable(t *testing.T) {
	expected := map[Direction]Coord{
		Down:  {0, -1},
		East:  {1, -1},
		North: {1, 0},
		Up:    {0, 1},
		West:  {-1, 1},
		South: {-1, 0},
	}
	seen := make(map[Coord]bool)
	for _, d := range Directions {
		assert.Equal(t, expected[d], d.Delta(), d.String())
		assert.Equal(t, int32(1), d.Delta().Length())
		assert.False(t, seen[d.Delta()], "повтор смещения %v", d.Delta())
		seen[d.Delta()] = true
	}
	assert.Len(t, seen, 6)
}

func TestDirectionAngles(t *testing.T) {
	assert.InDelta(t, -math.Pi, Down.Angle(), 1e-12)
	assert.InDelta(t, -2*math.Pi/3, East.Angle(), 1e-12)
	assert.InDelta(t, -math.Pi/3, North.Angle(), 1e-12)
	assert.Equal(t, 0.0, Up.Angle())
	assert.InDelta(t, math.Pi/3, West.Angle(), 1e-12)
	assert.InDelta(t, 2*math.Pi/3, South.Angle(), 1e-12)
}

func TestDirectionFromIndex(t *testing.T) {
	for i := 0; i < 6; i++ {
		assert.Equal(t, i, DirectionFromIndex(i).Index())
	}
	assert.Panics(t, func() { DirectionFromIndex(6) })
	assert.Panics(t, func() { DirectionFromIndex(-1) })
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection("Up")
	require.NoError(t, err)
	assert.Equal(t, Up, d)

	d, err = ParseDirection("d1")
	require.NoError(t, err)
	assert.Equal(t, Down, d)

	d, err = ParseDirection("5")
	require.NoError(t, err)
	assert.Equal(t, South, d)

	_, err = ParseDirection("northeast")
	assert.Error(t, err)
}

func TestDirectionTextRoundTrip(t *testing.T) {
	for _, d := range Directions {
		text, err := d.MarshalText()
		require.NoError(t, err)
		var parsed Direction
		require.NoError(t, parsed.UnmarshalText(text))
		assert.Equal(t, d, parsed)
	}
}

func TestClosestDirection(t *testing.T) {
	cell := New(2, -1)
	center := cell.ToPixel()
	for _, d := range Directions {
		edge := center.Add(cell.Step(d).ToPixel()).Mul(0.5)
		// Точка чуть внутри клетки у середины ребра
		p := center.Add(edge.Sub(center).Mul(0.9))
		assert.Equal(t, d, ClosestDirection(cell, p), "ребро %v", d)
	}
}
