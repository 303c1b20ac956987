package hex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toSet(cells []Coord) map[Coord]struct{} {
	set := make(map[Coord]struct{}, len(cells))
	for _, c := range cells {
		set[c] = struct{}{}
	}
	return set
}

func TestRangeCount(t *testing.T) {
	for n := uint32(0); n <= 5; n++ {
		cells := Collect(NewRange(n))
		assert.Len(t, cells, CellCount(n), "радиус %d", n)
		assert.Len(t, toSet(cells), len(cells), "дубликаты в диске радиуса %d", n)
		for _, c := range cells {
			assert.LessOrEqual(t, c.Length(), int32(n))
		}
	}
}

func TestRangeRowOrder(t *testing.T) {
	cells := Collect(NewRange(1))
	expected := []Coord{
		{-1, 0}, {-1, 1},
		{0, -1}, {0, 0}, {0, 1},
		{1, -1}, {1, 0},
	}
	assert.Equal(t, expected, cells)
}

func TestRingCount(t *testing.T) {
	assert.Equal(t, []Coord{Origin}, Collect(NewRing(0)))

	for n := uint32(1); n <= 5; n++ {
		cells := Collect(NewRing(n))
		require.Len(t, cells, int(6*n), "радиус %d", n)
		for _, c := range cells {
			assert.Equal(t, int32(n), c.Length(), "клетка %v вне кольца %d", c, n)
		}
		assert.Len(t, toSet(cells), len(cells))
	}
}

func TestRingWalkOrder(t *testing.T) {
	cells := Collect(NewRing(1))
	expected := []Coord{
		{-1, 1}, {-1, 0}, {0, -1}, {1, -1}, {1, 0}, {0, 1},
	}
	assert.Equal(t, expected, cells)

	ring := Collect(NewRing(3))
	assert.Equal(t, Coord{Q: -3, R: 3}, ring[0])
	for i := range ring {
		next := ring[(i+1)%len(ring)]
		assert.Equal(t, int32(1), Distance(ring[i], next), "шаг %d не к соседу", i)
	}
}

func TestSpiralMatchesRange(t *testing.T) {
	for n := uint32(0); n <= 5; n++ {
		spiral := Collect(NewSpiral(n))
		assert.Len(t, spiral, CellCount(n))
		assert.Equal(t, toSet(Collect(NewRange(n))), toSet(spiral), "радиус %d", n)
	}
}

func TestSpiralIsRingByRing(t *testing.T) {
	spiral := Collect(NewSpiral(3))
	var expected []Coord
	for n := uint32(0); n <= 3; n++ {
		expected = append(expected, Collect(NewRing(n))...)
	}
	assert.Equal(t, expected, spiral)
}

func TestIteratorsStayExhausted(t *testing.T) {
	iters := map[string]Iterator{
		"range":  NewRange(2),
		"ring":   NewRing(2),
		"spiral": NewSpiral(2),
	}
	for name, it := range iters {
		Collect(it)
		_, ok := it.Next()
		assert.False(t, ok, name)
		_, ok = it.Next()
		assert.False(t, ok, name)
	}
}

func TestOffset(t *testing.T) {
	base := New(2, -3)
	cells := Collect(WithOffset(NewRing(1), base))
	require.Len(t, cells, 6)
	for _, c := range cells {
		assert.Equal(t, int32(1), Distance(c, base))
	}
	assert.Equal(t, New(1, -2), cells[0])
}

func TestSeqEarlyBreak(t *testing.T) {
	it := NewSpiral(4)
	count := 0
	for range Seq(it) {
		count++
		if count == 5 {
			break
		}
	}
	assert.Equal(t, 5, count)
	// Итератор продолжает с места остановки
	rest := Collect(it)
	assert.Len(t, rest, CellCount(4)-5)
}

func TestRadiusLimit(t *testing.T) {
	assert.Equal(t, 3*MaxRadius*MaxRadius+3*MaxRadius+1, CellCount(MaxRadius))

	ring := NewRing(MaxRadius)
	first, ok := ring.Next()
	require.True(t, ok)
	assert.Equal(t, New(-MaxRadius, MaxRadius), first)

	for name, build := range map[string]func(){
		"range":  func() { NewRange(MaxRadius + 1) },
		"ring":   func() { NewRing(3_000_000_000) },
		"spiral": func() { NewSpiral(MaxRadius + 1) },
		"count":  func() { CellCount(3_000_000_000) },
	} {
		assert.Panics(t, build, name)
	}
}
