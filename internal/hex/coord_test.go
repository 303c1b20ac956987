package hex

import (
	"math"
	"testing"

	"github.com/annel0/hexvoxel/internal/vec"
	"github.com/stretchr/testify/assert"
)

func TestCoordAdd(t *testing.T) {
	a := New(3, -1)
	b := New(-5, 2)
	c := New(1, 1)

	assert.Equal(t, New(-2, 1), a.Add(b))
	assert.Equal(t, a.Add(b), b.Add(a))
	assert.Equal(t, a.Add(b).Add(c), a.Add(b.Add(c)))
	assert.Equal(t, int32(0), a.Q+a.R+a.S())
}

func TestRoundIdempotentOnLattice(t *testing.T) {
	for q := int32(-10); q <= 10; q++ {
		for r := int32(-10); r <= 10; r++ {
			assert.Equal(t, New(q, r), Round(float64(q), float64(r)))
		}
	}
}

func TestRoundPicksNearest(t *testing.T) {
	assert.Equal(t, New(1, 0), Round(0.9, 0.05))
	assert.Equal(t, New(0, -1), Round(0.1, -0.8))
	assert.Equal(t, New(-2, 1), Round(-1.6, 0.7))
}

func TestRoundTieRecomputesQ(t *testing.T) {
	// Ошибки по q и r равны: пересчитывается q
	assert.Equal(t, New(0, 1), Round(0.5, 0.5))
}

func TestPixelRoundTrip(t *testing.T) {
	for c := range Seq(NewRange(6)) {
		assert.Equal(t, c, FromPixel(c.ToPixel()), "клетка %v", c)
	}
}

func TestFromPixelInsideCell(t *testing.T) {
	for c := range Seq(NewSpiral(3)) {
		center := c.ToPixel()
		for _, d := range Directions {
			// Точка на трети пути к середине ребра остаётся в клетке
			mid := center.Add(c.Step(d).ToPixel()).Mul(0.5)
			p := center.Add(mid.Sub(center).Mul(0.33))
			assert.Equal(t, c, FromPixel(p), "клетка %v направление %v", c, d)
		}
	}
}

func TestToPixel(t *testing.T) {
	p := New(1, 0).ToPixel()
	assert.InDelta(t, 1.5*Spacing, p.X, 1e-9)
	assert.InDelta(t, Sqrt3Div2*Spacing, p.Y, 1e-9)

	p = New(0, 1).ToPixel()
	assert.InDelta(t, 0, p.X, 1e-9)
	assert.InDelta(t, Sqrt3*Spacing, p.Y, 1e-9)

	assert.Equal(t, vec.Vec2Float{}, Origin.ToPixel())
}

func TestDistance(t *testing.T) {
	assert.Equal(t, int32(0), Distance(Origin, Origin))
	assert.Equal(t, int32(3), Distance(Origin, New(3, -3)))
	assert.Equal(t, int32(4), Distance(New(-2, 0), New(2, -1)))
	assert.Equal(t, int32(math.MaxInt8), New(0, math.MaxInt8).Length())
}
