package vec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec2Normalized(t *testing.T) {
	n := Vec2Float{X: 3, Y: 4}.Normalized()
	assert.InDelta(t, 0.6, n.X, 1e-12)
	assert.InDelta(t, 0.8, n.Y, 1e-12)
	assert.Equal(t, Vec2Float{}, Vec2Float{}.Normalized())
}

func TestVec2Distance(t *testing.T) {
	a := Vec2Float{X: 1, Y: 1}
	b := Vec2Float{X: 4, Y: 5}
	assert.Equal(t, 25.0, a.DistanceSquared(b))
	assert.Equal(t, 5.0, a.DistanceTo(b))
	assert.Equal(t, Vec2Float{X: 3, Y: 4}, b.Sub(a))
}

func TestVec3FloatFloor(t *testing.T) {
	assert.Equal(t, Vec3{X: 8, Y: -1, Z: 0}, Vec3Float{X: 8.9, Y: -0.1, Z: 0}.Floor())
	assert.Equal(t, Vec3{X: -3, Y: 1, Z: 15}, Vec3Float{X: -2.5, Y: 1, Z: 15.99}.Floor())
}

func TestVec3Add(t *testing.T) {
	v := Vec3{X: 1, Y: 2, Z: 3}.Add(Vec3{X: -1, Y: 0, Z: 1})
	assert.True(t, v.Equals(Vec3{X: 0, Y: 2, Z: 4}))
	f := Vec3Float{X: 1, Y: 1, Z: 1}.Add(Vec3Float{Y: 2}.Mul(0.5))
	assert.Equal(t, Vec3Float{X: 1, Y: 2, Z: 1}, f)
}
