package physics

import (
	"github.com/annel0/hexvoxel/internal/vec"
)

// DefaultGravity - ускорение свободного падения, блоков в секунду
const DefaultGravity = 9.8

// Grounded сообщает, стоит ли позиция на твёрдой клетке
func Grounded(pos vec.Vec3Float, solid SolidityChecker) bool {
	cell := pos.Floor()
	return solid.IsSolid(cell.X, cell.Y-1, cell.Z)
}

// ApplyGravity смещает позицию вниз на gravity*dt, если клетка под ступнями не твёрдая.
func ApplyGravity(pos vec.Vec3Float, dt, gravity float64, solid SolidityChecker) vec.Vec3Float {
	if Grounded(pos, solid) {
		return pos
	}
	pos.Y -= gravity * dt
	return pos
}
