package physics

import (
	"github.com/annel0/hexvoxel/internal/hex"
	"github.com/annel0/hexvoxel/internal/vec"
)

// Границы чанка для выхода на карту: куб 0..16 с запасом в два блока
const (
	ExitMin = -2.0
	ExitMax = 18.0
)

// entryPositions - точка появления в чанке для каждого ребра входа:
// центр соответствующей грани куба, на один блок внутри границы.
var entryPositions = [hex.DirectionCount]vec.Vec3Float{
	hex.Down:  {X: 8, Y: 1, Z: 8},
	hex.East:  {X: 15, Y: 8, Z: 8},
	hex.North: {X: 8, Y: 8, Z: 15},
	hex.Up:    {X: 8, Y: 15, Z: 8},
	hex.West:  {X: 1, Y: 8, Z: 8},
	hex.South: {X: 8, Y: 8, Z: 1},
}

// EntryPosition возвращает позицию игрока при входе в чанк через ребро d
func EntryPosition(d hex.Direction) vec.Vec3Float {
	return entryPositions[d]
}

// ExitDirection определяет, какую грань пересёк игрок. Порядок проверок фиксирован:
// низ, верх, -X, +X, -Z, +Z; первая сработавшая грань побеждает.
func ExitDirection(pos vec.Vec3Float) (hex.Direction, bool) {
	switch {
	case pos.Y < ExitMin:
		return hex.Up, true
	case pos.Y > ExitMax:
		return hex.Down, true
	case pos.X < ExitMin:
		return hex.West, true
	case pos.X > ExitMax:
		return hex.East, true
	case pos.Z < ExitMin:
		return hex.South, true
	case pos.Z > ExitMax:
		return hex.North, true
	default:
		return 0, false
	}
}
