// Package physics реализует простую воксельную физику поверх сетки твёрдости чанка:
// гравитацию, блокировку движения по осям и выход за границы чанка.
package physics

import (
	"github.com/annel0/hexvoxel/internal/vec"
)

// SolidityChecker - источник запросов твёрдости (чанк)
type SolidityChecker interface {
	IsSolid(x, y, z int) bool
}

// BoxCollider представляет простой коллайдер в вокселях
type BoxCollider struct {
	Width  int // Ширина по X и Z в блоках
	Height int // Высота в блоках, отсчитывается вверх от ступней
}

// NewBoxCollider создаёт новый коллайдер с указанными размерами
func NewBoxCollider(width, height int) *BoxCollider {
	return &BoxCollider{
		Width:  width,
		Height: height,
	}
}

// GetCollisionPoints возвращает клетки, которые занимает коллайдер в позиции pos.
// Для коллайдера 1x1 это единственная клетка, в которую округляется позиция.
func GetCollisionPoints(pos vec.Vec3Float, collider *BoxCollider) []vec.Vec3 {
	base := pos.Floor()
	if collider == nil || (collider.Width <= 1 && collider.Height <= 1) {
		return []vec.Vec3{base}
	}

	half := collider.Width / 2
	var points []vec.Vec3
	for h := 0; h < max(collider.Height, 1); h++ {
		if collider.Width <= 1 {
			points = append(points, base.Add(vec.Vec3{Y: h}))
			continue
		}
		// Углы основания и центр на каждом уровне высоты
		points = append(points,
			base.Add(vec.Vec3{X: -half, Y: h, Z: -half}),
			base.Add(vec.Vec3{X: half - 1, Y: h, Z: -half}),
			base.Add(vec.Vec3{X: -half, Y: h, Z: half - 1}),
			base.Add(vec.Vec3{X: half - 1, Y: h, Z: half - 1}),
			base.Add(vec.Vec3{Y: h}),
		)
	}
	return points
}

// CanMoveToPosition проверяет, может ли сущность с указанным коллайдером переместиться в указанную позицию
// blockChecker - функция, которая проверяет, является ли блок в указанной позиции проходимым
func CanMoveToPosition(newPos vec.Vec3Float, collider *BoxCollider, blockChecker func(vec.Vec3) bool) bool {
	for _, point := range GetCollisionPoints(newPos, collider) {
		if !blockChecker(point) {
			// Если хотя бы одна точка находится в непроходимом блоке, движение невозможно
			return false
		}
	}
	return true
}

// Passable превращает проверку твёрдости в blockChecker
func Passable(solid SolidityChecker) func(vec.Vec3) bool {
	return func(p vec.Vec3) bool {
		return !solid.IsSolid(p.X, p.Y, p.Z)
	}
}

// MoveAxes применяет смещение по каждой оси отдельно (X, затем Z, затем Y).
// Ось, кандидат по которой попадает в твёрдую клетку, отбрасывается.
func MoveAxes(pos, delta vec.Vec3Float, collider *BoxCollider, solid SolidityChecker) vec.Vec3Float {
	check := Passable(solid)
	axes := [3]vec.Vec3Float{{X: delta.X}, {Z: delta.Z}, {Y: delta.Y}}
	for _, step := range axes {
		if step == (vec.Vec3Float{}) {
			continue
		}
		candidate := pos.Add(step)
		if CanMoveToPosition(candidate, collider, check) {
			pos = candidate
		}
	}
	return pos
}
