package physics

import (
	"github.com/annel0/hexvoxel/internal/vec"
)

// Параметры прыжка: подъём на JumpHeight блоков со скоростью JumpPower блоков в секунду
const (
	JumpPower  = DefaultGravity * 3
	JumpHeight = 3.0
)

// Jump - прыжок в процессе: остаток высоты, которую ещё предстоит набрать
type Jump struct {
	Left float64 `json:"left"`
}

// StartJump начинает прыжок, если позиция стоит на твёрдой клетке
func StartJump(pos vec.Vec3Float, solid SolidityChecker) (*Jump, bool) {
	if !Grounded(pos, solid) {
		return nil, false
	}
	return &Jump{Left: JumpHeight}, true
}

// Active сообщает, осталась ли высота для набора
func (j *Jump) Active() bool {
	return j != nil && j.Left > 0
}

// Step поднимает позицию на min(JumpPower*dt, Left). Остаток тратится и тогда,
// когда потолок не пускает вверх.
func (j *Jump) Step(pos vec.Vec3Float, dt float64, collider *BoxCollider, solid SolidityChecker) vec.Vec3Float {
	if !j.Active() {
		return pos
	}
	power := min(JumpPower*dt, j.Left)
	j.Left -= power
	return MoveAxes(pos, vec.Vec3Float{Y: power}, collider, solid)
}
