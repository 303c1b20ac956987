// Package hex реализует осевые (axial) координаты гексагональной сетки,
// таблицу направлений и итераторы по диапазону, кольцу и спирали.
//
// Третья кубическая координата s = -q - r нигде не хранится и вычисляется по требованию.
package hex

import (
	"fmt"
	"math"

	"github.com/annel0/hexvoxel/internal/vec"
)

// Константы пиксельной проекции.
// Одна и та же величина Spacing используется и в прямом (ToPixel), и в обратном (FromPixel)
// преобразовании, поэтому FromPixel(ToPixel(c)) == c.
const (
	Sqrt3     = 1.732050807568877
	Sqrt3Div2 = 0.8660254037844386
	Sqrt3Div3 = 0.5773502691896258
	Size      = 100.0    // Размер спрайта клетки в пикселях
	Spacing   = Size / 2 // Масштаб проекции центр-к-пикселю
	oneThird  = 1.0 / 3.0
	twoThirds = 2.0 / 3.0
)

// Coord идентифицирует клетку гексагональной сетки в осевых координатах.
type Coord struct {
	Q int32 `json:"q"`
	R int32 `json:"r"`
}

// Origin - центральная клетка карты.
var Origin = Coord{}

// New создаёт координату из двух целых
func New(q, r int32) Coord {
	return Coord{Q: q, R: r}
}

// S возвращает неявную третью кубическую координату.
func (c Coord) S() int32 {
	return -c.Q - c.R
}

// Add складывает координаты покомпонентно
func (c Coord) Add(other Coord) Coord {
	return Coord{Q: c.Q + other.Q, R: c.R + other.R}
}

// Step возвращает соседнюю клетку в направлении d
func (c Coord) Step(d Direction) Coord {
	return c.Add(d.Delta())
}

// Distance возвращает кубическое расстояние между клетками.
func Distance(a, b Coord) int32 {
	dq := abs32(a.Q - b.Q)
	dr := abs32(a.R - b.R)
	ds := abs32(a.S() - b.S())
	return max(dq, dr, ds)
}

// Length - расстояние от начала координат
func (c Coord) Length() int32 {
	return Distance(c, Origin)
}

// ToPixel проецирует центр клетки в пиксельное пространство.
func (c Coord) ToPixel() vec.Vec2Float {
	q := float64(c.Q)
	r := float64(c.R)
	return vec.Vec2Float{
		X: q * 1.5 * Spacing,
		Y: (q*Sqrt3Div2 + r*Sqrt3) * Spacing,
	}
}

// FromPixel находит клетку, содержащую пиксельную точку.
func FromPixel(pos vec.Vec2Float) Coord {
	x := pos.X / Spacing
	y := pos.Y / Spacing
	q := x * twoThirds
	r := y*Sqrt3Div3 - oneThird*x
	return Round(q, r)
}

// Round округляет дробные кубические координаты (q, r, s=-q-r) до ближайшей клетки.
//
// Каждая компонента округляется отдельно, затем компонента с наибольшей ошибкой
// округления пересчитывается из двух других. Порядок сравнений фиксирован:
// сначала s против r, затем s против q, затем r против q. При равенстве ошибок
// пересчитывается q.
func Round(q, r float64) Coord {
	s := -q - r
	rq := math.Round(q)
	rr := math.Round(r)
	rs := math.Round(s)

	sDif := math.Abs(s - rs)
	rDif := math.Abs(r - rr)
	qDif := math.Abs(q - rq)

	if sDif > rDif {
		if sDif > qDif {
			return Coord{Q: int32(rq), R: int32(rr)}
		}
		return Coord{Q: int32(-rs - rr), R: int32(rr)}
	}
	if rDif > qDif {
		return Coord{Q: int32(rq), R: int32(-rs - rq)}
	}
	return Coord{Q: int32(-rs - rr), R: int32(rr)}
}

// String возвращает строковое представление координаты
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Q, c.R)
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
