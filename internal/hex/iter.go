package hex

import (
	"fmt"
	"iter"
)

// MaxRadius - наибольший радиус диска, кольца и спирали. Координаты клеток
// такого радиуса и их число 3N²+3N+1 помещаются в int32 и int без переполнения.
const MaxRadius = 1 << 20

// checkRadius паникует на радиусе вне [0, MaxRadius]
func checkRadius(n uint32) int32 {
	if n > MaxRadius {
		panic(fmt.Sprintf("hex: радиус %d больше MaxRadius (%d)", n, MaxRadius))
	}
	return int32(n)
}

// Iterator - одноразовая ленивая последовательность координат.
// После исчерпания повторно не запускается: нужен новый экземпляр.
type Iterator interface {
	Next() (Coord, bool)
}

// RangeIter перечисляет заполненный диск радиуса N построчно:
// q от -N до N, для каждого q r от max(-N, -q-N) до min(N, -q+N).
type RangeIter struct {
	radius int32
	q      int32
	r      int32
	rEnd   int32
	done   bool
}

// NewRange создаёт итератор диска радиуса n. Радиус больше MaxRadius - паника.
func NewRange(n uint32) *RangeIter {
	radius := checkRadius(n)
	it := &RangeIter{radius: radius}
	it.startColumn(-radius)
	return it
}

func (it *RangeIter) startColumn(q int32) {
	it.q = q
	it.r = max(-it.radius, -q-it.radius)
	it.rEnd = min(it.radius, -q+it.radius)
}

// Next возвращает следующую клетку диска
func (it *RangeIter) Next() (Coord, bool) {
	if it.done {
		return Coord{}, false
	}
	out := Coord{Q: it.q, R: it.r}
	if it.r < it.rEnd {
		it.r++
	} else if it.q < it.radius {
		it.startColumn(it.q + 1)
	} else {
		it.done = true
	}
	return out, true
}

// RingIter обходит кольцо радиуса N: старт в (-N, N), шесть сторон по N шагов,
// направления берутся из таблицы начиная с Down.
type RingIter struct {
	cell      Coord
	radius    uint32
	direction Direction
	step      uint32
	done      bool
}

// NewRing создаёт итератор кольца радиуса n. Кольцо радиуса 0 - это одна клетка (0,0).
// Радиус больше MaxRadius - паника.
func NewRing(n uint32) *RingIter {
	radius := checkRadius(n)
	return &RingIter{
		cell:      Coord{Q: -radius, R: radius},
		radius:    n,
		direction: Down,
	}
}

// Radius возвращает радиус кольца
func (it *RingIter) Radius() uint32 {
	return it.radius
}

// Next возвращает следующую клетку кольца
func (it *RingIter) Next() (Coord, bool) {
	if it.done {
		return Coord{}, false
	}
	out := it.cell
	it.cell = it.cell.Step(it.direction)
	it.step++
	if it.radius == 0 {
		it.done = true
	}
	if it.step == it.radius {
		if it.direction == South {
			it.done = true
		}
		it.direction = it.direction.Next()
		it.step = 0
	}
	return out, true
}

// SpiralIter последовательно обходит кольца 0..N.
type SpiralIter struct {
	target uint32
	ring   *RingIter
}

// NewSpiral создаёт спиральный итератор до радиуса n включительно
func NewSpiral(n uint32) *SpiralIter {
	checkRadius(n)
	return &SpiralIter{target: n, ring: NewRing(0)}
}

// Next возвращает следующую клетку спирали
func (it *SpiralIter) Next() (Coord, bool) {
	if c, ok := it.ring.Next(); ok {
		return c, true
	}
	if it.ring.Radius() >= it.target {
		return Coord{}, false
	}
	it.ring = NewRing(it.ring.Radius() + 1)
	return it.ring.Next()
}

// OffsetIter сдвигает каждую координату вложенного итератора на base.
type OffsetIter struct {
	inner Iterator
	base  Coord
}

// WithOffset оборачивает итератор сдвигом
func WithOffset(inner Iterator, base Coord) *OffsetIter {
	return &OffsetIter{inner: inner, base: base}
}

// Next возвращает следующую сдвинутую координату
func (it *OffsetIter) Next() (Coord, bool) {
	c, ok := it.inner.Next()
	if !ok {
		return Coord{}, false
	}
	return c.Add(it.base), true
}

// Seq адаптирует итератор к range-over-func. Итератор расходуется.
func Seq(it Iterator) iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for {
			c, ok := it.Next()
			if !ok || !yield(c) {
				return
			}
		}
	}
}

// Collect вычитывает итератор до конца
func Collect(it Iterator) []Coord {
	var out []Coord
	for c := range Seq(it) {
		out = append(out, c)
	}
	return out
}

// CellCount возвращает 3N²+3N+1 - число клеток в диске радиуса n.
func CellCount(n uint32) int {
	k := int(checkRadius(n))
	return 3*k*k + 3*k + 1
}
