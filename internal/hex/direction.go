package hex

import (
	"fmt"
	"math"
	"strings"

	"github.com/annel0/hexvoxel/internal/vec"
)

// Direction - одно из шести направлений на соседа, в фиксированном циклическом порядке.
type Direction uint8

const (
	Down  Direction = iota // D1: (0,-1)
	East                   // D2: (1,-1)
	North                  // D3: (1,0)
	Up                     // D4: (0,1)
	West                   // D5: (-1,1)
	South                  // D6: (-1,0)

	DirectionCount // всегда последний
)

// Directions перечисляет направления в порядке обхода.
var Directions = [DirectionCount]Direction{Down, East, North, Up, West, South}

var directionDeltas = [DirectionCount]Coord{
	{Q: 0, R: -1},
	{Q: 1, R: -1},
	{Q: 1, R: 0},
	{Q: 0, R: 1},
	{Q: -1, R: 1},
	{Q: -1, R: 0},
}

var directionAngles = [DirectionCount]float64{
	-math.Pi,
	-2 * math.Pi / 3,
	-math.Pi / 3,
	0,
	math.Pi / 3,
	2 * math.Pi / 3,
}

var directionNames = [DirectionCount]string{"down", "east", "north", "up", "west", "south"}

// DirectionFromIndex преобразует числовой код (0..5) в направление.
// Код вне диапазона - нарушение контракта между производителем и потребителем событий.
func DirectionFromIndex(i int) Direction {
	if i < 0 || i >= int(DirectionCount) {
		panic(fmt.Sprintf("hex: недопустимый код направления %d", i))
	}
	return Direction(i)
}

// ParseDirection разбирает имя направления ("down", "d1", "0").
func ParseDirection(s string) (Direction, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range directionNames {
		if s == name || s == fmt.Sprintf("d%d", i+1) || s == fmt.Sprintf("%d", i) {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("неизвестное направление %q", s)
}

// Delta возвращает смещение к соседу
func (d Direction) Delta() Coord {
	return directionDeltas[d]
}

// Angle возвращает угол поворота для отображения (радианы).
func (d Direction) Angle() float64 {
	return directionAngles[d]
}

// Next возвращает следующее направление по циклу D1 -> D2 -> ... -> D6 -> D1.
func (d Direction) Next() Direction {
	return (d + 1) % DirectionCount
}

// Index возвращает порядковый номер направления (0..5)
func (d Direction) Index() int {
	return int(d)
}

func (d Direction) String() string {
	if d >= DirectionCount {
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
	return directionNames[d]
}

// MarshalText сериализует направление именем
func (d Direction) MarshalText() ([]byte, error) {
	if d >= DirectionCount {
		return nil, fmt.Errorf("недопустимое направление %d", uint8(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText разбирает направление по имени
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ClosestDirection выбирает направление, середина ребра которого ближе всего к точке.
// Начальный кандидат - Down; при равенстве расстояний остаётся первый найденный минимум.
func ClosestDirection(cell Coord, point vec.Vec2Float) Direction {
	center := cell.ToPixel()
	edgeMid := func(d Direction) vec.Vec2Float {
		return center.Add(cell.Step(d).ToPixel()).Mul(0.5)
	}

	best := Down
	bestDist := edgeMid(Down).DistanceSquared(point)
	for _, d := range Directions {
		dist := edgeMid(d).DistanceSquared(point)
		if dist < bestDist {
			bestDist = dist
			best = d
		}
	}
	return best
}
