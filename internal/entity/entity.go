// Package entity хранит игровые сущности обоих слоёв: игрока, курсор карты.
// Сущности - простые структуры в реестре по стабильному uint64 ID.
package entity

import (
	"fmt"

	"github.com/annel0/hexvoxel/internal/hex"
	"github.com/annel0/hexvoxel/internal/physics"
	"github.com/annel0/hexvoxel/internal/vec"
)

// Kind - категория сущности
type Kind uint8

const (
	KindHexPlayer   Kind = iota // Игрок на гексагональной карте
	KindCursor                  // Курсор выбора клетки
	KindVoxelPlayer             // Игрок внутри чанка
)

func (k Kind) String() string {
	switch k {
	case KindHexPlayer:
		return "hex_player"
	case KindCursor:
		return "cursor"
	case KindVoxelPlayer:
		return "voxel_player"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Scope - слой, которому принадлежит сущность. При выходе из слоя все его
// сущности удаляются.
type Scope uint8

const (
	ScopeGlobal Scope = iota // Живёт всю сессию
	ScopeHex
	ScopeVoxel
)

func (s Scope) String() string {
	switch s {
	case ScopeGlobal:
		return "global"
	case ScopeHex:
		return "hex"
	case ScopeVoxel:
		return "voxel"
	default:
		return fmt.Sprintf("scope(%d)", uint8(s))
	}
}

// Entity - игровая сущность. Используются только поля, относящиеся к её виду.
type Entity struct {
	ID    uint64 `json:"id"`
	Kind  Kind   `json:"kind"`
	Scope Scope  `json:"scope"`

	// Гексагональный слой
	Pixel  vec.Vec2Float `json:"pixel"`  // Позиция в пиксельном пространстве
	Coord  hex.Coord     `json:"coord"`  // Клетка под сущностью
	Facing hex.Direction `json:"facing"` // Выбранное ребро (курсор)

	// Воксельный слой
	Position  vec.Vec3Float        `json:"position"`
	Collider  *physics.BoxCollider `json:"-"`
	Jump      *physics.Jump        `json:"jump,omitempty"` // Прыжок в процессе
	Inventory *Inventory           `json:"inventory,omitempty"`
}

// MarshalText сериализует вид именем
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// MarshalText сериализует слой именем
func (s Scope) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// SetPixel перемещает сущность и пересчитывает клетку под ней.
// Возвращает true, если клетка сменилась.
func (e *Entity) SetPixel(p vec.Vec2Float) bool {
	e.Pixel = p
	coord := hex.FromPixel(p)
	if coord == e.Coord {
		return false
	}
	e.Coord = coord
	return true
}

// Angle возвращает угол поворота для отображения курсора
func (e *Entity) Angle() float64 {
	return e.Facing.Angle()
}
