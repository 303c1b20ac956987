package world

import (
	"fmt"

	"github.com/annel0/hexvoxel/internal/hex"
)

// EventType определяет тип события
type EventType uint8

const (
	EventTypeToHex   EventType = iota // Переход на гексагональный слой
	EventTypeToVoxel                  // Переход в воксельный чанк
	EventTypeTick                     // Игровой тик
)

func (t EventType) String() string {
	switch t {
	case EventTypeToHex:
		return "to_hex"
	case EventTypeToVoxel:
		return "to_voxel"
	case EventTypeTick:
		return "tick"
	default:
		return fmt.Sprintf("event(%d)", uint8(t))
	}
}

// Event представляет собой интерфейс для всех событий
type Event interface {
	GetType() EventType
}

// LayerTransition - событие смены слоя: клетка-источник и направление выхода.
type LayerTransition interface {
	Event
	Cell() hex.Coord
	ExitDirection() hex.Direction
}

// ToHexEvent - вход на гексагональную карту в клетке Coord со стороны Direction
type ToHexEvent struct {
	Coord     hex.Coord
	Direction hex.Direction
}

// GetType возвращает тип события
func (e ToHexEvent) GetType() EventType {
	return EventTypeToHex
}

// Cell возвращает клетку перехода
func (e ToHexEvent) Cell() hex.Coord {
	return e.Coord
}

// ExitDirection возвращает направление перехода
func (e ToHexEvent) ExitDirection() hex.Direction {
	return e.Direction
}

func (e ToHexEvent) String() string {
	return fmt.Sprintf("ToHex{%v %v}", e.Coord, e.Direction)
}

// ToVoxelEvent - вход в чанк клетки Coord через ребро Direction; Terrain задаёт заполнение
type ToVoxelEvent struct {
	Coord     hex.Coord
	Direction hex.Direction
	Terrain   Terrain
}

// GetType возвращает тип события
func (e ToVoxelEvent) GetType() EventType {
	return EventTypeToVoxel
}

// Cell возвращает клетку перехода
func (e ToVoxelEvent) Cell() hex.Coord {
	return e.Coord
}

// ExitDirection возвращает направление перехода
func (e ToVoxelEvent) ExitDirection() hex.Direction {
	return e.Direction
}

func (e ToVoxelEvent) String() string {
	return fmt.Sprintf("ToVoxel{%v %v %v}", e.Coord, e.Direction, e.Terrain)
}

// TickEvent представляет событие игрового тика
type TickEvent struct {
	TickID    uint64  // Номер тика
	DeltaTime float64 // Время, прошедшее с предыдущего тика (в секундах)
}

// GetType возвращает тип события
func (e TickEvent) GetType() EventType {
	return EventTypeTick
}

// TransitionPayload - проводное представление перехода с числовыми кодами
type TransitionPayload struct {
	Kind      string `json:"kind"`
	Q         int32  `json:"q"`
	R         int32  `json:"r"`
	Direction uint8  `json:"direction"`
	Terrain   uint8  `json:"terrain,omitempty"`
}

// PayloadOf переводит событие перехода в проводное представление
func PayloadOf(e LayerTransition) TransitionPayload {
	p := TransitionPayload{
		Kind:      e.GetType().String(),
		Q:         e.Cell().Q,
		R:         e.Cell().R,
		Direction: uint8(e.ExitDirection().Index()),
	}
	if v, ok := e.(ToVoxelEvent); ok {
		p.Terrain = v.Terrain.Code()
	}
	return p
}

// Event восстанавливает событие. Коды направления и местности приходят от
// доверенного производителя, поэтому недопустимый код приводит к панике.
func (p TransitionPayload) Event() (LayerTransition, error) {
	coord := hex.New(p.Q, p.R)
	dir := hex.DirectionFromIndex(int(p.Direction))
	switch p.Kind {
	case EventTypeToHex.String():
		return ToHexEvent{Coord: coord, Direction: dir}, nil
	case EventTypeToVoxel.String():
		return ToVoxelEvent{Coord: coord, Direction: dir, Terrain: TerrainFromCode(p.Terrain)}, nil
	default:
		return nil, fmt.Errorf("неизвестный вид перехода %q", p.Kind)
	}
}
