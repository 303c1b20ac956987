package game

import (
	"github.com/annel0/hexvoxel/internal/entity"
	"github.com/annel0/hexvoxel/internal/hex"
	"github.com/annel0/hexvoxel/internal/vec"
	"github.com/annel0/hexvoxel/internal/world"
)

// hexEntryOffsets - смещение точки входа на карту от центра клетки для каждого
// ребра: три четверти пути к середине ребра.
var hexEntryOffsets = func() [hex.DirectionCount]vec.Vec2Float {
	var offsets [hex.DirectionCount]vec.Vec2Float
	for _, d := range hex.Directions {
		offsets[d] = hex.Origin.Step(d).ToPixel().Mul(0.5 * 0.75)
	}
	return offsets
}()

// HexEntryPixel возвращает пиксельную точку, в которой игрок появляется на карте
// при входе в клетку coord через ребро d.
func HexEntryPixel(coord hex.Coord, d hex.Direction) vec.Vec2Float {
	return coord.ToPixel().Add(hexEntryOffsets[d])
}

// hexState - слой гексагональной карты: игрок, курсор и выбор клетки.
type hexState struct {
	player *entity.Entity
	cursor *entity.Entity
}

func (h *hexState) Layer() Layer { return LayerHex }

func (h *hexState) Enter(s *Session, event world.LayerTransition) {
	coord, dir := hex.Origin, hex.Up
	if event != nil {
		coord, dir = event.Cell(), event.ExitDirection()
	}

	h.player = s.entities.Spawn(entity.KindHexPlayer, entity.ScopeHex)
	h.player.SetPixel(HexEntryPixel(coord, dir))

	h.cursor = s.entities.Spawn(entity.KindCursor, entity.ScopeHex)
	entity.TrackCursor(h.cursor, h.player.Pixel)
}

func (h *hexState) Update(s *Session, dt float64, input Input) {
	if input.Move != (vec.Vec2Float{}) {
		step := input.Move.Normalized().Mul(s.opts.HexMoveSpeed * dt)
		h.player.SetPixel(h.player.Pixel.Add(step))
	}

	// Курсор следует за уже обновлённой позицией игрока
	if entity.TrackCursor(h.cursor, h.player.Pixel) {
		s.log.Trace("Курсор: %v, ребро %v", h.cursor.Coord, h.cursor.Facing)
	}

	if input.Confirm {
		s.Emit(world.ToVoxelEvent{
			Coord:     h.cursor.Coord,
			Direction: h.cursor.Facing,
			Terrain:   s.hexMap.Terrain(h.cursor.Coord),
		})
	}
}

func (h *hexState) Exit(s *Session) {
	s.entities.DespawnScope(entity.ScopeHex)
	h.player, h.cursor = nil, nil
}
