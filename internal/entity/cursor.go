package entity

import (
	"github.com/annel0/hexvoxel/internal/hex"
	"github.com/annel0/hexvoxel/internal/vec"
)

// TrackCursor ставит курсор в клетку под игроком и разворачивает его к ребру,
// середина которого ближе всего к игроку. Возвращает true, если курсор изменился.
func TrackCursor(cursor *Entity, playerPixel vec.Vec2Float) bool {
	coord := hex.FromPixel(playerPixel)
	facing := hex.ClosestDirection(coord, playerPixel)
	changed := coord != cursor.Coord || facing != cursor.Facing

	cursor.Coord = coord
	cursor.Facing = facing
	cursor.Pixel = coord.ToPixel()
	return changed
}
