package world

import (
	"github.com/annel0/hexvoxel/internal/hex"
	"github.com/annel0/hexvoxel/internal/world/block"
	_ "github.com/annel0/hexvoxel/internal/world/block/implementations"
)

// Размеры воксельного чанка
const (
	ChunkSize   = 16
	ChunkVolume = ChunkSize * ChunkSize * ChunkSize
)

// Solidity - сетка твёрдости чанка с линейной раскладкой x + z*16 + y*256.
type Solidity [ChunkVolume]bool

// chunkIndex возвращает линейный индекс клетки. Выход за [0,16) по любой оси - false.
func chunkIndex(x, y, z int) (int, bool) {
	if x < 0 || x >= ChunkSize || y < 0 || y >= ChunkSize || z < 0 || z >= ChunkSize {
		return 0, false
	}
	return x + z*ChunkSize + y*ChunkSize*ChunkSize, true
}

// Get сообщает, твёрдая ли клетка. Запрос вне чанка возвращает false.
func (s *Solidity) Get(x, y, z int) bool {
	i, ok := chunkIndex(x, y, z)
	return ok && s[i]
}

// Set задаёт твёрдость клетки. Вне чанка ничего не делает и возвращает false.
func (s *Solidity) Set(x, y, z int, solid bool) bool {
	i, ok := chunkIndex(x, y, z)
	if !ok {
		return false
	}
	s[i] = solid
	return true
}

// Clear сбрасывает всю сетку в false
func (s *Solidity) Clear() {
	*s = Solidity{}
}

// Count возвращает число твёрдых клеток
func (s *Solidity) Count() int {
	n := 0
	for _, solid := range s {
		if solid {
			n++
		}
	}
	return n
}

// Chunk - активный воксельный подмир одной гексагональной клетки.
// Вид блока хранится рядом с сеткой твёрдости и всегда согласован с ней.
type Chunk struct {
	Coord   hex.Coord // Клетка карты, которой принадлежит чанк
	Terrain Terrain   // Тег, по которому чанк заполнен

	blocks [ChunkVolume]block.BlockID
	solid  Solidity
}

// NewChunk создаёт пустой чанк (весь воздух)
func NewChunk(coord hex.Coord, terrain Terrain) *Chunk {
	return &Chunk{Coord: coord, Terrain: terrain}
}

// Reset очищает чанк и перепривязывает его к новой клетке
func (c *Chunk) Reset(coord hex.Coord, terrain Terrain) {
	c.Coord = coord
	c.Terrain = terrain
	c.blocks = [ChunkVolume]block.BlockID{}
	c.solid.Clear()
}

// IsSolid - запрос твёрдости для физики
func (c *Chunk) IsSolid(x, y, z int) bool {
	return c.solid.Get(x, y, z)
}

// Block возвращает вид блока. Вне чанка - воздух.
func (c *Chunk) Block(x, y, z int) block.BlockID {
	i, ok := chunkIndex(x, y, z)
	if !ok {
		return block.AirBlockID
	}
	return c.blocks[i]
}

// SetBlock ставит блок и обновляет твёрдость по его поведению
func (c *Chunk) SetBlock(x, y, z int, id block.BlockID) bool {
	i, ok := chunkIndex(x, y, z)
	if !ok {
		return false
	}
	c.blocks[i] = id
	c.solid[i] = block.IsSolid(id)
	return true
}

// Solidity возвращает копию сетки твёрдости
func (c *Chunk) Solidity() Solidity {
	return c.solid
}

// SolidCount возвращает число твёрдых клеток
func (c *Chunk) SolidCount() int {
	return c.solid.Count()
}

// BlockCounts подсчитывает блоки каждого вида
func (c *Chunk) BlockCounts() map[block.BlockID]int {
	counts := make(map[block.BlockID]int)
	for _, id := range c.blocks {
		counts[id]++
	}
	return counts
}
