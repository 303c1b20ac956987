package world

import (
	"testing"

	"github.com/annel0/hexvoxel/internal/hex"
	"github.com/annel0/hexvoxel/internal/world/block"
)

func TestSolidityOutOfRange(t *testing.T) {
	var s Solidity
	for i := range s {
		s[i] = true
	}

	outside := [][3]int{
		{-1, 0, 0}, {16, 0, 0},
		{0, -1, 0}, {0, 16, 0},
		{0, 0, -1}, {0, 0, 16},
		{-1, 1, 0}, // линейный индекс попал бы внутрь сетки
	}
	for _, p := range outside {
		if s.Get(p[0], p[1], p[2]) {
			t.Errorf("Ожидалось false вне чанка для %v", p)
		}
		if s.Set(p[0], p[1], p[2], false) {
			t.Errorf("Set вне чанка должен вернуть false для %v", p)
		}
	}
	if s.Count() != ChunkVolume {
		t.Errorf("Запись вне чанка изменила сетку: %d твёрдых", s.Count())
	}
}

func TestSolidityLinearLayout(t *testing.T) {
	var s Solidity
	s.Set(3, 5, 7, true)

	if !s[3+7*16+5*256] {
		t.Error("Ожидалась раскладка x + z*16 + y*256")
	}
	if s.Count() != 1 {
		t.Errorf("Ожидалась одна твёрдая клетка, получено %d", s.Count())
	}

	s.Clear()
	if s.Count() != 0 {
		t.Errorf("После Clear остались твёрдые клетки: %d", s.Count())
	}
}

func TestChunkSetBlockUpdatesSolidity(t *testing.T) {
	c := NewChunk(hex.New(1, 2), TerrainStone)

	if c.Block(4, 4, 4) != block.AirBlockID {
		t.Fatal("Новый чанк должен состоять из воздуха")
	}

	c.SetBlock(4, 4, 4, block.CoalBlockID)
	if !c.IsSolid(4, 4, 4) {
		t.Error("Уголь должен быть твёрдым")
	}
	if c.Block(4, 4, 4) != block.CoalBlockID {
		t.Errorf("Ожидался уголь, получен %v", c.Block(4, 4, 4))
	}

	c.SetBlock(4, 4, 4, block.AirBlockID)
	if c.IsSolid(4, 4, 4) {
		t.Error("Воздух не должен быть твёрдым")
	}

	if c.SetBlock(16, 0, 0, block.StoneBlockID) {
		t.Error("SetBlock вне чанка должен вернуть false")
	}
	if c.Block(-1, 0, 0) != block.AirBlockID {
		t.Error("Вне чанка ожидался воздух")
	}
}

func TestChunkReset(t *testing.T) {
	c := Generate(hex.New(0, 0), TerrainStone)
	c.Reset(hex.New(3, -1), TerrainEmpty)

	if c.SolidCount() != 0 {
		t.Errorf("После Reset ожидался пустой чанк, твёрдых %d", c.SolidCount())
	}
	if c.Coord != hex.New(3, -1) || c.Terrain != TerrainEmpty {
		t.Errorf("Reset не перепривязал чанк: %v %v", c.Coord, c.Terrain)
	}
}
