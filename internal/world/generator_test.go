package world

import (
	"testing"

	"github.com/annel0/hexvoxel/internal/hex"
	"github.com/annel0/hexvoxel/internal/world/block"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkSeedPacking(t *testing.T) {
	assert.Equal(t, int64(0), ChunkSeed(hex.New(0, 0)))
	assert.Equal(t, int64(1)<<32|2, ChunkSeed(hex.New(1, 2)))
	// Отрицательные координаты упаковываются как беззнаковые 32-битные
	assert.Equal(t, int64(0xFFFFFFFF), ChunkSeed(hex.New(0, -1)))
	assert.Equal(t, int64(-1)<<32, ChunkSeed(hex.New(-1, 0)))
}

func TestFillEmptyLeavesAllAir(t *testing.T) {
	c := Generate(hex.New(5, -2), TerrainEmpty)
	for x := 0; x < ChunkSize; x++ {
		for y := 0; y < ChunkSize; y++ {
			for z := 0; z < ChunkSize; z++ {
				require.False(t, c.IsSolid(x, y, z))
			}
		}
	}
	assert.Equal(t, map[block.BlockID]int{block.AirBlockID: ChunkVolume}, c.BlockCounts())
}

func TestFillStoneFloor(t *testing.T) {
	for _, coord := range []hex.Coord{hex.New(0, 0), hex.New(3, -7), hex.New(-4, 2)} {
		c := Generate(coord, TerrainStone)
		for x := 0; x < ChunkSize; x++ {
			for z := 0; z < ChunkSize; z++ {
				assert.True(t, c.IsSolid(x, 0, z), "клетка пола (%d,0,%d) чанка %v", x, z, coord)
			}
		}
		counts := c.BlockCounts()
		assert.Zero(t, counts[block.CoalBlockID], "в каменном чанке нет угля")
		// Около 60% выше пола плюс гарантированный пол
		assert.InDelta(t, 0.6*15*256+256, float64(c.SolidCount()), 400)
	}
}

func TestFillCoalSampling(t *testing.T) {
	c := Generate(hex.New(2, 2), TerrainCoal)
	counts := c.BlockCounts()

	assert.Positive(t, counts[block.CoalBlockID])
	assert.Positive(t, counts[block.StoneBlockID])
	assert.Positive(t, counts[block.AirBlockID])
	assert.Greater(t, counts[block.StoneBlockID], counts[block.CoalBlockID])

	// Воздух при y=0 не выпадает: первая выборка на полу игнорируется,
	// вторая выбирает между углём и камнем
	for x := 0; x < ChunkSize; x++ {
		for z := 0; z < ChunkSize; z++ {
			assert.NotEqual(t, block.AirBlockID, c.Block(x, 0, z))
		}
	}
}

func TestFillDeterministic(t *testing.T) {
	coord := hex.New(-3, 8)
	a := Generate(coord, TerrainCoal)
	b := Generate(coord, TerrainCoal)
	assert.Equal(t, a.Solidity(), b.Solidity())
	assert.Equal(t, a.BlockCounts(), b.BlockCounts())

	other := Generate(hex.New(8, -3), TerrainCoal)
	assert.NotEqual(t, a.Solidity(), other.Solidity(), "разные клетки дают разные чанки")
}

func TestFillReusesChunk(t *testing.T) {
	c := Generate(hex.New(1, 1), TerrainStone)
	Fill(c, hex.New(1, 1), TerrainEmpty)
	assert.Equal(t, 0, c.SolidCount())

	Fill(c, hex.New(1, 1), TerrainStone)
	assert.Equal(t, Generate(hex.New(1, 1), TerrainStone).Solidity(), c.Solidity())
}
