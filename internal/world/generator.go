package world

import (
	"math/rand"

	"github.com/annel0/hexvoxel/internal/hex"
	"github.com/annel0/hexvoxel/internal/world/block"
)

// Вероятности выборки блоков
const (
	StoneSolidChance = 0.6
	CoalAirChance    = 0.3
	CoalOreChance    = 0.25
)

// ChunkSeed упаковывает координату клетки в сид: q в старшие 32 бита, r в младшие,
// обе как беззнаковые 32-битные.
func ChunkSeed(coord hex.Coord) int64 {
	return int64(uint64(uint32(coord.Q))<<32 | uint64(uint32(coord.R)))
}

// Fill очищает чанк и детерминированно заполняет его по тегу местности.
// Порядок обхода x -> y -> z фиксирован: генератор последовательный,
// и от порядка зависит содержимое чанка.
func Fill(c *Chunk, coord hex.Coord, terrain Terrain) {
	c.Reset(coord, terrain)
	if terrain == TerrainEmpty {
		return
	}

	rng := rand.New(rand.NewSource(ChunkSeed(coord)))
	for x := 0; x < ChunkSize; x++ {
		for y := 0; y < ChunkSize; y++ {
			for z := 0; z < ChunkSize; z++ {
				c.SetBlock(x, y, z, terrain.sample(rng, y))
			}
		}
	}
}

// Generate создаёт и заполняет новый чанк
func Generate(coord hex.Coord, terrain Terrain) *Chunk {
	c := NewChunk(coord, terrain)
	Fill(c, coord, terrain)
	return c
}

// sample выбирает вид блока для одной клетки.
// У угля при y=0 выборка воздуха тратится впустую, поэтому пол всегда твёрдый.
func (t Terrain) sample(rng *rand.Rand, y int) block.BlockID {
	switch t {
	case TerrainStone:
		if chance(rng, StoneSolidChance) || y == 0 {
			return block.StoneBlockID
		}
		return block.AirBlockID
	case TerrainCoal:
		if chance(rng, CoalAirChance) && y != 0 {
			return block.AirBlockID
		}
		if chance(rng, CoalOreChance) {
			return block.CoalBlockID
		}
		return block.StoneBlockID
	default:
		return block.AirBlockID
	}
}

// chance возвращает true с вероятностью p
func chance(rng *rand.Rand, p float64) bool {
	return rng.Float64() < p
}
