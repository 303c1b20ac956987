package world

import (
	"fmt"
	"math/rand"

	"github.com/annel0/hexvoxel/internal/hex"
	"github.com/annel0/hexvoxel/internal/util"
)

// Имена генераторов карты для конфигурации
const (
	GeneratorSpiral  = "spiral"
	GeneratorPerlin  = "perlin"
	GeneratorSimplex = "simplex"
)

// MapCell - клетка карты с тегом местности
type MapCell struct {
	Coord   hex.Coord `json:"coord"`
	Terrain Terrain   `json:"terrain"`
}

// HexMap - гексагональная карта верхнего слоя: диск радиуса Radius с тегами местности.
type HexMap struct {
	Radius uint32
	cells  map[hex.Coord]Terrain
}

// NewHexMap создаёт пустую карту (все клетки Empty)
func NewHexMap(radius uint32) *HexMap {
	return &HexMap{
		Radius: radius,
		cells:  make(map[hex.Coord]Terrain, hex.CellCount(radius)),
	}
}

// Contains проверяет, лежит ли клетка внутри диска карты
func (m *HexMap) Contains(c hex.Coord) bool {
	return c.Length() <= int32(m.Radius)
}

// Terrain возвращает тег клетки. Отсутствующие клетки считаются Empty.
func (m *HexMap) Terrain(c hex.Coord) Terrain {
	return m.cells[c]
}

// Set задаёт тег клетки внутри диска
func (m *HexMap) Set(c hex.Coord, t Terrain) bool {
	if !m.Contains(c) {
		return false
	}
	m.cells[c] = t
	return true
}

// Len возвращает число заданных клеток
func (m *HexMap) Len() int {
	return len(m.cells)
}

// Cells возвращает клетки карты в спиральном порядке
func (m *HexMap) Cells() []MapCell {
	out := make([]MapCell, 0, hex.CellCount(m.Radius))
	for c := range hex.Seq(hex.NewSpiral(m.Radius)) {
		out = append(out, MapCell{Coord: c, Terrain: m.Terrain(c)})
	}
	return out
}

// Counts подсчитывает клетки каждого тега
func (m *HexMap) Counts() map[Terrain]int {
	counts := make(map[Terrain]int)
	for c := range hex.Seq(hex.NewRange(m.Radius)) {
		counts[m.Terrain(c)]++
	}
	return counts
}

// MapGenerator строит карту заданного радиуса
type MapGenerator interface {
	Generate(radius uint32) *HexMap
}

// SpiralMapGenerator обходит карту по спирали с сидированным генератором:
// с вероятностью Chance клетке достаётся равновероятный тег из всех трёх, иначе Empty.
// Результат зависит от порядка посещения.
type SpiralMapGenerator struct {
	Seed   int64
	Chance float64
}

// Generate строит карту
func (g *SpiralMapGenerator) Generate(radius uint32) *HexMap {
	m := NewHexMap(radius)
	rng := rand.New(rand.NewSource(g.Seed))
	for c := range hex.Seq(hex.NewSpiral(radius)) {
		t := TerrainEmpty
		if chance(rng, g.Chance) {
			t = Terrains[rng.Intn(len(Terrains))]
		}
		m.Set(c, t)
	}
	return m
}

// NoiseMapGenerator выбирает тег по значению шума в центре клетки
type NoiseMapGenerator struct {
	Noise      util.Noise2D
	Scale      float64 // Шаг шума на одну клетку
	StoneLevel float64 // Выше - камень
	CoalLevel  float64 // Выше - уголь
}

// NewPerlinMapGenerator создаёт генератор карты на шуме Перлина
func NewPerlinMapGenerator(seed int64) *NoiseMapGenerator {
	return &NoiseMapGenerator{
		Noise:      util.NewPerlinNoise(seed),
		Scale:      0.35,
		StoneLevel: 0.62,
		CoalLevel:  0.72,
	}
}

// NewSimplexMapGenerator создаёт генератор карты на OpenSimplex шуме
func NewSimplexMapGenerator(seed int64) *NoiseMapGenerator {
	return &NoiseMapGenerator{
		Noise:      util.NewSimplexNoise(seed),
		Scale:      0.25,
		StoneLevel: 0.6,
		CoalLevel:  0.7,
	}
}

// Generate строит карту
func (g *NoiseMapGenerator) Generate(radius uint32) *HexMap {
	m := NewHexMap(radius)
	for c := range hex.Seq(hex.NewRange(radius)) {
		m.Set(c, g.classify(c))
	}
	return m
}

func (g *NoiseMapGenerator) classify(c hex.Coord) Terrain {
	p := c.ToPixel()
	v := g.Noise.Sample(p.X/hex.Size*g.Scale, p.Y/hex.Size*g.Scale)
	switch {
	case v > g.CoalLevel:
		return TerrainCoal
	case v > g.StoneLevel:
		return TerrainStone
	default:
		return TerrainEmpty
	}
}

// NewMapGenerator выбирает генератор по имени из конфигурации
func NewMapGenerator(name string, seed int64, terrainChance float64) (MapGenerator, error) {
	switch name {
	case GeneratorSpiral, "":
		return &SpiralMapGenerator{Seed: seed, Chance: terrainChance}, nil
	case GeneratorPerlin:
		return NewPerlinMapGenerator(seed), nil
	case GeneratorSimplex:
		return NewSimplexMapGenerator(seed), nil
	default:
		return nil, fmt.Errorf("неизвестный генератор карты %q", name)
	}
}
