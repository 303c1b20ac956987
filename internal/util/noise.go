// Package util содержит источники шума для процедурной генерации карты.
package util

import (
	"github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Noise2D - детерминированный двумерный шум со значениями от 0 до 1.
type Noise2D interface {
	Sample(x, y float64) float64
}

// PerlinNoise оборачивает генератор шума Перлина
type PerlinNoise struct {
	noise *perlin.Perlin
}

// NewPerlinNoise создаёт генератор шума Перлина с указанным сидом
func NewPerlinNoise(seed int64) *PerlinNoise {
	alpha := 2.0  // Сглаживание шума
	beta := 2.0   // Частота шума
	n := int32(3) // Количество октав
	return &PerlinNoise{noise: perlin.NewPerlin(alpha, beta, n, seed)}
}

// Sample возвращает значение шума Перлина для указанных координат (от 0 до 1)
func (p *PerlinNoise) Sample(x, y float64) float64 {
	// Значение шума примерно от -1 до 1
	return clamp01((p.noise.Noise2D(x, y) + 1.0) / 2.0)
}

// SimplexNoise - многооктавный OpenSimplex шум
type SimplexNoise struct {
	noise       opensimplex.Noise
	Octaves     int
	Persistence float64
}

// NewSimplexNoise создаёт нормализованный OpenSimplex шум с тремя октавами
func NewSimplexNoise(seed int64) *SimplexNoise {
	return &SimplexNoise{
		noise:       opensimplex.NewNormalized(seed),
		Octaves:     3,
		Persistence: 0.5,
	}
}

// Sample складывает октавы с убывающей амплитудой и нормирует результат
func (s *SimplexNoise) Sample(x, y float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0
	frequency := 1.0

	for i := 0; i < s.Octaves; i++ {
		total += s.noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= s.Persistence
		frequency *= 2
	}
	if maxVal == 0 {
		return 0
	}
	return clamp01(total / maxVal)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
