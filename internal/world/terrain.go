package world

import (
	"fmt"
	"strconv"
	"strings"
)

// Terrain - тег местности клетки гексагональной карты.
// Переносится в событии перехода и выбирает политику заполнения чанка.
type Terrain uint8

const (
	TerrainEmpty Terrain = iota
	TerrainStone
	TerrainCoal

	TerrainCount // всегда последний
)

// Terrains перечисляет все теги местности
var Terrains = [TerrainCount]Terrain{TerrainEmpty, TerrainStone, TerrainCoal}

var terrainNames = [TerrainCount]string{"empty", "stone", "coal"}

// TerrainFromCode преобразует числовой код события в тег местности.
// Неизвестный код - нарушение контракта внутри ядра, поэтому паника.
func TerrainFromCode(code uint8) Terrain {
	if code >= uint8(TerrainCount) {
		panic(fmt.Sprintf("world: недопустимый код местности %d", code))
	}
	return Terrain(code)
}

// ParseTerrain разбирает имя или числовой код местности
func ParseTerrain(s string) (Terrain, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range terrainNames {
		if s == name || s == strconv.Itoa(i) {
			return Terrain(i), nil
		}
	}
	return 0, fmt.Errorf("неизвестная местность %q", s)
}

// Code возвращает числовой код для передачи в событиях
func (t Terrain) Code() uint8 {
	return uint8(t)
}

func (t Terrain) String() string {
	if t >= TerrainCount {
		return fmt.Sprintf("terrain(%d)", uint8(t))
	}
	return terrainNames[t]
}

// MarshalText сериализует местность именем
func (t Terrain) MarshalText() ([]byte, error) {
	if t >= TerrainCount {
		return nil, fmt.Errorf("недопустимая местность %d", uint8(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText разбирает местность по имени
func (t *Terrain) UnmarshalText(text []byte) error {
	parsed, err := ParseTerrain(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
