// Package implementations регистрирует поведение всех видов вокселей.
// Подключается пустым импортом там, где нужен заполненный регистр.
package implementations

import "github.com/annel0/hexvoxel/internal/world/block"

// Регистрируем все типы блоков при импорте пакета
func init() {
	block.Register(block.AirBlockID, &AirBehavior{})
	block.Register(block.StoneBlockID, &StoneBehavior{})
	block.Register(block.CoalBlockID, &CoalBehavior{})
}
