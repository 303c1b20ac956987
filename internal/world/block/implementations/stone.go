package implementations

import (
	"github.com/annel0/hexvoxel/internal/world/block"
)

// StoneBehavior реализует поведение блока камня
type StoneBehavior struct{}

// ID возвращает идентификатор блока
func (b *StoneBehavior) ID() block.BlockID {
	return block.StoneBlockID
}

// Name возвращает имя блока
func (b *StoneBehavior) Name() string {
	return "Stone"
}

// IsSolid возвращает true
func (b *StoneBehavior) IsSolid() bool {
	return true
}

// HandleInteraction обрабатывает взаимодействие с блоком камня
func (b *StoneBehavior) HandleInteraction(action string, actionPayload map[string]interface{}) (block.BlockID, block.InteractionResult) {
	return mineable(block.StoneBlockID, "Камень", action)
}

// mineable - общий обработчик добываемых блоков: добыча превращает блок в воздух
// и отдаёт одну единицу исходного вида.
func mineable(id block.BlockID, title, action string) (block.BlockID, block.InteractionResult) {
	if action == block.ActionMine {
		return block.AirBlockID, block.InteractionResult{
			Success: true,
			Message: title + " добыт",
			Effects: []string{"particle_break"},
			Drops:   []block.BlockID{id},
		}
	}

	// Стандартное взаимодействие не меняет блок
	return id, block.InteractionResult{
		Success: false,
		Message: "Действие не поддерживается: " + action,
	}
}
