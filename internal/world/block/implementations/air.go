package implementations

import (
	"github.com/annel0/hexvoxel/internal/world/block"
)

// AirBehavior реализует поведение пустого блока (воздуха)
type AirBehavior struct{}

// ID возвращает идентификатор блока
func (b *AirBehavior) ID() block.BlockID {
	return block.AirBlockID
}

// Name возвращает имя блока
func (b *AirBehavior) Name() string {
	return "Air"
}

// IsSolid - сквозь воздух можно проходить и падать
func (b *AirBehavior) IsSolid() bool {
	return false
}

// HandleInteraction обрабатывает взаимодействие с блоком воздуха
func (b *AirBehavior) HandleInteraction(action string, actionPayload map[string]interface{}) (block.BlockID, block.InteractionResult) {
	// Воздух нельзя добыть, но можно поставить блок
	if action == block.ActionPlace {
		if newBlockID, ok := actionPayload["block_id"].(block.BlockID); ok && newBlockID != block.AirBlockID {
			if _, exists := block.Get(newBlockID); exists {
				return newBlockID, block.InteractionResult{
					Success: true,
					Message: "Блок установлен",
				}
			}
		}
	}

	return block.AirBlockID, block.InteractionResult{
		Success: false,
		Message: "Нельзя взаимодействовать с воздухом",
	}
}
