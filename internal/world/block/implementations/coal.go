package implementations

import (
	"github.com/annel0/hexvoxel/internal/world/block"
)

// CoalBehavior реализует поведение угольной руды
type CoalBehavior struct{}

// ID возвращает идентификатор блока
func (b *CoalBehavior) ID() block.BlockID {
	return block.CoalBlockID
}

// Name возвращает имя блока
func (b *CoalBehavior) Name() string {
	return "Coal"
}

// IsSolid возвращает true
func (b *CoalBehavior) IsSolid() bool {
	return true
}

// HandleInteraction обрабатывает взаимодействие с углём
func (b *CoalBehavior) HandleInteraction(action string, actionPayload map[string]interface{}) (block.BlockID, block.InteractionResult) {
	return mineable(block.CoalBlockID, "Уголь", action)
}
