package implementations

import (
	"testing"

	"github.com/annel0/hexvoxel/internal/world/block"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryFilled(t *testing.T) {
	for _, id := range []block.BlockID{block.AirBlockID, block.StoneBlockID, block.CoalBlockID} {
		behavior, ok := block.Get(id)
		require.True(t, ok, "блок %d не зарегистрирован", id)
		assert.Equal(t, id, behavior.ID())
	}
	assert.False(t, block.IsValidBlockID(block.BlockID(200)))
	assert.Equal(t, "Coal", block.CoalBlockID.String())
	assert.Equal(t, "block(200)", block.BlockID(200).String())
}

func TestSolidity(t *testing.T) {
	assert.False(t, block.IsSolid(block.AirBlockID))
	assert.True(t, block.IsSolid(block.StoneBlockID))
	assert.True(t, block.IsSolid(block.CoalBlockID))
	assert.False(t, block.IsSolid(block.BlockID(99)), "неизвестный блок считается воздухом")
}

func TestMineDropsKind(t *testing.T) {
	for _, id := range []block.BlockID{block.StoneBlockID, block.CoalBlockID} {
		behavior, _ := block.Get(id)
		newID, result := behavior.HandleInteraction(block.ActionMine, nil)
		assert.Equal(t, block.AirBlockID, newID)
		assert.True(t, result.Success)
		assert.Equal(t, []block.BlockID{id}, result.Drops)
	}
}

func TestUnsupportedActionKeepsBlock(t *testing.T) {
	behavior, _ := block.Get(block.StoneBlockID)
	newID, result := behavior.HandleInteraction("use", nil)
	assert.Equal(t, block.StoneBlockID, newID)
	assert.False(t, result.Success)
	assert.Empty(t, result.Drops)
}

func TestAirInteractions(t *testing.T) {
	air, _ := block.Get(block.AirBlockID)

	newID, result := air.HandleInteraction(block.ActionMine, nil)
	assert.Equal(t, block.AirBlockID, newID)
	assert.False(t, result.Success)

	newID, result = air.HandleInteraction(block.ActionPlace, map[string]interface{}{"block_id": block.CoalBlockID})
	assert.Equal(t, block.CoalBlockID, newID)
	assert.True(t, result.Success)

	newID, _ = air.HandleInteraction(block.ActionPlace, map[string]interface{}{"block_id": block.BlockID(77)})
	assert.Equal(t, block.AirBlockID, newID)
}
