package entity

import (
	"encoding/json"
	"testing"

	"github.com/annel0/hexvoxel/internal/world/block"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventoryAddStacks(t *testing.T) {
	inv := NewInventory(3)
	assert.True(t, inv.Add(block.StoneBlockID, 2))
	assert.True(t, inv.Add(block.CoalBlockID, 1))
	assert.True(t, inv.Add(block.StoneBlockID, 3))

	slots := inv.Slots()
	assert.Equal(t, Slot{Kind: block.StoneBlockID, Quantity: 5}, slots[0])
	assert.Equal(t, Slot{Kind: block.CoalBlockID, Quantity: 1}, slots[1])
	assert.True(t, slots[2].Empty)

	assert.Equal(t, uint32(5), inv.Total(block.StoneBlockID))
	assert.Equal(t, uint32(0), inv.Total(block.AirBlockID))
}

func TestInventoryFirstMatchingOrEmpty(t *testing.T) {
	inv := NewInventory(3)
	inv.Add(block.CoalBlockID, 1)
	inv.Add(block.StoneBlockID, 1)
	require.True(t, inv.CheckAndDeduct([]Requirement{{Kind: block.CoalBlockID, Quantity: 1}}))

	// Освободившийся первый слот стоит раньше слота с камнем
	inv.Add(block.StoneBlockID, 4)
	slots := inv.Slots()
	assert.Equal(t, Slot{Kind: block.StoneBlockID, Quantity: 4}, slots[0])
	assert.Equal(t, Slot{Kind: block.StoneBlockID, Quantity: 1}, slots[1])
	assert.Equal(t, uint32(5), inv.Total(block.StoneBlockID))
}

func TestInventoryFull(t *testing.T) {
	inv := NewInventory(1)
	assert.True(t, inv.Add(block.StoneBlockID, 1))
	assert.False(t, inv.Add(block.CoalBlockID, 1))
	assert.True(t, inv.Add(block.StoneBlockID, 1))
	assert.Equal(t, uint32(2), inv.Total(block.StoneBlockID))
}

func TestCheckAndDeductAtomic(t *testing.T) {
	inv := NewInventory(4)
	inv.Add(block.StoneBlockID, 3)
	inv.Add(block.CoalBlockID, 1)
	before := inv.Slots()

	ok := inv.CheckAndDeduct([]Requirement{
		{Kind: block.StoneBlockID, Quantity: 2},
		{Kind: block.CoalBlockID, Quantity: 2},
	})
	assert.False(t, ok)
	assert.Equal(t, before, inv.Slots(), "при нехватке ничего не списывается")

	ok = inv.CheckAndDeduct([]Requirement{
		{Kind: block.StoneBlockID, Quantity: 3},
		{Kind: block.CoalBlockID, Quantity: 1},
	})
	assert.True(t, ok)
	for _, slot := range inv.Slots() {
		assert.True(t, slot.Empty)
	}
}

func TestCheckAndDeductAcrossSlots(t *testing.T) {
	inv := NewInventory(3)
	inv.Add(block.CoalBlockID, 1)
	inv.Add(block.StoneBlockID, 2)
	inv.CheckAndDeduct([]Requirement{{Kind: block.CoalBlockID, Quantity: 1}})
	inv.Add(block.StoneBlockID, 2) // ложится в освободившийся слот 0

	require.True(t, inv.CheckAndDeduct([]Requirement{{Kind: block.StoneBlockID, Quantity: 3}}))
	slots := inv.Slots()
	assert.True(t, slots[0].Empty)
	assert.Equal(t, Slot{Kind: block.StoneBlockID, Quantity: 1}, slots[1])
}

func TestInventoryJSON(t *testing.T) {
	inv := NewInventory(2)
	inv.Add(block.CoalBlockID, 7)

	data, err := json.Marshal(inv)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"kind":2,"quantity":7,"empty":false},{"kind":0,"quantity":0,"empty":true}]`, string(data))
}
