package world

import (
	"encoding/json"
	"testing"

	"github.com/annel0/hexvoxel/internal/hex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionPayload(t *testing.T) {
	events := []LayerTransition{
		ToHexEvent{Coord: hex.New(0, 0), Direction: hex.Up},
		ToVoxelEvent{Coord: hex.New(-2, 5), Direction: hex.West, Terrain: TerrainCoal},
	}
	for _, e := range events {
		data, err := json.Marshal(PayloadOf(e))
		require.NoError(t, err)

		var p TransitionPayload
		require.NoError(t, json.Unmarshal(data, &p))
		restored, err := p.Event()
		require.NoError(t, err)
		assert.Equal(t, e, restored)
	}
}

func TestTransitionPayloadContract(t *testing.T) {
	_, err := TransitionPayload{Kind: "to_menu"}.Event()
	assert.Error(t, err)

	assert.Panics(t, func() {
		_, _ = TransitionPayload{Kind: "to_hex", Direction: 6}.Event()
	})
	assert.Panics(t, func() {
		_, _ = TransitionPayload{Kind: "to_voxel", Terrain: 3}.Event()
	})
}

func TestTerrainCodes(t *testing.T) {
	for _, tr := range Terrains {
		assert.Equal(t, tr, TerrainFromCode(tr.Code()))
		parsed, err := ParseTerrain(tr.String())
		require.NoError(t, err)
		assert.Equal(t, tr, parsed)
	}
	assert.Panics(t, func() { TerrainFromCode(3) })

	_, err := ParseTerrain("lava")
	assert.Error(t, err)

	parsed, err := ParseTerrain("2")
	require.NoError(t, err)
	assert.Equal(t, TerrainCoal, parsed)
}

func TestEventTypes(t *testing.T) {
	assert.Equal(t, EventTypeToHex, ToHexEvent{}.GetType())
	assert.Equal(t, EventTypeToVoxel, ToVoxelEvent{}.GetType())
	assert.Equal(t, EventTypeTick, TickEvent{}.GetType())
	assert.Equal(t, "to_voxel", EventTypeToVoxel.String())
}
