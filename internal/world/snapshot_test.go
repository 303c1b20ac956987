package world

import (
	"testing"

	"github.com/annel0/hexvoxel/internal/hex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRestoresChunk(t *testing.T) {
	source := Generate(hex.New(-6, 3), TerrainCoal)

	data := EncodeSnapshot(source)
	assert.Less(t, len(data), snapshotHeaderSize+ChunkVolume, "снимок должен сжиматься")

	restored, err := DecodeSnapshot(data)
	require.NoError(t, err)
	assert.Equal(t, source.Coord, restored.Coord)
	assert.Equal(t, source.Terrain, restored.Terrain)
	assert.Equal(t, source.Solidity(), restored.Solidity())
	assert.Equal(t, source.BlockCounts(), restored.BlockCounts())
}

func TestSnapshotRejectsGarbage(t *testing.T) {
	_, err := DecodeSnapshot([]byte("not a snapshot"))
	assert.Error(t, err)

	short := snapshotEncoder.EncodeAll([]byte{1, 2, 3}, nil)
	_, err = DecodeSnapshot(short)
	assert.Error(t, err)
}

func TestSnapshotRejectsOversizedPayload(t *testing.T) {
	// 1 МиБ нулей сжимается в сотню байт, но распаковка должна оборваться
	bomb := snapshotEncoder.EncodeAll(make([]byte, 1<<20), nil)
	require.Less(t, len(bomb), 4096)

	_, err := DecodeSnapshot(bomb)
	assert.Error(t, err)

	_, err = snapshotDecoder.DecodeAll(bomb, nil)
	assert.Error(t, err)
}
