package world

import (
	"encoding/binary"
	"fmt"

	"github.com/annel0/hexvoxel/internal/hex"
	"github.com/annel0/hexvoxel/internal/world/block"
	"github.com/klauspost/compress/zstd"
)

// Заголовок снимка: q, r (int32 LE) и код местности
const snapshotHeaderSize = 4 + 4 + 1

// Предел распаковки: снимок чанка заведомо меньше, сжатая "бомба" обрывается на нём
const snapshotMaxDecoded = 1 << 16

var (
	snapshotEncoder = mustEncoder()
	snapshotDecoder = mustDecoder()
)

func mustEncoder() *zstd.Encoder {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic(fmt.Sprintf("world: zstd encoder: %v", err))
	}
	return enc
}

func mustDecoder() *zstd.Decoder {
	dec, err := zstd.NewReader(nil, zstd.WithDecoderMaxMemory(snapshotMaxDecoded))
	if err != nil {
		panic(fmt.Sprintf("world: zstd decoder: %v", err))
	}
	return dec
}

// EncodeSnapshot сжимает содержимое чанка: заголовок и 4096 байт видов блоков
// в порядке линейного индекса.
func EncodeSnapshot(c *Chunk) []byte {
	raw := make([]byte, snapshotHeaderSize+ChunkVolume)
	binary.LittleEndian.PutUint32(raw[0:4], uint32(c.Coord.Q))
	binary.LittleEndian.PutUint32(raw[4:8], uint32(c.Coord.R))
	raw[8] = c.Terrain.Code()
	for i, id := range c.blocks {
		raw[snapshotHeaderSize+i] = byte(id)
	}
	return snapshotEncoder.EncodeAll(raw, nil)
}

// DecodeSnapshot восстанавливает чанк из снимка, пересчитывая твёрдость
func DecodeSnapshot(data []byte) (*Chunk, error) {
	raw, err := snapshotDecoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("decompression failed: %w", err)
	}
	if len(raw) != snapshotHeaderSize+ChunkVolume {
		return nil, fmt.Errorf("неверный размер снимка: %d байт", len(raw))
	}
	if raw[8] >= uint8(TerrainCount) {
		return nil, fmt.Errorf("неверный код местности в снимке: %d", raw[8])
	}

	coord := hex.New(int32(binary.LittleEndian.Uint32(raw[0:4])), int32(binary.LittleEndian.Uint32(raw[4:8])))
	c := NewChunk(coord, Terrain(raw[8]))
	for i, b := range raw[snapshotHeaderSize:] {
		id := block.BlockID(b)
		if !block.IsValidBlockID(id) {
			return nil, fmt.Errorf("неизвестный блок %d в позиции %d", b, i)
		}
		c.blocks[i] = id
		c.solid[i] = block.IsSolid(id)
	}
	return c, nil
}
