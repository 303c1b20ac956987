package game

import (
	"context"
	"sync"
	"testing"

	"github.com/annel0/hexvoxel/internal/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestControllerDrainsQueuedInput(t *testing.T) {
	c := NewController(NewSession(world.NewHexMap(2), DefaultOptions()))
	c.QueueInput(Input{Confirm: true})
	c.QueueInput(Input{})

	emitted := c.Tick(context.Background(), 0)
	require.Len(t, emitted, 1)

	// Ввод сброшен: второй тик только выполняет переход
	assert.Empty(t, c.Tick(context.Background(), 0))
	require.NoError(t, c.Do(func(s *Session) error {
		assert.Equal(t, LayerHex, s.Layer())
		return nil
	}))
}

func TestControllerConcurrentAccess(t *testing.T) {
	c := NewController(NewSession(world.NewHexMap(2), DefaultOptions()))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			c.Tick(context.Background(), 1.0/60)
		}()
		go func() {
			defer wg.Done()
			_ = c.Do(func(s *Session) error {
				_ = s.View()
				return nil
			})
		}()
	}
	wg.Wait()

	_ = c.Do(func(s *Session) error {
		assert.Equal(t, uint64(8), s.TickCount())
		return nil
	})
}
