package main

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/annel0/hexvoxel/internal/eventbus"
	"github.com/annel0/hexvoxel/internal/hex"
	"github.com/annel0/hexvoxel/internal/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatEnvelope(t *testing.T) {
	payload, err := json.Marshal(world.PayloadOf(world.ToVoxelEvent{Coord: hex.New(1, -1), Direction: hex.North, Terrain: world.TerrainCoal}))
	require.NoError(t, err)

	line := formatEnvelope(eventbus.NewEnvelope("hexvoxel", eventbus.TypeToVoxel, payload))
	assert.Contains(t, line, "layer.to_voxel")
	assert.Contains(t, line, "terrain=coal")
	assert.Contains(t, line, "edge=north")
}

func TestFormatEnvelopeBadPayload(t *testing.T) {
	line := formatEnvelope(eventbus.NewEnvelope("hexvoxel", eventbus.TypeToHex, []byte(`{"kind":"to_hex","direction":9}`)))
	assert.Contains(t, line, "bad payload")
}

func TestParseStringList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, parseStringList(" a, ,b "))
	assert.Nil(t, parseStringList(""))
}

// burstBus доставляет пачку событий синхронно, как dispatch-цикл шины
type burstBus struct {
	eventbus.EventBus
	count    int
	finished chan struct{}
}

type cancelSub context.CancelFunc

func (s cancelSub) Unsubscribe() { s() }

func (b *burstBus) Subscribe(ctx context.Context, _ eventbus.Filter, h eventbus.Handler) (eventbus.Subscription, error) {
	hctx, cancel := context.WithCancel(ctx)
	go func() {
		defer close(b.finished)
		for i := 0; i < b.count; i++ {
			h(hctx, eventbus.NewEnvelope("hexvoxel", eventbus.TypeToHex, nil))
		}
	}()
	return cancelSub(cancel), nil
}

func TestTailReleasesDispatchAfterLimit(t *testing.T) {
	bus := &burstBus{count: 200, finished: make(chan struct{})}

	require.NoError(t, tail(context.Background(), bus, nil, 1))

	select {
	case <-bus.finished:
	case <-time.After(2 * time.Second):
		t.Fatal("обработчик подписки завис после выхода из tail")
	}
}

func TestTailStopsWithMemoryBus(t *testing.T) {
	bus := eventbus.NewMemoryBus(4)
	done := make(chan error, 1)
	go func() { done <- tail(context.Background(), bus, nil, 1) }()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	publish := func() error {
		ev := eventbus.NewEnvelope("hexvoxel", eventbus.TypeToHex, nil)
		ev.Priority = 9
		return bus.Publish(ctx, ev)
	}

	for waiting := true; waiting; {
		require.NoError(t, publish())
		select {
		case err := <-done:
			require.NoError(t, err)
			waiting = false
		case <-time.After(10 * time.Millisecond):
		}
	}
	for i := 0; i < 100; i++ {
		require.NoError(t, publish())
	}

	closed := make(chan struct{})
	go func() {
		_ = bus.Close()
		close(closed)
	}()
	select {
	case <-closed:
	case <-time.After(2 * time.Second):
		t.Fatal("Close не дождался рассылки")
	}
}
