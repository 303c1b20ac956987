package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/annel0/hexvoxel/internal/eventbus"
	"github.com/annel0/hexvoxel/internal/world"
)

const timeFormat = "15:04:05.000"

func main() {
	var (
		url       = flag.String("url", os.Getenv("HEXVOXEL_NATS_URL"), "NATS server URL")
		stream    = flag.String("stream", "HEXVOXEL_EVENTS", "JetStream stream name")
		kinds     = flag.String("types", "", "Event types filter (comma-separated, e.g. layer.to_voxel)")
		limit     = flag.Int("limit", 0, "Stop after N transitions (0 - follow)")
		retention = flag.Duration("retention", 24*time.Hour, "Stream retention if the stream is created")
	)
	flag.Parse()

	if *url == "" {
		*url = "nats://127.0.0.1:4222"
	}

	bus, err := eventbus.NewJetStreamBus(*url, *stream, *retention)
	if err != nil {
		log.Fatalf("❌ Failed to connect: %v", err)
	}
	defer bus.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("🎬 Tailing transitions from %s (stream %s)\n", *url, *stream)
	if err := tail(ctx, bus, parseStringList(*kinds), *limit); err != nil {
		log.Fatalf("❌ Tail failed: %v", err)
	}
}

// tail печатает переходы до отмены ctx или достижения limit
func tail(ctx context.Context, bus eventbus.EventBus, types []string, limit int) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string, 64)
	sub, err := bus.Subscribe(ctx, eventbus.Filter{Types: types}, func(hctx context.Context, ev *eventbus.Envelope) {
		// После выхода из tail никто не читает lines: не держим рассылку шины
		select {
		case lines <- formatEnvelope(ev):
		case <-hctx.Done():
		}
	})
	if err != nil {
		return err
	}
	defer sub.Unsubscribe()

	for seen := 0; limit == 0 || seen < limit; seen++ {
		select {
		case <-ctx.Done():
			return nil
		case line := <-lines:
			fmt.Println(line)
		}
	}
	return nil
}

// formatEnvelope выводит переход одной строкой; чужие события выводятся как есть
func formatEnvelope(ev *eventbus.Envelope) (line string) {
	prefix := fmt.Sprintf("%s %-15s", ev.Timestamp.Local().Format(timeFormat), ev.EventType)
	defer func() {
		// Недопустимые коды в полезной нагрузке приводят к панике при декодировании
		if r := recover(); r != nil {
			line = fmt.Sprintf("%s ⚠️ bad payload: %v", prefix, r)
		}
	}()

	event, err := eventbus.DecodeTransition(ev)
	if err != nil {
		return fmt.Sprintf("%s %s (%dB)", prefix, ev.ID, len(ev.Payload))
	}
	switch e := event.(type) {
	case world.ToVoxelEvent:
		return fmt.Sprintf("%s cell=%v edge=%v terrain=%v", prefix, e.Coord, e.Direction, e.Terrain)
	default:
		return fmt.Sprintf("%s cell=%v edge=%v", prefix, event.Cell(), event.ExitDirection())
	}
}

func parseStringList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
