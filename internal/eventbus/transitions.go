package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/annel0/hexvoxel/internal/world"
)

// Типы событий переходов между слоями
const (
	TypeToHex   = "layer.to_hex"
	TypeToVoxel = "layer.to_voxel"
	// DefaultSource - источник событий игрового процесса
	DefaultSource = "hexvoxel"
)

// TransitionType возвращает тип конверта для события перехода
func TransitionType(event world.LayerTransition) string {
	return "layer." + event.GetType().String()
}

// TransitionPublisher публикует выполненные переходы слоёв в шину
type TransitionPublisher struct {
	bus    EventBus
	source string
}

// NewTransitionPublisher создаёт публикатор. Пустой source заменяется на DefaultSource.
func NewTransitionPublisher(bus EventBus, source string) *TransitionPublisher {
	if source == "" {
		source = DefaultSource
	}
	return &TransitionPublisher{bus: bus, source: source}
}

// PublishTransition кодирует переход в JSON и публикует его с высоким приоритетом
func (p *TransitionPublisher) PublishTransition(ctx context.Context, event world.LayerTransition) error {
	payload, err := json.Marshal(world.PayloadOf(event))
	if err != nil {
		return fmt.Errorf("encode transition: %w", err)
	}
	env := NewEnvelope(p.source, TransitionType(event), payload)
	env.Priority = 7
	return p.bus.Publish(ctx, env)
}

// DecodeTransition восстанавливает переход из конверта
func DecodeTransition(ev *Envelope) (world.LayerTransition, error) {
	if !strings.HasPrefix(ev.EventType, "layer.") {
		return nil, fmt.Errorf("событие %q не является переходом", ev.EventType)
	}
	var payload world.TransitionPayload
	if err := json.Unmarshal(ev.Payload, &payload); err != nil {
		return nil, fmt.Errorf("decode transition: %w", err)
	}
	return payload.Event()
}
