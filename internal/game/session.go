package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/annel0/hexvoxel/internal/config"
	"github.com/annel0/hexvoxel/internal/entity"
	"github.com/annel0/hexvoxel/internal/hex"
	"github.com/annel0/hexvoxel/internal/logging"
	"github.com/annel0/hexvoxel/internal/vec"
	"github.com/annel0/hexvoxel/internal/world"
	"github.com/annel0/hexvoxel/internal/world/block"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var (
	ErrWrongLayer  = errors.New("действие недоступно в текущем слое")
	ErrOutOfChunk  = errors.New("координата вне чанка")
	ErrNotMineable = errors.New("блок нельзя добыть")
)

// TransitionPublisher получает каждый выполненный переход слоя
type TransitionPublisher interface {
	PublishTransition(ctx context.Context, event world.LayerTransition) error
}

// Options - параметры сессии
type Options struct {
	Gravity        float64
	VoxelMoveSpeed float64
	HexMoveSpeed   float64
	InventorySize  int
	StartLayer     Layer // LayerMenu или LayerHex

	Publisher TransitionPublisher // Необязателен
	Metrics   *Metrics            // Необязательны
	Tracer    trace.Tracer        // По умолчанию глобальный провайдер otel
}

// DefaultOptions возвращает параметры по умолчанию
func DefaultOptions() Options {
	return Options{
		Gravity:        9.8,
		VoxelMoveSpeed: 10,
		HexMoveSpeed:   300,
		InventorySize:  entity.DefaultInventorySize,
		StartLayer:     LayerMenu,
	}
}

// OptionsFromConfig переносит физику и стартовый слой из конфигурации
func OptionsFromConfig(cfg *config.Config) (Options, error) {
	opts := DefaultOptions()
	opts.Gravity = cfg.Physics.Gravity
	opts.VoxelMoveSpeed = cfg.Physics.VoxelMoveSpeed
	opts.HexMoveSpeed = cfg.Physics.HexMoveSpeed

	start, err := ParseLayer(cfg.Game.StartLayer)
	if err != nil {
		return opts, err
	}
	if start == LayerVoxel {
		return opts, fmt.Errorf("стартовый слой %v недоступен", start)
	}
	opts.StartLayer = start
	return opts, nil
}

// Session - однопоточная игровая сессия. Каждый тик состоит из упорядоченных фаз:
// разбор переходов, накопленных в прошлом тике (выполняется только последний),
// затем обновление активного слоя, который может породить новые переходы.
type Session struct {
	opts      Options
	hexMap    *world.HexMap
	chunk     *world.Chunk
	entities  *entity.Manager
	inventory *entity.Inventory

	state       State
	chunkActive bool
	pending     []world.LayerTransition
	tick        uint64
	lastEvent   world.LayerTransition

	metrics *Metrics
	tracer  trace.Tracer
	log     *logging.ComponentLogger
}

// NewSession создаёт сессию над картой m
func NewSession(m *world.HexMap, opts Options) *Session {
	if opts.InventorySize <= 0 {
		opts.InventorySize = entity.DefaultInventorySize
	}
	tracer := opts.Tracer
	if tracer == nil {
		tracer = otel.Tracer("github.com/annel0/hexvoxel/internal/game")
	}

	s := &Session{
		opts:      opts,
		hexMap:    m,
		chunk:     world.NewChunk(hex.Origin, world.TerrainEmpty),
		entities:  entity.NewManager(),
		inventory: entity.NewInventory(opts.InventorySize),
		metrics:   opts.Metrics,
		tracer:    tracer,
		log:       logging.GetGameLogger(),
	}
	s.state = &menuState{}
	if opts.StartLayer == LayerHex {
		s.Emit(world.ToHexEvent{Coord: hex.Origin, Direction: hex.Up})
	}
	return s
}

// Emit ставит переход в очередь. Он будет разобран в начале следующего тика.
func (s *Session) Emit(event world.LayerTransition) {
	s.pending = append(s.pending, event)
}

// Tick выполняет один тик и возвращает переходы, порождённые в этом тике
func (s *Session) Tick(dt float64, input Input) []world.LayerTransition {
	return s.TickContext(context.Background(), dt, input)
}

// TickContext - Tick с родительским контекстом для трассировки
func (s *Session) TickContext(ctx context.Context, dt float64, input Input) []world.LayerTransition {
	start := time.Now()
	s.tick++
	ctx, span := s.tracer.Start(ctx, "session.tick", trace.WithAttributes(
		attribute.Int64("tick", int64(s.tick)),
		attribute.String("layer.before", s.state.Layer().String()),
	))
	defer span.End()

	// Фаза 1: разбор переходов прошлого тика
	s.consumeTransitions(ctx)

	// Фаза 2: обновление активного слоя; новые переходы копятся в pending
	queued := len(s.pending)
	s.state.Update(s, dt, input)
	emitted := append([]world.LayerTransition(nil), s.pending[queued:]...)

	span.SetAttributes(
		attribute.String("layer.after", s.state.Layer().String()),
		attribute.Int("transitions.emitted", len(emitted)),
	)
	s.metrics.observeTick(time.Since(start))
	return emitted
}

// consumeTransitions выполняет только последний накопленный переход
func (s *Session) consumeTransitions(ctx context.Context) {
	if len(s.pending) == 0 {
		return
	}
	event := s.pending[len(s.pending)-1]
	if dropped := len(s.pending) - 1; dropped > 0 {
		s.metrics.droppedTransitions(dropped)
		s.log.Debug("Отброшено %d переходов, выполняется последний: %v", dropped, event)
	}
	s.pending = s.pending[:0]

	_, span := s.tracer.Start(ctx, "session.transition", trace.WithAttributes(
		attribute.String("event", event.GetType().String()),
		attribute.Int("q", int(event.Cell().Q)),
		attribute.Int("r", int(event.Cell().R)),
		attribute.Int("direction", event.ExitDirection().Index()),
	))
	defer span.End()

	s.setState(stateFor(event), event)
	s.lastEvent = event
	s.metrics.transitioned(s.state.Layer())

	if s.opts.Publisher != nil {
		if err := s.opts.Publisher.PublishTransition(ctx, event); err != nil {
			span.RecordError(err)
			s.log.Warn("Не удалось опубликовать переход %v: %v", event, err)
		}
	}
}

// Layer возвращает активный слой
func (s *Session) Layer() Layer {
	return s.state.Layer()
}

// TickCount возвращает число выполненных тиков
func (s *Session) TickCount() uint64 {
	return s.tick
}

// Pending возвращает число переходов, ожидающих разбора
func (s *Session) Pending() int {
	return len(s.pending)
}

// HexMap возвращает карту сессии
func (s *Session) HexMap() *world.HexMap {
	return s.hexMap
}

// Chunk возвращает активный чанк (nil вне воксельного слоя)
func (s *Session) Chunk() *world.Chunk {
	if !s.chunkActive {
		return nil
	}
	return s.chunk
}

// IsSolid - запрос твёрдости активного чанка для внешних систем
func (s *Session) IsSolid(x, y, z int) bool {
	return s.chunkActive && s.chunk.IsSolid(x, y, z)
}

// Inventory возвращает инвентарь игрока
func (s *Session) Inventory() *entity.Inventory {
	return s.inventory
}

// Entities возвращает живые сущности по возрастанию ID
func (s *Session) Entities() []*entity.Entity {
	return s.entities.All()
}

// Player возвращает игрока активного слоя
func (s *Session) Player() (*entity.Entity, bool) {
	switch st := s.state.(type) {
	case *hexState:
		return st.player, st.player != nil
	case *voxelState:
		return st.player, st.player != nil
	default:
		return nil, false
	}
}

// Cursor возвращает курсор карты
func (s *Session) Cursor() (*entity.Entity, bool) {
	if st, ok := s.state.(*hexState); ok && st.cursor != nil {
		return st.cursor, true
	}
	return nil, false
}

// TeleportHex переносит игрока карты в пиксельную точку
func (s *Session) TeleportHex(p vec.Vec2Float) error {
	st, ok := s.state.(*hexState)
	if !ok {
		return fmt.Errorf("телепорт по карте: %w", ErrWrongLayer)
	}
	st.player.SetPixel(p)
	return nil
}

// TeleportVoxel переносит игрока чанка в точку. Выход за границы обнаружится в следующем тике.
func (s *Session) TeleportVoxel(p vec.Vec3Float) error {
	st, ok := s.state.(*voxelState)
	if !ok {
		return fmt.Errorf("телепорт в чанке: %w", ErrWrongLayer)
	}
	st.player.Position = p
	return nil
}

// Mine добывает блок чанка: блок становится воздухом, добыча попадает в инвентарь.
func (s *Session) Mine(x, y, z int) (block.InteractionResult, error) {
	if !s.chunkActive {
		return block.InteractionResult{}, fmt.Errorf("добыча: %w", ErrWrongLayer)
	}
	if x < 0 || x >= world.ChunkSize || y < 0 || y >= world.ChunkSize || z < 0 || z >= world.ChunkSize {
		return block.InteractionResult{}, fmt.Errorf("добыча (%d,%d,%d): %w", x, y, z, ErrOutOfChunk)
	}

	current := s.chunk.Block(x, y, z)
	behavior, ok := block.Get(current)
	if !ok {
		return block.InteractionResult{}, fmt.Errorf("добыча %v: %w", current, ErrNotMineable)
	}

	next, result := behavior.HandleInteraction(block.ActionMine, nil)
	if !result.Success {
		return result, fmt.Errorf("добыча %v: %w", current, ErrNotMineable)
	}
	s.chunk.SetBlock(x, y, z, next)
	for _, drop := range result.Drops {
		s.inventory.Add(drop, 1)
	}
	s.log.Debug("Добыт блок %v в (%d,%d,%d)", current, x, y, z)
	return result, nil
}

// StateView - снимок состояния сессии для внешних наблюдателей
type StateView struct {
	Layer     Layer                    `json:"layer"`
	Tick      uint64                   `json:"tick"`
	Pending   int                      `json:"pending"`
	Player    *entity.Entity           `json:"player,omitempty"`
	Cursor    *entity.Entity           `json:"cursor,omitempty"`
	Chunk     *ChunkView               `json:"chunk,omitempty"`
	Inventory []entity.Slot            `json:"inventory"`
	Entities  int                      `json:"entities"`
	Last      *world.TransitionPayload `json:"last_transition,omitempty"`
}

// ChunkView - краткое описание активного чанка
type ChunkView struct {
	Coord   hex.Coord     `json:"coord"`
	Terrain world.Terrain `json:"terrain"`
	Solid   int           `json:"solid"`
}

// View собирает снимок состояния
func (s *Session) View() StateView {
	view := StateView{
		Layer:     s.Layer(),
		Tick:      s.tick,
		Pending:   len(s.pending),
		Inventory: s.inventory.Slots(),
		Entities:  s.entities.Count(),
	}
	if p, ok := s.Player(); ok {
		copied := *p
		view.Player = &copied
	}
	if c, ok := s.Cursor(); ok {
		copied := *c
		view.Cursor = &copied
	}
	if s.chunkActive {
		view.Chunk = &ChunkView{Coord: s.chunk.Coord, Terrain: s.chunk.Terrain, Solid: s.chunk.SolidCount()}
	}
	if s.lastEvent != nil {
		payload := world.PayloadOf(s.lastEvent)
		view.Last = &payload
	}
	return view
}
