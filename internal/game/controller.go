package game

import (
	"context"
	"sync"

	"github.com/annel0/hexvoxel/internal/world"
)

// Controller разделяет сессию между циклом тиков и внешними источниками ввода.
// Все обращения к сессии идут под одной блокировкой, поэтому ядро остаётся однопоточным.
type Controller struct {
	mu      sync.Mutex
	session *Session
	input   Input
}

// NewController оборачивает сессию
func NewController(s *Session) *Controller {
	return &Controller{session: s}
}

// QueueInput накапливает ввод до ближайшего тика
func (c *Controller) QueueInput(in Input) {
	c.mu.Lock()
	c.input = c.input.Merge(in)
	c.mu.Unlock()
}

// Tick выполняет тик с накопленным вводом и сбрасывает его
func (c *Controller) Tick(ctx context.Context, dt float64) []world.LayerTransition {
	c.mu.Lock()
	defer c.mu.Unlock()
	in := c.input
	c.input = Input{}
	return c.session.TickContext(ctx, dt, in)
}

// Do выполняет fn с эксклюзивным доступом к сессии
func (c *Controller) Do(fn func(s *Session) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return fn(c.session)
}
