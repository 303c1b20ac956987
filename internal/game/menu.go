package game

import (
	"github.com/annel0/hexvoxel/internal/hex"
	"github.com/annel0/hexvoxel/internal/world"
)

// menuState - стартовый экран. Подтверждение ведёт на карту в клетку (0,0).
type menuState struct{}

func (m *menuState) Layer() Layer { return LayerMenu }

func (m *menuState) Enter(s *Session, event world.LayerTransition) {}

func (m *menuState) Update(s *Session, dt float64, input Input) {
	if input.Confirm {
		s.Emit(world.ToHexEvent{Coord: hex.Origin, Direction: hex.Up})
	}
}

func (m *menuState) Exit(s *Session) {}
