// Package game - машина слоёв (меню, гексагональная карта, воксельный чанк) и
// потактовая сессия, связывающая её с миром, физикой и сущностями.
package game

import (
	"fmt"
	"strings"

	"github.com/annel0/hexvoxel/internal/logging"
	"github.com/annel0/hexvoxel/internal/world"
)

// Layer - взаимоисключающий игровой режим верхнего уровня
type Layer uint8

const (
	LayerMenu Layer = iota
	LayerHex
	LayerVoxel
)

func (l Layer) String() string {
	switch l {
	case LayerMenu:
		return "menu"
	case LayerHex:
		return "hex"
	case LayerVoxel:
		return "voxel"
	default:
		return fmt.Sprintf("layer(%d)", uint8(l))
	}
}

// MarshalText сериализует слой именем
func (l Layer) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// ParseLayer разбирает имя слоя
func ParseLayer(s string) (Layer, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "menu":
		return LayerMenu, nil
	case "hex":
		return LayerHex, nil
	case "voxel":
		return LayerVoxel, nil
	default:
		return 0, fmt.Errorf("неизвестный слой %q", s)
	}
}

// State представляет состояние машины слоёв.
// Enter получает событие, которое привело в состояние (nil для начального).
type State interface {
	Layer() Layer
	Enter(s *Session, event world.LayerTransition)
	Update(s *Session, dt float64, input Input)
	Exit(s *Session)
}

// stateFor выбирает состояние по событию перехода
func stateFor(event world.LayerTransition) State {
	switch event.(type) {
	case world.ToVoxelEvent:
		return &voxelState{}
	default:
		return &hexState{}
	}
}

// setState выходит из текущего состояния и входит в новое.
// Повторный вход в тот же слой тоже проходит через Exit и Enter.
func (s *Session) setState(state State, event world.LayerTransition) {
	from := LayerMenu
	if s.state != nil {
		from = s.state.Layer()
		s.state.Exit(s)
	}

	s.state = state

	if s.state != nil {
		s.state.Enter(s, event)
		logging.LogTransition(from.String(), state.Layer().String(), event)
	}
}
