package entity

import (
	"slices"

	"github.com/annel0/hexvoxel/internal/logging"
)

// Manager управляет всеми сущностями сессии
type Manager struct {
	entities     map[uint64]*Entity // Хранилище всех сущностей
	nextEntityID uint64             // Счетчик для генерации ID
}

// NewManager создаёт новый менеджер сущностей
func NewManager() *Manager {
	return &Manager{
		entities:     make(map[uint64]*Entity),
		nextEntityID: 1,
	}
}

// Spawn создаёт новую сущность указанного вида в слое scope
func (m *Manager) Spawn(kind Kind, scope Scope) *Entity {
	e := &Entity{
		ID:    m.nextEntityID,
		Kind:  kind,
		Scope: scope,
	}
	m.nextEntityID++
	m.entities[e.ID] = e
	logging.Trace("Создана сущность %d (%v) в слое %v", e.ID, kind, scope)
	return e
}

// Get возвращает сущность по ID
func (m *Manager) Get(id uint64) (*Entity, bool) {
	e, ok := m.entities[id]
	return e, ok
}

// Despawn удаляет сущность
func (m *Manager) Despawn(id uint64) bool {
	if _, ok := m.entities[id]; !ok {
		return false
	}
	delete(m.entities, id)
	return true
}

// DespawnScope удаляет все сущности слоя и возвращает их число
func (m *Manager) DespawnScope(scope Scope) int {
	removed := 0
	for id, e := range m.entities {
		if e.Scope == scope {
			delete(m.entities, id)
			removed++
		}
	}
	if removed > 0 {
		logging.Debug("Удалено %d сущностей слоя %v", removed, scope)
	}
	return removed
}

// First возвращает сущность вида kind с наименьшим ID
func (m *Manager) First(kind Kind) (*Entity, bool) {
	var found *Entity
	for _, e := range m.entities {
		if e.Kind == kind && (found == nil || e.ID < found.ID) {
			found = e
		}
	}
	return found, found != nil
}

// Count возвращает число живых сущностей
func (m *Manager) Count() int {
	return len(m.entities)
}

// All возвращает сущности, упорядоченные по ID
func (m *Manager) All() []*Entity {
	out := make([]*Entity, 0, len(m.entities))
	for _, e := range m.entities {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b *Entity) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})
	return out
}
