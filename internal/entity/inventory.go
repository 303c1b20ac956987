package entity

import (
	"encoding/json"

	"github.com/annel0/hexvoxel/internal/logging"
	"github.com/annel0/hexvoxel/internal/world/block"
)

// DefaultInventorySize - число слотов инвентаря игрока
const DefaultInventorySize = 9

// Slot - ячейка инвентаря. Empty означает свободную ячейку.
type Slot struct {
	Kind     block.BlockID `json:"kind"`
	Quantity uint32        `json:"quantity"`
	Empty    bool          `json:"empty"`
}

// Requirement - требуемое количество ресурса
type Requirement struct {
	Kind     block.BlockID
	Quantity uint32
}

// Inventory - фиксированный набор слотов ресурсов
type Inventory struct {
	slots []Slot
}

// NewInventory создаёт инвентарь из size пустых слотов
func NewInventory(size int) *Inventory {
	inv := &Inventory{slots: make([]Slot, size)}
	for i := range inv.slots {
		inv.slots[i].Empty = true
	}
	return inv
}

// Add кладёт ресурс в первый слот, который либо содержит этот вид, либо пуст.
// Возвращает false, если подходящего слота нет.
func (inv *Inventory) Add(kind block.BlockID, quantity uint32) bool {
	for i := range inv.slots {
		slot := &inv.slots[i]
		if slot.Empty || slot.Kind == kind {
			slot.Kind = kind
			slot.Empty = false
			slot.Quantity += quantity
			return true
		}
	}
	logging.Warn("Инвентарь заполнен, не удалось добавить %v x%d", kind, quantity)
	return false
}

// Total возвращает суммарное количество ресурса по всем слотам
func (inv *Inventory) Total(kind block.BlockID) uint32 {
	var total uint32
	for _, slot := range inv.slots {
		if !slot.Empty && slot.Kind == kind {
			total += slot.Quantity
		}
	}
	return total
}

// CheckAndDeduct сначала проверяет наличие всех ресурсов и только затем списывает их.
// Опустевшие слоты освобождаются. При нехватке инвентарь не меняется.
func (inv *Inventory) CheckAndDeduct(requirements []Requirement) bool {
	for _, req := range requirements {
		if inv.Total(req.Kind) < req.Quantity {
			return false
		}
	}

	for _, req := range requirements {
		remaining := req.Quantity
		for i := range inv.slots {
			slot := &inv.slots[i]
			if slot.Empty || slot.Kind != req.Kind {
				continue
			}
			if slot.Quantity >= remaining {
				slot.Quantity -= remaining
				if slot.Quantity == 0 {
					*slot = Slot{Empty: true}
				}
				break
			}
			remaining -= slot.Quantity
			*slot = Slot{Empty: true}
		}
	}
	return true
}

// Slots возвращает копию слотов
func (inv *Inventory) Slots() []Slot {
	out := make([]Slot, len(inv.slots))
	copy(out, inv.slots)
	return out
}

// MarshalJSON сериализует инвентарь списком слотов
func (inv *Inventory) MarshalJSON() ([]byte, error) {
	return json.Marshal(inv.slots)
}
