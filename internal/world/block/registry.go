package block

import "fmt"

var registry = make(map[BlockID]BlockBehavior)

// Register добавляет поведение блока в регистр
func Register(id BlockID, behavior BlockBehavior) {
	registry[id] = behavior
}

// Get возвращает поведение для указанного ID
func Get(id BlockID) (BlockBehavior, bool) {
	behavior, exists := registry[id]
	return behavior, exists
}

// IsValidBlockID проверяет, является ли ID допустимым идентификатором блока
func IsValidBlockID(id BlockID) bool {
	_, exists := registry[id]
	return exists
}

// IsSolid сообщает твёрдость блока. Незарегистрированный ID считается воздухом.
func IsSolid(id BlockID) bool {
	behavior, exists := registry[id]
	return exists && behavior.IsSolid()
}

// BlockID представляет вид вокселя внутри чанка
type BlockID uint8

// Константы ID блоков
const (
	AirBlockID   BlockID = iota // 0
	StoneBlockID                // 1
	CoalBlockID                 // 2
)

// String возвращает имя зарегистрированного блока
func (id BlockID) String() string {
	if behavior, ok := registry[id]; ok {
		return behavior.Name()
	}
	return fmt.Sprintf("block(%d)", uint8(id))
}
