package block

// InteractionResult представляет результат взаимодействия с блоком
type InteractionResult struct {
	Success bool      // Успешно ли выполнено взаимодействие
	Message string    // Сообщение о результате взаимодействия
	Effects []string  // Эффекты взаимодействия (опционально)
	Drops   []BlockID // Что получает игрок
}

// BlockBehavior определяет поведение вида вокселя
type BlockBehavior interface {
	ID() BlockID
	Name() string
	// IsSolid определяет, участвует ли блок в гравитации и блокировке движения
	IsSolid() bool
	// HandleInteraction возвращает новый вид блока и результат действия
	HandleInteraction(action string, actionPayload map[string]interface{}) (BlockID, InteractionResult)
}

// Поддерживаемые действия
const (
	ActionMine  = "mine"
	ActionPlace = "place"
)
