package game

import "github.com/annel0/hexvoxel/internal/vec"

// Input - дискретные сигналы ввода за один тик
type Input struct {
	Confirm bool `json:"confirm"` // Выбор клетки / старт из меню
	Back    bool `json:"back"`    // Возврат из чанка на карту
	Jump    bool `json:"jump"`    // Прыжок в чанке, только с опоры

	// Move - направление движения. На карте это пиксельное направление (X, Y),
	// в чанке - горизонтальная плоскость (X, Z в полях X, Y).
	Move vec.Vec2Float `json:"move"`
}

// Merge объединяет ввод, накопленный между тиками
func (in Input) Merge(other Input) Input {
	return Input{
		Confirm: in.Confirm || other.Confirm,
		Back:    in.Back || other.Back,
		Jump:    in.Jump || other.Jump,
		Move:    in.Move.Add(other.Move),
	}
}
