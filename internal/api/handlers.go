package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/annel0/hexvoxel/internal/game"
	"github.com/annel0/hexvoxel/internal/hex"
	"github.com/annel0/hexvoxel/internal/vec"
	"github.com/annel0/hexvoxel/internal/world"
	"github.com/gin-gonic/gin"
)

// GenericResponse представляет общий ответ API
type GenericResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// InputRequest - ввод, который будет применён в ближайшем тике.
// Teleport выполняется сразу: X, Y - пиксели на карте; X, Y, Z - блоки в чанке.
type InputRequest struct {
	Confirm  bool           `json:"confirm"`
	Back     bool           `json:"back"`
	Jump     bool           `json:"jump"`
	Move     vec.Vec2Float  `json:"move"`
	Teleport *vec.Vec3Float `json:"teleport,omitempty"`
}

// MapResponse описывает карту
type MapResponse struct {
	Radius uint32                `json:"radius"`
	Cells  []world.MapCell       `json:"cells"`
	Counts map[world.Terrain]int `json:"counts"`
}

// MineResponse - результат добычи и итог инвентаря по видам блоков
type MineResponse struct {
	Message   string            `json:"message"`
	Drops     []string          `json:"drops"`
	Inventory map[string]uint32 `json:"inventory"`
}

// ChunkResponse описывает активный чанк
type ChunkResponse struct {
	Coord   hex.Coord      `json:"coord"`
	Terrain world.Terrain  `json:"terrain"`
	Solid   int            `json:"solid"`
	Blocks  map[string]int `json:"blocks"`
}

func (s *Server) handleHealth(c *gin.Context) {
	var layer game.Layer
	_ = s.ctrl.Do(func(session *game.Session) error {
		layer = session.Layer()
		return nil
	})
	c.JSON(http.StatusOK, gin.H{"status": "ok", "layer": layer})
}

func (s *Server) handleState(c *gin.Context) {
	var view game.StateView
	_ = s.ctrl.Do(func(session *game.Session) error {
		view = session.View()
		return nil
	})
	c.JSON(http.StatusOK, GenericResponse{Success: true, Message: "Состояние сессии", Data: view})
}

func (s *Server) handleMap(c *gin.Context) {
	var resp MapResponse
	_ = s.ctrl.Do(func(session *game.Session) error {
		m := session.HexMap()
		resp = MapResponse{Radius: m.Radius, Cells: m.Cells(), Counts: m.Counts()}
		return nil
	})
	c.JSON(http.StatusOK, GenericResponse{Success: true, Message: "Карта", Data: resp})
}

func (s *Server) handleChunk(c *gin.Context) {
	var resp *ChunkResponse
	_ = s.ctrl.Do(func(session *game.Session) error {
		chunk := session.Chunk()
		if chunk == nil {
			return nil
		}
		resp = &ChunkResponse{
			Coord:   chunk.Coord,
			Terrain: chunk.Terrain,
			Solid:   chunk.SolidCount(),
			Blocks:  make(map[string]int),
		}
		for id, n := range chunk.BlockCounts() {
			resp.Blocks[id.String()] = n
		}
		return nil
	})
	if resp == nil {
		c.JSON(http.StatusNotFound, GenericResponse{Success: false, Message: "Чанк не активен"})
		return
	}
	c.JSON(http.StatusOK, GenericResponse{Success: true, Message: "Чанк", Data: resp})
}

// handleSolid отвечает на запрос твёрдости. Координаты вне чанка не твёрдые.
func (s *Server) handleSolid(c *gin.Context) {
	var xyz [3]int
	for i, key := range []string{"x", "y", "z"} {
		v, err := strconv.Atoi(c.Query(key))
		if err != nil {
			c.JSON(http.StatusBadRequest, GenericResponse{Success: false, Message: "Параметр " + key + " должен быть целым"})
			return
		}
		xyz[i] = v
	}

	var solid bool
	_ = s.ctrl.Do(func(session *game.Session) error {
		solid = session.IsSolid(xyz[0], xyz[1], xyz[2])
		return nil
	})
	c.JSON(http.StatusOK, gin.H{"x": xyz[0], "y": xyz[1], "z": xyz[2], "solid": solid})
}

// handleSnapshot отдаёт сжатый zstd снимок чанка
func (s *Server) handleSnapshot(c *gin.Context) {
	var data []byte
	_ = s.ctrl.Do(func(session *game.Session) error {
		if chunk := session.Chunk(); chunk != nil {
			data = world.EncodeSnapshot(chunk)
		}
		return nil
	})
	if data == nil {
		c.JSON(http.StatusNotFound, GenericResponse{Success: false, Message: "Чанк не активен"})
		return
	}
	c.Data(http.StatusOK, "application/zstd", data)
}

// handleMine добывает блок активного чанка по координатам {x, y, z}
func (s *Server) handleMine(c *gin.Context) {
	var pos vec.Vec3
	if err := c.ShouldBindJSON(&pos); err != nil {
		c.JSON(http.StatusBadRequest, GenericResponse{Success: false, Message: "Неверный формат запроса"})
		return
	}

	var resp MineResponse
	err := s.ctrl.Do(func(session *game.Session) error {
		result, err := session.Mine(pos.X, pos.Y, pos.Z)
		if err != nil {
			return err
		}
		resp.Message = result.Message
		for _, id := range result.Drops {
			resp.Drops = append(resp.Drops, id.String())
		}
		resp.Inventory = make(map[string]uint32)
		for _, slot := range session.Inventory().Slots() {
			if !slot.Empty {
				resp.Inventory[slot.Kind.String()] += slot.Quantity
			}
		}
		return nil
	})
	switch {
	case errors.Is(err, game.ErrOutOfChunk):
		c.JSON(http.StatusBadRequest, GenericResponse{Success: false, Message: err.Error()})
	case errors.Is(err, game.ErrNotMineable):
		c.JSON(http.StatusConflict, GenericResponse{Success: false, Message: err.Error()})
	case errors.Is(err, game.ErrWrongLayer):
		c.JSON(http.StatusNotFound, GenericResponse{Success: false, Message: err.Error()})
	case err != nil:
		c.JSON(http.StatusInternalServerError, GenericResponse{Success: false, Message: err.Error()})
	default:
		s.log.Debug("Добыт блок %v: %v", pos, resp.Drops)
		c.JSON(http.StatusOK, GenericResponse{Success: true, Message: "Блок добыт", Data: resp})
	}
}

func (s *Server) handleInput(c *gin.Context) {
	var req InputRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, GenericResponse{Success: false, Message: "Неверный формат запроса"})
		return
	}

	if req.Teleport != nil {
		err := s.ctrl.Do(func(session *game.Session) error {
			switch session.Layer() {
			case game.LayerHex:
				return session.TeleportHex(vec.Vec2Float{X: req.Teleport.X, Y: req.Teleport.Y})
			default:
				return session.TeleportVoxel(*req.Teleport)
			}
		})
		if errors.Is(err, game.ErrWrongLayer) {
			c.JSON(http.StatusConflict, GenericResponse{Success: false, Message: err.Error()})
			return
		}
	}

	s.ctrl.QueueInput(game.Input{Confirm: req.Confirm, Back: req.Back, Jump: req.Jump, Move: req.Move})
	c.JSON(http.StatusAccepted, GenericResponse{Success: true, Message: "Ввод принят"})
}

// handleTransition ставит переход в очередь сессии, как если бы его породил слой
func (s *Server) handleTransition(c *gin.Context) {
	var payload world.TransitionPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, GenericResponse{Success: false, Message: "Неверный формат запроса"})
		return
	}
	// Коды проверяются здесь: восстановление события из недопустимых кодов паникует
	if payload.Direction >= uint8(hex.DirectionCount) || payload.Terrain >= uint8(world.TerrainCount) {
		c.JSON(http.StatusBadRequest, GenericResponse{Success: false, Message: "Недопустимый код направления или местности"})
		return
	}
	event, err := payload.Event()
	if err != nil {
		c.JSON(http.StatusBadRequest, GenericResponse{Success: false, Message: err.Error()})
		return
	}

	var pending int
	_ = s.ctrl.Do(func(session *game.Session) error {
		session.Emit(event)
		pending = session.Pending()
		return nil
	})
	s.log.Debug("Переход %v поставлен в очередь (%d ожидают)", event, pending)
	c.JSON(http.StatusAccepted, GenericResponse{Success: true, Message: "Переход поставлен в очередь", Data: gin.H{"pending": pending}})
}

func (s *Server) handleSystem(c *gin.Context) {
	c.JSON(http.StatusOK, GenericResponse{Success: true, Message: "Процесс", Data: s.system.Snapshot()})
}
