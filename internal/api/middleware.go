package api

import (
	"net/http"

	"github.com/annel0/hexvoxel/internal/game"
	"github.com/gin-gonic/gin"
)

// cors разрешает запросы от локальных инструментов
func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// requireChunk отклоняет запросы к чанку вне воксельного слоя
func (s *Server) requireChunk() gin.HandlerFunc {
	return func(c *gin.Context) {
		var active bool
		_ = s.ctrl.Do(func(session *game.Session) error {
			active = session.Chunk() != nil
			return nil
		})
		if !active {
			c.AbortWithStatusJSON(http.StatusNotFound, GenericResponse{
				Success: false,
				Message: "Чанк не активен",
			})
			return
		}

		c.Next()
	}
}
