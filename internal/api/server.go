// Package api - dev-tools HTTP-инспектор сессии: состояние, карта, чанк, ввод и метрики процесса.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/annel0/hexvoxel/internal/game"
	"github.com/annel0/hexvoxel/internal/logging"
	"github.com/annel0/hexvoxel/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Registry - реестр метрик, в который пишут и из которого читают
type Registry interface {
	prometheus.Registerer
	prometheus.Gatherer
}

// Config содержит конфигурацию dev-tools сервера
type Config struct {
	Addr        string           // адрес для запуска сервера, ":8089"
	ServiceName string           // имя для otelgin и пространство имён метрик
	Controller  *game.Controller // общий с циклом тиков доступ к сессии
	Registry    Registry         // по умолчанию prometheus.DefaultRegisterer/DefaultGatherer
}

// Server представляет dev-tools HTTP сервер
type Server struct {
	router     *gin.Engine
	ctrl       *game.Controller
	system     *SystemMetrics
	httpServer *http.Server
	log        *logging.ComponentLogger
}

// NewServer создаёт сервер и настраивает маршруты
func NewServer(cfg Config) *Server {
	if cfg.Addr == "" {
		cfg.Addr = ":8089"
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = "hexvoxel"
	}
	var reg prometheus.Registerer = prometheus.DefaultRegisterer
	var gatherer prometheus.Gatherer = prometheus.DefaultGatherer
	if cfg.Registry != nil {
		reg, gatherer = cfg.Registry, cfg.Registry
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()        // без стандартного logger/recovery
	router.Use(gin.Recovery()) // добавим только recovery

	// === Observability middleware ===
	router.Use(otelgin.Middleware(cfg.ServiceName))
	router.Use(middleware.NewRequestLogger().Handler())
	promMw := middleware.NewPrometheusMiddleware("devtools", reg)
	router.Use(promMw.Handler())
	middleware.RegisterMetricsEndpoint(router, gatherer)

	s := &Server{
		router: router,
		ctrl:   cfg.Controller,
		system: NewSystemMetrics(),
		log:    logging.GetAPILogger(),
	}
	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.setupRoutes()
	return s
}

// setupRoutes настраивает маршруты dev-tools
func (s *Server) setupRoutes() {
	s.router.Use(cors())

	s.router.GET("/health", s.handleHealth)

	api := s.router.Group("/api")
	{
		api.GET("/state", s.handleState)
		api.GET("/map", s.handleMap)
		api.GET("/system", s.handleSystem)
		api.POST("/input", s.handleInput)
		api.POST("/transition", s.handleTransition)
	}

	chunk := api.Group("/chunk")
	chunk.Use(s.requireChunk())
	{
		chunk.GET("", s.handleChunk)
		chunk.GET("/solid", s.handleSolid)
		chunk.GET("/snapshot", s.handleSnapshot)
		chunk.POST("/mine", s.handleMine)
	}
}

// Handler возвращает http.Handler сервера
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start запускает HTTP сервер в отдельной горутине
func (s *Server) Start() {
	go func() {
		s.log.Info("🛠 Dev-tools API доступен по адресу %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error("Ошибка dev-tools HTTP сервера: %v", err)
		}
	}()
}

// Stop останавливает сервер, дожидаясь завершения активных запросов
func (s *Server) Stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
