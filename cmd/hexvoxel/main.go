package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/annel0/hexvoxel/internal/api"
	"github.com/annel0/hexvoxel/internal/config"
	"github.com/annel0/hexvoxel/internal/eventbus"
	"github.com/annel0/hexvoxel/internal/game"
	"github.com/annel0/hexvoxel/internal/logging"
	"github.com/annel0/hexvoxel/internal/observability"
	"github.com/annel0/hexvoxel/internal/world"
	"github.com/prometheus/client_golang/prometheus"
)

const version = "v0.1.0"

func main() {
	configPath := flag.String("config", "", "Путь к YAML конфигурации (или env HEXVOXEL_CONFIG)")
	ticks := flag.Int("ticks", 0, "Число тиков до выхода (0 - до сигнала)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Ошибка загрузки конфигурации: %v", err)
	}

	if err := logging.InitLogger(cfg.Logging.Dir); err != nil {
		log.Fatalf("❌ Ошибка инициализации логирования: %v", err)
	}
	defer logging.CloseLogger()
	if level, err := logging.ParseLevel(cfg.Logging.ConsoleLevel); err == nil {
		logging.SetConsoleLevel(level)
	}

	logging.Info("🎮 Запуск hexvoxel %s", version)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, *ticks); err != nil {
		logging.Error("❌ %v", err)
		logging.CloseLogger()
		os.Exit(1)
	}
	logging.Info("👋 Сессия завершена")
}

func run(ctx context.Context, cfg *config.Config, ticks int) error {
	// === Телеметрия ===
	if cfg.Telemetry.Enabled {
		shutdown, err := observability.InitTelemetry(ctx, cfg.Telemetry.ServiceName, version)
		if err != nil {
			logging.Warn("OpenTelemetry недоступен: %v", err)
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					logging.Warn("Ошибка остановки OpenTelemetry: %v", err)
				}
			}()
		}
	}

	// === Шина событий ===
	bus, err := newBus(cfg.EventBus)
	if err != nil {
		return err
	}
	defer bus.Close()
	if _, err := eventbus.StartLoggingListener(ctx, bus); err != nil {
		logging.Warn("Не удалось подписать журнал на шину: %v", err)
	}

	reg := prometheus.NewRegistry()
	exporter := eventbus.NewMetricsExporter(bus, reg)
	exporter.Start(time.Second)
	defer exporter.Stop()
	if !cfg.DevTools.Enabled {
		// Без dev-tools метрики отдаются отдельным портом
		exporter.StartHTTP(fmt.Sprintf(":%d", cfg.EventBus.GetMetricsPort()), reg)
	}

	// === Мир и сессия ===
	gen, err := world.NewMapGenerator(cfg.Game.MapGenerator, cfg.Game.Seed, cfg.Game.TerrainChance)
	if err != nil {
		return err
	}
	hexMap := gen.Generate(cfg.Game.MapRadius)
	logging.Info("🗺 Карта радиуса %d (%s): %v", cfg.Game.MapRadius, cfg.Game.MapGenerator, hexMap.Counts())

	opts, err := game.OptionsFromConfig(cfg)
	if err != nil {
		return err
	}
	opts.Metrics = game.NewMetrics(reg)
	opts.Publisher = eventbus.NewTransitionPublisher(bus, cfg.Telemetry.ServiceName)
	ctrl := game.NewController(game.NewSession(hexMap, opts))

	// === Dev-tools ===
	if cfg.DevTools.Enabled {
		srv := api.NewServer(api.Config{
			Addr:        fmt.Sprintf(":%d", cfg.DevTools.GetPort()),
			ServiceName: cfg.Telemetry.ServiceName,
			Controller:  ctrl,
			Registry:    reg,
		})
		srv.Start()
		defer func() {
			if err := srv.Stop(context.Background()); err != nil {
				logging.Error("Ошибка остановки dev-tools: %v", err)
			}
		}()
	}

	return loop(ctx, ctrl, cfg.Game.TickRate, ticks)
}

// newBus выбирает JetStream при заданном адресе NATS, иначе шину в памяти
func newBus(cfg config.EventBusConfig) (eventbus.EventBus, error) {
	url := cfg.GetURL()
	if url == "" {
		logging.Info("📨 Шина событий в памяти")
		return eventbus.NewMemoryBus(1024), nil
	}
	bus, err := eventbus.NewJetStreamBus(url, cfg.Stream, time.Duration(cfg.Retention)*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("шина JetStream: %w", err)
	}
	logging.Info("📨 Шина событий JetStream %s, стрим %s", url, cfg.Stream)
	return bus, nil
}

// loop выполняет тики с фиксированной частотой до отмены ctx или исчерпания лимита
func loop(ctx context.Context, ctrl *game.Controller, rate, limit int) error {
	dt := 1.0 / float64(rate)
	ticker := time.NewTicker(time.Second / time.Duration(rate))
	defer ticker.Stop()

	for n := 0; limit == 0 || n < limit; n++ {
		select {
		case <-ctx.Done():
			logging.Info("📡 Получен сигнал завершения после %d тиков", n)
			return nil
		case <-ticker.C:
			for _, ev := range ctrl.Tick(ctx, dt) {
				logging.Debug("Переход в очереди: %v", ev)
			}
		}
	}
	return nil
}
