// Package config загружает YAML конфигурацию игры с запасными значениями из окружения.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config корневая структура конфигурации приложения
type Config struct {
	Game      GameConfig      `yaml:"game"`
	Physics   PhysicsConfig   `yaml:"physics"`
	DevTools  DevToolsConfig  `yaml:"devtools"`
	EventBus  EventBusConfig  `yaml:"eventbus"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type GameConfig struct {
	Seed          int64   `yaml:"seed"`           // Сид генератора карты; заполнение чанков от него не зависит
	MapRadius     uint32  `yaml:"map_radius"`     // Радиус гексагональной карты
	MapGenerator  string  `yaml:"map_generator"`  // spiral | perlin | simplex
	TerrainChance float64 `yaml:"terrain_chance"` // Доля клеток с тегом для spiral
	TickRate      int     `yaml:"tick_rate"`      // Тиков в секунду
	StartLayer    string  `yaml:"start_layer"`    // menu | hex
}

type PhysicsConfig struct {
	Gravity        float64 `yaml:"gravity"`
	VoxelMoveSpeed float64 `yaml:"voxel_move_speed"` // Блоков в секунду
	HexMoveSpeed   float64 `yaml:"hex_move_speed"`   // Пикселей в секунду
}

type DevToolsConfig struct {
	Enabled bool `yaml:"enabled"`
	Port    int  `yaml:"port"`
}

type EventBusConfig struct {
	URL         string `yaml:"url"` // Пусто - только шина в памяти
	Stream      string `yaml:"stream"`
	Retention   int    `yaml:"retention_hours"`
	MetricsPort int    `yaml:"metrics_port"`
}

type TelemetryConfig struct {
	Enabled     bool   `yaml:"enabled"`
	ServiceName string `yaml:"service_name"`
}

type LoggingConfig struct {
	Dir          string `yaml:"dir"`
	ConsoleLevel string `yaml:"console_level"`
}

// Значения по умолчанию
const (
	DefaultMapRadius     = 10
	DefaultTerrainChance = 0.1
	DefaultTickRate      = 60
	DefaultDevToolsPort  = 8089
	DefaultMetricsPort   = 2112
	DefaultStream        = "HEXVOXEL_EVENTS"

	// Верхние границы: карта строится целиком в памяти, тикер не тикает чаще 1 мс
	MaxMapRadius = 1024
	MaxTickRate  = 1000
)

// Default возвращает полностью заполненную конфигурацию
func Default() *Config {
	return &Config{
		Game: GameConfig{
			MapRadius:     DefaultMapRadius,
			MapGenerator:  "spiral",
			TerrainChance: DefaultTerrainChance,
			TickRate:      DefaultTickRate,
			StartLayer:    "menu",
		},
		Physics: PhysicsConfig{
			Gravity:        9.8,
			VoxelMoveSpeed: 10,
			HexMoveSpeed:   300,
		},
		DevTools: DevToolsConfig{
			Enabled: true,
		},
		EventBus: EventBusConfig{
			Stream:    DefaultStream,
			Retention: 24,
		},
		Telemetry: TelemetryConfig{
			ServiceName: "hexvoxel",
		},
		Logging: LoggingConfig{
			Dir:          "logs",
			ConsoleLevel: "INFO",
		},
	}
}

// GetPort возвращает порт dev-tools с поддержкой fallback значений
func (d *DevToolsConfig) GetPort() int {
	return getPortWithEnvFallback(d.Port, "HEXVOXEL_DEVTOOLS_PORT", DefaultDevToolsPort)
}

// GetMetricsPort возвращает порт экспортёра метрик шины
func (e *EventBusConfig) GetMetricsPort() int {
	return getPortWithEnvFallback(e.MetricsPort, "HEXVOXEL_METRICS_PORT", DefaultMetricsPort)
}

// GetURL возвращает адрес NATS: config -> env HEXVOXEL_NATS_URL
func (e *EventBusConfig) GetURL() string {
	if e.URL != "" {
		return e.URL
	}
	return os.Getenv("HEXVOXEL_NATS_URL")
}

// getPortWithEnvFallback возвращает порт с приоритетом: config -> env -> default
func getPortWithEnvFallback(configPort int, envVar string, defaultPort int) int {
	// Если порт задан в конфиге и больше 0, используем его
	if configPort > 0 {
		return configPort
	}

	// Пробуем прочитать из environment variable
	if envVal := os.Getenv(envVar); envVal != "" {
		if port, err := strconv.Atoi(envVal); err == nil && port > 0 {
			return port
		}
	}

	// Используем дефолтное значение
	return defaultPort
}

// Validate проверяет согласованность значений
func (c *Config) Validate() error {
	var errs []error
	if c.Game.MapRadius == 0 {
		errs = append(errs, errors.New("game.map_radius должен быть положительным"))
	} else if c.Game.MapRadius > MaxMapRadius {
		errs = append(errs, fmt.Errorf("game.map_radius %d больше %d", c.Game.MapRadius, MaxMapRadius))
	}
	if c.Game.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("game.tick_rate должен быть положительным, получено %d", c.Game.TickRate))
	} else if c.Game.TickRate > MaxTickRate {
		errs = append(errs, fmt.Errorf("game.tick_rate %d больше %d", c.Game.TickRate, MaxTickRate))
	}
	switch c.Game.MapGenerator {
	case "spiral", "perlin", "simplex":
	default:
		errs = append(errs, fmt.Errorf("неизвестный game.map_generator %q", c.Game.MapGenerator))
	}
	switch c.Game.StartLayer {
	case "menu", "hex":
	default:
		errs = append(errs, fmt.Errorf("неизвестный game.start_layer %q", c.Game.StartLayer))
	}
	if c.Game.TerrainChance < 0 || c.Game.TerrainChance > 1 {
		errs = append(errs, fmt.Errorf("game.terrain_chance вне [0,1]: %v", c.Game.TerrainChance))
	}
	if c.Physics.Gravity < 0 {
		errs = append(errs, fmt.Errorf("physics.gravity отрицательная: %v", c.Physics.Gravity))
	}
	return errors.Join(errs...)
}

// Load читает YAML файл конфигурации поверх значений по умолчанию.
// Если path == "", пытается прочитать из ENV HEXVOXEL_CONFIG, иначе возвращает Default().
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv("HEXVOXEL_CONFIG")
		if path == "" {
			return cfg, nil // конфиг не задан - использовать дефолты
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("чтение конфигурации %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("разбор конфигурации %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("конфигурация %s: %w", path, err)
	}
	return cfg, nil
}
