package logging

import (
	"sort"
	"sync"
)

// ComponentLogger пишет в глобальные приёмники с меткой компонента
type ComponentLogger struct {
	component string
}

// LoggerManager управляет логгерами разных компонентов
type LoggerManager struct {
	mu      sync.RWMutex
	loggers map[string]*ComponentLogger
}

var (
	globalManager *LoggerManager
	managerOnce   sync.Once
)

// GetLoggerManager возвращает глобальный менеджер логгеров
func GetLoggerManager() *LoggerManager {
	managerOnce.Do(func() {
		globalManager = &LoggerManager{
			loggers: make(map[string]*ComponentLogger),
		}
	})
	return globalManager
}

// GetLogger возвращает логгер для компонента, создавая его при необходимости
func (lm *LoggerManager) GetLogger(component string) *ComponentLogger {
	lm.mu.RLock()
	if logger, exists := lm.loggers[component]; exists {
		lm.mu.RUnlock()
		return logger
	}
	lm.mu.RUnlock()

	lm.mu.Lock()
	defer lm.mu.Unlock()

	// Проверяем еще раз на случай гонки
	if logger, exists := lm.loggers[component]; exists {
		return logger
	}
	logger := &ComponentLogger{component: component}
	lm.loggers[component] = logger
	return logger
}

// ListComponents возвращает список всех зарегистрированных компонентов
func (lm *LoggerManager) ListComponents() []string {
	lm.mu.RLock()
	defer lm.mu.RUnlock()

	components := make([]string, 0, len(lm.loggers))
	for component := range lm.loggers {
		components = append(components, component)
	}
	sort.Strings(components)
	return components
}

// GetComponentLogger - удобная функция для получения логгера компонента
func GetComponentLogger(component string) *ComponentLogger {
	return GetLoggerManager().GetLogger(component)
}

func GetGameLogger() *ComponentLogger {
	return GetComponentLogger("game")
}

func GetAPILogger() *ComponentLogger {
	return GetComponentLogger("api")
}

func GetEventBusLogger() *ComponentLogger {
	return GetComponentLogger("eventbus")
}

// Trace логирует сообщение уровня TRACE
func (c *ComponentLogger) Trace(format string, args ...interface{}) {
	logMessage(c.component, TRACE, format, args...)
}

// Debug логирует сообщение уровня DEBUG
func (c *ComponentLogger) Debug(format string, args ...interface{}) {
	logMessage(c.component, DEBUG, format, args...)
}

// Info логирует сообщение уровня INFO
func (c *ComponentLogger) Info(format string, args ...interface{}) {
	logMessage(c.component, INFO, format, args...)
}

// Warn логирует сообщение уровня WARN
func (c *ComponentLogger) Warn(format string, args ...interface{}) {
	logMessage(c.component, WARN, format, args...)
}

// Error логирует сообщение уровня ERROR
func (c *ComponentLogger) Error(format string, args ...interface{}) {
	logMessage(c.component, ERROR, format, args...)
}
