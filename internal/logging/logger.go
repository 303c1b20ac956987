// Package logging - уровневый printf-логгер: консоль (INFO и выше) и файл в logs/ (все уровни).
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// LogLevel определяет уровни логирования
type LogLevel int

const (
	TRACE LogLevel = iota
	DEBUG
	INFO
	WARN
	ERROR
)

// String возвращает строковое представление уровня логирования
func (l LogLevel) String() string {
	switch l {
	case TRACE:
		return "TRACE"
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel разбирает имя уровня ("debug", "INFO")
func ParseLevel(s string) (LogLevel, error) {
	for l := TRACE; l <= ERROR; l++ {
		if strings.EqualFold(s, l.String()) {
			return l, nil
		}
	}
	return INFO, fmt.Errorf("неизвестный уровень логирования %q", s)
}

// Logger представляет систему логирования
type Logger struct {
	component       string
	consoleLogger   *log.Logger
	fileLogger      *log.Logger
	file            *os.File
	minConsoleLevel LogLevel
	minFileLevel    LogLevel
}

var (
	// Глобальный экземпляр логгера
	globalLogger *Logger
	globalMu     sync.RWMutex
)

// InitLogger инициализирует систему логирования с файлом в каталоге dir
func InitLogger(dir string) error {
	if dir == "" {
		dir = "logs"
	}
	// Создаем директорию для логов
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("ошибка создания директории %s: %w", dir, err)
	}

	// Создаем файл для логов с временной меткой
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	filename := filepath.Join(dir, fmt.Sprintf("hexvoxel_%s.log", timestamp))

	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("ошибка создания файла логов: %w", err)
	}

	setGlobal(&Logger{
		consoleLogger:   log.New(os.Stdout, "", log.LstdFlags),
		fileLogger:      log.New(file, "", log.LstdFlags),
		file:            file,
		minConsoleLevel: INFO,
		minFileLevel:    TRACE,
	})
	return nil
}

// InitWithWriters направляет логи в произвольные приёмники (nil - приёмник отключён)
func InitWithWriters(console, file io.Writer, consoleLevel LogLevel) {
	l := &Logger{minConsoleLevel: consoleLevel, minFileLevel: TRACE}
	if console != nil {
		l.consoleLogger = log.New(console, "", 0)
	}
	if file != nil {
		l.fileLogger = log.New(file, "", 0)
	}
	setGlobal(l)
}

func setGlobal(l *Logger) {
	globalMu.Lock()
	old := globalLogger
	globalLogger = l
	globalMu.Unlock()
	if old != nil {
		_ = old.Close()
	}
}

func global() *Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalLogger
}

// SetConsoleLevel меняет порог вывода в консоль
func SetConsoleLevel(level LogLevel) {
	globalMu.Lock()
	defer globalMu.Unlock()
	if globalLogger != nil {
		globalLogger.minConsoleLevel = level
	}
}

// CloseLogger закрывает систему логирования
func CloseLogger() {
	setGlobal(nil)
}

// Close закрывает файл логгера
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}

// Trace логирует сообщение уровня TRACE
func Trace(format string, args ...interface{}) {
	logMessage("", TRACE, format, args...)
}

// Debug логирует сообщение уровня DEBUG
func Debug(format string, args ...interface{}) {
	logMessage("", DEBUG, format, args...)
}

// Info логирует сообщение уровня INFO
func Info(format string, args ...interface{}) {
	logMessage("", INFO, format, args...)
}

// Warn логирует сообщение уровня WARN
func Warn(format string, args ...interface{}) {
	logMessage("", WARN, format, args...)
}

// Error логирует сообщение уровня ERROR
func Error(format string, args ...interface{}) {
	logMessage("", ERROR, format, args...)
}

// logMessage внутренняя функция для логирования
func logMessage(component string, level LogLevel, format string, args ...interface{}) {
	l := global()
	if l == nil {
		return
	}

	message := fmt.Sprintf("[%s] %s", level.String(), fmt.Sprintf(format, args...))
	if component != "" {
		message = fmt.Sprintf("[%s] [%s] %s", level.String(), component, fmt.Sprintf(format, args...))
	}

	if l.fileLogger != nil && level >= l.minFileLevel {
		l.fileLogger.Println(message)
	}
	if l.consoleLogger != nil && level >= l.minConsoleLevel {
		l.consoleLogger.Println(message)
	}
}

// LogTransition логирует смену слоя
func LogTransition(from, to string, payload interface{}) {
	Info("Переход слоя %s -> %s: %v", from, to, payload)
}

// LogChunkFill логирует заполнение чанка
func LogChunkFill(q, r int32, terrain string, solid int) {
	Debug("Чанк (%d,%d) заполнен: местность %s, твёрдых клеток %d", q, r, terrain, solid)
}
