package api

import (
	"os"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shirou/gopsutil/v3/process"
)

// SystemMetrics собирает метрики процесса для /api/system
type SystemMetrics struct {
	StartTime time.Time
	proc      *process.Process
}

// SystemSnapshot - метрики процесса в момент запроса
type SystemSnapshot struct {
	Uptime     string  `json:"uptime"`
	Started    string  `json:"started"`
	CPUPercent float64 `json:"cpu_percent"`
	RSS        string  `json:"rss,omitempty"`
	HeapAlloc  string  `json:"heap_alloc"`
	Sys        string  `json:"sys"`
	NumGC      uint32  `json:"num_gc"`
	Goroutines int     `json:"goroutines"`
}

// NewSystemMetrics создает новый экземпляр метрик
func NewSystemMetrics() *SystemMetrics {
	sm := &SystemMetrics{StartTime: time.Now()}
	// Без доступа к /proc метрики процесса просто не заполняются
	if proc, err := process.NewProcess(int32(os.Getpid())); err == nil {
		sm.proc = proc
	}
	return sm
}

// GetUptime возвращает время работы процесса, округлённое до секунд
func (sm *SystemMetrics) GetUptime() time.Duration {
	return time.Since(sm.StartTime).Truncate(time.Second)
}

// GetCPUUsage возвращает использование CPU процессом в процентах
func (sm *SystemMetrics) GetCPUUsage() float64 {
	if sm.proc == nil {
		return 0
	}
	cpuPercent, err := sm.proc.CPUPercent()
	if err != nil {
		return 0
	}
	return cpuPercent
}

// Snapshot собирает метрики процесса и рантайма
func (sm *SystemMetrics) Snapshot() SystemSnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	snap := SystemSnapshot{
		Uptime:     sm.GetUptime().String(),
		Started:    humanize.Time(sm.StartTime),
		CPUPercent: sm.GetCPUUsage(),
		HeapAlloc:  humanize.IBytes(m.HeapAlloc),
		Sys:        humanize.IBytes(m.Sys),
		NumGC:      m.NumGC,
		Goroutines: runtime.NumGoroutine(),
	}
	if sm.proc != nil {
		if mem, err := sm.proc.MemoryInfo(); err == nil {
			snap.RSS = humanize.IBytes(mem.RSS)
		}
	}
	return snap
}
