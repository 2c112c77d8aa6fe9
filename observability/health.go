package observability

import (
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"
)

// QueueGauge exposes the fill level of a bounded queue.
type QueueGauge interface {
	Len() int
	Cap() int
}

// HealthStatus is the self report of the server process.
type HealthStatus struct {
	Status             string  `json:"status"`
	Pid                int32   `json:"pid"`
	PidStatus          string  `json:"pid_status"`
	CpuPercent         float64 `json:"cpu_percent"`
	RamBytes           uint64  `json:"ram_bytes"`
	UptimeSeconds      int64   `json:"uptime_seconds"`
	IndexQueueSize     int     `json:"index_queue_size"`
	IndexQueueCapacity int     `json:"index_queue_capacity"`
}

type HealthReporter struct {
	log     *slog.Logger
	process *process.Process
	queue   QueueGauge
	started time.Time
}

func NewHealthReporter(log *slog.Logger, queue QueueGauge) (*HealthReporter, error) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, err
	}
	return &HealthReporter{log: log, process: p, queue: queue, started: time.Now()}, nil
}

// Report collects the current process stats. A failed probe degrades the
// status instead of failing the report.
func (h *HealthReporter) Report() HealthStatus {
	status := HealthStatus{
		Status:             "ok",
		Pid:                h.process.Pid,
		UptimeSeconds:      int64(time.Since(h.started).Seconds()),
		IndexQueueSize:     h.queue.Len(),
		IndexQueueCapacity: h.queue.Cap(),
	}
	rss, cpu, pidStatus, err := selfStats(h.process)
	if err != nil {
		h.log.Warn("Failed to collect self stats", "error", err)
		status.Status = "degraded"
		return status
	}
	status.RamBytes, status.CpuPercent, status.PidStatus = rss, cpu, pidStatus
	return status
}

func selfStats(p *process.Process) (uint64, float64, string, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, "", err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, "", err
	}
	status, err := p.Status()
	if err != nil {
		return 0, 0, "", err
	}
	return memInfo.RSS, cpuPercent, status, nil
}
