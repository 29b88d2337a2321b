package observability

import (
	"context"
	"log/slog"
	"os"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shirou/gopsutil/process"
)

// Metrics holds the hub counters. All methods are safe for concurrent use.
type Metrics struct {
	connects        atomic.Uint64
	disconnects     atomic.Uint64
	takeovers       atomic.Uint64
	messagesSent    atomic.Uint64
	supportMessages atomic.Uint64
	adminReplies    atomic.Uint64
	delivered       atomic.Uint64
	dropped         atomic.Uint64
	offlineNotices  atomic.Uint64
	evictedTopics   atomic.Uint64
}

func NewMetrics() *Metrics { return &Metrics{} }

func (m *Metrics) IncrConnects()             { m.connects.Add(1) }
func (m *Metrics) IncrDisconnects()          { m.disconnects.Add(1) }
func (m *Metrics) IncrTakeovers()            { m.takeovers.Add(1) }
func (m *Metrics) IncrMessagesSent()         { m.messagesSent.Add(1) }
func (m *Metrics) IncrSupportMessages()      { m.supportMessages.Add(1) }
func (m *Metrics) IncrAdminReplies()         { m.adminReplies.Add(1) }
func (m *Metrics) IncrDelivered()            { m.delivered.Add(1) }
func (m *Metrics) IncrDropped()              { m.dropped.Add(1) }
func (m *Metrics) IncrOfflineNotices()       { m.offlineNotices.Add(1) }
func (m *Metrics) AddEvictedTopics(n uint64) { m.evictedTopics.Add(n) }

// HubStats is the JSON snapshot exposed on /debug/stats.
type HubStats struct {
	Connects        uint64 `json:"connects"`
	Disconnects     uint64 `json:"disconnects"`
	Takeovers       uint64 `json:"takeovers"`
	MessagesSent    uint64 `json:"messages_sent"`
	SupportMessages uint64 `json:"support_messages"`
	AdminReplies    uint64 `json:"admin_replies"`
	Delivered       uint64 `json:"delivered"`
	Dropped         uint64 `json:"dropped"`
	OfflineNotices  uint64 `json:"offline_notices"`
	EvictedTopics   uint64 `json:"evicted_topics"`

	Online int `json:"online"`
	Topics int `json:"topics"`

	RSSBytes   uint64  `json:"rss_bytes"`
	CPUPercent float64 `json:"cpu_percent"`
	AllocMemMb uint64  `json:"alloc_mem_mb"`
	NumGC      uint32  `json:"num_gc"`
	Goroutines int     `json:"goroutines"`
	SampledAt  string  `json:"sampled_at"`
}

// Counters returns the counter part of a snapshot.
func (m *Metrics) Counters() HubStats {
	return HubStats{
		Connects:        m.connects.Load(),
		Disconnects:     m.disconnects.Load(),
		Takeovers:       m.takeovers.Load(),
		MessagesSent:    m.messagesSent.Load(),
		SupportMessages: m.supportMessages.Load(),
		AdminReplies:    m.adminReplies.Load(),
		Delivered:       m.delivered.Load(),
		Dropped:         m.dropped.Load(),
		OfflineNotices:  m.offlineNotices.Load(),
		EvictedTopics:   m.evictedTopics.Load(),
	}
}

// Gauges reports sizes owned by the routing engine.
type Gauges func() (online, topics int)

// MonitoringManager periodically samples counters and process statistics.
type MonitoringManager struct {
	log      *slog.Logger
	metrics  *Metrics
	gauges   Gauges
	interval time.Duration

	mu     sync.RWMutex
	latest HubStats
}

func NewMonitoringManager(log *slog.Logger, metrics *Metrics, gauges Gauges, interval time.Duration) *MonitoringManager {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	return &MonitoringManager{log: log, metrics: metrics, gauges: gauges, interval: interval}
}

// Run samples until ctx is done. It satisfies contract.Worker.
func (mm *MonitoringManager) Run(ctx context.Context) error {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		mm.log.Warn("Process stats unavailable", "error", err)
		p = nil
	}

	ticker := time.NewTicker(mm.interval)
	defer ticker.Stop()

	mm.sample(p)
	for {
		select {
		case <-ctx.Done():
			mm.log.Info("Monitoring manager stopped")
			return nil
		case <-ticker.C:
			mm.sample(p)
		}
	}
}

func (mm *MonitoringManager) sample(p *process.Process) {
	stats := mm.Snapshot()
	if p != nil {
		if memInfo, err := p.MemoryInfo(); err == nil {
			stats.RSSBytes = memInfo.RSS
		}
		if cpu, err := p.CPUPercent(); err == nil {
			stats.CPUPercent = cpu
		}
	}

	mm.mu.Lock()
	mm.latest = stats
	mm.mu.Unlock()

	mm.log.Debug("Hub stats sampled",
		"online", stats.Online,
		"topics", stats.Topics,
		"delivered", stats.Delivered,
		"dropped", stats.Dropped)
}

// Snapshot returns fresh counters and gauges merged with the last process sample.
func (mm *MonitoringManager) Snapshot() HubStats {
	stats := mm.metrics.Counters()
	if mm.gauges != nil {
		stats.Online, stats.Topics = mm.gauges()
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	stats.AllocMemMb = m.Alloc / 1024 / 1024
	stats.NumGC = m.NumGC
	stats.Goroutines = runtime.NumGoroutine()
	stats.SampledAt = time.Now().UTC().Format(time.RFC3339)

	mm.mu.RLock()
	stats.RSSBytes = mm.latest.RSSBytes
	stats.CPUPercent = mm.latest.CPUPercent
	mm.mu.RUnlock()
	return stats
}
