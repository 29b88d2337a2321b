package workers

import (
	"context"
	"log/slog"
	"time"
)

// TopicEvictor is the part of the orchestrator the janitor drives.
type TopicEvictor interface {
	EvictIdleTopics(ttl time.Duration) int
}

// TopicJanitor periodically drops car topics nobody touched for ttl.
type TopicJanitor struct {
	log      *slog.Logger
	evictor  TopicEvictor
	ttl      time.Duration
	interval time.Duration
}

func NewTopicJanitor(log *slog.Logger, evictor TopicEvictor, ttl, interval time.Duration) *TopicJanitor {
	if interval <= 0 {
		interval = time.Minute
	}
	return &TopicJanitor{log: log, evictor: evictor, ttl: ttl, interval: interval}
}

func (j *TopicJanitor) Run(ctx context.Context) error {
	if j.ttl <= 0 {
		j.log.Info("Topic janitor disabled, idle topics are kept")
		<-ctx.Done()
		return nil
	}
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := j.evictor.EvictIdleTopics(j.ttl); n > 0 {
				j.log.Debug("Janitor pass", "evicted", n)
			}
		}
	}
}
