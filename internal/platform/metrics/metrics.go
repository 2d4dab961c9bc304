package metrics

import (
	"sync/atomic"
	"time"
)

type Collector struct {
	totalRequests       uint64
	errorRequests       uint64
	rateLimited         uint64
	totalDurationMs     uint64
	notificationsSent   uint64
	notificationsFailed uint64
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) Record(status int, duration time.Duration) {
	atomic.AddUint64(&c.totalRequests, 1)
	if status >= 500 {
		atomic.AddUint64(&c.errorRequests, 1)
	}
	if status == 429 {
		atomic.AddUint64(&c.rateLimited, 1)
	}
	atomic.AddUint64(&c.totalDurationMs, uint64(duration.Milliseconds()))
}

// RecordNotification counts one long leave notification attempt.
func (c *Collector) RecordNotification(delivered bool) {
	if delivered {
		atomic.AddUint64(&c.notificationsSent, 1)
		return
	}
	atomic.AddUint64(&c.notificationsFailed, 1)
}

func (c *Collector) Snapshot() map[string]any {
	total := atomic.LoadUint64(&c.totalRequests)
	errs := atomic.LoadUint64(&c.errorRequests)
	limited := atomic.LoadUint64(&c.rateLimited)
	totalMs := atomic.LoadUint64(&c.totalDurationMs)
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}
	return map[string]any{
		"requestsTotal":            total,
		"errorsTotal":              errs,
		"rateLimitedTotal":         limited,
		"avgDurationMs":            avg,
		"totalDurationMs":          totalMs,
		"notificationsSentTotal":   atomic.LoadUint64(&c.notificationsSent),
		"notificationsFailedTotal": atomic.LoadUint64(&c.notificationsFailed),
	}
}
