package metrics

import (
	"sync/atomic"
	"time"
)

type Collector struct {
	totalRequests   uint64
	errorRequests   uint64
	totalDurationMs uint64

	batchesTotal       uint64
	employeesProcessed uint64
	employeesFailed    uint64
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) Record(status int, duration time.Duration) {
	atomic.AddUint64(&c.totalRequests, 1)
	if status >= 500 {
		atomic.AddUint64(&c.errorRequests, 1)
	}
	atomic.AddUint64(&c.totalDurationMs, uint64(duration.Milliseconds()))
}

func (c *Collector) RecordBatch(succeeded, failed int) {
	atomic.AddUint64(&c.batchesTotal, 1)
	atomic.AddUint64(&c.employeesProcessed, uint64(succeeded))
	atomic.AddUint64(&c.employeesFailed, uint64(failed))
}

func (c *Collector) Snapshot() map[string]any {
	total := atomic.LoadUint64(&c.totalRequests)
	errs := atomic.LoadUint64(&c.errorRequests)
	totalMs := atomic.LoadUint64(&c.totalDurationMs)
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}
	return map[string]any{
		"requestsTotal":      total,
		"errorsTotal":        errs,
		"avgDurationMs":      avg,
		"totalDurationMs":    totalMs,
		"batchesTotal":       atomic.LoadUint64(&c.batchesTotal),
		"employeesProcessed": atomic.LoadUint64(&c.employeesProcessed),
		"employeesFailed":    atomic.LoadUint64(&c.employeesFailed),
	}
}
