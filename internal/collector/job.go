package collector

import (
	"context"
	"time"
)

// Job adapts the collector to the scheduler's Job interface.
type Job struct {
	collector *Collector
	timeout   time.Duration
}

// NewJob creates a scheduled collection job.
func NewJob(c *Collector) *Job {
	return &Job{collector: c, timeout: 2 * time.Minute}
}

// Name returns the job name
func (j *Job) Name() string {
	return "market_collect"
}

// Run executes one collection cycle with a bounded deadline.
func (j *Job) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	_, err := j.collector.Collect(ctx)
	return err
}
