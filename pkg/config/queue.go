package config

import "time"

// QueueConfig contains queue and worker pool configuration.
// These values control how tasks are polled, claimed, and processed.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	// Each worker independently polls and claims tasks.
	WorkerCount int `yaml:"worker_count"`

	// MaxConcurrentTasks is the global limit of concurrent tasks being
	// processed across ALL replicas/pods. Enforced by database COUNT(*) check.
	MaxConcurrentTasks int `yaml:"max_concurrent_tasks"`

	// PollInterval is the base interval for checking claimable tasks.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// TaskTimeout is the maximum time a task run can hold a claim.
	TaskTimeout time.Duration `yaml:"task_timeout"`

	// GracefulShutdownTimeout is the max time to wait for active task runs
	// to complete during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// HeartbeatInterval is how often a worker refreshes its claim.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// OrphanDetectionInterval is how often to scan for orphaned tasks.
	OrphanDetectionInterval time.Duration `yaml:"orphan_detection_interval"`

	// OrphanThreshold is how long a claimed task can go without a heartbeat
	// before it is considered orphaned.
	OrphanThreshold time.Duration `yaml:"orphan_threshold"`

	// EventGCGrace is how long transient feed events outlive their task
	// before cleanup, giving late subscribers a catch-up window.
	EventGCGrace time.Duration `yaml:"event_gc_grace"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             5,
		MaxConcurrentTasks:      20,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		TaskTimeout:             45 * time.Minute,
		GracefulShutdownTimeout: 45 * time.Minute,
		HeartbeatInterval:       30 * time.Second,
		OrphanDetectionInterval: 5 * time.Minute,
		OrphanThreshold:         5 * time.Minute,
		EventGCGrace:            1 * time.Hour,
	}
}
