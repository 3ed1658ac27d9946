package worker

import "time"

// Log messages - worker pool
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgWorkerQueueFull = "Worker queue full, dropping job"
)

// DefaultJobTimeout bounds a single job run
const DefaultJobTimeout = 5 * time.Minute
