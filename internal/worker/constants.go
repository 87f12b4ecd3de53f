package worker

// Log messages
const (
	LogMsgWorkerJobFailed   = "Worker job failed"
	LogMsgWorkerJobPanic    = "Worker job panicked"
	LogMsgWorkerQueueFull   = "Worker queue full, job skipped"
	LogMsgWorkerPoolStopped = "Worker pool stopped"
)

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount  = 2
	TestQueueSize    = 10
	TestJobCount     = 5
	TestWaitDeadline = 2000 // milliseconds
)
