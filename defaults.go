package coro

// Default instrument names recorded by a Scheduler's metrics.Provider.
const (
	metricDispatched  = "coro.scheduler.dispatched"
	metricQueueDepth  = "coro.scheduler.queue_depth"
	metricTaskFailure = "coro.scheduler.task_failures"
)
