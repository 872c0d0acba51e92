package beandef

// Lifecycle is implemented by managed objects with start/stop semantics, such
// as connection pools or listener containers. The container propagates
// start and stop signals to all lifecycle beans it manages.
type Lifecycle interface {
	// Start begins the component's work. Idempotent: starting a running
	// component is a no-op.
	Start()

	// Stop halts the component's work. Idempotent: stopping a stopped
	// component is a no-op.
	Stop()

	// IsRunning reports whether the component is currently running.
	IsRunning() bool
}

// Phased is implemented by lifecycle objects that participate in ordered
// startup and shutdown. Lower phases start first and stop last.
type Phased interface {
	Phase() int
}

// LifecycleProcessor drives lifecycle propagation for a whole container,
// reacting to container refresh and close on top of explicit start and stop.
type LifecycleProcessor interface {
	Lifecycle

	// OnRefresh auto-starts eligible lifecycle beans after the container
	// finished refreshing.
	OnRefresh()

	// OnClose stops all running lifecycle beans before the container shuts
	// down.
	OnClose()
}
