package server

// Server runs until a termination signal arrives or serving fails.
type Server interface {
	// RunServer blocks until shutdown. A nil error means a graceful stop.
	RunServer() error

	Shutdown()
}
