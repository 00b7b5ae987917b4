package server

// Server defines the lifecycle contract of the backend listener.
//
// RunServer blocks until SIGINT, SIGTERM or SIGQUIT arrives and the listener
// has been shut down.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
