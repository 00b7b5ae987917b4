// Package server runs the HTTP listener of the development backend.
//
// It covers startup, signal handling and graceful shutdown.
package server
