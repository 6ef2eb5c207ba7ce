// Package server runs the inspector's HTTP server.
//
// It covers startup, signal handling and graceful shutdown.
package server
