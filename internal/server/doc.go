// Package server runs the web front end's HTTP server.
//
// It covers startup, signal handling, and graceful shutdown.
package server
