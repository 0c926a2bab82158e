// Package server wires and runs the application's transport servers.
//
// It starts the enabled HTTP and gRPC servers and shuts them down gracefully
// on SIGTERM, SIGINT or SIGQUIT.
package server
