// Package app defines the runtime contract shared by the cmd/* binaries
// (api-server and transfer-demo).
package app

// Runner is a process entrypoint that runs until its work is done or it is
// signalled to stop.
type Runner interface {
	Run() error
}
