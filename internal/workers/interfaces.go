// Package workers runs independent units of work with bounded concurrency.
//
// It defines the Worker interface and a Workers aggregate that runs a set of
// workers in a unified way and reports the outcome of every one of them. The
// CLI uses it to encrypt or decrypt many files in one invocation.
package workers

import "context"

// Worker is the interface that must be implemented by any unit of work
// handed to [Workers].
//
// Run should honour ctx and return promptly once it is cancelled. Name is
// used in logs and in [Result] to tell the workers apart.
//
// Example implementation:
//
//	type fileWorker struct{ path string }
//
//	func (w *fileWorker) Name() string { return w.path }
//
//	func (w *fileWorker) Run(ctx context.Context) error {
//	    // encrypt w.path
//	    return nil
//	}
type Worker interface {
	Name() string
	Run(ctx context.Context) error
}
