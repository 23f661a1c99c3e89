// Package delivery holds the entry points that drive the application: HTTP servers and schedulers.
package delivery

import "context"

// Delivery is a long-running entry point started by the binaries.
type Delivery interface {
	// Serve blocks until the delivery stops or fails.
	Serve(ctx context.Context) error
}
