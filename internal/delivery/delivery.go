// Package delivery holds the long-running front ends of the ledger.
package delivery

import "context"

// Delivery is started once the application has started and runs until ctx ends or it is stopped.
type Delivery interface {
	Serve(ctx context.Context) error
}
