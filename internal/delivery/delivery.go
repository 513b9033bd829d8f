// Package delivery defines the contract every inbound transport fulfils.
package delivery

import "context"

// Delivery is a server that accepts requests until its context is canceled
// or the fx lifecycle stops it.
type Delivery interface {
	// Serve starts the transport and blocks until it shuts down.
	Serve(ctx context.Context) error
}
