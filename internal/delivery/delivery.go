// Package delivery defines the inbound transport contract.
package delivery

import "context"

// Delivery is a transport that serves requests until the context is
// canceled or the listener fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
