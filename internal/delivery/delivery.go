// Package delivery defines the contract every transport implementation
// (HTTP today, possibly gRPC later) exposes to the application bootstrap.
package delivery

import "context"

// Delivery is a transport that serves the application until the context is
// cancelled or the fx lifecycle stops it.
type Delivery interface {
	Serve(ctx context.Context) error
}
