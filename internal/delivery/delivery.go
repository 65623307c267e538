// Package delivery defines the contract shared by all transport servers.
package delivery

import "context"

// Delivery is a long-running transport server managed by the application
// lifecycle.
type Delivery interface {
	// Serve blocks, accepting and handling requests until the server is
	// shut down.
	Serve(ctx context.Context) error
}
