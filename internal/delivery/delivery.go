// Package delivery holds the transports that expose the use cases.
package delivery

import "context"

// Delivery is a transport started by main and stopped through the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
