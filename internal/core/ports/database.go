// internal/core/ports/database.go
package ports

import (
	"context"
)

// Database defines the port for the handful of pool operations handlers
// need directly, keeping them off the concrete adapter.
type Database interface {
	Close()
	Ping(ctx context.Context) error
	Health(ctx context.Context) map[string]interface{}
}
