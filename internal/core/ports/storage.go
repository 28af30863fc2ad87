// internal/core/ports/storage.go
package ports

import (
	"context"
	"io"
)

// FileStorage stores generated reports
type FileStorage interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}
