// internal/core/domain/patch.go
package domain

// Patch maps column names to new values for a partial update
type Patch map[string]any

// Where maps column names to values that must all match
type Where map[string]any
