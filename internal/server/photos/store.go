// Package photos stores task photos in an S3-compatible object store and
// returns public URLs for them.
package photos

import (
	"context"
)

// Store persists photo bytes and returns a publicly reachable URL.
type Store interface {
	Upload(ctx context.Context, data []byte, contentType string) (string, error)
}
