// Package storage puts uploaded document files behind a provider interface
// so the service can write to Google Cloud Storage in production and to the
// local filesystem in development and tests.
package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
)

const (
	ProviderGCS   = "gcs"
	ProviderLocal = "local"
)

// Provider stores and serves document objects.
type Provider interface {
	// Put writes the object and returns nothing; the object key is chosen
	// by the caller.
	Put(ctx context.Context, objectKey, contentType string, r io.Reader) error
	// Open reads the object back.
	Open(ctx context.Context, objectKey string) (io.ReadCloser, error)
	// Delete removes the object. Deleting a missing object is not an error.
	Delete(ctx context.Context, objectKey string) error
	// URL returns the address a client can fetch the object from.
	URL(objectKey string) string
}

// Settings selects and configures a provider.
type Settings struct {
	Provider           string
	GCSBucket          string
	GCSCredentialsJSON string
	LocalDir           string
	LocalBaseURL       string
}

// New builds the provider named by s.Provider. An empty provider name
// defaults to local storage.
func New(s Settings) (Provider, error) {
	switch strings.TrimSpace(strings.ToLower(s.Provider)) {
	case ProviderGCS:
		return newGCSProvider(s)
	case ProviderLocal, "":
		return newLocalProvider(s)
	}
	return nil, fmt.Errorf("unsupported storage provider: %s", s.Provider)
}
