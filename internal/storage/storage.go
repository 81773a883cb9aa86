// Package storage provides file storage for the site's generated image
// variants.
//
// Two implementations exist:
// - LocalStorage: writes into the static directory for development
// - R2Storage: Cloudflare R2 (S3-compatible) behind the production CDN
//
// The genimages command resizes source photography and pushes the results
// through this interface; the web server itself only ever reads.
package storage

import (
	"context"
	"fmt"
	"io"
	"time"
)

// Storage defines the interface for file storage operations.
// All methods are context-aware for timeout and cancellation support.
type Storage interface {
	// Put stores data at the specified key. Fails with ErrKeyExists if the
	// key is taken and opts.Overwrite is false.
	Put(ctx context.Context, key string, data io.Reader, opts PutOptions) error

	// Get retrieves the data at the specified key. The caller must close
	// the returned reader. Returns ErrNotFound if the key doesn't exist.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)

	// Delete removes the object at the specified key. Idempotent.
	Delete(ctx context.Context, key string) error

	// URL returns a URL for accessing the object. Public objects get a
	// permanent URL; otherwise a presigned URL valid for expires.
	URL(ctx context.Context, key string, expires time.Duration) (string, error)

	// Exists reports whether an object exists at the specified key.
	Exists(ctx context.Context, key string) (bool, error)
}

// PutOptions configures how an object is stored.
type PutOptions struct {
	// ContentType is the MIME type; auto-detected when empty.
	ContentType string

	// MaxSize caps the object size in bytes; 0 means no limit.
	MaxSize int64

	// Overwrite allows replacing an existing object at the same key.
	Overwrite bool

	// Public marks the object for anonymous reads (R2 ACL; informational
	// for local storage).
	Public bool
}

// ObjectInfo contains metadata about a stored object.
type ObjectInfo struct {
	Key          string
	Size         int64
	ContentType  string
	LastModified time.Time
	ETag         string
}

// LocalConfig holds configuration for local filesystem storage.
type LocalConfig struct {
	// BasePath is the root directory, e.g. "./web/static". Keys already
	// carry the images/ prefix.
	BasePath string

	// BaseURL is the public URL prefix, e.g. "http://localhost:8080/static".
	BaseURL string
}

// R2Config holds configuration for Cloudflare R2 storage.
type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string

	// PublicURL is the bucket's custom domain, e.g. "https://images.mediweb.no".
	// If empty, presigned URLs are used for all access.
	PublicURL string

	// Region can be any valid region string; R2 ignores it. Default "auto".
	Region string
}

// Storage provider names accepted in configuration.
const (
	ProviderLocal = "local"
	ProviderR2    = "r2"
)

// =============================================================================
// Key Helpers
// =============================================================================

// VariantKey is the storage key for one resized rendition of a site image.
// Format: images/{base}-{width}w.jpg, matching the srcset URLs templates emit.
func VariantKey(base string, width int) string {
	return fmt.Sprintf("images/%s-%dw.jpg", base, width)
}

// OriginalKey is the storage key for the untouched source photograph.
func OriginalKey(base, ext string) string {
	return fmt.Sprintf("images/originals/%s%s", base, ext)
}
