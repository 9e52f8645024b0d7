// Package storage provides an abstraction layer for gallery image storage.
//
// It wraps the MinIO Go client to provide a simplified interface for the
// operations the site needs: bucket checks, uploads, existence checks, and
// deletions. This abstraction supports both AWS S3 and self-hosted MinIO.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it
// easier to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Public URLs
//
// Uploaded images are served directly from the bucket. Config.PublicURL builds
// the public object URL from the configured public base URL, or derives it from
// the endpoint when no override is set.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, "gallery")
package storage
