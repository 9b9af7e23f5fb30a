// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to provide the handful of operations the
// publish pipeline needs: listing the published containers, uploading
// new or changed ones, fetching one back for inspection, and removing
// orphans. The abstraction supports both AWS S3 and self-hosted MinIO.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making
// it easy to mock bucket interactions in unit tests (see
// core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
