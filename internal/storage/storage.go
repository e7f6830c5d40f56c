package storage

import (
	"context"
	"io"
)

// Package storage archives uploaded import files in an S3-compatible object store.
// Implementations must avoid using local disk and rely on streaming I/O only.

// PutObjectOptions define optional parameters for uploading objects.
// Size should be the exact number of bytes if known; if unknown, set to -1.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about a stored object.
type ObjectInfo struct {
	Key         string
	Size        int64
	ETag        string
	ContentType string
}

// Storage is the object store used for the import archive.
type Storage interface {
	// Put uploads an object under the given key using the provided reader and options.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Delete removes an object by key.
	Delete(ctx context.Context, key string) error
}

type noopStorage struct{}

// NewNoop returns a Storage that accepts every call and keeps nothing.
// It is used when no object store endpoint is configured.
func NewNoop() Storage {
	return noopStorage{}
}

func (noopStorage) Put(_ context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error) {
	n, err := io.Copy(io.Discard, r)
	if err != nil {
		return ObjectInfo{}, err
	}
	return ObjectInfo{Key: key, Size: n, ContentType: opt.ContentType}, nil
}

func (noopStorage) Delete(context.Context, string) error {
	return nil
}
