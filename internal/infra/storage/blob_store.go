// Package storage persists product images in a blob bucket.
package storage

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	"ayurfresh/config"
	"ayurfresh/internal/domain/lifecycle"
	"ayurfresh/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Drivers for local disk and S3-compatible buckets.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/s3blob"
)

// blobStore is a concrete implementation of the ImageStore interface backed
// by a gocloud.dev bucket, so local disk and S3 share one code path.
type blobStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewBlobStore opens the configured bucket and manages its lifetime through Fx.
func NewBlobStore(params Params) (service.ImageStore, error) {
	if params.Config.Storage == nil || params.Config.Storage.BucketURL == "" {
		return nil, errors.New("storage configuration must be provided")
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open image bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(params.Config.Storage.PublicBaseURL, "/"),
		logger:        params.Logger,
	}, nil
}

// Store uploads the images under the key prefix and returns their public
// URLs in input order. A failed upload aborts the batch and removes the
// objects already written.
func (s *blobStore) Store(ctx context.Context, keyPrefix string, uploads []service.ImageUpload) ([]string, error) {
	urls := make([]string, 0, len(uploads))
	written := make([]string, 0, len(uploads))

	for _, upload := range uploads {
		key := s.objectKey(keyPrefix, upload.Filename)

		if err := s.writeObject(ctx, key, upload); err != nil {
			s.cleanup(ctx, written)

			return nil, errors.Wrapf(err, "failed to store image %q", upload.Filename)
		}

		written = append(written, key)
		urls = append(urls, s.publicBaseURL+"/"+key)
	}

	return urls, nil
}

func (s *blobStore) writeObject(ctx context.Context, key string, upload service.ImageUpload) error {
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: upload.ContentType,
	})
	if err != nil {
		return errors.Wrap(err, "failed to open bucket writer")
	}

	if _, err := w.Write(upload.Data); err != nil {
		_ = w.Close()

		return errors.Wrap(err, "failed to write image bytes")
	}

	return errors.Wrap(w.Close(), "failed to finalize image upload")
}

func (s *blobStore) cleanup(ctx context.Context, keys []string) {
	for _, key := range keys {
		if err := s.bucket.Delete(ctx, key); err != nil {
			s.logger.Warn("Failed to clean up partial image upload",
				slog.String("key", key),
				slog.Any("error", err))
		}
	}
}

// objectKey builds a collision-free object key keeping the original
// extension so content type sniffing by CDNs keeps working.
func (s *blobStore) objectKey(keyPrefix, filename string) string {
	ext := strings.ToLower(path.Ext(filename))

	return fmt.Sprintf("%s/%d-%s%s", strings.Trim(keyPrefix, "/"), time.Now().UnixMilli(), uuid.New().String()[:8], ext)
}
