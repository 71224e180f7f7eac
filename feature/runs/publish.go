package runs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"surf-atlas/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Publisher uploads run artifacts to object storage.
type Publisher struct {
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewPublisher creates a new publisher.
func NewPublisher(client storage.Client, bucket string, logger *zap.Logger) *Publisher {
	return &Publisher{client: client, bucket: bucket, logger: logger}
}

// Publish uploads the named files under runs/<runID>/ in the configured
// bucket, creating the bucket when absent. With replace, objects already
// under the run prefix are removed first. It returns the object names
// written.
func (p *Publisher) Publish(ctx context.Context, runID string, files []string, replace bool) ([]string, error) {
	if runID == "" {
		return nil, fmt.Errorf("run id is required")
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no artifacts to publish")
	}

	exists, err := p.client.BucketExists(ctx, p.bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", p.bucket, err)
	}
	if !exists {
		if err := p.client.MakeBucket(ctx, p.bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", p.bucket, err)
		}
		p.logger.Info("Created bucket", zap.String("bucket", p.bucket))
	}

	prefix := "runs/" + runID + "/"

	if replace {
		for object := range p.client.ListObjects(ctx, p.bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
			if object.Err != nil {
				return nil, fmt.Errorf("failed to list objects under %s: %w", prefix, object.Err)
			}
			if err := p.client.RemoveObject(ctx, p.bucket, object.Key, minio.RemoveObjectOptions{}); err != nil {
				return nil, fmt.Errorf("failed to remove %s: %w", object.Key, err)
			}
			p.logger.Debug("Removed stale object", zap.String("object", object.Key))
		}
	}

	var uploaded []string
	for _, file := range files {
		objectName, err := p.upload(ctx, prefix, file)
		if err != nil {
			return uploaded, err
		}
		uploaded = append(uploaded, objectName)
	}

	p.logger.Info("Run artifacts published",
		zap.String("run_id", runID),
		zap.String("bucket", p.bucket),
		zap.Int("objects", len(uploaded)))
	return uploaded, nil
}

func (p *Publisher) upload(ctx context.Context, prefix, file string) (string, error) {
	f, err := os.Open(file)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", file, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", file, err)
	}

	objectName := prefix + filepath.Base(file)
	_, err = p.client.PutObject(ctx, p.bucket, objectName, f, info.Size(), minio.PutObjectOptions{
		ContentType: contentTypeFor(file),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", objectName, err)
	}
	return objectName, nil
}

// contentTypeFor guesses the upload content type from the file extension.
func contentTypeFor(file string) string {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".csv":
		return "text/csv"
	case ".json":
		return "application/json"
	case ".xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/octet-stream"
	}
}
