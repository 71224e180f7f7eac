package runs

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"surf-atlas/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Fetcher downloads published run artifacts from object storage.
type Fetcher struct {
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewFetcher creates a new fetcher.
func NewFetcher(client storage.Client, bucket string, logger *zap.Logger) *Fetcher {
	return &Fetcher{client: client, bucket: bucket, logger: logger}
}

// Fetch downloads every object under runs/<runID>/ into destDir, which is
// created when missing. Object names are flattened to their base name. It
// returns the local paths written.
func (f *Fetcher) Fetch(ctx context.Context, runID, destDir string) ([]string, error) {
	if runID == "" {
		return nil, fmt.Errorf("run id is required")
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", destDir, err)
	}

	prefix := "runs/" + runID + "/"

	var fetched []string
	for object := range f.client.ListObjects(ctx, f.bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if object.Err != nil {
			return fetched, fmt.Errorf("failed to list objects under %s: %w", prefix, object.Err)
		}

		path, err := f.download(ctx, object.Key, destDir)
		if err != nil {
			return fetched, err
		}
		fetched = append(fetched, path)
	}

	if len(fetched) == 0 {
		return nil, fmt.Errorf("no artifacts published for run %s", runID)
	}

	f.logger.Info("Run artifacts fetched",
		zap.String("run_id", runID),
		zap.String("dir", destDir),
		zap.Int("objects", len(fetched)))
	return fetched, nil
}

func (f *Fetcher) download(ctx context.Context, objectName, destDir string) (string, error) {
	obj, err := f.client.GetObject(ctx, f.bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return "", fmt.Errorf("failed to get %s: %w", objectName, err)
	}
	defer obj.Close()

	path := filepath.Join(destDir, filepath.Base(objectName))
	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, obj); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	f.logger.Debug("Fetched object", zap.String("object", objectName), zap.String("file", path))
	return path, out.Close()
}
