package runs

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"surf-atlas/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFetchDownloadsRunArtifacts(t *testing.T) {
	dir := t.TempDir()

	ch := make(chan minio.ObjectInfo, 2)
	ch <- minio.ObjectInfo{Key: "runs/run-1/merged_surf_breaks.csv"}
	ch <- minio.ObjectInfo{Key: "runs/run-1/source1_unmatched.csv"}
	close(ch)

	mockClient := new(mocks.Client)
	mockClient.On("ListObjects", mock.Anything, "surf-atlas", mock.Anything).
		Return((<-chan minio.ObjectInfo)(ch))
	mockClient.On("GetObject", mock.Anything, "surf-atlas", "runs/run-1/merged_surf_breaks.csv", mock.Anything).
		Return(io.NopCloser(strings.NewReader("name,country\nUluwatu,Indonesia\n")), nil)
	mockClient.On("GetObject", mock.Anything, "surf-atlas", "runs/run-1/source1_unmatched.csv", mock.Anything).
		Return(io.NopCloser(strings.NewReader("name,country\n")), nil)

	f := NewFetcher(mockClient, "surf-atlas", zap.NewNop())
	fetched, err := f.Fetch(context.Background(), "run-1", dir)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "merged_surf_breaks.csv"),
		filepath.Join(dir, "source1_unmatched.csv"),
	}, fetched)

	content, err := os.ReadFile(filepath.Join(dir, "merged_surf_breaks.csv"))
	require.NoError(t, err)
	assert.Equal(t, "name,country\nUluwatu,Indonesia\n", string(content))
	mockClient.AssertExpectations(t)
}

func TestFetchRequiresRunID(t *testing.T) {
	f := NewFetcher(new(mocks.Client), "surf-atlas", zap.NewNop())

	_, err := f.Fetch(context.Background(), "", t.TempDir())
	assert.ErrorContains(t, err, "run id is required")
}

func TestFetchFailsWhenNothingPublished(t *testing.T) {
	ch := make(chan minio.ObjectInfo)
	close(ch)

	mockClient := new(mocks.Client)
	mockClient.On("ListObjects", mock.Anything, "surf-atlas", mock.Anything).
		Return((<-chan minio.ObjectInfo)(ch))

	f := NewFetcher(mockClient, "surf-atlas", zap.NewNop())
	_, err := f.Fetch(context.Background(), "run-9", t.TempDir())
	assert.ErrorContains(t, err, "no artifacts published for run run-9")
}
