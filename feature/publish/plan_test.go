package publish_test

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"txd-manager/core/storage/mocks"
	"txd-manager/feature/publish"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeLocal(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func md5Hex(content string) string {
	sum := md5.Sum([]byte(content))
	return hex.EncodeToString(sum[:])
}

// remoteObjects builds the channel ListObjects mocks return.
func remoteObjects(objs ...minio.ObjectInfo) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(objs))
	for _, obj := range objs {
		ch <- obj
	}
	close(ch)
	return ch
}

func TestBuildPlanUploadsAndSkips(t *testing.T) {
	dir := t.TempDir()
	writeLocal(t, dir, "city.txd", "city textures")
	writeLocal(t, dir, "city.col", "city collisions")
	writeLocal(t, dir, "interiors/motel.txd", "motel textures")
	writeLocal(t, dir, "readme.txt", "not a container")

	client := &mocks.Client{}
	client.On("ListObjects", mock.Anything, "textures", mock.Anything).Return(remoteObjects(
		// Up to date: ETag matches the local MD5.
		minio.ObjectInfo{Key: "v1/city.txd", ETag: `"` + md5Hex("city textures") + `"`},
		// Stale: content differs.
		minio.ObjectInfo{Key: "v1/city.col", ETag: `"` + md5Hex("old collisions") + `"`},
	))

	svc := publish.NewService(client, "textures", zap.NewNop())
	plan, err := svc.BuildPlan(context.Background(), dir, "v1", publish.Options{})
	require.NoError(t, err)

	assert.Equal(t, 3, plan.Summary.LocalFiles)
	assert.Equal(t, 2, plan.Summary.RemoteObjects)
	assert.Equal(t, 2, plan.Summary.Uploads)
	assert.Equal(t, 1, plan.Summary.UpToDate)
	assert.Equal(t, 0, plan.Summary.Prunes)

	keys := make(map[string]string)
	for _, action := range plan.Actions {
		require.Equal(t, publish.ActionUpload, action.Type)
		keys[action.Key] = action.Reason
	}
	assert.Equal(t, "content changed", keys["v1/city.col"])
	assert.Equal(t, "missing remotely", keys["v1/interiors/motel.txd"])
	client.AssertExpectations(t)
}

func TestBuildPlanPruneNeedsFlag(t *testing.T) {
	dir := t.TempDir()
	writeLocal(t, dir, "city.txd", "city textures")

	orphaned := func() <-chan minio.ObjectInfo {
		return remoteObjects(
			minio.ObjectInfo{Key: "v1/city.txd", ETag: `"` + md5Hex("city textures") + `"`},
			minio.ObjectInfo{Key: "v1/zebra.txd", ETag: `"deadbeef"`},
			minio.ObjectInfo{Key: "v1/aardvark.txd", ETag: `"deadbeef"`},
		)
	}

	client := &mocks.Client{}
	client.On("ListObjects", mock.Anything, "textures", mock.Anything).Return(orphaned()).Once()

	svc := publish.NewService(client, "textures", zap.NewNop())
	plan, err := svc.BuildPlan(context.Background(), dir, "v1", publish.Options{})
	require.NoError(t, err)
	assert.Empty(t, plan.Actions)
	assert.Equal(t, 1, plan.Summary.UpToDate)

	client.On("ListObjects", mock.Anything, "textures", mock.Anything).Return(orphaned()).Once()
	plan, err = svc.BuildPlan(context.Background(), dir, "v1", publish.Options{Prune: true})
	require.NoError(t, err)
	require.Len(t, plan.Actions, 2)
	assert.Equal(t, 2, plan.Summary.Prunes)
	// Prune actions come out in sorted key order.
	assert.Equal(t, publish.ActionPrune, plan.Actions[0].Type)
	assert.Equal(t, "v1/aardvark.txd", plan.Actions[0].Key)
	assert.Equal(t, "v1/zebra.txd", plan.Actions[1].Key)
}

func TestBuildPlanEmptyBothSides(t *testing.T) {
	client := &mocks.Client{}
	client.On("ListObjects", mock.Anything, "textures", mock.Anything).Return(remoteObjects())

	svc := publish.NewService(client, "textures", zap.NewNop())
	plan, err := svc.BuildPlan(context.Background(), t.TempDir(), "", publish.Options{Prune: true})
	require.NoError(t, err)
	assert.Empty(t, plan.Actions)
	assert.Equal(t, publish.Summary{}, plan.Summary)
}

func TestBuildPlanMissingDir(t *testing.T) {
	client := &mocks.Client{}
	svc := publish.NewService(client, "textures", zap.NewNop())

	_, err := svc.BuildPlan(context.Background(), filepath.Join(t.TempDir(), "void"), "v1", publish.Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "void")
}
