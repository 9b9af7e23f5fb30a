package publish

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"txd-manager/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Service publishes built containers to object storage.
type Service struct {
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewService creates a new publish service.
func NewService(client storage.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{client: client, bucket: bucket, logger: logger}
}

// publishExtensions lists the container types a publish run picks up.
var publishExtensions = map[string]bool{
	".txd": true,
	".col": true,
}

// localFile is one publishable file in the source directory.
type localFile struct {
	path string
	key  string
	size int64
	md5  string
}

// BuildPlan diffs dir against the bucket prefix and returns the actions
// needed to make the remote side match the local one. Prune actions are
// only planned when opts.Prune is set.
func (s *Service) BuildPlan(ctx context.Context, dir, prefix string, opts Options) (*Plan, error) {
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	local, err := indexLocal(dir, prefix)
	if err != nil {
		return nil, err
	}

	remote := make(map[string]minio.ObjectInfo)
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list bucket %s: %w", s.bucket, obj.Err)
		}
		remote[obj.Key] = obj
	}

	plan := &Plan{
		Summary: Summary{LocalFiles: len(local), RemoteObjects: len(remote)},
	}

	localKeys := make(map[string]bool, len(local))
	for _, lf := range local {
		localKeys[lf.key] = true
		obj, found := remote[lf.key]
		switch {
		case !found:
			plan.Actions = append(plan.Actions, Action{
				Type: ActionUpload, Key: lf.key, Path: lf.path, Size: lf.size,
				Reason: "missing remotely",
			})
		case strings.Trim(obj.ETag, `"`) != lf.md5:
			// Single-part objects carry their content MD5 as the ETag.
			// Multipart ETags never equal a plain MD5, so such objects
			// re-upload; that is the safe direction.
			plan.Actions = append(plan.Actions, Action{
				Type: ActionUpload, Key: lf.key, Path: lf.path, Size: lf.size,
				Reason: "content changed",
			})
		default:
			plan.Summary.UpToDate++
		}
	}

	if opts.Prune {
		var orphans []string
		for key := range remote {
			if !localKeys[key] {
				orphans = append(orphans, key)
			}
		}
		sort.Strings(orphans)
		for _, key := range orphans {
			plan.Actions = append(plan.Actions, Action{
				Type: ActionPrune, Key: key,
				Reason: "no local counterpart",
			})
		}
	}

	for _, action := range plan.Actions {
		switch action.Type {
		case ActionUpload:
			plan.Summary.Uploads++
		case ActionPrune:
			plan.Summary.Prunes++
		}
	}
	return plan, nil
}

// indexLocal walks dir and hashes every publishable file. Keys are
// slash-separated paths relative to dir, behind the prefix, so the
// bucket mirrors the local layout. The walk order of filepath.WalkDir
// keeps the upload actions deterministic.
func indexLocal(dir, prefix string) ([]localFile, error) {
	var files []localFile
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !publishExtensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		sum, size, err := fileMD5(path)
		if err != nil {
			return err
		}
		files = append(files, localFile{
			path: path,
			key:  prefix + filepath.ToSlash(rel),
			size: size,
			md5:  sum,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to index %s: %w", dir, err)
	}
	return files, nil
}

// fileMD5 streams path through MD5 and reports its size. The content
// MD5 is what single-part uploads get as their ETag, which makes the
// local sum directly comparable to the remote object.
func fileMD5(path string) (string, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", 0, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	h := md5.New()
	n, err := io.Copy(h, f)
	if err != nil {
		return "", 0, fmt.Errorf("failed to hash %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), n, nil
}
