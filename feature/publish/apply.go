package publish

import (
	"context"
	"fmt"
	"os"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Apply executes the actions in a publish plan.
// Returns the number of actions executed and any error encountered.
// Requires opts.Confirmed=true and opts.DryRun=false to actually execute.
func (s *Service) Apply(ctx context.Context, plan *Plan, opts Options) (executed int, err error) {
	// Safety check: do not execute if not confirmed or dry-run
	if !opts.Confirmed || opts.DryRun {
		return 0, nil
	}

	for _, action := range plan.Actions {
		switch action.Type {
		case ActionUpload:
			if err := s.upload(ctx, action); err != nil {
				return executed, err
			}
		case ActionPrune:
			if err := s.client.RemoveObject(ctx, s.bucket, action.Key, minio.RemoveObjectOptions{}); err != nil {
				return executed, fmt.Errorf("failed to prune %s: %w", action.Key, err)
			}
		default:
			return executed, fmt.Errorf("unknown action type %q for %s", action.Type, action.Key)
		}
		executed++
		s.logger.Info("Applied action",
			zap.String("type", string(action.Type)),
			zap.String("key", action.Key),
			zap.String("reason", action.Reason),
		)
	}
	return executed, nil
}

func (s *Service) upload(ctx context.Context, action Action) error {
	f, err := os.Open(action.Path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", action.Path, err)
	}
	defer f.Close()

	_, err = s.client.PutObject(ctx, s.bucket, action.Key, f, action.Size, minio.PutObjectOptions{
		ContentType: "application/octet-stream",
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", action.Key, err)
	}
	return nil
}
