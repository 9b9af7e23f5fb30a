package collision

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"
)

// Service collects collision archives.
type Service struct {
	logger *zap.Logger
}

// NewService creates a new collision service.
func NewService(logger *zap.Logger) *Service {
	return &Service{logger: logger}
}

// Collect concatenates every .col file directly under folder into one
// archive at outPath, in lexical path order. A source file that cannot
// be opened is logged and skipped; the remaining files still append. A
// folder without matches yields an empty archive.
func (s *Service) Collect(outPath, folder string) error {
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outPath, err)
	}

	appended := 0
	visit := func(path string) error {
		in, err := os.Open(path)
		if err != nil {
			s.logger.Warn("Skipping unreadable collision file",
				zap.String("path", path), zap.Error(err))
			return nil
		}
		defer in.Close()

		if _, err := io.Copy(out, in); err != nil {
			return fmt.Errorf("failed to append %s: %w", path, err)
		}
		appended++
		return nil
	}

	if err := forEachMatch(filepath.Join(folder, "*.col"), visit); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", outPath, err)
	}

	s.logger.Info("Collected collision archive",
		zap.String("out", outPath),
		zap.String("folder", folder),
		zap.Int("files", appended),
	)
	return nil
}

// forEachMatch invokes visit for every file matching pattern, in
// lexical order. An error from visit stops the walk.
func forEachMatch(pattern string, visit func(path string) error) error {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return fmt.Errorf("failed to scan %s: %w", pattern, err)
	}
	sort.Strings(matches)

	for _, path := range matches {
		if err := visit(path); err != nil {
			return err
		}
	}
	return nil
}
