package texture

import (
	"bufio"
	"fmt"
	"os"

	"go.uber.org/zap"
)

// Service handles dictionary file operations.
type Service struct {
	logger *zap.Logger
}

// NewService creates a new texture service.
func NewService(logger *zap.Logger) *Service {
	return &Service{logger: logger}
}

// LoadFile reads the dictionary stored at path.
func (s *Service) LoadFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	d, err := Read(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return d, nil
}

// SaveFile writes the dictionary to path, replacing any previous file.
func (s *Service) SaveFile(path string, d *Dictionary) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	w := bufio.NewWriter(f)
	if err := Write(w, d); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}

// MergeFiles merges the dictionaries at basePath and overlayPath and
// writes the result to destPath. Both sources are fully in memory
// before the destination is opened, so destPath may equal basePath or
// overlayPath; rewriting the base in place is the normal batch case.
func (s *Service) MergeFiles(destPath, basePath, overlayPath string) error {
	base, err := s.LoadFile(basePath)
	if err != nil {
		return err
	}
	overlay, err := s.LoadFile(overlayPath)
	if err != nil {
		return err
	}

	merged := Merge(base, overlay)
	if err := s.SaveFile(destPath, merged); err != nil {
		return err
	}

	s.logger.Info("Merged dictionaries",
		zap.String("dest", destPath),
		zap.Int("base_textures", base.Count()),
		zap.Int("overlay_textures", overlay.Count()),
		zap.Int("merged_textures", merged.Count()),
	)
	return nil
}

// MergeInto merges the dictionary at overlayPath into the one at
// destPath, rewriting destPath.
func (s *Service) MergeInto(destPath, overlayPath string) error {
	return s.MergeFiles(destPath, destPath, overlayPath)
}
