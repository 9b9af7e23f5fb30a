package names

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"txd-manager/core/joblist"

	"go.uber.org/zap"
)

// Sum returns the 32-bit one-at-a-time hash the game derives resource
// keys from. Bytes are lowercased before hashing, so lookups are
// case-insensitive.
func Sum(name string) uint32 {
	var h uint32
	for i := 0; i < len(name); i++ {
		c := name[i]
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		h += uint32(c)
		h += h << 10
		h ^= h >> 6
	}
	h += h << 3
	h ^= h >> 11
	h += h << 15
	return h
}

// Format renders one table row for name: the uppercase hex hash, a
// space, and the name as given.
func Format(name string) string {
	return fmt.Sprintf("%X %s", Sum(name), name)
}

// Service renders name/hash tables.
type Service struct {
	logger *zap.Logger
}

// NewService creates a new names service.
func NewService(logger *zap.Logger) *Service {
	return &Service{logger: logger}
}

// WriteTable reads names from rd, one per job line, and writes one
// "HEX name" row per name to w. A line that does not hold exactly one
// name is logged and produces a "# ERROR" placeholder row, so the table
// keeps one row per job line.
func (s *Service) WriteTable(w io.Writer, rd io.Reader) (joblist.Stats, error) {
	var stats joblist.Stats
	bw := bufio.NewWriter(w)

	err := joblist.Scan(rd, func(line int, fields []string) error {
		if len(fields) != 1 {
			stats.BadLines++
			s.logger.Error("Bad name line",
				zap.Int("line", line), zap.Int("fields", len(fields)))
			_, werr := fmt.Fprintln(bw, "# ERROR")
			return werr
		}
		stats.Jobs++
		_, werr := fmt.Fprintln(bw, Format(fields[0]))
		return werr
	})
	if err != nil {
		return stats, err
	}

	if err := bw.Flush(); err != nil {
		return stats, fmt.Errorf("failed to write table: %w", err)
	}
	return stats, nil
}

// HashFile reads the name list at namesPath and writes the hash table
// to outPath.
func (s *Service) HashFile(namesPath, outPath string) (joblist.Stats, error) {
	in, err := os.Open(namesPath)
	if err != nil {
		return joblist.Stats{}, fmt.Errorf("failed to open name list %s: %w", namesPath, err)
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return joblist.Stats{}, fmt.Errorf("failed to create %s: %w", outPath, err)
	}

	stats, err := s.WriteTable(out, in)
	if cerr := out.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("failed to close %s: %w", outPath, cerr)
	}
	if err != nil {
		return stats, err
	}

	s.logger.Info("Wrote hash table",
		zap.String("out", outPath),
		zap.Int("names", stats.Jobs),
		zap.Int("bad_lines", stats.BadLines),
	)
	return stats, nil
}
