package pdf

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// tempSet tracks the temp files of a single operation so they can be removed
// together regardless of how the operation ends.
type tempSet struct {
	dir   string
	paths []string
}

func newTempSet(dir string) *tempSet {
	return &tempSet{dir: dir}
}

// create makes an empty uuid-named temp file and registers it for cleanup.
func (t *tempSet) create(prefix, suffix string) (string, error) {
	path := filepath.Join(t.dir, prefix+uuid.NewString()+suffix)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	f.Close()
	t.paths = append(t.paths, path)
	return path, nil
}

// save writes src to a new temp file and returns its path and size.
func (t *tempSet) save(src io.Reader, prefix, suffix string) (string, int64, error) {
	path, err := t.create(prefix, suffix)
	if err != nil {
		return "", 0, err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return "", 0, fmt.Errorf("open temp file: %w", err)
	}
	n, err := io.Copy(f, src)
	f.Close()
	if err != nil {
		return "", 0, fmt.Errorf("write temp file: %w", err)
	}
	return path, n, nil
}

// cleanup removes every file in the set. Failures are logged, never fatal.
func (t *tempSet) cleanup(log zerolog.Logger) {
	for _, p := range t.paths {
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", p).Msg("temp file cleanup failed")
		}
	}
	t.paths = nil
}
