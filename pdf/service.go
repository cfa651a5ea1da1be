package pdf

import (
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/semaphore"
)

// Service runs PDF transformations by shelling out to Ghostscript and qpdf.
// All temp files it creates live under TempDir and are removed before the
// operation returns, on every exit path.
type Service struct {
	GsBin   string
	QpdfBin string
	TempDir string
	Timeout time.Duration

	sem *semaphore.Weighted
	log zerolog.Logger
}

// NewService creates a Service and its temp directory. maxConcurrent bounds
// the number of external processes running at once across all requests.
func NewService(gsBin, qpdfBin, tempDir string, timeout time.Duration, maxConcurrent int64, log zerolog.Logger) (*Service, error) {
	if err := os.MkdirAll(tempDir, 0o755); err != nil {
		return nil, fmt.Errorf("create temp dir %s: %w", tempDir, err)
	}
	return &Service{
		GsBin:   gsBin,
		QpdfBin: qpdfBin,
		TempDir: tempDir,
		Timeout: timeout,
		sem:     semaphore.NewWeighted(maxConcurrent),
		log:     log,
	}, nil
}

// CheckTools verifies that both external binaries are present and runnable.
// Called once at startup so a misconfigured deployment fails fast.
func (s *Service) CheckTools() error {
	for _, bin := range []string{s.GsBin, s.QpdfBin} {
		if err := exec.Command(bin, "--version").Run(); err != nil {
			return fmt.Errorf("%s not found or not executable: %w", bin, err)
		}
	}
	return nil
}
