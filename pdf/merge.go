package pdf

import (
	"context"
	"fmt"
	"io"
	"os"
)

// Merge concatenates the given documents, in order, into a single linearized
// PDF using qpdf's page assembly. All temp files are removed before Merge
// returns.
func (s *Service) Merge(ctx context.Context, srcs []io.Reader) ([]byte, error) {
	tmp := newTempSet(s.TempDir)
	defer tmp.cleanup(s.log)

	inFiles := make([]string, 0, len(srcs))
	for i, src := range srcs {
		path, _, err := tmp.save(src, "input_", fmt.Sprintf("_%d.pdf", i))
		if err != nil {
			return nil, err
		}
		inFiles = append(inFiles, path)
	}

	outFile, err := tmp.create("output_", "_merged.pdf")
	if err != nil {
		return nil, err
	}

	args := []string{"--linearize", "--empty", "--pages"}
	args = append(args, inFiles...)
	args = append(args, "--", outFile)
	args = append(args, qpdfStreamFlags...)

	if err := s.run(ctx, s.QpdfBin, args...); err != nil {
		return nil, fmt.Errorf("merge: %w", err)
	}

	data, err := os.ReadFile(outFile)
	if err != nil {
		return nil, fmt.Errorf("read merged output: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("merge: %w", ErrEmptyOutput)
	}
	return data, nil
}
