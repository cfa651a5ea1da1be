package pdf

import (
	"context"
	"fmt"
	"io"
	"os"
)

// gsArgs builds the Ghostscript pdfwrite invocation for the given preset.
// The filter flags strip annotations, comments and doc info and deduplicate
// images on top of the preset's downsampling.
func gsArgs(preset, outFile, inFile string) []string {
	return []string{
		"-sDEVICE=pdfwrite",
		"-dCompatibilityLevel=1.4",
		"-dPDFSETTINGS=/" + preset,
		"-dNOPAUSE",
		"-dQUIET",
		"-dBATCH",
		"-dDetectDuplicateImages=true",
		"-dRemoveOPComments=true",
		"-dCompressFonts=true",
		"-dDiscardComments=true",
		"-dDiscardDocInfo=true",
		"-dFILTERTEXTANNOTATIONS=true",
		"-dFILTERIMAGEANNOTATIONS=true",
		"-sOutputFile=" + outFile,
		inFile,
	}
}

var qpdfStreamFlags = []string{
	"--object-streams=generate",
	"--compress-streams=y",
	"--recompress-flate",
}

// Compress writes src to a temp file, runs a Ghostscript pass with the
// quality preset, then a qpdf linearize pass, and returns the final bytes.
// All temp files are removed before Compress returns.
func (s *Service) Compress(ctx context.Context, src io.Reader, q Quality) (*Result, error) {
	tmp := newTempSet(s.TempDir)
	defer tmp.cleanup(s.log)

	inFile, inSize, err := tmp.save(src, "input_", ".pdf")
	if err != nil {
		return nil, err
	}
	gsFile, err := tmp.create("output_", "_gs.pdf")
	if err != nil {
		return nil, err
	}
	qpdfFile, err := tmp.create("output_", "_qpdf.pdf")
	if err != nil {
		return nil, err
	}

	s.log.Debug().Int64("bytes", inSize).Str("quality", string(q)).Msg("compressing via temp files")

	if err := s.run(ctx, s.GsBin, gsArgs(q.Preset(), gsFile, inFile)...); err != nil {
		return nil, fmt.Errorf("compress: %w", err)
	}
	if err := requireNonEmpty(gsFile); err != nil {
		return nil, fmt.Errorf("compress: %w", err)
	}

	qpdfArgs := append([]string{"--linearize"}, qpdfStreamFlags...)
	qpdfArgs = append(qpdfArgs, gsFile, qpdfFile)
	if err := s.run(ctx, s.QpdfBin, qpdfArgs...); err != nil {
		return nil, fmt.Errorf("linearize: %w", err)
	}

	data, err := os.ReadFile(qpdfFile)
	if err != nil {
		return nil, fmt.Errorf("read compressed output: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("linearize: %w", ErrEmptyOutput)
	}

	return &Result{Data: data, OriginalSize: inSize, CompressedSize: int64(len(data))}, nil
}

// CompressBuffer runs a single Ghostscript pass entirely through pipes,
// never touching disk. The qpdf linearize pass is skipped in this mode.
func (s *Service) CompressBuffer(ctx context.Context, data []byte, q Quality) (*Result, error) {
	s.log.Debug().Int("bytes", len(data)).Str("quality", string(q)).Msg("compressing in buffer")

	out, err := s.runPipe(ctx, data, s.GsBin, gsArgs(q.Preset(), "-", "-")...)
	if err != nil {
		return nil, fmt.Errorf("compress: %w", err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("compress: %w", ErrEmptyOutput)
	}

	return &Result{Data: out, OriginalSize: int64(len(data)), CompressedSize: int64(len(out))}, nil
}

// requireNonEmpty fails with ErrEmptyOutput when a tool exited cleanly but
// left its output file empty or missing.
func requireNonEmpty(path string) error {
	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		return ErrEmptyOutput
	}
	return nil
}
