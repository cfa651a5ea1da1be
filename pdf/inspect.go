package pdf

import (
	"fmt"
	"io"

	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
)

// DocInfo describes an uploaded document without transforming it.
type DocInfo struct {
	Pages     int    `json:"pages"`
	Size      int64  `json:"size"`
	Version   string `json:"pdf_version"`
	Encrypted bool   `json:"encrypted"`
}

// Info parses src with pdfcpu and reports page count, size and version.
// The temp copy is removed before Info returns.
func (s *Service) Info(src io.Reader) (*DocInfo, error) {
	tmp := newTempSet(s.TempDir)
	defer tmp.cleanup(s.log)

	path, size, err := tmp.save(src, "info_", ".pdf")
	if err != nil {
		return nil, err
	}

	ctx, err := pdfapi.ReadContextFile(path)
	if err != nil {
		return nil, fmt.Errorf("parse PDF: %w", err)
	}

	info := &DocInfo{
		Pages:     ctx.PageCount,
		Size:      size,
		Encrypted: ctx.Encrypt != nil,
	}
	if ctx.HeaderVersion != nil {
		info.Version = ctx.HeaderVersion.String()
	}
	return info, nil
}
