package api

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"pdf_service/config"
	"pdf_service/pdf"
)

// Handler wires HTTP requests to the PDF service.
type Handler struct {
	cfg *config.Config
	svc *pdf.Service
	log zerolog.Logger
}

func NewHandler(cfg *config.Config, svc *pdf.Service, log zerolog.Logger) *Handler {
	return &Handler{cfg: cfg, svc: svc, log: log}
}

// Compress accepts a single PDF and a quality level, runs the compression
// pipeline and streams the result back with size metadata headers.
func (h *Handler) Compress(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No PDF file provided"})
		return
	}
	defer file.Close()

	if err := validatePDFFile(file, header, h.cfg.MaxFileSize); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quality, err := pdf.ParseQuality(c.PostForm("quality"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var res *pdf.Result
	if h.cfg.CompressMode == config.CompressModeBuffer {
		data, err := io.ReadAll(file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload"})
			return
		}
		res, err = h.svc.CompressBuffer(c.Request.Context(), data, quality)
		if err != nil {
			h.fail(c, err)
			return
		}
	} else {
		res, err = h.svc.Compress(c.Request.Context(), file, quality)
		if err != nil {
			h.fail(c, err)
			return
		}
	}

	filename := downloadName(header.Filename, "compress")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("X-Original-Size", strconv.FormatInt(res.OriginalSize, 10))
	c.Header("X-Compressed-Size", strconv.FormatInt(res.CompressedSize, 10))
	c.Header("X-Reduction-Percent", fmt.Sprintf("%.2f", res.ReductionPercent()))
	c.Header("X-Quality-Level", string(quality))
	c.Data(http.StatusOK, "application/pdf", res.Data)
}

// Merge accepts two or more PDFs and returns their page-wise concatenation.
func (h *Handler) Merge(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No files uploaded"})
		return
	}
	headers := form.File["files"]
	if len(headers) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least 2 PDF files are required for merging"})
		return
	}

	srcs := make([]io.Reader, 0, len(headers))
	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload"})
			return
		}
		defer file.Close()

		if err := validatePDFFile(file, header, h.cfg.MaxFileSize); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("%s: %v", header.Filename, err)})
			return
		}
		srcs = append(srcs, file)
	}

	data, err := h.svc.Merge(c.Request.Context(), srcs)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="merged.pdf"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

// Info parses an uploaded PDF and reports page count, size and version.
func (h *Handler) Info(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No PDF file provided"})
		return
	}
	defer file.Close()

	if err := validatePDFFile(file, header, h.cfg.MaxFileSize); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	info, err := h.svc.Info(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Unable to parse PDF: %v", err)})
		return
	}
	c.JSON(http.StatusOK, info)
}

// fail maps a service error to an HTTP response.
func (h *Handler) fail(c *gin.Context, err error) {
	h.log.Error().Err(err).Str("path", c.FullPath()).Msg("pdf operation failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// downloadName derives the attachment filename from the uploaded one.
func downloadName(original, suffix string) string {
	name := sanitizeFilename(original)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	if name == "" {
		name = "document"
	}
	return name + "_" + suffix + ".pdf"
}

// sanitizeFilename strips path components and traversal attempts.
func sanitizeFilename(filename string) string {
	filename = strings.ReplaceAll(filename, "..", "")
	filename = strings.ReplaceAll(filename, "\\", "_")
	filename = filepath.Base(filename)
	return strings.TrimSpace(filename)
}

// validatePDFFile checks the size cap and the %PDF magic header, then seeks
// back so the file can be read again.
func validatePDFFile(file multipart.File, header *multipart.FileHeader, maxSize int64) error {
	if header.Size > maxSize {
		return fmt.Errorf("file size %d exceeds maximum allowed %d bytes", header.Size, maxSize)
	}

	buffer := make([]byte, 4)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return fmt.Errorf("failed to read file header: %v", err)
	}
	if n < 4 || string(buffer[:4]) != "%PDF" {
		return fmt.Errorf("invalid PDF file: header does not match")
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to reset file position: %v", err)
	}
	return nil
}
