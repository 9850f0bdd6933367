// Package textextract turns résumé documents into raw text. Every failure is
// logged and degraded to empty text, callers never receive an error.
package textextract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/spigell/resume-scorer/internal/logger"
	"github.com/spigell/resume-scorer/internal/utils"
)

type Format string

const (
	FormatUnknown Format = ""
	FormatText    Format = "txt"
	FormatPDF     Format = "pdf"
	FormatDOCX    Format = "docx"
)

const (
	DefaultMaxFileSize int64 = 20 << 20
	DefaultTimeout           = 30 * time.Second
	DefaultPDFMinText        = 100

	previewLength = 120
)

// Document identifies a source file. An empty Format is inferred from the extension.
type Document struct {
	Path   string
	Format Format
}

type Config struct {
	// MaxFileSize is a cap in bytes; larger files yield empty text.
	MaxFileSize int64
	// Timeout bounds the extraction of a single document.
	Timeout time.Duration
	// PDFMinText is the trimmed rune count under which the secondary PDF method is tried.
	PDFMinText int
}

type reader func(path string) (string, error)

type Extractor struct {
	cfg     Config
	logger  *zap.Logger
	readers map[Format]reader

	// pdfPrimary and pdfSecondary are the two pdf text methods.
	pdfPrimary   reader
	pdfSecondary reader
}

func New(cfg Config, log *zap.Logger) *Extractor {
	if cfg.MaxFileSize <= 0 {
		cfg.MaxFileSize = DefaultMaxFileSize
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.PDFMinText <= 0 {
		cfg.PDFMinText = DefaultPDFMinText
	}
	if log == nil {
		log = zap.NewNop()
	}

	e := &Extractor{cfg: cfg, logger: log, pdfPrimary: pdfPlainText, pdfSecondary: pdfTextByRow}
	e.readers = map[Format]reader{
		FormatText: readText,
		FormatPDF:  e.readPDF,
		FormatDOCX: readDOCX,
	}
	return e
}

// DetectFormat infers the document format from the file extension.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		return FormatText
	case ".pdf":
		return FormatPDF
	case ".docx", ".doc":
		return FormatDOCX
	default:
		return FormatUnknown
	}
}

// Supported reports whether the path has an extension the extractor can read.
func Supported(path string) bool {
	return DetectFormat(path) != FormatUnknown
}

// Extract returns the text of the document. Unsupported formats, unreadable,
// oversized or undecodable files, reader failures and timeouts give "".
func (e *Extractor) Extract(ctx context.Context, doc Document) string {
	format := doc.Format
	if format == FormatUnknown {
		format = DetectFormat(doc.Path)
	}

	log := logger.WithDocument(e.logger, filepath.Base(doc.Path), string(format))

	read, ok := e.readers[format]
	if !ok {
		log.Warn("unsupported document format", zap.String("path", doc.Path))
		return ""
	}

	stat, err := os.Stat(doc.Path)
	if err != nil {
		log.Warn("document is not readable", zap.Error(err))
		return ""
	}

	if stat.Size() > e.cfg.MaxFileSize {
		log.Warn("document exceeds size cap",
			zap.Int64("size", stat.Size()),
			zap.Int64("max_size", e.cfg.MaxFileSize),
		)
		return ""
	}

	ctx, cancel := context.WithTimeout(ctx, e.cfg.Timeout)
	defer cancel()

	type result struct {
		text string
		err  error
	}

	done := make(chan result, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- result{err: fmt.Errorf("reader panicked: %v", r)}
			}
		}()
		text, err := read(doc.Path)
		done <- result{text: text, err: err}
	}()

	select {
	case <-ctx.Done():
		log.Warn("document extraction aborted", zap.Error(ctx.Err()))
		return ""
	case res := <-done:
		if res.err != nil {
			log.Warn("document extraction failed", zap.Error(res.err))
			return ""
		}

		log.Debug("document extracted",
			zap.Int("text_length", utf8.RuneCountInString(res.text)),
			zap.String("text_preview", utils.TruncateForLog(res.text, previewLength)),
		)
		return res.text
	}
}
