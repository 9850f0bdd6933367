package textextract

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"
)

// readPDF runs the plain-text method first. When its output is shorter than
// PDFMinText runes the row-based method is tried and the longer text wins.
// Failures of one method do not prevent the other.
func (e *Extractor) readPDF(path string) (string, error) {
	primary, primaryErr := e.pdfPrimary(path)
	if primaryErr != nil {
		e.logger.Warn("pdf plain text extraction failed", zap.String("path", path), zap.Error(primaryErr))
	}

	if runeLen(primary) >= e.cfg.PDFMinText {
		return primary, nil
	}

	secondary, secondaryErr := e.pdfSecondary(path)
	if secondaryErr != nil {
		e.logger.Warn("pdf row extraction failed", zap.String("path", path), zap.Error(secondaryErr))
	}

	if primaryErr != nil && secondaryErr != nil {
		return "", errors.Join(primaryErr, secondaryErr)
	}

	if runeLen(secondary) > runeLen(primary) {
		e.logger.Debug("using pdf row extraction",
			zap.String("path", path),
			zap.Int("plain_length", runeLen(primary)),
			zap.Int("row_length", runeLen(secondary)),
		)
		return secondary, nil
	}

	return primary, nil
}

func runeLen(s string) int {
	return utf8.RuneCountInString(strings.TrimSpace(s))
}

func pdfPlainText(path string) (text string, err error) {
	defer recoverPDF(&err)

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	plain, err := r.GetPlainText()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func pdfTextByRow(path string) (text string, err error) {
	defer recoverPDF(&err)

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			return "", fmt.Errorf("page %d: %w", i, err)
		}

		for _, row := range rows {
			words := make([]string, 0, len(row.Content))
			for _, word := range row.Content {
				words = append(words, word.S)
			}
			sb.WriteString(strings.Join(words, " "))
			sb.WriteString("\n")
		}
	}

	return sb.String(), nil
}

// recoverPDF converts panics raised by the pdf package on malformed input.
func recoverPDF(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("malformed pdf: %v", r)
	}
}
