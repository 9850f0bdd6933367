// Package batch ingests a directory of résumés into candidate profiles.
package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spigell/resume-scorer/internal/profile"
	"github.com/spigell/resume-scorer/internal/textextract"
)

// TextExtractor returns the text of a document, or "" when it has none.
type TextExtractor interface {
	Extract(ctx context.Context, doc textextract.Document) string
}

type Parser struct {
	text     TextExtractor
	profiles *profile.Extractor
	workers  int
	logger   *zap.Logger
}

// New returns a parser running at most workers extractions at once. A
// non-positive workers value means GOMAXPROCS.
func New(text TextExtractor, profiles *profile.Extractor, workers int, logger *zap.Logger) *Parser {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if profiles == nil {
		profiles = profile.NewExtractor(nil, profile.WithLogger(logger))
	}
	return &Parser{text: text, profiles: profiles, workers: workers, logger: logger}
}

// ParseFile extracts the profile of a single document. The source id is the
// file base name.
func (p *Parser) ParseFile(ctx context.Context, path string) *profile.Profile {
	text := p.text.Extract(ctx, textextract.Document{Path: path})
	return p.profiles.ExtractProfile(filepath.Base(path), text)
}

// ParseDirectory parses every supported file directly under dir. Profiles are
// ordered by file name. Unreadable documents give profiles with Error set, the
// returned error is reserved for a missing directory and cancellation.
func (p *Parser) ParseDirectory(ctx context.Context, dir string) ([]*profile.Profile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading resume directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !textextract.Supported(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}

	p.logger.Info("parsing resumes", zap.String("dir", dir), zap.Int("files", len(paths)))

	profiles := make([]*profile.Profile, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)

	for i, path := range paths {
		if gctx.Err() != nil {
			break
		}
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			profiles[i] = p.ParseFile(gctx, path)
			if profiles[i].Error != "" {
				p.logger.Warn("resume has no text", zap.String("source", profiles[i].SourceID))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	failed := 0
	for _, pr := range profiles {
		if pr.Error != "" {
			failed++
		}
	}
	p.logger.Info("resumes parsed", zap.Int("total", len(profiles)), zap.Int("without_text", failed))

	return profiles, nil
}
