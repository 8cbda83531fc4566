package catalog

import (
	"context"

	"sjsage522/courseadvisor/helpers"
	"sjsage522/courseadvisor/logger"
	"sjsage522/courseadvisor/pkg/errors"
)

// SubjectExtractor runs fetch, extract and artifact write for one subject
type SubjectExtractor struct {
	BaseFetcher
	Subject   Subject
	OutputDir string
	fetchFunc func(ctx context.Context) (*helpers.Page, error)
}

// NewSubjectExtractor creates an extractor for subject backed by fetcher
func NewSubjectExtractor(subject Subject, fetcher BaseFetcher, outputDir string) *SubjectExtractor {
	e := &SubjectExtractor{
		BaseFetcher: fetcher,
		Subject:     subject,
		OutputDir:   outputDir,
	}
	e.fetchFunc = func(ctx context.Context) (*helpers.Page, error) {
		return e.fetchWithCache(ctx, e.Subject)
	}
	return e
}

// GetSubject returns the subject code
func (e *SubjectExtractor) GetSubject() Subject {
	return e.Subject
}

// Run fetches the page, extracts its entries and overwrites the artifact.
// On a fetch or decode failure no artifact is written.
func (e *SubjectExtractor) Run(ctx context.Context) (*Result, error) {
	log := logger.ForExtractor(string(e.Subject))

	page, err := e.fetchFunc(ctx)
	if err != nil {
		return nil, errors.NewFetch(string(e.Subject), "failed to fetch catalog page", err)
	}

	entries, stats, err := ExtractWithStats(e.Subject, page.Body, page.ContentType)
	if err != nil {
		return nil, err
	}

	path, err := SaveArtifact(e.OutputDir, e.Subject, entries)
	if err != nil {
		return nil, errors.NewArtifact(string(e.Subject), "failed to write catalog artifact", err)
	}

	if stats.OrphanNames > 0 || stats.OrphanDescriptions > 0 {
		log.Warn().
			Int("orphan_names", stats.OrphanNames).
			Int("orphan_descriptions", stats.OrphanDescriptions).
			Msg("Unpaired course markers")
	}

	log.Info().
		Int("entries", len(entries)).
		Str("artifact", path).
		Msg("Catalog extracted")

	return &Result{
		Subject:      e.Subject,
		Entries:      entries,
		Stats:        stats,
		ArtifactPath: path,
	}, nil
}
