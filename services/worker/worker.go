package worker

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"sjsage522/courseadvisor/helpers"
	"sjsage522/courseadvisor/internal/catalog"
	"sjsage522/courseadvisor/logger"
	"sjsage522/courseadvisor/pkg/errors"
	"sjsage522/courseadvisor/services/publisher"
)

// PublishedEntry is the stream payload for one extracted course
type PublishedEntry struct {
	Subject     string `json:"subject"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// SubjectSummary is the outcome of one subject in a run
type SubjectSummary struct {
	Subject  catalog.Subject
	Entries  int
	Artifact string
	Err      error
}

// Summary lists every subject of a run, sorted by subject code
type Summary []SubjectSummary

// Failed counts subjects that ended with an error
func (s Summary) Failed() int {
	n := 0
	for _, sub := range s {
		if sub.Err != nil {
			n++
		}
	}
	return n
}

// Worker handles the extraction and publishing process
type Worker struct {
	ctx        context.Context
	extractors []catalog.Extractor
	publisher   publisher.Publisher
	logger      helpers.LoggerInterface
	environment string
}

// NewWorker creates a new worker; pub may be nil to skip publishing.
// environment is the deployment name from config ("production" silences
// the per-subject sample entry).
func NewWorker(
	ctx context.Context,
	extractors []catalog.Extractor,
	pub publisher.Publisher,
	logger helpers.LoggerInterface,
	environment string,
) *Worker {
	return &Worker{
		ctx:         ctx,
		extractors:  extractors,
		publisher:   pub,
		logger:      logger,
		environment: environment,
	}
}

// Run extracts every subject once, in parallel. A failing subject is
// logged and recorded in the summary; the others still complete.
func (w *Worker) Run() Summary {
	start := time.Now()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		summary = make(Summary, 0, len(w.extractors))
	)
	for _, e := range w.extractors {
		wg.Add(1)
		go func(e catalog.Extractor) {
			defer wg.Done()
			s := w.extractAndPublish(e)
			mu.Lock()
			summary = append(summary, s)
			mu.Unlock()
		}(e)
	}
	wg.Wait()

	// Trim all streams after publishing
	if w.publisher != nil {
		if err := w.publisher.TrimStreams(); err != nil {
			w.logger.LogError("StreamTrimming", errors.NewPublisher("", "failed to trim streams", err))
		}
	}

	sort.Slice(summary, func(i, j int) bool {
		return summary[i].Subject < summary[j].Subject
	})

	logger.ForWorker().Info().
		Int("subjects", len(summary)).
		Int("failed", summary.Failed()).
		Dur("elapsed", time.Since(start)).
		Msg("Extraction run finished")

	return summary
}

// extractAndPublish runs one extractor and publishes its entries
func (w *Worker) extractAndPublish(e catalog.Extractor) SubjectSummary {
	subject := e.GetSubject()

	result, err := e.Run(w.ctx)
	if err != nil {
		w.logger.LogError(string(subject), err)
		return SubjectSummary{Subject: subject, Err: err}
	}

	if w.publisher != nil {
		for _, entry := range result.Entries {
			data, err := json.Marshal(PublishedEntry{
				Subject:     string(subject),
				Name:        entry.Name,
				Description: entry.Description,
			})
			if err != nil {
				w.logger.LogError(string(subject), err)
				continue
			}
			if err := w.publisher.Publish(string(subject), data); err != nil {
				w.logger.LogError(string(subject), errors.NewPublisher(string(subject), "failed to publish entry", err))
			}
		}
	}

	w.logFirstEntry(subject, result.Entries)

	return SubjectSummary{
		Subject:  subject,
		Entries:  len(result.Entries),
		Artifact: result.ArtifactPath,
	}
}

func (w *Worker) logFirstEntry(subject catalog.Subject, entries []catalog.Entry) {
	if w.environment == "production" || len(entries) == 0 {
		return
	}
	w.logger.LogInfo("%s first entry: %s", subject, entries[0].Name)
}
