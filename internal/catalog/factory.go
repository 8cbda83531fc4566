package catalog

import (
	"sjsage522/courseadvisor/config"
	"sjsage522/courseadvisor/helpers"
	"sjsage522/courseadvisor/services/cache"
)

// CreateExtractors creates one extractor per configured subject, sharing
// a single HTTP client and page cache.
func CreateExtractors(cfg *config.Config, cacheSvc cache.CacheService) []Extractor {
	return CreateExtractorsFor(cfg, cacheSvc, cfg.Subjects)
}

// CreateExtractorsFor is CreateExtractors restricted to the given subjects
func CreateExtractorsFor(cfg *config.Config, cacheSvc cache.CacheService, subjects []string) []Extractor {
	fetcher := BaseFetcher{
		BaseURL:  cfg.CatalogBaseURL,
		Client:   helpers.NewHTTPClient(cfg.FetchTimeout),
		CacheSvc: cacheSvc,
		CacheTTL: cfg.PageCacheTTL,
	}

	extractors := make([]Extractor, 0, len(subjects))
	for _, s := range subjects {
		extractors = append(extractors, NewSubjectExtractor(Subject(s), fetcher, cfg.OutputDir))
	}
	return extractors
}
