package catalog

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"sjsage522/courseadvisor/helpers"
	"sjsage522/courseadvisor/logger"
	"sjsage522/courseadvisor/pkg/errors"
	"sjsage522/courseadvisor/services/cache"
)

// BaseFetcher provides page fetching shared by all extractors
type BaseFetcher struct {
	BaseURL  string
	Client   *http.Client
	CacheSvc cache.CacheService
	CacheTTL time.Duration
}

// PageURL returns the catalog page URL for a subject
func (f *BaseFetcher) PageURL(subject Subject) string {
	return f.BaseURL + "/courses/" + string(subject) + ".html"
}

// fetchWithCache returns the subject's page from the page cache when
// present, otherwise fetches it once and stores it for CacheTTL. The
// Content-Type header is cached alongside the body.
func (f *BaseFetcher) fetchWithCache(ctx context.Context, subject Subject) (*helpers.Page, error) {
	log := logger.ForExtractor(string(subject))
	key := cache.PageKey(string(subject))
	useCache := f.CacheSvc != nil && f.CacheTTL > 0

	if useCache {
		body, err := f.CacheSvc.Get(key)
		if err == nil {
			log.Debug().Int("bytes", len(body)).Msg("Catalog page served from cache")
			return &helpers.Page{Body: body, ContentType: f.cachedContentType(subject)}, nil
		}
		if !stderrors.Is(err, cache.ErrMiss) {
			log.Warn().
				Err(errors.NewCache(string(subject), "page cache lookup failed", err)).
				Msg("Falling back to network fetch")
		}
	}

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	page, err := helpers.FetchPage(ctx, client, f.PageURL(subject))
	if err != nil {
		return nil, err
	}

	if useCache {
		if err := f.CacheSvc.Set(key, page.Body, f.CacheTTL); err != nil {
			log.Warn().Err(errors.NewCache(string(subject), "failed to cache catalog page", err)).Send()
		} else if page.ContentType != "" {
			if err := f.CacheSvc.Set(cache.ContentTypeKey(string(subject)), []byte(page.ContentType), f.CacheTTL); err != nil {
				log.Warn().Err(errors.NewCache(string(subject), "failed to cache content type", err)).Send()
			}
		}
	}

	return page, nil
}

func (f *BaseFetcher) cachedContentType(subject Subject) string {
	v, err := f.CacheSvc.Get(cache.ContentTypeKey(string(subject)))
	if err != nil {
		return ""
	}
	return string(v)
}
