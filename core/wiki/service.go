// ABOUTME: Wiki page service: fetch, short-TTL cache, parse, and the generic article lookup
// ABOUTME: Also resolves the lucky-pick sentinel through the suggestion source

package wiki

import (
	"context"
	"errors"
	"io"
	"math/rand"
	"strings"
	"time"

	"runebot-api/core/domain"
	coreerrors "runebot-api/core/errors"
	"runebot-api/core/interfaces"
	"runebot-api/pkg/config"
)

// fetchDeadline bounds one page fetch chain, including the disambiguation
// fallback candidate.
const fetchDeadline = 15 * time.Second

// Service fetches and parses wiki pages.
type Service struct {
	deps        interfaces.Dependencies
	suggestions interfaces.SuggestionSource
	parser      *Parser
	cfg         config.WikiConfig
	cacheTTL    time.Duration
}

// NewService creates a wiki service.
func NewService(deps interfaces.Dependencies, suggestions interfaces.SuggestionSource, cfg config.WikiConfig) *Service {
	return &Service{
		deps:        deps,
		suggestions: suggestions,
		parser: NewParser(ParseOptions{
			MinDescriptionLength: cfg.MinDescriptionLength,
			SiteURL:              siteURL(cfg.BaseURL),
		}),
		cfg:      cfg,
		cacheTTL: time.Duration(cfg.PageCacheTTLSeconds) * time.Second,
	}
}

// siteURL derives the scheme://host prefix from the article base URL.
func siteURL(baseURL string) string {
	trimmed := strings.TrimSuffix(baseURL, "/")
	if i := strings.Index(trimmed, "://"); i >= 0 {
		if j := strings.Index(trimmed[i+3:], "/"); j >= 0 {
			return trimmed[:i+3+j]
		}
	}
	return trimmed
}

// GetPage resolves a raw search query to a parsed PageDocument. Two slug
// candidates are tried in order: the case-folded form, then the
// case-preserved form, since canonical titles are case-sensitive upstream.
func (s *Service) GetPage(ctx context.Context, query string) (*domain.PageDocument, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchDeadline)
	defer cancel()

	candidates := []Slug{NormalizeQuery(query), Normalize(query, CasePreserve)}
	if candidates[1] == candidates[0] {
		candidates = candidates[:1]
	}
	var lastErr error
	for _, slug := range candidates {
		page, err := s.getPageBySlug(ctx, slug)
		if err == nil {
			return page, nil
		}
		lastErr = err
		if !coreerrors.IsNotFound(err) {
			break
		}
	}
	if errors.Is(lastErr, context.DeadlineExceeded) {
		return nil, &coreerrors.DeadlineError{Operation: "page fetch", Cause: lastErr}
	}
	return nil, lastErr
}

// GetLuckyPage fetches a pseudo-random article from the given categories.
func (s *Service) GetLuckyPage(ctx context.Context, categories, blacklist []string) (*domain.PageDocument, error) {
	title, err := LuckyTitle(ctx, s.suggestions, categories, blacklist)
	if err != nil {
		return nil, coreerrors.WrapError(err, "pick random title")
	}
	if title == "" {
		return nil, &coreerrors.NotFoundError{Slug: strings.Join(categories, ",")}
	}
	// Canonical titles keep their casing.
	return s.GetPage(ctx, title+AutocompleteMarker)
}

// getPageBySlug fetches and parses one slug, consulting the page cache
// first. Raw HTML is cached rather than the parsed form; parsing is cheap
// next to the fetch and keeps the cache payload opaque.
func (s *Service) getPageBySlug(ctx context.Context, slug Slug) (*domain.PageDocument, error) {
	cacheKey := "page:" + string(slug)

	if s.deps.Cache != nil {
		if data, err := s.deps.Cache.Get(ctx, cacheKey); err == nil && len(data) > 0 {
			s.deps.Logger.Debug("page cache hit", map[string]interface{}{"slug": string(slug)})
			return s.parser.Parse(strings.NewReader(string(data)))
		}
	}

	html, err := s.fetch(ctx, slug)
	if err != nil {
		return nil, err
	}

	if s.deps.Cache != nil {
		_ = s.deps.Cache.Set(ctx, cacheKey, html, s.cacheTTL)
	}

	return s.parser.Parse(strings.NewReader(string(html)))
}

// fetch retrieves the raw article HTML for a slug.
func (s *Service) fetch(ctx context.Context, slug Slug) ([]byte, error) {
	resp, err := s.deps.HTTPClient.Get(ctx, s.cfg.BaseURL+string(slug))
	if err != nil {
		return nil, err
	}
	defer resp.Body().Close()

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, coreerrors.WrapError(err, "read page body")
	}
	return body, nil
}

// Search runs the generic article lookup: fetch, parse, and package the
// result for the presentation layer. For the lucky sentinel it delegates
// to a wiki-wide random pick.
func (s *Service) Search(ctx context.Context, query string) (*domain.ArticleRecord, error) {
	var page *domain.PageDocument
	var err error

	if IsFeelingLucky(query) {
		title, pickErr := s.randomWikiTitle(ctx)
		if pickErr != nil {
			return nil, pickErr
		}
		page, err = s.GetPage(ctx, title+AutocompleteMarker)
	} else {
		page, err = s.GetPage(ctx, query)
	}
	if err != nil {
		return nil, err
	}

	return &domain.ArticleRecord{
		Title:        page.Title,
		Description:  page.Description,
		Options:      page.Options,
		Infobox:      page.Infobox,
		ThumbnailURL: page.ThumbnailURL,
	}, nil
}

// randomWikiTitle picks a random title wiki-wide, excluding the dates
// category.
func (s *Service) randomWikiTitle(ctx context.Context) (string, error) {
	titles, err := s.suggestions.GetAllSuggestions(ctx)
	if err != nil {
		return "", coreerrors.WrapError(err, "load wiki suggestions")
	}
	if len(titles) == 0 {
		return "", &coreerrors.NotFoundError{Slug: "random"}
	}
	return titles[rand.Intn(len(titles))], nil
}
