// ABOUTME: Minigame icon resolver scraping the master minigames listing
// ABOUTME: Fuzzy-matches the slugified title against image alt attributes in the listing tables

package extract

import (
	"context"
	"strings"
	"time"

	"github.com/gocolly/colly"

	"runebot-api/core/domain"
	"runebot-api/core/interfaces"
	"runebot-api/core/wiki"
)

// defaultListingTimeout bounds the listing fetch when the caller's
// context carries no deadline.
const defaultListingTimeout = 30 * time.Second

// NoIconColor is the fixed embed colour used when no listing icon matches.
var NoIconColor = domain.RGBColor{R: 0xC2, G: 0x4E, B: 0x46}

// IconResolver finds minigame icons on the master minigames listing page.
// Icons are not part of a minigame's own article; they only exist in the
// listing tables, so resolving one is a cross-page join.
type IconResolver struct {
	listingURL string
	siteURL    string
	userAgent  string
	logger     interfaces.Logger
}

// NewIconResolver creates a resolver for the given listing page.
func NewIconResolver(listingURL, siteURL, userAgent string, logger interfaces.Logger) *IconResolver {
	return &IconResolver{
		listingURL: listingURL,
		siteURL:    siteURL,
		userAgent:  userAgent,
		logger:     logger,
	}
}

// Resolve returns the icon URL whose alt text matches the minigame title,
// or "" when no icon matches. The title is compared in slugified,
// case-folded form because listing alt texts track image file names, not
// article titles. The listing fetch runs under the context's deadline so
// a hung listing server cannot stall the extraction pipeline.
func (r *IconResolver) Resolve(ctx context.Context, title string) string {
	if err := ctx.Err(); err != nil {
		r.logger.Warn("minigame listing fetch skipped", map[string]interface{}{
			"url":   r.listingURL,
			"error": err.Error(),
		})
		return ""
	}

	slug := strings.ToLower(string(wiki.Normalize(title, wiki.CasePreserve)))

	var iconURL string
	c := colly.NewCollector(colly.UserAgent(r.userAgent))

	timeout := defaultListingTimeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
	}
	c.SetRequestTimeout(timeout)

	c.OnHTML("table.wikitable img", func(e *colly.HTMLElement) {
		if iconURL != "" {
			return
		}
		alt := strings.ToLower(string(wiki.Normalize(e.Attr("alt"), wiki.CasePreserve)))
		if strings.Contains(alt, slug) {
			src := e.Attr("src")
			if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
				iconURL = src
			} else {
				iconURL = r.siteURL + src
			}
		}
	})

	if err := c.Visit(r.listingURL); err != nil {
		r.logger.Warn("minigame listing fetch failed", map[string]interface{}{
			"url":   r.listingURL,
			"error": err.Error(),
		})
		return ""
	}
	return iconURL
}
