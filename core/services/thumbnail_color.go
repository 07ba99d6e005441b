// ABOUTME: Thumbnail color extraction service for tinting rendered embeds
// ABOUTME: Uses K-means clustering to find the most prominent color in page thumbnails

package services

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/EdlinOrg/prominentcolor"
	_ "golang.org/x/image/webp" // WebP support

	"runebot-api/core/domain"
	"runebot-api/core/interfaces"
)

const (
	httpTimeout   = 10 * time.Second
	colorCacheTTL = 24 * time.Hour
)

// DefaultBrandColor is the embed tint used when colour extraction is
// disabled for the guild or no colour can be extracted.
var DefaultBrandColor = domain.RGBColor{R: 88, G: 101, B: 242}

// ThumbnailColorService handles color extraction from page thumbnails.
type ThumbnailColorService struct {
	deps       interfaces.Dependencies
	store      interfaces.PreferenceStore
	httpClient *http.Client
	userAgent  string
}

// NewThumbnailColorService creates a new thumbnail color service.
func NewThumbnailColorService(deps interfaces.Dependencies, store interfaces.PreferenceStore, userAgent string) *ThumbnailColorService {
	return &ThumbnailColorService{
		deps:  deps,
		store: store,
		httpClient: &http.Client{
			Timeout: httpTimeout,
		},
		userAgent: userAgent,
	}
}

// EmbedColor returns the tint for an embed rendered in the given guild.
// When the guild has colour mode off the default brand colour is returned
// without fetching the image.
func (s *ThumbnailColorService) EmbedColor(ctx context.Context, guildID, ownerID, imageURL string) (domain.RGBColor, error) {
	enabled, err := s.store.ColourMode(ctx, guildID, ownerID)
	if err != nil {
		s.deps.Logger.Warn("colour mode lookup failed", map[string]interface{}{
			"guild_id": guildID,
			"error":    err.Error(),
		})
		return DefaultBrandColor, nil
	}
	if !enabled {
		return DefaultBrandColor, nil
	}
	return s.ExtractColor(ctx, imageURL)
}

// ExtractColor extracts the prominent color from an image URL. Extraction
// failures fall back to the default brand colour rather than erroring.
func (s *ThumbnailColorService) ExtractColor(ctx context.Context, imageURL string) (domain.RGBColor, error) {
	if imageURL == "" {
		return DefaultBrandColor, nil
	}

	cacheKey := fmt.Sprintf("thumbnailColor:%s", imageURL)
	if s.deps.Cache != nil {
		if data, err := s.deps.Cache.Get(ctx, cacheKey); err == nil && data != nil {
			var color domain.RGBColor
			if _, err := fmt.Sscanf(string(data), "%d,%d,%d", &color.R, &color.G, &color.B); err == nil {
				return color, nil
			}
		}
	}

	color, err := s.extractColorFromURL(ctx, imageURL)
	if err != nil {
		s.deps.Logger.Debug("Failed to extract color from thumbnail", map[string]interface{}{
			"url":   imageURL,
			"error": err.Error(),
		})
		color = DefaultBrandColor
	}

	if s.deps.Cache != nil {
		cacheData := fmt.Sprintf("%d,%d,%d", color.R, color.G, color.B)
		_ = s.deps.Cache.Set(ctx, cacheKey, []byte(cacheData), colorCacheTTL)
	}

	return color, nil
}

// extractColorFromURL downloads and extracts color from an image.
func (s *ThumbnailColorService) extractColorFromURL(ctx context.Context, imageURL string) (color domain.RGBColor, err error) {
	// prominentcolor can panic on degenerate images.
	defer func() {
		if rec := recover(); rec != nil {
			s.deps.Logger.Debug("Recovered from panic in color extraction", map[string]interface{}{
				"url":   imageURL,
				"panic": fmt.Sprintf("%v", rec),
			})
			color = DefaultBrandColor
			err = fmt.Errorf("panic recovered: %v", rec)
		}
	}()

	parsedURL, parseErr := url.Parse(imageURL)
	if parseErr != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return DefaultBrandColor, fmt.Errorf("invalid image URL: %s", imageURL)
	}

	// Wiki icons are often SVG, which cannot be decoded as raster images.
	if strings.HasSuffix(strings.ToLower(parsedURL.Path), ".svg") {
		return DefaultBrandColor, fmt.Errorf("SVG images are not supported")
	}

	req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if reqErr != nil {
		return DefaultBrandColor, fmt.Errorf("failed to create request: %w", reqErr)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, doErr := s.httpClient.Do(req)
	if doErr != nil {
		return DefaultBrandColor, fmt.Errorf("failed to download image: %w", doErr)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return DefaultBrandColor, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	img, _, decodeErr := image.Decode(resp.Body)
	if decodeErr != nil {
		return DefaultBrandColor, fmt.Errorf("failed to decode image: %w", decodeErr)
	}

	bounds := img.Bounds()
	if bounds.Empty() {
		return DefaultBrandColor, fmt.Errorf("image has empty bounds")
	}

	imgNRGBA := image.NewNRGBA(bounds)
	draw.Draw(imgNRGBA, bounds, img, bounds.Min, draw.Src)

	colors, kmeansErr := prominentcolor.KmeansWithAll(
		prominentcolor.ArgumentDefault,
		imgNRGBA,
		prominentcolor.DefaultK,
		1,
		prominentcolor.GetDefaultMasks(),
	)

	// Icons with transparent backgrounds can mask out every pixel; retry
	// without masks before giving up.
	if kmeansErr != nil || len(colors) == 0 {
		s.deps.Logger.Debug("Retrying color extraction without masks", map[string]interface{}{
			"url": imageURL,
		})

		colors, kmeansErr = prominentcolor.KmeansWithAll(
			prominentcolor.ArgumentDefault,
			imgNRGBA,
			prominentcolor.DefaultK,
			1,
			nil,
		)
		if kmeansErr != nil || len(colors) == 0 {
			return DefaultBrandColor, fmt.Errorf("no colors extracted from image")
		}
	}

	return domain.RGBColor{
		R: uint8(colors[0].Color.R),
		G: uint8(colors[0].Color.G),
		B: uint8(colors[0].Color.B),
	}, nil
}
