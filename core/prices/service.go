// ABOUTME: Price pipeline fetching live exchange data for tradeable items
// ABOUTME: Combines the latest snapshot, the catalogue detail and the 180-day series into a report

package prices

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	coreerrors "runebot-api/core/errors"

	"runebot-api/core/domain"
	"runebot-api/core/interfaces"
	"runebot-api/pkg/config"
	"runebot-api/pkg/utils/format"
)

// NatureRuneItemID is the exchange item id of the nature rune, the cost
// input of the high-alchemy margin.
const NatureRuneItemID = "561"

// ItemDetail is the catalogue detail document for an item: the icon, the
// examine text and the price trend buckets.
type ItemDetail struct {
	IconURL     string
	Description string
	Today       Trend
	Day30       Trend
	Day90       Trend
	Day180      Trend
}

// Trend is one price-change bucket from the catalogue detail document.
type Trend struct {
	Direction string
	Change    string
}

// Service runs the price pipeline against the live exchange APIs.
type Service struct {
	deps     interfaces.Dependencies
	cfg      config.PricesConfig
	renderer *ChartRenderer
}

// NewService creates a price service with the given dependencies.
func NewService(deps interfaces.Dependencies, cfg config.PricesConfig) *Service {
	return &Service{
		deps:     deps,
		cfg:      cfg,
		renderer: NewChartRenderer(),
	}
}

// Latest returns the most recent buy/sell snapshot for an item.
func (s *Service) Latest(ctx context.Context, itemID string) (domain.PriceSnapshot, error) {
	body, err := s.fetch(ctx, s.cfg.LatestURL+itemID)
	if err != nil {
		return domain.PriceSnapshot{}, err
	}

	var payload struct {
		Data map[string]struct {
			High     int64 `json:"high"`
			HighTime int64 `json:"highTime"`
			Low      int64 `json:"low"`
			LowTime  int64 `json:"lowTime"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return domain.PriceSnapshot{}, fmt.Errorf("failed to decode latest price response: %w", err)
	}

	entry, ok := payload.Data[itemID]
	if !ok {
		return domain.PriceSnapshot{}, fmt.Errorf("no latest price entry for item %s", itemID)
	}

	return domain.PriceSnapshot{
		ItemID:   itemID,
		High:     entry.High,
		HighTime: time.Unix(entry.HighTime, 0),
		Low:      entry.Low,
		LowTime:  time.Unix(entry.LowTime, 0),
	}, nil
}

// Detail returns the catalogue detail document for an item.
func (s *Service) Detail(ctx context.Context, itemID string) (ItemDetail, error) {
	body, err := s.fetch(ctx, s.cfg.DetailURL+itemID)
	if err != nil {
		return ItemDetail{}, err
	}

	var payload struct {
		Item struct {
			IconLarge   string `json:"icon_large"`
			Description string `json:"description"`
			Today       trendJSON `json:"today"`
			Day30       trendJSON `json:"day30"`
			Day90       trendJSON `json:"day90"`
			Day180      trendJSON `json:"day180"`
		} `json:"item"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ItemDetail{}, fmt.Errorf("failed to decode catalogue detail response: %w", err)
	}

	return ItemDetail{
		IconURL:     payload.Item.IconLarge,
		Description: payload.Item.Description,
		Today:       payload.Item.Today.trend(),
		Day30:       payload.Item.Day30.trend(),
		Day90:       payload.Item.Day90.trend(),
		Day180:      payload.Item.Day180.trend(),
	}, nil
}

type trendJSON struct {
	Trend  string          `json:"trend"`
	Change json.RawMessage `json:"change"`
}

// The catalogue API returns change as a number for "today" and a
// percentage string for the longer buckets.
func (t trendJSON) trend() Trend {
	change := strings.Trim(string(t.Change), `"`)
	return Trend{Direction: t.Trend, Change: change}
}

// Series returns the 180-day price history for an item, daily prices plus
// the rolling average, sorted by time.
func (s *Service) Series(ctx context.Context, itemID string) (domain.PriceSeries, error) {
	body, err := s.fetch(ctx, s.cfg.GraphURL+itemID+".json")
	if err != nil {
		return domain.PriceSeries{}, err
	}

	var payload struct {
		Daily   map[string]float64 `json:"daily"`
		Average map[string]float64 `json:"average"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return domain.PriceSeries{}, fmt.Errorf("failed to decode price graph response: %w", err)
	}

	series := domain.PriceSeries{
		ItemID:  itemID,
		Daily:   sortedPoints(payload.Daily),
		Average: sortedPoints(payload.Average),
	}
	if len(series.Daily) == 0 {
		return domain.PriceSeries{}, fmt.Errorf("empty price graph for item %s", itemID)
	}
	return series, nil
}

// sortedPoints converts the millisecond-keyed price map into a
// chronologically ordered slice.
func sortedPoints(raw map[string]float64) []domain.PricePoint {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, _ := strconv.ParseInt(keys[i], 10, 64)
		b, _ := strconv.ParseInt(keys[j], 10, 64)
		return a < b
	})

	points := make([]domain.PricePoint, 0, len(keys))
	for _, k := range keys {
		ms, err := strconv.ParseInt(k, 10, 64)
		if err != nil {
			continue
		}
		points = append(points, domain.PricePoint{
			Timestamp: time.UnixMilli(ms),
			Price:     raw[k],
		})
	}
	return points
}

// BuildReport runs the full price pipeline for an extracted price record:
// the latest snapshot, the margin figures, the trade ages and the rendered
// 180-day chart. Transport failures surface as NoDataError for the item
// title; the pipeline as a whole is bounded by the configured deadline.
func (s *Service) BuildReport(ctx context.Context, record domain.PriceRecord) (domain.PriceReport, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.TimeoutSeconds)*time.Second)
	defer cancel()

	snapshot, err := s.Latest(ctx, record.ItemID)
	if err != nil {
		return domain.PriceReport{}, s.pipelineError(record.Title, err)
	}

	series, err := s.Series(ctx, record.ItemID)
	if err != nil {
		return domain.PriceReport{}, s.pipelineError(record.Title, err)
	}

	chartPath, err := s.renderer.Render(series)
	if err != nil {
		s.deps.Logger.Warn("price chart render failed", map[string]interface{}{
			"item_id": record.ItemID,
			"error":   err.Error(),
		})
		chartPath = ""
	}

	now := time.Now()
	margin := snapshot.Low - snapshot.High

	return domain.PriceReport{
		Record:          record,
		Snapshot:        snapshot,
		Margin:          format.Signed(margin),
		PotentialProfit: potentialProfit(record.BuyLimit, margin),
		BuyAge:          format.Ago(snapshot.HighTime, now),
		SellAge:         format.Ago(snapshot.LowTime, now),
		ChartPath:       chartPath,
	}, nil
}

// AlchMargin computes the signed profit of high-alchemising an item at its
// current exchange price, net of one nature rune.
func (s *Service) AlchMargin(ctx context.Context, record domain.AlchemyRecord) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.TimeoutSeconds)*time.Second)
	defer cancel()

	highAlch, err := parseAmount(record.HighAlch)
	if err != nil {
		return "", coreerrors.NoAlchemyData(record.Title)
	}

	item, err := s.Latest(ctx, record.ItemID)
	if err != nil {
		return "", s.pipelineError(record.Title, err)
	}
	nature, err := s.Latest(ctx, NatureRuneItemID)
	if err != nil {
		return "", s.pipelineError(record.Title, err)
	}

	return format.Signed(highAlch - item.High - nature.High), nil
}

// pipelineError classifies a pipeline failure: deadline expiry becomes a
// DeadlineError, everything else a NoDataError carrying the cause.
func (s *Service) pipelineError(title string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &coreerrors.DeadlineError{Operation: "price lookup", Cause: err}
	}
	return coreerrors.NoPriceData(title, err)
}

func (s *Service) fetch(ctx context.Context, url string) ([]byte, error) {
	resp, err := s.deps.HTTPClient.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode(), url)
	}
	return io.ReadAll(resp.Body())
}

// potentialProfit is buy limit times margin. Buy limits from the infobox
// may carry separators or read "Not set"; non-numeric limits fall back to
// the margin alone.
func potentialProfit(buyLimit string, margin int64) string {
	limit, err := parseAmount(buyLimit)
	if err != nil {
		return format.Signed(margin)
	}
	return format.SignedGrouped(limit * margin)
}

func parseAmount(raw string) (int64, error) {
	cleaned := strings.NewReplacer(",", "", " ", "").Replace(raw)
	return strconv.ParseInt(cleaned, 10, 64)
}
