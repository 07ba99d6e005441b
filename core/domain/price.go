// ABOUTME: Domain types for item price data
// ABOUTME: Covers the latest-trade snapshot and the 180-day history series

package domain

import "time"

// PriceSnapshot is the latest buy/sell data for an item.
type PriceSnapshot struct {
	ItemID   string
	High     int64
	HighTime time.Time
	Low      int64
	LowTime  time.Time
}

// PricePoint is one day of the price history series.
type PricePoint struct {
	Timestamp time.Time
	Price     float64
}

// PriceSeries is the 180-day history for an item: daily trade prices plus
// the rolling average overlay.
type PriceSeries struct {
	ItemID  string
	Daily   []PricePoint
	Average []PricePoint
}

// PriceReport is the assembled output of the price pipeline.
type PriceReport struct {
	Record PriceRecord

	Snapshot PriceSnapshot

	// Margin is the signed low-minus-high margin string, e.g. "+50"
	// or "-50".
	Margin string

	// PotentialProfit is buy limit times margin; falls back to the margin
	// alone when the buy limit is not numeric ("Not set").
	PotentialProfit string

	// BuyAge and SellAge are humanized ages of the last trades.
	BuyAge  string
	SellAge string

	// ChartPath is a temporary PNG of the 180-day series. The caller owns
	// the file and deletes it after attaching.
	ChartPath string
}

// RGBColor is an RGB colour extracted from a thumbnail, used to tint the
// rendered embed.
type RGBColor struct {
	R uint8
	G uint8
	B uint8
}
