// ABOUTME: Price extractor pulling exchange properties out of a parsed page
// ABOUTME: Requires Value, Exchange, Buy limit and Item ID infobox fields

package extract

import (
	"runebot-api/core/domain"
	coreerrors "runebot-api/core/errors"
)

// Price builds a PriceRecord from a parsed page. Untradeable items lack
// the Exchange fields and yield a NoDataError.
func Price(page *domain.PageDocument) (*domain.PriceRecord, error) {
	if !page.Infobox.Has("Value", "Exchange", "Buy limit", "Item ID") {
		return nil, coreerrors.NoPriceData(page.Title, nil)
	}

	value, _ := page.Infobox.Get("Value")
	exchange, _ := page.Infobox.Get("Exchange")
	buyLimit, _ := page.Infobox.Get("Buy limit")
	itemID, _ := page.Infobox.Get("Item ID")

	return &domain.PriceRecord{
		Title:        page.Title,
		Examine:      page.Infobox.GetOr("Examine", ""),
		ItemID:       itemID,
		Value:        value,
		Exchange:     exchange,
		BuyLimit:     buyLimit,
		ThumbnailURL: page.ThumbnailURL,
	}, nil
}
