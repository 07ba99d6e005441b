// ABOUTME: Alchemy extractor pulling item alchemy values out of a parsed page
// ABOUTME: Requires Value, Low alch, High alch and Item ID infobox fields

package extract

import (
	"runebot-api/core/domain"
	coreerrors "runebot-api/core/errors"
)

// Alchemy builds an AlchemyRecord from a parsed page. Pages without the
// type-defining fields yield a NoDataError: the page exists, it just is
// not an alchemisable item.
func Alchemy(page *domain.PageDocument) (*domain.AlchemyRecord, error) {
	if !page.Infobox.Has("Value", "Low alch", "High alch", "Item ID") {
		return nil, coreerrors.NoAlchemyData(page.Title)
	}

	lowAlch, _ := page.Infobox.Get("Low alch")
	highAlch, _ := page.Infobox.Get("High alch")
	value, _ := page.Infobox.Get("Value")
	itemID, _ := page.Infobox.Get("Item ID")

	return &domain.AlchemyRecord{
		Title:        page.Title,
		Examine:      page.Infobox.GetOr("Examine", ""),
		ItemID:       itemID,
		Value:        value,
		LowAlch:      lowAlch,
		HighAlch:     highAlch,
		Exchange:     page.Infobox.GetOr("Exchange", ""),
		BuyLimit:     page.Infobox.GetOr("Buy limit", ""),
		ThumbnailURL: page.ThumbnailURL,
	}, nil
}
