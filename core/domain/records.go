// ABOUTME: Typed records produced by the content-type extractors
// ABOUTME: Each record carries the fields the presentation layer renders for that content type

package domain

// FieldNotAvailable is the sentinel rendered for optional monster fields
// that the page does not provide. The presentation layer expects a fixed
// field set, so absent values are filled in rather than omitted.
const FieldNotAvailable = "N/A"

// AlchemyRecord holds the alchemy values of a tradeable item.
type AlchemyRecord struct {
	Title    string
	Examine  string
	ItemID   string
	Value    string
	LowAlch  string
	HighAlch string
	// Exchange and BuyLimit are optional; alchemy pages without exchange
	// data still render.
	Exchange     string
	BuyLimit     string
	ThumbnailURL string
}

// PriceRecord holds the exchange properties of a tradeable item,
// before live price data is attached by the price pipeline.
type PriceRecord struct {
	Title        string
	Examine      string
	ItemID       string
	Value        string
	Exchange     string
	BuyLimit     string
	ThumbnailURL string
}

// MonsterRecord holds bestiary data for a monster page. Optional fields
// default to FieldNotAvailable.
type MonsterRecord struct {
	Title        string
	Description  string
	CombatLevel  string
	Aggressive   string
	Poison       string
	Venom        string
	Cannons      string
	Thralls      string
	AttackStyle  string
	Poisonous    string
	RespawnTime  string
	MonsterIDs   []string
	ThumbnailURL string
}

// QuestRecord holds quest metadata joined from the infobox and the
// quest-details sub-table.
type QuestRecord struct {
	Title              string
	Description        string
	Series             string
	OfficialDifficulty string
	Members            string
	StartPoint         string
}

// MinigameRecord holds minigame metadata. IconURL comes from a secondary
// lookup against the master minigames listing and falls back to a static
// placeholder.
type MinigameRecord struct {
	Title          string
	Description    string
	Released       string
	Type           string
	Members        string
	Location       string
	Participants   string
	RewardCurrency string
	Tutorial       string
	Skills         string
	Requirements   string
	IconURL        string
	// IconMatched is false when the fallback icon is in use; the
	// presentation layer then uses the fixed no-icon colour.
	IconMatched bool
}

// ArticleRecord is the generic wiki lookup result: either a summarised
// article or a set of disambiguation options.
type ArticleRecord struct {
	Title        string
	Description  string
	Options      []string
	Infobox      Infobox
	ThumbnailURL string
}
