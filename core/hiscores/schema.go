// ABOUTME: Fixed field ordering for the hiscores index_lite response
// ABOUTME: Position is the only correlation mechanism; this ordering is the data contract

package hiscores

// placeholderField marks reserved lines in the upstream response that
// carry no data.
const placeholderField = "----"

// FieldOrder is the ordered list of hiscore fields as served by the
// upstream API. The response carries no labels; lines are zipped against
// this list by position, and the response line count is asserted to match
// before zipping.
var FieldOrder = []string{
	"Overall",
	"Attack",
	"Defence",
	"Strength",
	"Hitpoints",
	"Ranged",
	"Prayer",
	"Magic",
	"Cooking",
	"Woodcutting",
	"Fletching",
	"Fishing",
	"Firemaking",
	"Crafting",
	"Smithing",
	"Mining",
	"Herblore",
	"Agility",
	"Thieving",
	"Slayer",
	"Farming",
	"Runecraft",
	"Hunter",
	"Construction",
	placeholderField,
	placeholderField,
	"Bounty Hunter - Hunter",
	"Bounty Hunter - Rogue",
	"Bounty Hunter (Legacy) - Hunter",
	"Bounty Hunter (Legacy) - Rogue",
	"Clue Scrolls (All)",
	"Clue Scrolls (Beginner)",
	"Clue Scrolls (Easy)",
	"Clue Scrolls (Medium)",
	"Clue Scrolls (Hard)",
	"Clue Scrolls (Elite)",
	"Clue Scrolls (Master)",
	"LMS - Rank",
	"PvP Arena - Rank",
	"Soul Wars Zeal",
	"Rifts Closed",
	"Colosseum Glory",
	"Collections Logged",
	"Abyssal Sire",
	"Alchemical Hydra",
	"Amoxliatl",
	"Araxxor",
	"Artio",
	"Barrows Chests",
	"Bryophyta",
	"Callisto",
	"Calvar'ion",
	"Cerberus",
	"Chambers of Xeric",
	"Chambers of Xeric: Challenge Mode",
	"Chaos Elemental",
	"Chaos Fanatic",
	"Commander Zilyana",
	"Corporeal Beast",
	"Crazy Archaeologist",
	"Dagannoth Prime",
	"Dagannoth Rex",
	"Dagannoth Supreme",
	"Deranged Archaeologist",
	"Duke Sucellus",
	"General Graardor",
	"Giant Mole",
	"Grotesque Guardians",
	"Hespori",
	"Kalphite Queen",
	"King Black Dragon",
	"Kraken",
	"Kree'Arra",
	"K'ril Tsutsaroth",
	"Lunar Chests",
	"Mimic",
	"Nex",
	"Nightmare",
	"Phosani's Nightmare",
	"Obor",
	"Phantom Muspah",
	"Sarachnis",
	"Scorpia",
	"Scurrius",
	"Skotizo",
	"Sol Heredit",
	"Spindel",
	"Tempoross",
	"The Gauntlet",
	"The Corrupted Gauntlet",
	"The Hueycoatl",
	"The Leviathan",
	"The Royal Titans",
	"The Whisperer",
	"Theatre of Blood",
	"Theatre of Blood: Hard Mode",
	"Thermonuclear Smoke Devil",
	"Tombs of Amascut",
	"Tombs of Amascut: Expert Mode",
	"TzKal-Zuk",
	"TzTok-Jad",
	"Vardorvis",
	"Venenatis",
	"Vet'ion",
	"Vorkath",
	"Wintertodt",
	"Zalcano",
	"Zulrah",
}
