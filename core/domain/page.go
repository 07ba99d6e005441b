// ABOUTME: Core domain types for parsed wiki pages
// ABOUTME: Defines the PageDocument intermediate form shared by all record extractors

package domain

// MaxDisambiguationOptions is the hard ceiling on candidate titles returned
// for an ambiguous query. The presentation layer renders options as a
// dropdown, which cannot hold more than 25 entries.
const MaxDisambiguationOptions = 25

// PageDocument is the parsed representation of a fetched wiki page.
// Exactly one of Description or Options is populated: a page either has a
// usable lead paragraph or it is a disambiguation page listing candidates.
type PageDocument struct {
	// Title is the page's first-level heading.
	Title string

	// Description is the lead paragraph, with citation markers stripped.
	// Empty when the page is a disambiguation page.
	Description string

	// Options holds candidate article titles for disambiguation pages,
	// deduplicated in document order and truncated to
	// MaxDisambiguationOptions. Nil for regular articles.
	Options []string

	// Infobox maps property names to values in document order.
	Infobox Infobox

	// ThumbnailURL is the page's left-floated thumbnail image, if any.
	ThumbnailURL string

	// QuestDetails holds the quest-details sub-table when the page has
	// one. It is structured differently from the generic infobox and is
	// only consumed by the quest extractor.
	QuestDetails *Infobox
}

// IsDisambiguation reports whether the page resolved to a list of
// candidate articles rather than a single description.
func (d *PageDocument) IsDisambiguation() bool {
	return len(d.Options) > 0
}

// Infobox is an ordered view over a wiki infobox property table.
type Infobox struct {
	keys   []string
	values map[string]string
}

// NewInfobox returns an empty infobox.
func NewInfobox() Infobox {
	return Infobox{values: make(map[string]string)}
}

// Set stores a property, preserving first-seen insertion order.
func (i *Infobox) Set(key, value string) {
	if i.values == nil {
		i.values = make(map[string]string)
	}
	if _, ok := i.values[key]; !ok {
		i.keys = append(i.keys, key)
	}
	i.values[key] = value
}

// Get returns the value for key and whether it is present.
func (i *Infobox) Get(key string) (string, bool) {
	v, ok := i.values[key]
	return v, ok
}

// GetOr returns the value for key, or fallback when absent.
func (i *Infobox) GetOr(key, fallback string) string {
	if v, ok := i.values[key]; ok {
		return v
	}
	return fallback
}

// Has reports whether every given key is present.
func (i *Infobox) Has(keys ...string) bool {
	for _, k := range keys {
		if _, ok := i.values[k]; !ok {
			return false
		}
	}
	return true
}

// Keys returns the property names in document order.
func (i *Infobox) Keys() []string {
	return i.keys
}

// Len returns the number of properties.
func (i *Infobox) Len() int {
	return len(i.keys)
}
