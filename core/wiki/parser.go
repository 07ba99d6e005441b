// ABOUTME: HTML parser turning fetched wiki pages into PageDocument
// ABOUTME: Handles disambiguation, quick-guide, level-up-table and stub special cases

package wiki

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"runebot-api/core/domain"
	coreerrors "runebot-api/core/errors"
)

// disambiguationPhrases mark pages that list candidate articles instead
// of answering the query. Matched case-insensitively against the body.
var disambiguationPhrases = []string{
	"may refer to",
	"could refer to",
	"it can refer to:",
	"can mean any of the following:",
	"can refer to one of the following:",
}

// citationMarkers are reference footnotes stripped from visible text.
var citationMarkers = []string{"[1]", "[2]", "[3]"}

// infoboxValueNoise is inline annotation text stripped from infobox
// values.
var infoboxValueNoise = []string{"(info)", "(Update)", "[1]", "[2]", "[3]"}

const missingPageText = "This page doesn't exist on the wiki."

// ParseOptions configures a Parser.
type ParseOptions struct {
	// MinDescriptionLength is the minimum visible length for a lead
	// paragraph; shorter candidates mark the article as a stub.
	MinDescriptionLength int

	// SiteURL is the scheme://host prefix used to absolutize relative
	// image paths.
	SiteURL string
}

// Parser parses fetched wiki HTML into PageDocuments.
type Parser struct {
	opts ParseOptions
}

// NewParser creates a parser with the given options.
func NewParser(opts ParseOptions) *Parser {
	if opts.MinDescriptionLength <= 0 {
		opts.MinDescriptionLength = 34
	}
	return &Parser{opts: opts}
}

// Parse builds a PageDocument from raw page HTML. It returns
// *errors.NotFoundError when the page body reports a missing article and
// *errors.StubArticleError when no usable description can be extracted.
func (p *Parser) Parse(html io.Reader) (*domain.PageDocument, error) {
	doc, err := goquery.NewDocumentFromReader(html)
	if err != nil {
		return nil, coreerrors.WrapError(err, "parse page HTML")
	}

	title := strings.TrimSpace(doc.Find("h1.firstHeading").First().Text())

	body := doc.Find("div.mw-parser-output").First()
	bodyText := body.Text()
	if strings.Contains(bodyText, missingPageText) {
		return nil, &coreerrors.NotFoundError{Slug: title}
	}

	page := &domain.PageDocument{
		Title:        title,
		Infobox:      p.parseInfobox(doc),
		ThumbnailURL: p.parseThumbnail(doc),
	}

	if isDisambiguation(bodyText) {
		options := parseDisambiguationOptions(body)
		if len(options) > 0 {
			page.Options = options
			return page, nil
		}
	}

	description := p.leadParagraph(body)

	canonical, _ := doc.Find("link[rel=canonical]").Attr("href")
	if strings.Contains(bodyText, "/Quick guide") {
		description = parseQuickGuide(body, canonical)
	}
	if strings.Contains(canonical, "/Level_up_table") {
		description = "This is a level up table page. To view more information about this page, click the button below."
	}

	if len(description) < p.opts.MinDescriptionLength {
		return nil, &coreerrors.StubArticleError{Title: title}
	}

	page.Description = description
	p.parseQuestDetails(doc, page)
	return page, nil
}

// leadParagraph returns the first body paragraph whose visible text, with
// citation markers removed, meets the minimum length.
func (p *Parser) leadParagraph(body *goquery.Selection) string {
	var description string
	body.Find("p").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := strings.TrimSpace(stripMarkers(s.Text(), citationMarkers))
		if len(text) >= p.opts.MinDescriptionLength {
			description = text
			return false
		}
		return true
	})
	return description
}

// isDisambiguation reports whether the body text contains any
// disambiguation phrase.
func isDisambiguation(bodyText string) bool {
	lower := strings.ToLower(bodyText)
	for _, phrase := range disambiguationPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// parseDisambiguationOptions collects candidate titles from list links,
// falling back to the first table's cells, deduplicated in document order
// and capped at the dropdown limit.
func parseDisambiguationOptions(body *goquery.Selection) []string {
	var options []string
	body.Find("ul a").Each(func(_ int, link *goquery.Selection) {
		title, ok := link.Attr("title")
		if !ok {
			return
		}
		// Links into the RuneScape 3 wiki namespace 404 on this wiki.
		if strings.Contains(title, "rsw") {
			return
		}
		options = append(options, title)
	})

	if len(options) == 0 {
		body.Find("table").First().Find("td a").Each(func(_ int, link *goquery.Selection) {
			if title, ok := link.Attr("title"); ok {
				options = append(options, title)
			}
		})
	}

	return dedupeOptions(options)
}

// dedupeOptions removes duplicates preserving first-seen order and
// truncates to the dropdown limit.
func dedupeOptions(options []string) []string {
	seen := make(map[string]struct{}, len(options))
	out := make([]string, 0, len(options))
	for _, option := range options {
		if _, ok := seen[option]; ok {
			continue
		}
		seen[option] = struct{}{}
		out = append(out, option)
		if len(out) == domain.MaxDisambiguationOptions {
			break
		}
	}
	return out
}

// parseQuickGuide synthesizes a description for quick-guide pages: a
// deep link per section heading, prefixed "Part N:".
func parseQuickGuide(body *goquery.Selection, pageURL string) string {
	var b strings.Builder
	b.WriteString("This is a quick guide page. Use the links below to display more information about each section:\n\n")
	count := 1
	body.Find("span.mw-headline").Each(func(_ int, heading *goquery.Selection) {
		text := heading.Text()
		anchor := strings.ReplaceAll(text, " ", "_")
		fmt.Fprintf(&b, "Part %d: [%s](%s#%s)\n", count, text, pageURL, anchor)
		count++
	})
	return b.String()
}

// parseInfobox extracts the key/value property tables. Rows named
// "Icon"/"Minimap icon" or carrying an image instead of text are excluded
// from the textual infobox; full-width image rows populate the "Image"
// key instead. Malformed rows are skipped.
func (p *Parser) parseInfobox(doc *goquery.Document) domain.Infobox {
	infobox := domain.NewInfobox()

	doc.Find("table.infobox").Each(func(_ int, table *goquery.Selection) {
		table.Find("tr").Each(func(_ int, row *goquery.Selection) {
			header := row.Find("th").First()
			cell := row.Find("td").First()

			if header.Length() == 0 || cell.Length() == 0 {
				// Full-width image rows carry the article image.
				img := row.Find("td.infobox-image img, td.infobox-full-width-content img").First()
				if src, ok := img.Attr("src"); ok {
					infobox.Set("Image", p.absoluteURL(src))
				}
				return
			}

			name := strings.TrimSpace(header.Text())
			if name == "" {
				return
			}
			if name == "Icon" || name == "Minimap icon" {
				return
			}

			value := strings.TrimSpace(stripMarkers(cell.Text(), infoboxValueNoise))
			infobox.Set(name, value)
		})
	})

	return infobox
}

// parseQuestDetails reads the quest-details sub-table, which is
// structured differently from the generic infobox.
func (p *Parser) parseQuestDetails(doc *goquery.Document, page *domain.PageDocument) {
	details := doc.Find("table.questdetails").First()
	if details.Length() == 0 {
		return
	}

	questDetails := domain.NewInfobox()
	details.Find("tr").Each(func(_ int, row *goquery.Selection) {
		name := strings.TrimSpace(row.Find("th").First().Text())
		value := strings.TrimSpace(row.Find("td").First().Text())
		if name == "" || value == "" {
			return
		}
		questDetails.Set(name, value)
	})

	if questDetails.Len() > 0 {
		page.QuestDetails = &questDetails
	}
}

// parseThumbnail extracts the left-floated figure image. Absence is not
// an error.
func (p *Parser) parseThumbnail(doc *goquery.Document) string {
	img := doc.Find("figure.mw-halign-left img").First()
	src, ok := img.Attr("src")
	if !ok {
		return ""
	}
	return p.absoluteURL(src)
}

// absoluteURL prefixes relative image paths with the site URL.
func (p *Parser) absoluteURL(src string) string {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		return src
	}
	return p.opts.SiteURL + src
}

// stripMarkers removes every marker occurrence from s.
func stripMarkers(s string, markers []string) string {
	for _, marker := range markers {
		s = strings.ReplaceAll(s, marker, "")
	}
	return s
}
