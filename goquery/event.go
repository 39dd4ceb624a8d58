package goquery

import (
	"html"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/gamecat"
)

// Ensure EventExtractor implements gamecat.EventExtractor.
var _ gamecat.EventExtractor = (*EventExtractor)(nil)

const (
	// excerptLines is the number of visible text lines used for the
	// fallback content.
	excerptLines = 3
	// maxExcerptRunes bounds the fallback content length.
	maxExcerptRunes = 500
	// dateLayout formats the fallback date.
	dateLayout = "2006-01-02"
)

// EventExtractor extracts an event record from an event detail page.
type EventExtractor struct {
	Title []Strategy
	Date  []Strategy
	Image []Strategy
	// Body lists message body containers in priority order. The first
	// container whose sanitized HTML is not blank supplies the content.
	Body SelectorChain

	Sanitizer gamecat.Sanitizer
	Policy    gamecat.SanitizePolicy
	Assets    gamecat.AssetResolver

	// Now returns the current time. It supplies the date when the page
	// has none.
	Now func() time.Time
}

// NewEventExtractor creates an EventExtractor with the default strategies.
// Content is always sanitized with KeepContent enabled.
func NewEventExtractor(sanitizer gamecat.Sanitizer, policy gamecat.SanitizePolicy, assets gamecat.AssetResolver) *EventExtractor {
	return &EventExtractor{
		Title: []Strategy{
			SelectorText{Selector: "h1"},
		},
		Date: []Strategy{
			FirstAttr{Selector: "time", Attrs: []string{"datetime"}},
			SelectorText{Selector: "time"},
		},
		Image: []Strategy{
			FirstAttr{Selector: "img", Attrs: []string{"src", "data-src"}, Skip: isDataURI},
		},
		Body: SelectorChain{
			".message-body",
			".bbWrapper",
			".post-content",
			".entry-content",
			"article",
			".content",
			"main",
		},
		Sanitizer: sanitizer,
		Policy:    policy,
		Assets:    assets,
		Now:       time.Now,
	}
}

// Extract builds the event record for page. The returned event always has
// content; EEXTRACT is returned when the page has no visible text at all.
func (e *EventExtractor) Extract(page *gamecat.RawPage) (*gamecat.Event, error) {
	doc, err := newDocument(page)
	if err != nil {
		return nil, err
	}
	base := parseBase(page.URL)

	event := &gamecat.Event{
		URL:      page.URL,
		Title:    FirstOf(doc.Selection, e.Title),
		Date:     FirstOf(doc.Selection, e.Date),
		Category: gamecat.EventCategory,
	}
	if event.Title == "" {
		event.Title = gamecat.DefaultEventTitle
	}
	if event.Date == "" {
		event.Date = e.now().Format(dateLayout)
	}

	if src := FirstOf(doc.Selection, e.Image); src != "" {
		event.Image = NormalizeURL(src, base)
	}
	if event.Image == "" && e.Assets != nil {
		event.Image = e.Assets.Resolve(event.Title)
	}

	event.Content = e.body(doc.Selection)
	if event.Content == "" {
		event.Content = excerpt(doc.Selection)
	}
	if event.Content == "" {
		return nil, gamecat.Errorf(gamecat.EEXTRACT, "no content found at %s", page.URL)
	}

	return event, nil
}

// body returns the sanitized inner HTML of the first body container that
// is not blank after sanitization.
func (e *EventExtractor) body(sel *goquery.Selection) string {
	if e.Sanitizer == nil {
		return ""
	}
	policy := e.Policy
	policy.KeepContent = true

	for _, selector := range e.Body {
		container := sel.Find(selector).First()
		if container.Length() == 0 {
			continue
		}
		inner, err := container.Html()
		if err != nil {
			continue
		}
		if clean := strings.TrimSpace(e.Sanitizer.Sanitize(inner, policy)); clean != "" {
			return clean
		}
	}
	return ""
}

func (e *EventExtractor) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

// excerpt wraps the first lines of visible text in a paragraph.
func excerpt(sel *goquery.Selection) string {
	lines := VisibleLines(sel)
	if len(lines) == 0 {
		return ""
	}
	if len(lines) > excerptLines {
		lines = lines[:excerptLines]
	}
	text := strings.Join(lines, " ")
	if utf8.RuneCountInString(text) > maxExcerptRunes {
		text = string([]rune(text)[:maxExcerptRunes]) + "…"
	}
	return "<p>" + html.EscapeString(text) + "</p>"
}
