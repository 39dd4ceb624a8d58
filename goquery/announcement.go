package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/gamecat"
)

// Ensure AnnouncementExtractor implements gamecat.AnnouncementExtractor.
var _ gamecat.AnnouncementExtractor = (*AnnouncementExtractor)(nil)

// AnnouncementExtractor extracts thread links from a forum listing page.
type AnnouncementExtractor struct {
	// Rows locates discussion rows.
	Rows SelectorChain
	// Links lists link selectors within a row in priority order.
	Links SelectorChain
	// BaseURL resolves relative links. The page URL is used when empty.
	BaseURL string
	// Limit caps the number of announcements returned.
	Limit int
}

// NewAnnouncementExtractor creates an AnnouncementExtractor with the
// default selectors. baseURL may be empty.
func NewAnnouncementExtractor(baseURL string) *AnnouncementExtractor {
	return &AnnouncementExtractor{
		Rows: SelectorChain{
			".structItem--thread",
			".discussionListItem",
			".thread-row",
			"[class*='thread']",
			"tr",
			"li",
		},
		Links: SelectorChain{
			".structItem-title a[href]",
			"a.title[href]",
			"h3 a[href]",
			"a[href]",
		},
		BaseURL: baseURL,
		Limit:   gamecat.MaxAnnouncements,
	}
}

// Extract returns announcements in document order. Rows without a usable
// link or title are skipped, as are repeated links.
func (e *AnnouncementExtractor) Extract(page *gamecat.RawPage) ([]*gamecat.Announcement, error) {
	doc, err := newDocument(page)
	if err != nil {
		return nil, err
	}

	base := parseBase(e.BaseURL)
	if base == nil {
		base = parseBase(page.URL)
	}
	if base == nil {
		return nil, gamecat.Errorf(gamecat.EINVALID, "absolute base URL required to resolve links on %q", page.URL)
	}

	limit := e.Limit
	if limit <= 0 {
		limit = gamecat.MaxAnnouncements
	}

	seen := make(map[string]bool)
	announcements := []*gamecat.Announcement{}
	e.Rows.Find(doc.Selection).EachWithBreak(func(_ int, row *goquery.Selection) bool {
		link := e.Links.Find(row).First()
		href, _ := link.Attr("href")
		resolved := resolveLink(base, href)
		if resolved == "" || seen[resolved] {
			return true
		}

		title := collapse(link.Text())
		if title == "" {
			title = collapse(link.AttrOr("title", ""))
		}
		if title == "" {
			return true
		}

		seen[resolved] = true
		announcements = append(announcements, &gamecat.Announcement{
			URL:   resolved,
			Title: strings.TrimSpace(title),
		})
		return len(announcements) < limit
	})

	return announcements, nil
}
