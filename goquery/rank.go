package goquery

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/gamecat"
)

// Ensure RankExtractor implements gamecat.RankExtractor.
var _ gamecat.RankExtractor = (*RankExtractor)(nil)

// minRankNameLength is the shortest rank name that is not treated as noise.
const minRankNameLength = 2

// minExpDigits is the shortest digit run accepted as an EXP figure.
const minExpDigits = 6

// digitCluster matches digit runs joined by single thousands-separator
// candidates (comma, space, no-break space).
var digitCluster = regexp.MustCompile(`\d+(?:[, \x{00A0}]\d+)*`)

// RankExtractor extracts rank records from a rank listing page.
type RankExtractor struct {
	// Candidates locates rank containers.
	Candidates SelectorChain
	// Name, Image and Bonus locate fields within one container.
	Name  []Strategy
	Image []Strategy
	Bonus []Strategy

	Bonuses gamecat.BonusTable
	Assets  gamecat.AssetResolver
}

// NewRankExtractor creates a RankExtractor with the default strategies.
// Either argument may be nil.
func NewRankExtractor(bonuses gamecat.BonusTable, assets gamecat.AssetResolver) *RankExtractor {
	return &RankExtractor{
		Candidates: SelectorChain{"li", ".rank-item", ".rank", "[class*='rank']"},
		Name: []Strategy{
			SelectorText{Selector: "h1, h2, h3, h4, h5, h6"},
			SelectorText{Selector: ".name"},
			SelectorText{Selector: ".title"},
			SelectorText{Selector: "[class*='name']"},
			SelectorText{Selector: "[class*='title']"},
			FirstLine{},
		},
		Image: []Strategy{
			FirstAttr{Selector: "img", Attrs: []string{"src", "data-src"}, Skip: isDataURI},
		},
		Bonus: []Strategy{
			SelectorText{Selector: ".bonus"},
			SelectorText{Selector: ".reward"},
			SelectorText{Selector: "[class*='bonus']"},
			SelectorText{Selector: "[class*='reward']"},
		},
		Bonuses: bonuses,
		Assets:  assets,
	}
}

// Extract returns the ranks found on the page in document order. IDs are
// positional: a candidate discarded as noise still consumes its index.
func (e *RankExtractor) Extract(page *gamecat.RawPage) ([]*gamecat.Rank, error) {
	doc, err := newDocument(page)
	if err != nil {
		return nil, err
	}
	base := parseBase(page.URL)

	ranks := []*gamecat.Rank{}
	e.Candidates.Find(doc.Selection).Each(func(i int, candidate *goquery.Selection) {
		name := FirstOf(candidate, e.Name)
		if utf8.RuneCountInString(name) < minRankNameLength {
			return
		}

		rank := &gamecat.Rank{
			ID:   fmt.Sprintf("rank-%d", i),
			Name: name,
		}

		if src := FirstOf(candidate, e.Image); src != "" {
			rank.Image = NormalizeURL(src, base)
		}
		if rank.Image == "" && e.Assets != nil {
			rank.Image = e.Assets.Resolve(name)
		}

		exp := ExtractExp(strings.Join(textNodes(candidate), "\n"))
		bonus := FirstOf(candidate, e.Bonus)
		if b, ok := e.Bonuses.Lookup(name); ok {
			if exp == "" {
				exp = b.Exp
			}
			if b.Bonus != "" {
				bonus = b.Bonus
			}
		}
		rank.Requirements = Requirements(exp, bonus)

		ranks = append(ranks, rank)
	})

	return ranks, nil
}

// ExtractExp returns the first number of at least 6 digits in text, with
// thousands separators removed. Returns "" if there is none.
//
// A separator only joins a head of 1 to 3 digits to following groups of
// exactly 3 digits, and one number uses one kind of separator. So
// "4 1500000" yields "1500000" and "4 500,000" yields "500000", while
// "1 500 000" and "12 250 000" are read as single grouped numbers.
func ExtractExp(text string) string {
	for _, cluster := range digitCluster.FindAllString(text, -1) {
		if exp := expFromCluster(cluster); exp != "" {
			return exp
		}
	}
	return ""
}

// expFromCluster reads numbers left to right from a cluster and returns the
// first with enough digits.
func expFromCluster(cluster string) string {
	groups, seps := splitCluster(cluster)
	for i, head := range groups {
		digits := head
		if len(head) <= 3 {
			var sep rune
			for j := i + 1; j < len(groups) && len(groups[j]) == 3; j++ {
				if sep == 0 {
					sep = seps[j-1]
				} else if seps[j-1] != sep {
					break
				}
				digits += groups[j]
			}
		}
		if len(digits) >= minExpDigits {
			return digits
		}
	}
	return ""
}

// splitCluster splits a digit cluster into its digit groups and the
// separators between them; seps[i] sits between groups[i] and groups[i+1].
func splitCluster(cluster string) (groups []string, seps []rune) {
	start := 0
	for i, r := range cluster {
		if r >= '0' && r <= '9' {
			continue
		}
		groups = append(groups, cluster[start:i])
		seps = append(seps, r)
		start = i + utf8.RuneLen(r)
	}
	return append(groups, cluster[start:]), seps
}

// Requirements assembles the human-readable requirements string from the
// non-empty parts.
func Requirements(exp, bonus string) string {
	var parts []string
	if exp = strings.TrimSpace(exp); exp != "" {
		parts = append(parts, "EXP Required: "+exp)
	}
	if bonus = strings.TrimSpace(bonus); bonus != "" {
		parts = append(parts, "Bonus: "+bonus)
	}
	return strings.Join(parts, " | ")
}
