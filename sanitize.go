package gamecat

// SanitizePolicy is the allow-list applied when cleaning HTML.
type SanitizePolicy struct {
	AllowedTags       []string `yaml:"allowed_tags"`
	AllowedAttributes []string `yaml:"allowed_attributes"`

	// KeepContent keeps the inner text of disallowed elements. When false,
	// disallowed elements are dropped together with their content.
	KeepContent bool `yaml:"keep_content"`
}

// DefaultSanitizePolicy returns the policy used for event content.
func DefaultSanitizePolicy() SanitizePolicy {
	return SanitizePolicy{
		AllowedTags: []string{
			// block
			"p", "div", "br", "hr", "h1", "h2", "h3", "h4", "h5", "h6", "blockquote", "pre",
			// inline
			"a", "span", "b", "strong", "i", "em", "u", "s", "small", "sub", "sup", "code", "mark",
			// lists
			"ul", "ol", "li", "dl", "dt", "dd",
			// tables
			"table", "thead", "tbody", "tfoot", "tr", "th", "td", "caption", "colgroup", "col",
			// media
			"img", "figure", "figcaption", "picture", "source", "video",
			// structure
			"section", "article", "header", "footer", "details", "summary",
		},
		AllowedAttributes: []string{
			"href", "src", "alt", "title", "style", "class", "width", "height", "target", "rel",
		},
		KeepContent: true,
	}
}

// Sanitizer reduces arbitrary HTML to an allow-listed subset.
type Sanitizer interface {
	// Sanitize cleans html according to the policy. Script and style
	// content and event-handler attributes are always removed, whatever
	// the policy says. Sanitizing already sanitized output is a no-op.
	Sanitize(html string, policy SanitizePolicy) string
}
