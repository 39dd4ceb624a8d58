package goquery_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/fwojciec/gamecat"
	"github.com/fwojciec/gamecat/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listingURL = "https://forum.example.com/forums/announcements/"

func TestAnnouncementExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts thread rows and resolves links against the origin", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<body>
<div class="structItemContainer">
	<div class="structItem structItem--thread">
		<div class="structItem-title"><a href="/threads/patch-1-2.10/">Patch 1.2</a></div>
	</div>
	<div class="structItem structItem--thread">
		<div class="structItem-title"><a href="https://forum.example.com/threads/event.11/#post-3">Spring  Event</a></div>
	</div>
	<div class="structItem structItem--thread">
		<div class="structItem-title"></div>
	</div>
</div>
</body>
</html>`

		e := goquery.NewAnnouncementExtractor("")
		got, err := e.Extract(&gamecat.RawPage{URL: listingURL, HTML: html})

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, &gamecat.Announcement{URL: "https://forum.example.com/threads/patch-1-2.10/", Title: "Patch 1.2"}, got[0])
		assert.Equal(t, &gamecat.Announcement{URL: "https://forum.example.com/threads/event.11/", Title: "Spring Event"}, got[1])
	})

	t.Run("caps results", func(t *testing.T) {
		t.Parallel()

		var b strings.Builder
		b.WriteString("<ul>")
		for i := range 25 {
			fmt.Fprintf(&b, `<li><a href="/t/%d">Thread %d</a></li>`, i, i)
		}
		b.WriteString("</ul>")

		got, err := goquery.NewAnnouncementExtractor("").Extract(&gamecat.RawPage{URL: listingURL, HTML: b.String()})

		require.NoError(t, err)
		require.Len(t, got, gamecat.MaxAnnouncements)
		assert.Equal(t, "https://forum.example.com/t/19", got[19].URL)
	})

	t.Run("skips unusable and repeated rows", func(t *testing.T) {
		t.Parallel()

		html := `<ul>
	<li><a href="javascript:void(0)">Bad</a></li>
	<li><a href="mailto:admin@example.com">Mail</a></li>
	<li><a href="/t/1"></a></li>
	<li><a href="/t/2" title="Titled"><img src="icon.png"></a></li>
	<li><a href="/t/3">Three</a></li>
	<li><a href="/t/3">Three again</a></li>
</ul>`

		got, err := goquery.NewAnnouncementExtractor("").Extract(&gamecat.RawPage{URL: listingURL, HTML: html})

		require.NoError(t, err)
		assert.Equal(t, []*gamecat.Announcement{
			{URL: "https://forum.example.com/t/2", Title: "Titled"},
			{URL: "https://forum.example.com/t/3", Title: "Three"},
		}, got)
	})

	t.Run("prefers configured base URL", func(t *testing.T) {
		t.Parallel()

		html := `<table><tr><td><a href="/threads/1">One</a></td></tr></table>`

		e := goquery.NewAnnouncementExtractor("https://community.example.com")
		got, err := e.Extract(&gamecat.RawPage{HTML: html})

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "https://community.example.com/threads/1", got[0].URL)
	})

	t.Run("rejects page without a base to resolve against", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewAnnouncementExtractor("").Extract(&gamecat.RawPage{HTML: `<ul></ul>`})

		require.Error(t, err)
		assert.Equal(t, gamecat.EINVALID, gamecat.ErrorCode(err))
	})
}
