package ingest

import "fmt"

// TruncateURL shortens a URL for display, keeping the end which is more informative.
func TruncateURL(url string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 4 {
		return url[:min(len(url), maxLen)]
	}
	if len(url) <= maxLen {
		return url
	}
	return "..." + url[len(url)-maxLen+3:]
}

// FormatProgress renders a progress event as a single status line.
// Started and finished events render as "".
func FormatProgress(event ProgressEvent) string {
	switch event.Type {
	case ProgressCompleted:
		return fmt.Sprintf("[%d/%d] ok   %s", event.Completed, event.Total, TruncateURL(event.URL, 60))
	case ProgressFailed:
		return fmt.Sprintf("[%d/%d] fail %s: %v", event.Completed, event.Total, TruncateURL(event.URL, 60), event.Error)
	default:
		return ""
	}
}
