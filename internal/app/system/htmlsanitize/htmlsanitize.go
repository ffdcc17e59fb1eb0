// internal/app/system/htmlsanitize/htmlsanitize.go

// Package htmlsanitize cleans user-supplied text before storage.
package htmlsanitize

import "github.com/microcosm-cc/bluemonday"

var (
	ugc    = bluemonday.UGCPolicy()
	strict = bluemonday.StrictPolicy()
)

// Sanitize keeps safe user-generated HTML and strips scripts, event
// handlers, and javascript: URLs.
func Sanitize(s string) string {
	return ugc.Sanitize(s)
}

// StripTags removes all markup, leaving plain text. Event titles,
// locations, and descriptions are stored this way.
func StripTags(s string) string {
	return strict.Sanitize(s)
}
