// Package sanitizer strips unwanted HTML from user-submitted free text
// (event descriptions, host bios) before it is sent to the remote API.
package sanitizer

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	basicPolicy  *bluemonday.Policy
	initOnce     sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()

		// Basic formatting only; no links, no media.
		basicPolicy = bluemonday.NewPolicy()
		basicPolicy.AllowElements(
			"p", "br",
			"strong", "b", "em", "i",
			"ul", "ol", "li",
		)
	})
}

// PlainText strips all HTML, returning trimmed plain text. Use for
// single-line inputs like titles, names, and locations.
func PlainText(s string) string {
	initPolicies()
	return strings.TrimSpace(strictPolicy.Sanitize(s))
}

// BasicHTML allows basic formatting tags and strips everything dangerous:
// scripts, event handlers, javascript: URLs. Use for multi-line
// user-generated content such as descriptions and bios.
func BasicHTML(s string) string {
	initPolicies()
	return strings.TrimSpace(basicPolicy.Sanitize(s))
}
