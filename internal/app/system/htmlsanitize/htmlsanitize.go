// Package htmlsanitize cleans user-supplied free text (descriptions) before
// it is stored, so markup can be rendered by the portal frontend safely.
package htmlsanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var policy = newPolicy()

func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowElements("u", "s", "mark")
	return p
}

// Sanitize removes scripts, event handlers, unsafe URLs and any element not
// allowed for user-generated content.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return policy.Sanitize(s)
}

// IsPlainText reports whether s contains no markup at all.
func IsPlainText(s string) bool {
	return !(strings.Contains(s, "<") && strings.Contains(s, ">"))
}

// Clean trims s and, if it carries markup, sanitizes it. Plain text is
// returned as typed so characters like "&" are not entity-escaped.
func Clean(s string) string {
	s = strings.TrimSpace(s)
	if IsPlainText(s) {
		return s
	}
	return strings.TrimSpace(Sanitize(s))
}
