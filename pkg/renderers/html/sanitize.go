package html

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	headerPolicyOnce sync.Once
	headerPolicy     *bluemonday.Policy
)

// sanitizeHeaderMarkup cleans the caller-supplied header fragment before it is
// inlined unescaped into the report shell.
func sanitizeHeaderMarkup(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(headerSanitizer().Sanitize(trimmed))
}

func headerSanitizer() *bluemonday.Policy {
	headerPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements(
			"h1", "h2", "h3", "p", "span", "div", "strong", "em",
			"code", "small", "ul", "ol", "li", "br",
		)
		policy.AllowAttrs("class").Globally()
		policy.AllowAttrs("href", "title").OnElements("a")
		policy.AllowElements("a")
		policy.AllowStandardURLs()
		headerPolicy = policy
	})
	return headerPolicy
}
