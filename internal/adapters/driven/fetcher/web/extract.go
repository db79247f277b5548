package web

import (
	"html"
	"regexp"
	"strings"
)

// Pre-compiled regular expressions for paragraph extraction.
var (
	scriptTag   = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleTag    = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	noscriptTag = regexp.MustCompile(`(?is)<noscript[^>]*>.*?</noscript>`)
	commentTag  = regexp.MustCompile(`(?s)<!--.*?-->`)
	pBlock      = regexp.MustCompile(`(?is)<p[^>]*>(.*?)</p>`)
	allTags     = regexp.MustCompile(`<[^>]+>`)
	whitespace  = regexp.MustCompile(`\s+`)
)

// extractParagraphs pulls the text of every <p> element out of a page,
// in document order, joined with single spaces. Paragraph tags are
// where article publishers keep prose; navigation, captions and widgets
// live in other elements and are left behind.
func extractParagraphs(page string) string {
	page = scriptTag.ReplaceAllString(page, "")
	page = styleTag.ReplaceAllString(page, "")
	page = noscriptTag.ReplaceAllString(page, "")
	page = commentTag.ReplaceAllString(page, "")

	var parts []string
	for _, match := range pBlock.FindAllStringSubmatch(page, -1) {
		text := allTags.ReplaceAllString(match[1], "")
		text = html.UnescapeString(text)
		text = strings.TrimSpace(whitespace.ReplaceAllString(text, " "))
		if text == "" {
			continue
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, " ")
}
