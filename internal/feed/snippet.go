package feed

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// RSS descriptions routinely carry markup; the pipeline only wants a
// short plain-text snippet.
const snippetMaxRunes = 120

// CleanSnippet strips HTML from a feed description, collapses
// whitespace, and caps the result at snippetMaxRunes runes.
func CleanSnippet(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	text := trimmed
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(trimmed)); err == nil {
		text = doc.Text()
	}

	text = strings.Join(strings.Fields(text), " ")
	runes := []rune(text)
	if len(runes) > snippetMaxRunes {
		text = string(runes[:snippetMaxRunes])
	}
	return text
}
