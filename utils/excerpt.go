package utils

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractExcerpt strips HTML from blog content and returns the first maxLen
// characters of plain text, cut on a word boundary
func ExtractExcerpt(html string, maxLen int) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return truncateWords(html, maxLen)
	}
	doc.Find("script,style").Remove()
	text := strings.Join(strings.Fields(doc.Text()), " ")
	return truncateWords(text, maxLen)
}

func truncateWords(s string, maxLen int) string {
	s = strings.TrimSpace(s)
	if len(s) <= maxLen {
		return s
	}
	cut := s[:maxLen]
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		cut = cut[:idx]
	}
	return cut + "..."
}
