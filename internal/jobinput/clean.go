package jobinput

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// cleanHTML reduces a job posting page to readable text, dropping chrome
// like navigation, scripts, and cookie banners.
func cleanHTML(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return stripTags(html)
	}

	doc.Find("script, style, nav, header, footer, iframe, noscript").Remove()
	doc.Find(".menu, .navigation, .social, .banner, .ads, .cookie, .popup").Remove()

	var textBlocks []string
	doc.Find("p, li, h1, h2, h3, h4, h5, h6").Each(func(i int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if len(text) > 0 {
			textBlocks = append(textBlocks, text)
		}
	})
	if len(textBlocks) > 0 {
		return strings.Join(textBlocks, "\n\n")
	}

	bodyText := strings.TrimSpace(doc.Find("body").Text())
	if len(bodyText) > 0 {
		return collapseSpace(bodyText)
	}
	return collapseSpace(doc.Text())
}

var (
	tagPattern   = regexp.MustCompile("<[^>]*>")
	spacePattern = regexp.MustCompile(`\s+`)
)

func stripTags(html string) string {
	return collapseSpace(tagPattern.ReplaceAllString(html, " "))
}

func collapseSpace(text string) string {
	return strings.TrimSpace(spacePattern.ReplaceAllString(text, " "))
}
