package audit

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// spaMarkers are framework mount-point signatures that identify a
// client-rendered application.
var spaMarkers = []string{"__next", "_nuxt", "ng-app", "data-reactroot"}

// staticSizeLimit is the HTML length under which a script-free, form-free
// page is considered static.
const staticSizeLimit = 50000

var (
	fintechKeywords = []string{"payment", "bank", "finance", "invest", "crypto", "wallet", "stripe", "paypal"}
	ecomKeywords    = []string{"shop", "cart", "checkout", "product", "store", "buy"}
	saasKeywords    = []string{"dashboard", "login", "signup", "subscription", "pricing", "api"}
)

// DetectSiteType guesses the target's architecture from markup signatures.
// The api value is reserved for future classifier extensions and unknown for
// the error path; neither is produced here.
func DetectSiteType(html string) SiteType {
	lower := strings.ToLower(html)

	for _, marker := range spaMarkers {
		if strings.Contains(lower, marker) {
			return SiteTypeSPA
		}
	}

	hasForm := strings.Contains(lower, "<form")
	hasScript := strings.Contains(lower, "<script")
	if !hasForm && !hasScript && len(html) < staticSizeLimit {
		return SiteTypeStatic
	}

	return SiteTypeDynamic
}

// DetectIndustry guesses the target's sector from keyword membership in the
// URL or page body, in priority order: fintech, then e-commerce, then SaaS.
// A match anywhere counts, scripts and comments included. No match means
// marketing, never unknown.
func DetectIndustry(rawURL, html string) IndustryCategory {
	urlLower := strings.ToLower(rawURL)
	htmlLower := strings.ToLower(html)

	contains := func(keywords []string) bool {
		for _, k := range keywords {
			if strings.Contains(urlLower, k) || strings.Contains(htmlLower, k) {
				return true
			}
		}
		return false
	}

	switch {
	case contains(fintechKeywords):
		return IndustryFintech
	case contains(ecomKeywords):
		return IndustryEcommerce
	case contains(saasKeywords):
		return IndustrySaaS
	default:
		return IndustryMarketing
	}
}

// PageInfo carries display metadata scraped from the fetched page.
type PageInfo struct {
	Title     string
	Generator string
}

// ExtractPageInfo pulls the document title and meta generator for the
// persisted record. Parse failures yield an empty PageInfo; metadata is
// cosmetic and never affects scoring.
func ExtractPageInfo(html string) PageInfo {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return PageInfo{}
	}

	info := PageInfo{
		Title: strings.TrimSpace(doc.Find("title").First().Text()),
	}
	if gen, ok := doc.Find(`meta[name="generator"]`).First().Attr("content"); ok {
		info.Generator = strings.TrimSpace(gen)
	}
	return info
}
