package catalog

import (
	"crypto/md5" //nolint:gosec,G501 // used as a stable lookup key, not for security
	"encoding/hex"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/feral-file/ff-game-pricer/internal/domain"
)

var (
	scriptProductIDPattern = regexp.MustCompile(`product_id\s*[:=]\s*['"]?(\d+)['"]?`)
	jsonIDPattern          = regexp.MustCompile(`"id"\s*:\s*"([^"]+)"`)
)

// page is a fetched catalog document together with its raw markup
type page struct {
	doc *goquery.Document
	raw string
	url string
}

// idStrategy extracts a catalog id from a page, reporting false when it found nothing
type idStrategy struct {
	source  domain.IDSource
	extract func(p *page) (string, bool)
}

// idStrategies are tried in order and the first id found wins
var idStrategies = []idStrategy{
	{source: domain.IDSourceProductName, extract: idFromProductName},
	{source: domain.IDSourceScript, extract: idFromScript},
	{source: domain.IDSourceDataAttribute, extract: idFromDataAttribute},
	{source: domain.IDSourceJSONFragment, extract: idFromJSONFragment},
	{source: domain.IDSourceURLHash, extract: idFromURLHash},
}

// extractID runs the strategy chain
func extractID(p *page) (string, domain.IDSource) {
	for _, s := range idStrategies {
		if id, ok := s.extract(p); ok {
			return id, s.source
		}
	}
	// idFromURLHash never fails, this is unreachable
	return urlHash(p.url), domain.IDSourceURLHash
}

// idFromProductName reads the canonical identity marker, e.g. <h1 id="product_name" title="6,910">
func idFromProductName(p *page) (string, bool) {
	title, ok := p.doc.Find("#product_name").First().Attr("title")
	if !ok {
		return "", false
	}
	id := strings.ReplaceAll(strings.TrimSpace(title), ",", "")
	return id, id != ""
}

func idFromScript(p *page) (string, bool) {
	var id string
	p.doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := s.Text()
		if !strings.Contains(text, "product_id") {
			return true
		}
		if m := scriptProductIDPattern.FindStringSubmatch(text); m != nil {
			id = m[1]
			return false
		}
		return true
	})
	return id, id != ""
}

func idFromDataAttribute(p *page) (string, bool) {
	id, ok := p.doc.Find("[data-product-id]").First().Attr("data-product-id")
	id = strings.TrimSpace(id)
	return id, ok && id != ""
}

func idFromJSONFragment(p *page) (string, bool) {
	m := jsonIDPattern.FindStringSubmatch(p.raw)
	if m == nil {
		return "", false
	}
	return m[1], true
}

func idFromURLHash(p *page) (string, bool) {
	return urlHash(p.url), true
}

// urlHash is the deterministic last-resort id derived from the page URL
func urlHash(rawURL string) string {
	sum := md5.Sum([]byte(rawURL)) //nolint:gosec,G401
	return hex.EncodeToString(sum[:])[:domain.CATALOG_URL_HASH_LENGTH]
}

// extractName reads the product name, falling back to the page title
func extractName(p *page) string {
	if name := strings.TrimSpace(p.doc.Find("#product_name").First().Text()); name != "" {
		return name
	}

	title := strings.TrimSpace(p.doc.Find("title").First().Text())
	if title == "" {
		return ""
	}
	if i := strings.Index(title, "|"); i >= 0 {
		title = strings.TrimSpace(title[:i])
	}
	if strings.Contains(title, "Price Guide") {
		title = strings.TrimSpace(strings.ReplaceAll(title, "Price Guide", ""))
	}
	return title
}

// parseIdentity extracts the identity record from a fetched product page
func parseIdentity(raw []byte, rawURL string) (*domain.ExtractedIdentity, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(raw)))
	if err != nil {
		return nil, err
	}

	p := &page{doc: doc, raw: string(raw), url: rawURL}
	id, source := extractID(p)
	platform := PlatformFromURL(rawURL)
	name := StripPlatform(extractName(p), platform)

	return &domain.ExtractedIdentity{
		CatalogID: id,
		Name:      name,
		Platform:  platform,
		SourceURL: rawURL,
		IDSource:  source,
		Degraded:  name == "" && source == domain.IDSourceURLHash,
	}, nil
}
