package render

import (
	"encoding/xml"
	"strings"
	"time"

	"pagecast/internal/domain/entity"
	"pagecast/internal/errors"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// RenderSitemap lists every live page. Pages with an expiry change daily,
// the rest weekly.
func (e *Engine) RenderSitemap(baseURL string, pages []*entity.GeneratedPage) ([]byte, error) {
	base := strings.TrimSuffix(baseURL, "/")
	set := urlSet{XMLNS: sitemapNamespace, URLs: make([]sitemapURL, 0, len(pages))}
	for _, p := range pages {
		if p == nil || !p.IsLive() {
			continue
		}
		u := sitemapURL{
			Loc:        base + "/" + strings.Trim(p.FilePath, "/"),
			ChangeFreq: "weekly",
			Priority:   priorityFor(p.IntentType),
		}
		if p.ExpiresAt != nil {
			u.ChangeFreq = "daily"
		}
		if ts := lastModified(p); !ts.IsZero() {
			u.LastMod = ts.UTC().Format(time.RFC3339)
		}
		set.URLs = append(set.URLs, u)
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "marshal sitemap")
	}
	return append([]byte(xml.Header), out...), nil
}

// RenderRobots allows everything and points crawlers at the sitemap.
func (e *Engine) RenderRobots(baseURL string) []byte {
	base := strings.TrimSuffix(baseURL, "/")
	var b strings.Builder
	b.WriteString("User-agent: *\nAllow: /\n")
	if base != "" {
		b.WriteString("\nSitemap: " + base + "/sitemap.xml\n")
	}
	return []byte(b.String())
}

func priorityFor(intent entity.IntentType) string {
	switch intent {
	case entity.IntentDirect, entity.IntentBrandedLocal:
		return "0.8"
	case entity.IntentServiceUrgent:
		return "0.7"
	default:
		return "0.6"
	}
}

func lastModified(p *entity.GeneratedPage) time.Time {
	if p.PublishedAt != nil {
		return *p.PublishedAt
	}
	return p.UpdatedAt
}
