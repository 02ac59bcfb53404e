package service

import "pagecast/internal/domain/entity"

// PageRenderer turns page data into self-contained HTML documents.
type PageRenderer interface {
	// Render produces the document for one intent variant.
	Render(intent entity.IntentType, data *entity.PageData) (string, error)

	// RenderFallback produces the minimal page shown when nothing resolves.
	RenderFallback(requestPath string) string

	// RenderSitemap produces sitemap.xml for the given live pages.
	RenderSitemap(baseURL string, pages []*entity.GeneratedPage) ([]byte, error)

	// RenderRobots produces robots.txt pointing at the sitemap.
	RenderRobots(baseURL string) []byte
}
