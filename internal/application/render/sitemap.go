package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/beevik/etree"

	"github.com/maitr/sitebuilder-api/internal/domain"
	"github.com/maitr/sitebuilder-api/internal/domain/entity"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// Sitemap genera el sitemap.xml del sitio publicado: una entrada por página
// navegable, con home en la raíz. Requiere una URL de publicación fijada.
func Sitemap(cfg *entity.Configuration, lastMod time.Time) ([]byte, error) {
	base := strings.TrimRight(cfg.Publishing.PublishedURL, "/")
	if base == "" {
		return nil, fmt.Errorf("%w: la configuración no tiene URL publicada", domain.ErrNotPublishable)
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	urlset := doc.CreateElement("urlset")
	urlset.CreateAttr("xmlns", sitemapNamespace)

	for _, page := range visiblePages(cfg) {
		loc := base
		if page.ID != "home" {
			loc = base + "/" + page.ID
		}
		url := urlset.CreateElement("url")
		url.CreateElement("loc").SetText(loc)
		url.CreateElement("lastmod").SetText(lastMod.UTC().Format("2006-01-02"))
		priority := "0.8"
		if page.ID == "home" {
			priority = "1.0"
		}
		url.CreateElement("priority").SetText(priority)
	}

	doc.Indent(2)
	return doc.WriteToBytes()
}
