package syndication

import "fmt"

// Robots renders the robots.txt body pointing crawlers at the sitemap.
// The JSON API under /api/ is not for indexing.
func (service *Service) Robots() []byte {
	return []byte(fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /api/\n\nSitemap: %s/sitemap.xml\n", service.site.URL))
}
