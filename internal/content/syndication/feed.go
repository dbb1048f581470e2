package syndication

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"time"

	"github.com/hientensai/blogapi/internal/content/post"
	"github.com/hientensai/blogapi/internal/platform/constants"
	"github.com/hientensai/blogapi/pkg/slug"
)

type rssFeed struct {
	XMLName      xml.Name   `xml:"rss"`
	Version      string     `xml:"version,attr"`
	ContentXMLNS string     `xml:"xmlns:content,attr"`
	AtomXMLNS    string     `xml:"xmlns:atom,attr"`
	Channel      rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title         string      `xml:"title"`
	Link          string      `xml:"link"`
	Description   string      `xml:"description"`
	Language      string      `xml:"language"`
	LastBuildDate string      `xml:"lastBuildDate"`
	AtomLink      rssAtomLink `xml:"atom:link"`
	Items         []rssItem   `xml:"item"`
}

type rssAtomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
	Type string `xml:"type,attr"`
}

type rssItem struct {
	Title       cdata         `xml:"title"`
	Link        string        `xml:"link"`
	GUID        rssGUID       `xml:"guid"`
	PubDate     string        `xml:"pubDate"`
	Description cdata         `xml:"description"`
	Enclosure   *rssEnclosure `xml:"enclosure,omitempty"`
	Categories  []string      `xml:"category"`
}

type rssGUID struct {
	Value       string `xml:",chardata"`
	IsPermaLink bool   `xml:"isPermaLink,attr"`
}

type rssEnclosure struct {
	URL    string `xml:"url,attr"`
	Length int    `xml:"length,attr"`
	Type   string `xml:"type,attr"`
}

type cdata struct {
	Text string `xml:",cdata"`
}

// Feed renders the RSS 2.0 document covering the most recent published
// posts.
func (service *Service) Feed(ctx context.Context) ([]byte, error) {
	posts, err := service.posts.AllPosts(ctx)
	if err != nil {
		return nil, err
	}

	feed := buildFeed(service.site, posts, time.Now())
	return marshalDocument(feed)
}

// buildFeed assembles the feed value from an already-ordered index slice
// (most recent first). Kept pure so tests can pin the document bytes.
func buildFeed(site Site, posts []post.Index, now time.Time) rssFeed {
	items := make([]rssItem, 0, constants.FeedItemLimit)
	for _, p := range posts {
		if len(items) == constants.FeedItemLimit {
			break
		}
		if slug.IsBlank(p.Slug) {
			continue
		}

		postURL := fmt.Sprintf("%s/posts/%s", site.URL, p.Slug)
		item := rssItem{
			Title:       cdata{Text: p.Title},
			Link:        postURL,
			GUID:        rssGUID{Value: postURL, IsPermaLink: true},
			PubDate:     p.Date.UTC().Format(http.TimeFormat),
			Description: cdata{Text: p.Excerpt},
		}
		if p.FeaturedImage != nil && p.FeaturedImage.URL != "" {
			item.Enclosure = &rssEnclosure{
				URL:  p.FeaturedImage.URL,
				Type: "image/jpeg",
			}
		}
		for _, category := range p.Categories {
			item.Categories = append(item.Categories, category.Name)
		}
		items = append(items, item)
	}

	return rssFeed{
		Version:      "2.0",
		ContentXMLNS: "http://purl.org/rss/1.0/modules/content/",
		AtomXMLNS:    "http://www.w3.org/2005/Atom",
		Channel: rssChannel{
			Title:         site.Title,
			Link:          site.URL,
			Description:   site.Description,
			Language:      site.Locale,
			LastBuildDate: now.UTC().Format(http.TimeFormat),
			AtomLink: rssAtomLink{
				Href: site.URL + "/feed",
				Rel:  "self",
				Type: "application/rss+xml",
			},
			Items: items,
		},
	}
}

func marshalDocument(v interface{}) ([]byte, error) {
	body, err := xml.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}
