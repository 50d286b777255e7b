package generator

import (
	"fmt"
	"html"
	"sort"
	"strings"
	"time"

	"github.com/goliatone/go-garden/internal/collections"
)

const maxFeedItems = 100

type feedItem struct {
	Title       string
	Summary     string
	Link        string
	GUID        string
	PublishedAt time.Time
}

func (s *service) buildFeedItems(buildCtx *BuildContext, helpers TemplateHelpers) []feedItem {
	if buildCtx == nil || buildCtx.Library == nil {
		return nil
	}
	return feedItemsForPosts(buildCtx.Library.Posts, helpers)
}

func feedItemsForPosts(posts []*collections.Post, helpers TemplateHelpers) []feedItem {
	items := make([]feedItem, 0, len(posts))
	seen := map[string]struct{}{}
	for _, post := range posts {
		if post == nil || post.Slug == "" {
			continue
		}
		if _, ok := seen[post.Slug]; ok {
			continue
		}
		seen[post.Slug] = struct{}{}
		items = append(items, feedItem{
			Title:       post.Title,
			Summary:     normalizeWhitespace(post.Description),
			Link:        helpers.AbsoluteURL("/blog/" + post.Slug),
			GUID:        post.ID.String(),
			PublishedAt: post.PublishedAt,
		})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].PublishedAt.Equal(items[j].PublishedAt) {
			return items[i].GUID < items[j].GUID
		}
		return items[i].PublishedAt.After(items[j].PublishedAt)
	})
	if len(items) > maxFeedItems {
		items = append([]feedItem(nil), items[:maxFeedItems]...)
	}
	return items
}

func buildRSSFeed(site SiteMetadata, items []feedItem, generatedAt time.Time) string {
	baseLink := feedBaseLink(site)
	title := strings.TrimSpace(site.Title)
	if title == "" {
		title = baseLink
	}
	description := strings.TrimSpace(site.Description)
	if description == "" {
		description = "Latest posts"
	}

	var builder strings.Builder
	builder.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	builder.WriteString(`<rss version="2.0">` + "\n")
	builder.WriteString("  <channel>\n")
	builder.WriteString(fmt.Sprintf("    <title>%s</title>\n", escapeXML(title)))
	builder.WriteString(fmt.Sprintf("    <link>%s</link>\n", escapeXML(baseLink)))
	builder.WriteString(fmt.Sprintf("    <description>%s</description>\n", escapeXML(description)))
	builder.WriteString(fmt.Sprintf("    <lastBuildDate>%s</lastBuildDate>\n", generatedAt.UTC().Format(time.RFC1123Z)))
	for _, item := range items {
		pub := item.PublishedAt
		if pub.IsZero() {
			pub = generatedAt
		}
		builder.WriteString("    <item>\n")
		builder.WriteString(fmt.Sprintf("      <title>%s</title>\n", escapeXML(item.Title)))
		builder.WriteString(fmt.Sprintf("      <link>%s</link>\n", escapeXML(item.Link)))
		builder.WriteString(fmt.Sprintf("      <guid isPermaLink=\"false\">%s</guid>\n", escapeXML(item.GUID)))
		builder.WriteString(fmt.Sprintf("      <pubDate>%s</pubDate>\n", pub.UTC().Format(time.RFC1123Z)))
		if item.Summary != "" {
			builder.WriteString(fmt.Sprintf("      <description>%s</description>\n", escapeXML(item.Summary)))
		}
		builder.WriteString("    </item>\n")
	}
	builder.WriteString("  </channel>\n")
	builder.WriteString(`</rss>` + "\n")
	return builder.String()
}

func buildAtomFeed(site SiteMetadata, items []feedItem, generatedAt time.Time) string {
	baseLink := feedBaseLink(site)
	feedID := baseLink + "/feed.atom.xml"
	title := strings.TrimSpace(site.Title)
	if title == "" {
		title = baseLink
	}

	var builder strings.Builder
	builder.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	builder.WriteString(`<feed xmlns="http://www.w3.org/2005/Atom">` + "\n")
	builder.WriteString(fmt.Sprintf("  <id>%s</id>\n", escapeXML(feedID)))
	builder.WriteString(fmt.Sprintf("  <title>%s</title>\n", escapeXML(title)))
	builder.WriteString(fmt.Sprintf("  <updated>%s</updated>\n", generatedAt.UTC().Format(time.RFC3339)))
	if author := strings.TrimSpace(site.Author); author != "" {
		builder.WriteString("  <author>\n")
		builder.WriteString(fmt.Sprintf("    <name>%s</name>\n", escapeXML(author)))
		builder.WriteString("  </author>\n")
	}
	builder.WriteString(fmt.Sprintf(`  <link rel="alternate" href="%s" />`+"\n", escapeXML(baseLink)))
	builder.WriteString(fmt.Sprintf(`  <link rel="self" href="%s" />`+"\n", escapeXML(feedID)))
	for _, item := range items {
		updated := item.PublishedAt
		if updated.IsZero() {
			updated = generatedAt
		}
		builder.WriteString("  <entry>\n")
		builder.WriteString(fmt.Sprintf("    <id>%s</id>\n", escapeXML(item.GUID)))
		builder.WriteString(fmt.Sprintf("    <title>%s</title>\n", escapeXML(item.Title)))
		builder.WriteString(fmt.Sprintf(`    <link href="%s" />`+"\n", escapeXML(item.Link)))
		builder.WriteString(fmt.Sprintf("    <updated>%s</updated>\n", updated.UTC().Format(time.RFC3339)))
		if !item.PublishedAt.IsZero() {
			builder.WriteString(fmt.Sprintf("    <published>%s</published>\n", item.PublishedAt.UTC().Format(time.RFC3339)))
		}
		if item.Summary != "" {
			builder.WriteString(fmt.Sprintf("    <summary>%s</summary>\n", escapeXML(item.Summary)))
		}
		builder.WriteString("  </entry>\n")
	}
	builder.WriteString(`</feed>` + "\n")
	return builder.String()
}

func feedBaseLink(site SiteMetadata) string {
	base := strings.TrimRight(strings.TrimSpace(site.BaseURL), "/")
	if base == "" {
		base = "http://localhost"
	}
	if prefix := normalizeBasePath(site.BasePath); prefix != "" {
		base += prefix
	}
	return base
}

func normalizeWhitespace(input string) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}
	return strings.Join(strings.Fields(input), " ")
}

func escapeXML(value string) string {
	return html.EscapeString(value)
}
