package generator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tdewolff/minify/v2"
	minhtml "github.com/tdewolff/minify/v2/html"
)

// PostProcessor rewrites rendered HTML before it is persisted. Deploy targets
// contribute processors for concerns like analytics snippets or path
// prefixing.
type PostProcessor func(page *RenderedPage) error

func (s *service) postProcess(page *RenderedPage, processors []PostProcessor) error {
	for _, process := range processors {
		if process == nil {
			continue
		}
		if err := process(page); err != nil {
			return fmt.Errorf("generator: post-process %s: %w", page.Route, err)
		}
	}
	if s.cfg.MinifyHTML {
		minified, err := minifyHTML(page.HTML)
		if err != nil {
			return fmt.Errorf("generator: minify %s: %w", page.Route, err)
		}
		page.HTML = minified
	}
	return nil
}

var htmlMinifier = func() *minify.M {
	m := minify.New()
	m.AddFunc("text/html", minhtml.Minify)
	return m
}()

func minifyHTML(input string) (string, error) {
	return htmlMinifier.String("text/html", input)
}

var rootRelativeAttr = regexp.MustCompile(`(href|src)="(/[^/"][^"]*|/)"`)

// PrefixProcessor rewrites root-relative href/src attributes so the page
// works when hosted under a path prefix.
func PrefixProcessor(basePath string) PostProcessor {
	prefix := normalizeBasePath(basePath)
	if prefix == "" {
		return nil
	}
	return func(page *RenderedPage) error {
		page.HTML = rootRelativeAttr.ReplaceAllStringFunc(page.HTML, func(match string) string {
			sub := rootRelativeAttr.FindStringSubmatch(match)
			if len(sub) != 3 {
				return match
			}
			target := sub[2]
			if strings.HasPrefix(target, prefix+"/") || target == prefix {
				return match
			}
			return fmt.Sprintf(`%s="%s%s"`, sub[1], prefix, target)
		})
		return nil
	}
}

// SnippetProcessor injects markup before the closing body tag, appending it
// when the page has no body element.
func SnippetProcessor(snippet string) PostProcessor {
	snippet = strings.TrimSpace(snippet)
	if snippet == "" {
		return nil
	}
	return func(page *RenderedPage) error {
		if idx := strings.LastIndex(page.HTML, "</body>"); idx >= 0 {
			page.HTML = page.HTML[:idx] + snippet + "\n" + page.HTML[idx:]
			return nil
		}
		page.HTML += "\n" + snippet
		return nil
	}
}
