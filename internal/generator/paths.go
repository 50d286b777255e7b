package generator

import (
	"path"
	"strings"
)

// buildOutputPath maps a root-relative route to its pretty-URL output file,
// e.g. "/blog/hello" becomes "blog/hello/index.html".
func buildOutputPath(route string) string {
	clean := strings.Trim(strings.TrimSpace(route), "/")
	if clean == "" {
		return "index.html"
	}
	return path.Join(clean, "index.html")
}

func joinOutputPath(base string, rel string) string {
	if strings.TrimSpace(base) == "" {
		return strings.TrimLeft(rel, "/")
	}
	return path.Join(strings.Trim(base, "/"), rel)
}
