// Package markdown turns frontmatter-prefixed Markdown files into documents
// the content model loader can validate and the generator can render. It keeps
// the filesystem walking, frontmatter extraction, and goldmark rendering in
// one place so the collections service stays free of parsing concerns.
package markdown
