package interfaces

import "time"

// MarkdownParser defines how raw Markdown bytes are converted into HTML.
// Implementations should be reusable across invocations without locking.
type MarkdownParser interface {
	// Parse converts Markdown into HTML using the parser's default settings.
	Parse(markdown []byte) ([]byte, error)
	// ParseWithOptions converts Markdown into HTML using the supplied overrides.
	ParseWithOptions(markdown []byte, opts ParseOptions) ([]byte, error)
}

// ParseOptions customises Markdown parsing behaviour, keeping option names
// readable for configuration unmarshalling and CLI flags.
type ParseOptions struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// Document represents a Markdown file with parsed metadata and content. The
// struct is shared between the interfaces package and internal implementations
// so consumers can depend on a stable contract.
type Document struct {
	FilePath     string
	Collection   string
	FrontMatter  FrontMatter
	Body         []byte
	BodyHTML     []byte
	LastModified time.Time
	// Checksum stores a digest of the original file content (typically SHA-256)
	// so incremental builds can detect changes without re-rendering unchanged files.
	Checksum []byte
}

// FrontMatter models metadata extracted from Markdown files. The named fields
// cover the three garden collections (experience, posts, projects); everything
// else lands in the Custom map so themes can carry domain-specific values.
type FrontMatter struct {
	Title       string         `yaml:"title" json:"title"`
	Slug        string         `yaml:"slug" json:"slug"`
	Description string         `yaml:"description" json:"description"`
	Logo        string         `yaml:"logo" json:"logo"`
	URL         string         `yaml:"url" json:"url"`
	Repo        string         `yaml:"repo" json:"repo"`
	Tags        []string       `yaml:"tags" json:"tags"`
	Techs       []string       `yaml:"techs" json:"techs"`
	PublishedAt time.Time      `yaml:"publishedAt" json:"published_at"`
	StartDate   time.Time      `yaml:"startDate" json:"start_date"`
	EndDate     *time.Time     `yaml:"endDate" json:"end_date,omitempty"`
	Current     bool           `yaml:"current" json:"current"`
	Featured    bool           `yaml:"featured" json:"featured"`
	Draft       bool           `yaml:"draft" json:"draft"`
	Weight      int            `yaml:"weight" json:"weight"`
	Custom      map[string]any `yaml:",inline" json:"custom"`
	Raw         map[string]any `yaml:"-" json:"raw"`
}

// LoadOptions fine-tunes how documents are discovered and parsed from disk.
type LoadOptions struct {
	Recursive *bool
	Pattern   string
	Parser    ParseOptions
}
