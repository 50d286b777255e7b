package markdown

import (
	"context"
	"testing"
	"testing/fstest"
	"time"
)

func testContentFS() fstest.MapFS {
	return fstest.MapFS{
		"experience/acme.md": &fstest.MapFile{
			Data: []byte("---\ntitle: Acme Corp\ndescription: Backend work\nstartDate: 2021-03-01\ncurrent: true\nlogo: /assets/logos/acme.svg\n---\nShipped things.\n"),
			ModTime: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		},
		"posts/hello-world.md": &fstest.MapFile{
			Data: []byte("---\ntitle: Hello World\ndescription: First post\npublishedAt: 2023-11-02\ntags:\n  - go\n  - garden\n---\n# Hi\n\nwelcome\n"),
			ModTime: time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC),
		},
		"posts/notes.txt": &fstest.MapFile{
			Data: []byte("not markdown"),
		},
		"projects/garden.md": &fstest.MapFile{
			Data: []byte("---\ntitle: Garden\ndescription: Digital garden generator\nurl: https://example.com/garden\nfeatured: true\ntechs:\n  - go\n  - goldmark\n---\nProject body.\n"),
		},
	}
}

func newTestLoader() *Loader {
	return NewLoader(testContentFS(), LoaderConfig{
		BasePath:    "content",
		Collections: []string{"experience", "posts", "projects"},
		Recursive:   true,
	})
}

func TestLoadFileParsesFrontMatter(t *testing.T) {
	loader := newTestLoader()

	result, err := loader.LoadFile(context.Background(), "experience/acme.md", LoadParams{})
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	doc := result.Document
	if doc.Collection != "experience" {
		t.Fatalf("expected experience collection, got %q", doc.Collection)
	}
	if doc.FrontMatter.Title != "Acme Corp" {
		t.Fatalf("expected title, got %q", doc.FrontMatter.Title)
	}
	if !doc.FrontMatter.Current {
		t.Fatal("expected current flag")
	}
	if doc.FrontMatter.EndDate != nil {
		t.Fatalf("expected no end date, got %v", doc.FrontMatter.EndDate)
	}
	if doc.FrontMatter.StartDate.IsZero() {
		t.Fatal("expected start date to parse")
	}
	if len(doc.Checksum) == 0 {
		t.Fatal("expected checksum to be populated")
	}
}

func TestLoadDirectorySkipsNonMatchingFiles(t *testing.T) {
	loader := newTestLoader()

	results, err := loader.LoadDirectory(context.Background(), ".", LoadParams{})
	if err != nil {
		t.Fatalf("LoadDirectory: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("expected 3 markdown documents, got %d", len(results))
	}
	// Deterministic ordering by path.
	if results[0].Document.FilePath != "experience/acme.md" {
		t.Fatalf("expected experience first, got %s", results[0].Document.FilePath)
	}
	for _, result := range results {
		if result.Document.Collection == "" {
			t.Fatalf("expected collection inferred for %s", result.Document.FilePath)
		}
	}
}

func TestLoadDirectoryCollectionOverride(t *testing.T) {
	loader := newTestLoader()

	results, err := loader.LoadDirectory(context.Background(), "posts", LoadParams{Collection: "writing"})
	if err != nil {
		t.Fatalf("LoadDirectory: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 document, got %d", len(results))
	}
	if results[0].Document.Collection != "writing" {
		t.Fatalf("expected override collection, got %q", results[0].Document.Collection)
	}
}

func TestFrontMatterRawIncludesCustomKeys(t *testing.T) {
	source := []byte("---\ntitle: With Custom\ndescription: d\nlayout: wide\n---\nbody\n")

	meta, body, err := ParseFrontMatter(source)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}
	if string(body) != "body\n" {
		t.Fatalf("expected body without delimiters, got %q", body)
	}
	if meta.Custom["layout"] != "wide" {
		t.Fatalf("expected custom key preserved, got %v", meta.Custom)
	}
	if meta.Raw["title"] != "With Custom" {
		t.Fatalf("expected raw map to include title, got %v", meta.Raw)
	}
	if meta.Raw["draft"] != false {
		t.Fatalf("expected draft default recorded, got %v", meta.Raw)
	}
}
