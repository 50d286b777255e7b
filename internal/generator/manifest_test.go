package generator

import (
	"testing"
	"time"
)

func TestManifestRoundTrip(t *testing.T) {
	manifest := newBuildManifest()
	manifest.GeneratedAt = time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	manifest.setPage(manifestPage{
		Route:    "/blog/first-post/",
		Kind:     string(KindPost),
		Output:   "dist/blog/first-post/index.html",
		Template: "post",
		Hash:     "abc123",
	})
	manifest.setAsset(manifestAsset{
		Source:   "css/site.css",
		Output:   "dist/css/site.css",
		Checksum: "def456",
		Size:     128,
	})

	data, err := manifest.marshal()
	if err != nil {
		t.Fatalf("marshal returned error: %v", err)
	}

	parsed, err := parseManifest(data)
	if err != nil {
		t.Fatalf("parseManifest returned error: %v", err)
	}
	if !parsed.shouldSkipPage("/blog/first-post/", "abc123", "dist/blog/first-post/index.html") {
		t.Fatal("parsed manifest should skip the unchanged page")
	}
	if parsed.shouldSkipPage("/blog/first-post/", "changed", "dist/blog/first-post/index.html") {
		t.Fatal("changed hash must not skip")
	}
	if !parsed.shouldSkipAsset("css/site.css", "def456", "dist/css/site.css") {
		t.Fatal("parsed manifest should skip the unchanged asset")
	}
	if parsed.Version != manifestFileVersion {
		t.Fatalf("unexpected manifest version %d", parsed.Version)
	}
}

func TestParseManifestEmptyInput(t *testing.T) {
	manifest, err := parseManifest(nil)
	if err != nil {
		t.Fatalf("empty input should yield a fresh manifest, got %v", err)
	}
	if len(manifest.Pages) != 0 || len(manifest.Assets) != 0 {
		t.Fatal("fresh manifest must start empty")
	}
}
