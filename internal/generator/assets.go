package generator

import (
	"bytes"
	"context"
	"io/fs"
	"mime"
	"path"
	"strings"

	"github.com/goliatone/go-garden/pkg/storage"
)

type assetCopySummary struct {
	Built   int
	Skipped int
}

// copyAssets mirrors the static asset tree into the output directory,
// skipping unchanged files on incremental builds.
func (s *service) copyAssets(
	ctx context.Context,
	writer artifactWriter,
	manifest *buildManifest,
	baseDir string,
) (assetCopySummary, error) {
	summary := assetCopySummary{}
	if s.deps.Assets == nil {
		return summary, nil
	}

	dirCache := map[string]struct{}{}
	if baseDir != "" {
		dirCache[baseDir] = struct{}{}
		if err := writer.EnsureDir(ctx, baseDir); err != nil {
			return summary, err
		}
	}

	err := fs.WalkDir(s.deps.Assets, ".", func(source string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		data, err := fs.ReadFile(s.deps.Assets, source)
		if err != nil {
			return err
		}
		destRel := path.Join("assets", source)
		fullPath := joinOutputPath(baseDir, destRel)
		checksum := computeHash(data)

		if manifest != nil && s.cfg.Incremental && manifest.shouldSkipAsset(source, checksum, fullPath) {
			summary.Skipped++
			return nil
		}
		if err := ensureDir(ctx, writer, dirCache, path.Dir(fullPath)); err != nil {
			return err
		}
		if err := writer.WriteFile(ctx, storage.WriteRequest{
			Path:        fullPath,
			Content:     bytes.NewReader(data),
			Size:        int64(len(data)),
			Category:    storage.CategoryAsset,
			ContentType: detectAssetContentType(destRel),
			Checksum:    checksum,
			Metadata:    map[string]string{"source": source},
		}); err != nil {
			return err
		}
		summary.Built++
		if manifest != nil {
			manifest.setAsset(manifestAsset{
				Source:   source,
				Output:   fullPath,
				Checksum: checksum,
				Size:     int64(len(data)),
				CopiedAt: s.now(),
			})
		}
		return nil
	})
	return summary, err
}

func detectAssetContentType(name string) string {
	ext := strings.ToLower(path.Ext(name))
	if ext == "" {
		return "application/octet-stream"
	}
	if resolved := mime.TypeByExtension(ext); resolved != "" {
		return resolved
	}
	return "application/octet-stream"
}
