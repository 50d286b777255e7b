package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// NewFilesystem returns a Provider that writes artifacts beneath root. Paths
// supplied to the provider are cleaned and confined to the root directory.
func NewFilesystem(root string) Provider {
	return &filesystemProvider{root: filepath.Clean(root)}
}

type filesystemProvider struct {
	mu   sync.RWMutex
	root string
}

func (p *filesystemProvider) EnsureDir(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	abs, err := p.abs(path)
	if err != nil {
		return err
	}
	return os.MkdirAll(abs, 0o755)
}

func (p *filesystemProvider) Write(ctx context.Context, req WriteRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if req.Content == nil {
		return errors.New("storage: write requires content reader")
	}
	abs, err := p.abs(req.Path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return err
	}
	file, err := os.Create(abs)
	if err != nil {
		return fmt.Errorf("storage: create %s: %w", req.Path, err)
	}
	if _, err := io.Copy(file, req.Content); err != nil {
		_ = file.Close()
		return fmt.Errorf("storage: write %s: %w", req.Path, err)
	}
	return file.Close()
}

func (p *filesystemProvider) Read(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	abs, err := p.abs(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(abs)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: read %s: %w", path, err)
	}
	return data, nil
}

func (p *filesystemProvider) Remove(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	abs, err := p.abs(path)
	if err != nil {
		return err
	}
	if err := os.RemoveAll(abs); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("storage: remove %s: %w", path, err)
	}
	return nil
}

func (p *filesystemProvider) List(ctx context.Context, prefix string) ([]ArtifactInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	abs, err := p.abs(prefix)
	if err != nil {
		return nil, err
	}
	var infos []ArtifactInfo
	walkErr := filepath.WalkDir(abs, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil
			}
			return err
		}
		if entry.IsDir() {
			return nil
		}
		info, err := entry.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(p.rootDir(), path)
		if err != nil {
			return err
		}
		infos = append(infos, ArtifactInfo{
			Path:     filepath.ToSlash(rel),
			Size:     info.Size(),
			Modified: info.ModTime(),
		})
		return nil
	})
	if walkErr != nil && !errors.Is(walkErr, os.ErrNotExist) {
		return nil, walkErr
	}
	return infos, nil
}

// Reload points the provider at a new root directory.
func (p *filesystemProvider) Reload(ctx context.Context, root string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(root) == "" {
		return errors.New("storage: reload requires root")
	}
	p.mu.Lock()
	p.root = filepath.Clean(root)
	p.mu.Unlock()
	return nil
}

func (p *filesystemProvider) rootDir() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.root
}

func (p *filesystemProvider) abs(path string) (string, error) {
	cleaned := filepath.Clean("/" + filepath.FromSlash(strings.TrimSpace(path)))
	abs := filepath.Join(p.rootDir(), cleaned)
	if !strings.HasPrefix(abs, p.rootDir()) {
		return "", fmt.Errorf("storage: path %q escapes root", path)
	}
	return abs, nil
}
