package storage

import (
	"context"
	"errors"
	"io"
	"path"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryProvider keeps artifacts in process memory. It backs tests and
// dry-run builds where nothing should touch disk.
type MemoryProvider struct {
	mu      sync.RWMutex
	files   map[string][]byte
	meta    map[string]WriteRequest
	dirs    map[string]struct{}
	written []string
}

// NewMemory returns an empty in-memory provider.
func NewMemory() *MemoryProvider {
	return &MemoryProvider{
		files: map[string][]byte{},
		meta:  map[string]WriteRequest{},
		dirs:  map[string]struct{}{},
	}
}

func (p *MemoryProvider) EnsureDir(ctx context.Context, dir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.mu.Lock()
	p.dirs[normalize(dir)] = struct{}{}
	p.mu.Unlock()
	return nil
}

func (p *MemoryProvider) Write(ctx context.Context, req WriteRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if req.Content == nil {
		return errors.New("storage: write requires content reader")
	}
	data, err := io.ReadAll(req.Content)
	if err != nil {
		return err
	}
	key := normalize(req.Path)
	p.mu.Lock()
	p.files[key] = data
	p.meta[key] = req
	p.written = append(p.written, key)
	p.mu.Unlock()
	return nil
}

func (p *MemoryProvider) Read(ctx context.Context, target string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	data, ok := p.files[normalize(target)]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (p *MemoryProvider) Remove(ctx context.Context, target string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	prefix := normalize(target)
	p.mu.Lock()
	defer p.mu.Unlock()
	for key := range p.files {
		if key == prefix || strings.HasPrefix(key, prefix+"/") {
			delete(p.files, key)
			delete(p.meta, key)
		}
	}
	delete(p.dirs, prefix)
	return nil
}

func (p *MemoryProvider) List(ctx context.Context, prefix string) ([]ArtifactInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	prefix = normalize(prefix)
	p.mu.RLock()
	defer p.mu.RUnlock()
	var infos []ArtifactInfo
	for key, data := range p.files {
		if prefix != "" && prefix != "." && key != prefix && !strings.HasPrefix(key, prefix+"/") {
			continue
		}
		infos = append(infos, ArtifactInfo{Path: key, Size: int64(len(data)), Modified: time.Time{}})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Path < infos[j].Path })
	return infos, nil
}

// Contents returns the stored bytes for path, or nil when absent.
func (p *MemoryProvider) Contents(target string) []byte {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.files[normalize(target)]
}

// Request returns the write request recorded for path.
func (p *MemoryProvider) Request(target string) (WriteRequest, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	req, ok := p.meta[normalize(target)]
	return req, ok
}

// Written reports every write in order, including overwrites.
func (p *MemoryProvider) Written() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]string(nil), p.written...)
}

func normalize(target string) string {
	return strings.Trim(path.Clean("/"+strings.TrimSpace(target)), "/")
}
