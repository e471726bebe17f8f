// Package assets fetches and caches material bitmaps. Sources are anything
// go-getter understands (local paths, http, git), fetched once into a cache
// directory and decoded once per process.
package assets

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sync"

	getter "github.com/hashicorp/go-getter"
)

// Placeholder is the neutral bitmap substituted while a real asset is still
// loading. Painting and sculpting never block on asset loads.
var Placeholder image.Image = placeholderImage()

func placeholderImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.RGBA{R: 128, G: 128, B: 128, A: 255})
	return img
}

// Manager fetches, decodes and caches bitmaps by key. At most one load per
// key is ever in flight; later requests for the same key wait on or reuse
// the first.
type Manager struct {
	cacheDir string

	mu     sync.RWMutex
	images map[string]image.Image
	loads  map[string]*load

	// Stats
	hits   int
	misses int
}

type load struct {
	done chan struct{}
	img  image.Image
	err  error
}

// NewManager creates a manager that fetches into cacheDir.
func NewManager(cacheDir string) (*Manager, error) {
	if cacheDir == "" {
		return nil, fmt.Errorf("assets: cache directory required")
	}
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return nil, fmt.Errorf("assets: creating cache dir: %w", err)
	}
	return &Manager{
		cacheDir: cacheDir,
		images:   make(map[string]image.Image),
		loads:    make(map[string]*load),
	}, nil
}

// Get returns the decoded bitmap for key if it has resolved, or the
// Placeholder otherwise. It never blocks.
func (m *Manager) Get(key string) image.Image {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if img, ok := m.images[key]; ok {
		m.hits++
		return img
	}
	m.misses++
	return Placeholder
}

// Load fetches and decodes the source for key, blocking until done. Calls
// for a key already loaded (or loading) reuse the first load's result.
func (m *Manager) Load(key, src string) (image.Image, error) {
	l := m.startLoad(key, src)
	<-l.done
	return l.img, l.err
}

// LoadAsync starts a fire-and-forget load. Get(key) serves the Placeholder
// until the load resolves, then the real bitmap. A failed load keeps the
// Placeholder and reports through the returned channel.
func (m *Manager) LoadAsync(key, src string) <-chan error {
	errc := make(chan error, 1)
	l := m.startLoad(key, src)
	go func() {
		<-l.done
		errc <- l.err
		close(errc)
	}()
	return errc
}

// startLoad begins (or joins) the single load for key.
func (m *Manager) startLoad(key, src string) *load {
	m.mu.Lock()
	if l, ok := m.loads[key]; ok {
		m.mu.Unlock()
		return l
	}
	l := &load{done: make(chan struct{})}
	m.loads[key] = l
	m.mu.Unlock()

	go func() {
		defer close(l.done)

		img, err := m.fetchAndDecode(key, src)
		if err != nil {
			l.err = err
			// Leave the entry so the failure isn't retried every frame;
			// Get keeps serving the placeholder.
			return
		}
		l.img = img

		m.mu.Lock()
		m.images[key] = img
		m.mu.Unlock()
	}()
	return l
}

// fetchAndDecode pulls the source into the cache dir and decodes it.
func (m *Manager) fetchAndDecode(key, src string) (image.Image, error) {
	dst := filepath.Join(m.cacheDir, filepath.Base(key))

	if err := getter.GetFile(dst, src); err != nil {
		return nil, fmt.Errorf("assets: fetching %s: %w", src, err)
	}

	f, err := os.Open(dst)
	if err != nil {
		return nil, fmt.Errorf("assets: opening %s: %w", dst, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: decoding %s: %w", dst, err)
	}
	return img, nil
}

// Stats returns cache hit/miss counts.
func (m *Manager) Stats() (hits, misses int) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.hits, m.misses
}
