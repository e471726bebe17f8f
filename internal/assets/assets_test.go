package assets

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writeTestPNG writes a small solid-color PNG and returns its path.
func writeTestPNG(t *testing.T, dir, name string) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: 10, G: 200, B: 30, A: 255})
		}
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encoding png: %v", err)
	}
	return path
}

func TestNewManagerRequiresCacheDir(t *testing.T) {
	if _, err := NewManager(""); err == nil {
		t.Error("expected error for empty cache dir")
	}
}

func TestGetBeforeLoadReturnsPlaceholder(t *testing.T) {
	m, err := NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	if got := m.Get("grass"); got != Placeholder {
		t.Error("Get before load should return the placeholder")
	}

	_, misses := m.Stats()
	if misses != 1 {
		t.Errorf("misses = %d, want 1", misses)
	}
}

func TestLoadAndGet(t *testing.T) {
	srcDir := t.TempDir()
	src := writeTestPNG(t, srcDir, "grass.png")

	m, err := NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	img, err := m.Load("grass.png", src)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if img.Bounds().Dx() != 4 {
		t.Errorf("loaded image width = %d, want 4", img.Bounds().Dx())
	}

	if got := m.Get("grass.png"); got != img {
		t.Error("Get after load should return the decoded image")
	}
}

func TestLoadDeduplicates(t *testing.T) {
	srcDir := t.TempDir()
	src := writeTestPNG(t, srcDir, "rock.png")

	m, err := NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	a, err := m.Load("rock.png", src)
	if err != nil {
		t.Fatalf("first Load: %v", err)
	}
	b, err := m.Load("rock.png", src)
	if err != nil {
		t.Fatalf("second Load: %v", err)
	}
	if a != b {
		t.Error("second Load should reuse the first load's image")
	}
}

func TestLoadAsyncResolves(t *testing.T) {
	srcDir := t.TempDir()
	src := writeTestPNG(t, srcDir, "sand.png")

	m, err := NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	errc := m.LoadAsync("sand.png", src)
	if err := <-errc; err != nil {
		t.Fatalf("async load: %v", err)
	}
	if m.Get("sand.png") == Placeholder {
		t.Error("Get after resolved async load should return the real image")
	}
}

func TestLoadMissingSourceKeepsPlaceholder(t *testing.T) {
	m, err := NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	if _, err := m.Load("missing.png", filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("expected error for missing source")
	}
	if m.Get("missing.png") != Placeholder {
		t.Error("failed load should keep serving the placeholder")
	}
}
