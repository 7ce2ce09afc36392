package fonts

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"testing/fstest"
)

func TestCacheParsesOnce(t *testing.T) {
	var mu sync.Mutex
	loads := 0
	c := NewCache(func(name string) ([]byte, error) {
		mu.Lock()
		loads++
		mu.Unlock()
		return EmbeddedLoader(name)
	})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := c.Get(RegularFile); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	a, _ := c.Get(RegularFile)
	b, _ := c.Get(RegularFile)
	if a != b {
		t.Error("Get returned different fonts for the same name")
	}
	if loads != 1 {
		t.Errorf("loader called %d times, want 1", loads)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestCacheDoesNotCacheFailures(t *testing.T) {
	// Long enough for a table directory header, with a bad magic.
	data := []byte("not a font file!")
	c := NewCache(func(string) ([]byte, error) { return data, nil })

	if _, err := c.Get("broken.ttf"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("Get() error = %v, want ErrUnsupportedFormat", err)
	}
	data = minimalFont().build()
	if _, err := c.Get("broken.ttf"); err != nil {
		t.Errorf("Get() after fix error = %v", err)
	}
}

func TestCacheUnknownEmbeddedFont(t *testing.T) {
	c := NewCache(nil)
	if _, err := c.Get("Missing.ttf"); !errors.Is(err, ErrFontNotFound) {
		t.Errorf("Get() error = %v, want ErrFontNotFound", err)
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
}

func TestFSLoader(t *testing.T) {
	fsys := fstest.MapFS{
		"fonts/Custom.ttf": &fstest.MapFile{Data: minimalFont().build()},
	}
	c := NewCache(FSLoader(fsys))

	if _, err := c.Get("fonts/Custom.ttf"); err != nil {
		t.Errorf("Get() error = %v", err)
	}
	if _, err := c.Get("fonts/Other.ttf"); !errors.Is(err, ErrFontNotFound) {
		t.Errorf("Get(missing) error = %v, want ErrFontNotFound", err)
	}
}

func TestDirLoader(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "Custom.ttf"), minimalFont().build(), 0o644); err != nil {
		t.Fatal(err)
	}
	load := DirLoader(dir)

	data, err := load("Custom.ttf")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ParseFont(data); err != nil {
		t.Errorf("ParseFont(Custom.ttf) error = %v", err)
	}

	// Names absent from the directory come from the bundled set.
	if _, err := load(BoldFile); err != nil {
		t.Errorf("load(%s) error = %v", BoldFile, err)
	}
	if _, err := load("Nope.ttf"); !errors.Is(err, ErrFontNotFound) {
		t.Errorf("load(Nope.ttf) error = %v, want ErrFontNotFound", err)
	}
}

func TestEmbeddedFiles(t *testing.T) {
	want := []string{
		GoBoldFile, GoItalicFile, GoMonoFile, GoRegularFile,
		MonoFile, BoldFile, ItalicFile, RegularFile,
	}
	got := EmbeddedFiles()
	if len(got) != len(want) {
		t.Fatalf("EmbeddedFiles() = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("EmbeddedFiles()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDefaultFontsCoverVietnamese(t *testing.T) {
	const sample = "Hồ sơ tranh chấp hợp đồng Nguyễn Văn Trường: ấ ợ ồ ễ ư ờ ộ ế ữ ạ ả ỹ ỵ ÂĂÊÔƠƯĐ ẤẶỆỘỢỨ"

	for _, name := range []string{RegularFile, ItalicFile, BoldFile, MonoFile} {
		f, err := DefaultCache().Get(name)
		if err != nil {
			t.Fatalf("Get(%s) error = %v", name, err)
		}
		var missing []rune
		for _, r := range sample {
			if r != ' ' && f.GlyphIndex(r) == 0 {
				missing = append(missing, r)
			}
		}
		if len(missing) > 0 {
			t.Errorf("%s lacks glyphs for %q", name, string(missing))
		}
	}
}
