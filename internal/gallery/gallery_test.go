package gallery

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWrapAround(t *testing.T) {
	g := New([]string{"a.png", "b.png", "c.png"})
	if got := g.Prev(); got != 2 {
		t.Fatalf("Prev from 0 = %d, want 2", got)
	}
	if got := g.Next(); got != 0 {
		t.Fatalf("Next from 2 = %d, want 0", got)
	}
	g.Next()
	if cur, ok := g.Current(); !ok || cur != "b.png" {
		t.Fatalf("Current = %q, %v", cur, ok)
	}
}

func TestEmptyGallery(t *testing.T) {
	g := New(nil)
	g.Next()
	g.Prev()
	if _, ok := g.Current(); ok {
		t.Fatal("empty gallery should have no current image")
	}
	if g.Index() != 0 {
		t.Fatalf("Index = %d", g.Index())
	}
}

func TestSeek(t *testing.T) {
	g := New([]string{"a", "b", "c"})
	for in, want := range map[int]int{-1: 0, 1: 1, 9: 2} {
		g.Seek(in)
		if g.Index() != want {
			t.Errorf("Seek(%d) -> %d, want %d", in, g.Index(), want)
		}
	}
}

func TestLoadFiltersImages(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.PNG", "a.jpg", "notes.txt", "c.gif"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "d.png"), 0o755); err != nil {
		t.Fatal(err)
	}
	g, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if g.Len() != 3 {
		t.Fatalf("Len = %d, want 3", g.Len())
	}
	if cur, _ := g.Current(); filepath.Base(cur) != "a.jpg" {
		t.Fatalf("first image = %q", cur)
	}
}

func TestLoadMissingDir(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatal("expected error for missing dir")
	}
}
