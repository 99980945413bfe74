// Package gallery is the image switcher widget.
package gallery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var imageExts = map[string]bool{".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".webp": true}

// Gallery cycles through a fixed list of image paths.
type Gallery struct {
	images []string
	index  int
}

func New(images []string) *Gallery {
	g := &Gallery{images: make([]string, len(images))}
	copy(g.images, images)
	return g
}

// Load lists the images in dir, sorted by name.
func Load(dir string) (*Gallery, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read gallery dir: %w", err)
	}
	var images []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if imageExts[strings.ToLower(filepath.Ext(entry.Name()))] {
			images = append(images, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(images)
	return New(images), nil
}

func (g *Gallery) Len() int   { return len(g.images) }
func (g *Gallery) Index() int { return g.index }

func (g *Gallery) Current() (string, bool) {
	if len(g.images) == 0 {
		return "", false
	}
	return g.images[g.index], true
}

// Next advances one image, wrapping to the first.
func (g *Gallery) Next() int {
	if len(g.images) > 0 {
		g.index = (g.index + 1) % len(g.images)
	}
	return g.index
}

// Prev steps back one image, wrapping to the last.
func (g *Gallery) Prev() int {
	if len(g.images) > 0 {
		g.index = (g.index - 1 + len(g.images)) % len(g.images)
	}
	return g.index
}

// Seek restores a stored index, clamped into range.
func (g *Gallery) Seek(i int) {
	switch {
	case len(g.images) == 0 || i < 0:
		g.index = 0
	case i >= len(g.images):
		g.index = len(g.images) - 1
	default:
		g.index = i
	}
}
