package tui

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/widgetdeck/internal/database/repository"
)

func (a *App) updateGallery(msg tea.KeyMsg) tea.Cmd {
	k := a.keys.gallery
	switch {
	case key.Matches(msg, k.Prev):
		a.galleryIndex = a.gallery.Prev()
	case key.Matches(msg, k.Next):
		a.galleryIndex = a.gallery.Next()
	default:
		return nil
	}
	if a.gallery.Len() == 0 {
		return nil
	}
	return a.saveInt(repository.StateGalleryIndex, a.galleryIndex)
}

func (a *App) viewGallery() string {
	var body string
	switch cur, ok := a.gallery.Current(); {
	case a.galleryErr != nil:
		body = warnStyle.Render("cannot read " + a.cfg.Gallery.Dir + ": " + a.galleryErr.Error())
	case !ok:
		body = dimStyle.Render("no images in " + a.cfg.Gallery.Dir)
	default:
		body = bigTimeStyle.Render(filepath.Base(cur)) + "\n" +
			dimStyle.Render(truncate(cur, 56)) + "\n\n" +
			fmt.Sprintf("%d / %d", a.gallery.Index()+1, a.gallery.Len())
	}
	return renderSection("Gallery", body, 60, true)
}
