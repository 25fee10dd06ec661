package pages

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/jask/foodgallery/core"
	"github.com/jask/foodgallery/internal/gallery"
	"github.com/jask/foodgallery/internal/media"
	"github.com/jask/foodgallery/screens"
)

type libraryOpenedMsg struct {
	images  []media.Image
	granted bool
	err     error
}

type photoCapturedMsg struct {
	image   gallery.ImageRef
	granted bool
	err     error
}

type imagePickedMsg struct {
	Image gallery.ImageRef
}

type dishFoundMsg struct {
	ID string
}

func openLibrary(ctx context.Context, lib *media.Library) tea.Cmd {
	if lib == nil {
		return core.StatusCmd("Photo library is not configured")
	}
	return func() tea.Msg {
		images, granted, err := lib.Open(ctx)
		return libraryOpenedMsg{images: images, granted: granted, err: err}
	}
}

func capturePhoto(ctx context.Context, cam *media.Camera) tea.Cmd {
	if cam == nil {
		return core.StatusCmd("Camera is not configured")
	}
	return func() tea.Msg {
		ref, granted, err := cam.Capture(ctx)
		return photoCapturedMsg{image: ref, granted: granted, err: err}
	}
}

func (p *HomePage) onLibraryOpened(m *core.Model, msg libraryOpenedMsg) tea.Cmd {
	if msg.err != nil {
		m.Logger.Error("open photo library", "err", msg.err)
		return core.ErrorCmd(fmt.Errorf("open photo library: %w", msg.err))
	}
	if !msg.granted {
		m.Logger.Info("photo library access denied")
		return nil
	}
	items := make([]screens.PickerItem, 0, len(msg.images))
	byID := make(map[string]media.Image, len(msg.images))
	for _, img := range msg.images {
		byID[img.Path] = img
		items = append(items, screens.PickerItem{
			ID:    img.Path,
			Label: img.Name,
			Desc:  humanize.Bytes(uint64(max(img.Size, 0))) + ", " + humanize.Time(img.ModTime),
		})
	}
	m.PushScreen(screens.NewPickerModal(m.Keys(), "Photo Library", core.ScopePicker, items, func(it screens.PickerItem) tea.Msg {
		return imagePickedMsg{Image: byID[it.ID].Ref()}
	}).WithEmptyText("No photos found in " + p.opts.Library.Dir))
	return nil
}

func (p *HomePage) onPhotoCaptured(m *core.Model, msg photoCapturedMsg) tea.Cmd {
	switch {
	case errors.Is(msg.err, media.ErrCancelled):
		m.Logger.Debug("camera cancelled")
		return nil
	case msg.err != nil:
		m.Logger.Error("camera capture", "err", msg.err)
		return core.ErrorCmd(fmt.Errorf("camera: %w", msg.err))
	case !msg.granted:
		m.Logger.Info("camera access denied")
		return nil
	}
	return p.openNew(m, msg.image)
}
