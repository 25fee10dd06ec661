package pages

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/foodgallery/core"
	"github.com/jask/foodgallery/internal/gallery"
	"github.com/jask/foodgallery/internal/media"
	"github.com/jask/foodgallery/screens"
	"github.com/jask/foodgallery/widgets"
)

// HomeOptions are the home page's collaborators.
type HomeOptions struct {
	// Cards returns the preloaded cards. It is called on every login so each
	// session starts from the catalog.
	Cards       func() ([]gallery.Card, error)
	Library     *media.Library
	Camera      *media.Camera
	Defaults    gallery.Fields
	CardWidth   int
	CardSpacing int

	// SnapInterval is the scroll distance between neighbouring cards.
	// Zero means CardWidth plus CardSpacing.
	SnapInterval int
	Context      context.Context
}

// HomePage is the card gallery.
type HomePage struct {
	opts   HomeOptions
	editor *gallery.Editor
}

func NewHomePage(opts HomeOptions) *HomePage {
	if opts.CardWidth <= 0 {
		opts.CardWidth = 28
	}
	if opts.CardSpacing < 0 {
		opts.CardSpacing = 0
	}
	if opts.SnapInterval <= 0 {
		opts.SnapInterval = opts.CardWidth + opts.CardSpacing
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	p := &HomePage{opts: opts}
	p.reset(nil)
	return p
}

func (p *HomePage) Title() string { return "Home" }
func (p *HomePage) Scope() string { return core.ScopeHome }

// Editor exposes the gallery editor of the current session.
func (p *HomePage) Editor() *gallery.Editor { return p.editor }

func (p *HomePage) Enter(m *core.Model) tea.Cmd {
	var cards []gallery.Card
	if p.opts.Cards != nil {
		var err error
		if cards, err = p.opts.Cards(); err != nil {
			m.Logger.Error("load cards", "err", err)
			m.SetError(fmt.Errorf("load cards: %w", err))
		}
	}
	p.reset(m)
	for _, c := range cards {
		p.editor.List().Append(c)
	}
	p.tracker().SetOffset(0, p.editor.List().Len())
	if m != nil {
		m.SetStatus(fmt.Sprintf("%d dishes", p.editor.List().Len()))
	}
	return nil
}

func (p *HomePage) reset(m *core.Model) {
	var editor *gallery.Editor
	tracker := gallery.NewTracker(p.opts.SnapInterval)
	if m != nil {
		editor = gallery.NewEditor(gallery.NewList(), tracker, m.Logger.WithPrefix("gallery"))
	} else {
		editor = gallery.NewEditor(gallery.NewList(), tracker, nil)
	}
	if p.opts.Camera != nil {
		editor = editor.WithReleaser(p.opts.Camera)
	}
	p.editor = editor
}

func (p *HomePage) tracker() *gallery.Tracker { return p.editor.Tracker() }

func (p *HomePage) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if action, ok := m.Keys().ActionFor(msg, core.ScopeHome); ok {
			return p.run(m, action)
		}
	case core.ActionMsg:
		return p.run(m, msg.Action)
	case core.ScrollRequestMsg:
		p.tracker().ScrollTo(msg.Index, p.editor.List().Len())
	case screens.CardClosedMsg:
		switch {
		case msg.Saved:
			m.SetStatus("Saved " + msg.Dish)
		case msg.Removed:
			m.SetStatus("Removed " + msg.Dish)
		}
	case libraryOpenedMsg:
		return p.onLibraryOpened(m, msg)
	case photoCapturedMsg:
		return p.onPhotoCaptured(m, msg)
	case imagePickedMsg:
		return p.openNew(m, msg.Image)
	case dishFoundMsg:
		if idx := p.editor.List().IndexOf(msg.ID); idx >= 0 {
			p.tracker().ScrollTo(idx, p.editor.List().Len())
		}
	}
	return nil
}

func (p *HomePage) run(m *core.Model, action string) tea.Cmd {
	n := p.editor.List().Len()
	switch action {
	case "gallery-prev":
		p.tracker().ScrollBy(-p.tracker().SnapInterval(), n)
	case "gallery-next":
		p.tracker().ScrollBy(p.tracker().SnapInterval(), n)
	case "gallery-open":
		req, ok := p.editor.OpenForEdit(p.tracker().Active())
		if !ok {
			return nil
		}
		m.PushScreen(screens.NewCardModal(p.editor, m.Keys()))
		return core.ScrollCmd(req.Index, req.Delay)
	case "gallery-upload":
		if p.editor.IsOpen() {
			return nil
		}
		return openLibrary(p.opts.Context, p.opts.Library)
	case "gallery-camera":
		if p.editor.IsOpen() {
			return nil
		}
		return capturePhoto(p.opts.Context, p.opts.Camera)
	case "gallery-find":
		m.PushScreen(p.finder(m))
	case "logout":
		m.Logger.Info("logout")
		return core.NavigateCmd(core.EventLogout)
	}
	return nil
}

func (p *HomePage) openNew(m *core.Model, image gallery.ImageRef) tea.Cmd {
	if !p.editor.OpenForNew(image, p.opts.Defaults) {
		return nil
	}
	m.PushScreen(screens.NewCardModal(p.editor, m.Keys()))
	return nil
}

func (p *HomePage) finder(m *core.Model) core.Screen {
	cards := p.editor.List().Cards()
	items := make([]screens.PickerItem, 0, len(cards))
	for _, c := range cards {
		items = append(items, screens.PickerItem{ID: c.ID, Label: c.DishName, Desc: c.Calories + " kcal"})
	}
	return screens.NewPickerModal(m.Keys(), "Find Dish", core.ScopeFinder, items, func(it screens.PickerItem) tea.Msg {
		return dishFoundMsg{ID: it.ID}
	}).WithEmptyText("No matching dish")
}

var (
	captionStyle = lipgloss.NewStyle().Bold(true).Foreground(core.ColorText)
	metaStyle    = lipgloss.NewStyle().Foreground(core.ColorMuted)
)

// cardTiles renders one carousel tile per card. The photo name is cut to the
// tile's inner width in cells.
func (p *HomePage) cardTiles(cards []gallery.Card, active int) []widgets.Tile {
	inner := max(1, p.opts.CardWidth-4)
	wrap := lipgloss.NewStyle().Width(inner)
	tiles := make([]widgets.Tile, len(cards))
	for i, c := range cards {
		tiles[i] = widgets.Tile{
			Title: c.DishName,
			Lines: []string{
				metaStyle.Render(ansi.Truncate(c.Image.Label(), inner, "…")),
				"",
				"Calories: " + c.Calories,
				"",
				wrap.Render(c.Ingredients),
			},
			Active: i == active,
		}
	}
	return tiles
}

func (p *HomePage) View(m *core.Model, width, height int) string {
	list := p.editor.List()
	t := p.tracker()
	active := t.Active()
	cards := list.Cards()
	tiles := p.cardTiles(cards, active)
	carousel := widgets.Carousel{
		Tiles:      tiles,
		TileWidth:  p.opts.CardWidth,
		Spacing:    p.opts.CardSpacing,
		Offset:     t.Offset(),
		Accent:     core.ColorAccent,
		Muted:      core.ColorBorder,
		EmptyLabel: "No dishes yet. Press u to upload a photo or c to use the camera.",
	}

	caption, counter := "", ""
	if c, ok := list.At(active); ok {
		caption = captionStyle.Render(c.DishName) + metaStyle.Render("  "+c.Calories+" kcal")
		counter = metaStyle.Render(fmt.Sprintf("%d/%d", active+1, len(cards)))
	}
	dots := lipgloss.PlaceHorizontal(width, lipgloss.Center,
		widgets.Dots(t.Dots(len(cards)), core.ColorAccent, core.ColorDotOff))
	return widgets.Rows{
		Items: []widgets.Widget{
			carousel,
			widgets.Text(dots),
			widgets.Cols{Items: []widgets.Widget{widgets.Text(caption), widgets.Text(counter)}, Widths: []int{0, 7}, Gap: 1},
		},
		Heights: []int{0, 1, 1},
		Gap:     1,
	}.Render(width, height)
}
