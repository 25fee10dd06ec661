package app

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/jask/foodgallery/core"
	"github.com/jask/foodgallery/internal/catalog"
	"github.com/jask/foodgallery/internal/config"
	"github.com/jask/foodgallery/internal/gallery"
	"github.com/jask/foodgallery/internal/media"
	"github.com/jask/foodgallery/pages"
	"github.com/jask/foodgallery/screens"
)

// Deps are the collaborators the pages are built from.
type Deps struct {
	Context context.Context
	Config  config.Config
	Catalog catalog.Catalog
	Library *media.Library
	Camera  *media.Camera
	Logger  *log.Logger
}

func Pages(d Deps) map[core.ScreenState]core.Page {
	cat := d.Catalog
	nc := d.Config.Gallery.NewCard
	return map[core.ScreenState]core.Page{
		core.StateLogin:         pages.NewLoginPage(),
		core.StateCreateAccount: pages.NewAccountPage(),
		core.StateHome: pages.NewHomePage(pages.HomeOptions{
			Cards:        func() ([]gallery.Card, error) { return cat.Cards(), nil },
			Library:      d.Library,
			Camera:       d.Camera,
			Defaults:     gallery.Fields{DishName: nc.DishName, Calories: nc.Calories, Ingredients: nc.Ingredients},
			CardWidth:    d.Config.UI.CardWidth,
			CardSpacing:  d.Config.UI.CardSpacing,
			SnapInterval: d.Config.UI.SnapInterval(),
			Context:      d.Context,
		}),
	}
}

// NewModel builds the shell with the app's pages, key overrides from
// config, and the command palette.
func NewModel(d Deps) core.Model {
	keys := core.NewKeyRegistry(core.ApplyActionKeybindings(core.DefaultKeyBindings(), d.Config.Keys))
	m := core.NewModel(Pages(d), keys, core.NewCommandRegistry(nil), d.Logger)
	ConfigureModel(&m, d.Camera, &Settings{Config: d.Config, Save: config.Save})
	return m
}

// Settings is the running configuration and the function that persists it.
type Settings struct {
	Config config.Config
	Save   func(config.Config) error
}

func ConfigureModel(m *core.Model, camera *media.Camera, settings *Settings) {
	if m == nil {
		return
	}
	m.OpenCommandModal = func(model *core.Model, scope string) core.Screen {
		return screens.NewCommandScreen(model.Keys(), scope,
			func(query string) []screens.CommandOption {
				results := model.CommandRegistry().Search(query, scope, model)
				out := make([]screens.CommandOption, 0, len(results))
				for _, r := range results {
					out = append(out, screens.CommandOption{ID: r.CommandID, Name: r.Name, Desc: r.Desc, Disabled: r.Disabled, Reason: r.Reason})
				}
				return out
			},
			func(id string) tea.Msg { return core.CommandExecuteMsg{CommandID: id} },
		)
	}
	RegisterCommands(m.CommandRegistry(), camera, settings)
}

func RegisterCommands(reg *core.CommandRegistry, camera *media.Camera, settings *Settings) {
	reg.Register(core.Command{
		ID:          "upload-photo",
		Name:        "Upload photo",
		Description: "Pick a picture from the photo library",
		Scopes:      []string{core.ScopeHome},
		Execute: func(m *core.Model) tea.Cmd {
			return core.ActionCmd("gallery-upload")
		},
	})
	reg.Register(core.Command{
		ID:          "use-camera",
		Name:        "Use camera",
		Description: "Take a new photo",
		Scopes:      []string{core.ScopeHome},
		Disabled: func(m *core.Model) (bool, string) {
			if camera == nil || !camera.Available() {
				return true, "no camera command configured"
			}
			return false, ""
		},
		Execute: func(m *core.Model) tea.Cmd {
			return core.ActionCmd("gallery-camera")
		},
	})
	reg.Register(core.Command{
		ID:          "find-dish",
		Name:        "Find dish",
		Description: "Jump to a card by name",
		Scopes:      []string{core.ScopeHome},
		Execute: func(m *core.Model) tea.Cmd {
			return core.ActionCmd("gallery-find")
		},
	})
	reg.Register(core.Command{
		ID:          "log-out",
		Name:        "Log out",
		Description: "Return to the login page",
		Scopes:      []string{core.ScopeHome},
		Execute: func(m *core.Model) tea.Cmd {
			return core.NavigateCmd(core.EventLogout)
		},
	})
	reg.Register(core.Command{
		ID:          "create-account",
		Name:        "Create account",
		Description: "Open the account form",
		Scopes:      []string{core.ScopeLogin},
		Execute: func(m *core.Model) tea.Cmd {
			return core.NavigateCmd(core.EventCreateAccount)
		},
	})
	reg.Register(core.Command{
		ID:          "back-to-login",
		Name:        "Back to login",
		Description: "Leave the account form",
		Scopes:      []string{core.ScopeCreateAccount},
		Execute: func(m *core.Model) tea.Cmd {
			return core.NavigateCmd(core.EventBack)
		},
	})
	reg.Register(core.Command{
		ID:          "save-settings",
		Name:        "Save settings",
		Description: "Write the config file with the current key bindings",
		Scopes:      []string{"*"},
		Disabled: func(m *core.Model) (bool, string) {
			if settings == nil || settings.Save == nil {
				return true, "settings are read only"
			}
			return false, ""
		},
		Execute: func(m *core.Model) tea.Cmd {
			cfg := settings.Config
			cfg.Keys = core.DefaultKeybindingsByAction(m.Keys().Bindings())
			if err := settings.Save(cfg); err != nil {
				m.Logger.Error("save settings", "err", err)
				return core.ErrorCmd(fmt.Errorf("save settings: %w", err))
			}
			settings.Config = cfg
			return core.StatusCmd("Settings saved")
		},
	})
	reg.Register(core.Command{
		ID:          "quit",
		Name:        "Quit",
		Description: "Exit the app",
		Scopes:      []string{"*"},
		Execute: func(m *core.Model) tea.Cmd {
			return tea.Quit
		},
	})
}
