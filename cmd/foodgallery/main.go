package main

import (
	"context"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/jask/foodgallery/app"
	"github.com/jask/foodgallery/internal/catalog"
	"github.com/jask/foodgallery/internal/config"
	"github.com/jask/foodgallery/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("load config", "err", err)
	}

	logger, closer, err := logging.New(logging.Options{Path: cfg.Log.Path, Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		log.Fatal("open log", "err", err)
	}
	defer closer.Close()

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		log.Fatal("load catalog", "path", cfg.Catalog.Path, "err", err)
	}
	logger.Info("starting", "cards", len(cat.Entries), "library", cfg.Media.LibraryDir)

	lib, cam := app.MediaFromConfig(cfg.Media, logger)
	model := app.NewModel(app.Deps{
		Context: ctx,
		Config:  cfg,
		Catalog: cat,
		Library: lib,
		Camera:  cam,
		Logger:  logger,
	})

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if _, err := tea.NewProgram(model, opts...).Run(); err != nil && ctx.Err() == nil {
		logger.Error("program exited", "err", err)
		log.Fatal("run", "err", err)
	}
	logger.Info("bye")
}
