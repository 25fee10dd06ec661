package app

import (
	"github.com/charmbracelet/log"

	"github.com/jask/foodgallery/internal/config"
	"github.com/jask/foodgallery/internal/media"
)

// MediaFromConfig builds the photo library and camera from the media
// section of the config.
func MediaFromConfig(cfg config.MediaConfig, logger *log.Logger) (*media.Library, *media.Camera) {
	lib := &media.Library{
		Dir:        cfg.LibraryDir,
		Permission: media.Permission{Name: "photo library", Access: media.ParseAccess(cfg.LibraryAccess)},
		Logger:     logger.WithPrefix("library"),
	}
	cam := &media.Camera{
		Command:    cfg.CameraCommand,
		CaptureDir: cfg.CaptureDir,
		Timeout:    cfg.CameraTimeout,
		Permission: media.Permission{Name: "camera", Access: media.ParseAccess(cfg.CameraAccess)},
		Logger:     logger.WithPrefix("camera"),
	}
	return lib, cam
}
