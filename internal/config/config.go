package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI      UIConfig
	Gallery GalleryConfig
	Media   MediaConfig
	Catalog CatalogConfig
	Log     LogConfig
	Keys    map[string][]string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	CardWidth   int  `mapstructure:"card_width"`
	CardSpacing int  `mapstructure:"card_spacing"`
	AltScreen   bool `mapstructure:"alt_screen"`
}

// SnapInterval is the carousel distance between two neighbouring cards.
func (u UIConfig) SnapInterval() int {
	return max(1, u.CardWidth+u.CardSpacing)
}

// GalleryConfig holds the defaults shown for a freshly picked photo.
type GalleryConfig struct {
	NewCard NewCardConfig `mapstructure:"new_card"`
}

type NewCardConfig struct {
	DishName    string `mapstructure:"dish_name"`
	Calories    string
	Ingredients string
}

// MediaConfig holds picture source settings.
type MediaConfig struct {
	LibraryDir    string        `mapstructure:"library_dir"`
	LibraryAccess string        `mapstructure:"library_access"`
	CameraAccess  string        `mapstructure:"camera_access"`
	CameraCommand string        `mapstructure:"camera_command"`
	CaptureDir    string        `mapstructure:"capture_dir"`
	CameraTimeout time.Duration `mapstructure:"camera_timeout"`
}

// CatalogConfig points at an optional replacement for the bundled cards.
type CatalogConfig struct {
	Path string
}

// LogConfig holds log file settings.
type LogConfig struct {
	Path   string
	Level  string
	Format string
}

// Load reads configuration from file and env. Env var overrides use prefix FOODGALLERY_.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("FOODGALLERY_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(homeDir(), ".config", "foodgallery"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("FOODGALLERY")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

func setDefaults(v *viper.Viper) {
	home := homeDir()
	cache, err := os.UserCacheDir()
	if err != nil {
		cache = filepath.Join(home, ".cache")
	}

	v.SetDefault("ui.card_width", 28)
	v.SetDefault("ui.card_spacing", 2)
	v.SetDefault("ui.alt_screen", true)

	v.SetDefault("gallery.new_card.dish_name", "Fish and Chips")
	v.SetDefault("gallery.new_card.calories", "650")
	v.SetDefault("gallery.new_card.ingredients", "Fish, Fries, Lemon, Tartar Sauce")

	v.SetDefault("media.library_dir", filepath.Join(home, "Pictures"))
	v.SetDefault("media.library_access", "granted")
	v.SetDefault("media.camera_access", "granted")
	v.SetDefault("media.camera_command", "")
	v.SetDefault("media.capture_dir", filepath.Join(cache, "foodgallery", "captures"))
	v.SetDefault("media.camera_timeout", time.Duration(0))

	v.SetDefault("catalog.path", "")

	v.SetDefault("log.path", filepath.Join(cache, "foodgallery", "foodgallery.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := os.Getenv("FOODGALLERY_CONFIG")
	if path == "" {
		path = filepath.Join(homeDir(), ".config", "foodgallery", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("ui.card_width", cfg.UI.CardWidth)
	v.Set("ui.card_spacing", cfg.UI.CardSpacing)
	v.Set("ui.alt_screen", cfg.UI.AltScreen)
	v.Set("gallery.new_card.dish_name", cfg.Gallery.NewCard.DishName)
	v.Set("gallery.new_card.calories", cfg.Gallery.NewCard.Calories)
	v.Set("gallery.new_card.ingredients", cfg.Gallery.NewCard.Ingredients)
	v.Set("media.library_dir", cfg.Media.LibraryDir)
	v.Set("media.library_access", cfg.Media.LibraryAccess)
	v.Set("media.camera_access", cfg.Media.CameraAccess)
	v.Set("media.camera_command", cfg.Media.CameraCommand)
	v.Set("media.capture_dir", cfg.Media.CaptureDir)
	v.Set("media.camera_timeout", cfg.Media.CameraTimeout.String())
	v.Set("catalog.path", cfg.Catalog.Path)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.format", cfg.Log.Format)
	if len(cfg.Keys) > 0 {
		v.Set("keys", cfg.Keys)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func homeDir() string {
	if h, err := os.UserHomeDir(); err == nil {
		return h
	}
	return os.Getenv("HOME")
}
