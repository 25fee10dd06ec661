package media

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/jask/foodgallery/internal/gallery"
)

var imageExts = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

// Image is a picture found in the library directory.
type Image struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time
}

func (i Image) Ref() gallery.ImageRef {
	return gallery.FileImage(i.Path)
}

// Library lists pictures under Dir, newest first.
type Library struct {
	Dir        string
	Permission Permission
	Logger     *log.Logger
}

// Open asks for permission and lists the library. granted is false when the
// request was denied; no error is returned in that case.
func (l *Library) Open(ctx context.Context) (images []Image, granted bool, err error) {
	ok, err := l.Permission.Request(ctx)
	if err != nil || !ok {
		return nil, false, err
	}
	images, err = l.List(ctx)
	return images, true, err
}

func (l *Library) List(ctx context.Context) ([]Image, error) {
	dir := strings.TrimSpace(l.Dir)
	if dir == "" {
		return nil, fmt.Errorf("media library dir is not configured")
	}
	var out []Image
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !slices.Contains(imageExts, strings.ToLower(filepath.Ext(path))) {
			return nil
		}
		if !isImage(path) {
			l.logger().Debug("skipping non-image", "path", path)
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		out = append(out, Image{Path: path, Name: d.Name(), Size: info.Size(), ModTime: info.ModTime()})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan media library: %w", err)
	}
	slices.SortStableFunc(out, func(a, b Image) int {
		return b.ModTime.Compare(a.ModTime)
	})
	return out, nil
}

func (l *Library) logger() *log.Logger {
	if l.Logger == nil {
		return log.New(io.Discard)
	}
	return l.Logger
}

// isImage sniffs the first bytes of the file.
func isImage(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()
	buf := make([]byte, 512)
	n, _ := io.ReadFull(f, buf)
	return strings.HasPrefix(http.DetectContentType(buf[:n]), "image/")
}
