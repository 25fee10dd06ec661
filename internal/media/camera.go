package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/kballard/go-shellquote"

	"github.com/jask/foodgallery/internal/gallery"
)

// OutPlaceholder is replaced by the capture file path in Camera.Command.
const OutPlaceholder = "{out}"

// RunFunc executes a capture command.
type RunFunc func(ctx context.Context, name string, args ...string) error

// Camera captures a photo by running an external command such as
// `fswebcam --no-banner {out}` or `imagesnap {out}`.
type Camera struct {
	Command    string
	CaptureDir string
	Timeout    time.Duration
	Permission Permission
	Logger     *log.Logger
	Run        RunFunc
}

// Available reports whether a capture command is configured.
func (c *Camera) Available() bool {
	return strings.TrimSpace(c.Command) != ""
}

// Capture asks for permission and takes a photo. granted is false on denial.
// ErrCancelled is returned when no command is configured or it produced no
// picture.
func (c *Camera) Capture(ctx context.Context) (ref gallery.ImageRef, granted bool, err error) {
	ok, err := c.Permission.Request(ctx)
	if err != nil || !ok {
		return gallery.ImageRef{}, false, err
	}
	if !c.Available() {
		return gallery.ImageRef{}, true, ErrCancelled
	}
	args, err := shellquote.Split(c.Command)
	if err != nil {
		return gallery.ImageRef{}, true, fmt.Errorf("parse camera command: %w", err)
	}
	if len(args) == 0 {
		return gallery.ImageRef{}, true, ErrCancelled
	}
	if err := os.MkdirAll(c.CaptureDir, 0o755); err != nil {
		return gallery.ImageRef{}, true, fmt.Errorf("mkdir capture dir: %w", err)
	}
	out := filepath.Join(c.CaptureDir, "capture-"+uuid.NewString()+".jpg")
	for i, a := range args {
		args[i] = strings.ReplaceAll(a, OutPlaceholder, out)
	}

	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}
	c.logger().Debug("camera capture", "cmd", args[0], "out", out)
	if err := c.runner()(ctx, args[0], args[1:]...); err != nil {
		_ = os.Remove(out)
		return gallery.ImageRef{}, true, fmt.Errorf("camera command: %w", err)
	}
	info, err := os.Stat(out)
	if err != nil || info.Size() == 0 {
		_ = os.Remove(out)
		return gallery.ImageRef{}, true, ErrCancelled
	}
	return gallery.FileImage(out), true, nil
}

// Release deletes a captured file that never made it into the gallery.
// Files outside CaptureDir, such as library picks, are left alone.
func (c *Camera) Release(ref gallery.ImageRef) error {
	if ref.Kind != gallery.ImageFile || !c.owns(ref.Ref) {
		return nil
	}
	if err := os.Remove(ref.Ref); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove capture: %w", err)
	}
	c.logger().Debug("released capture", "path", ref.Ref)
	return nil
}

func (c *Camera) owns(path string) bool {
	dir := strings.TrimSpace(c.CaptureDir)
	if dir == "" {
		return false
	}
	rel, err := filepath.Rel(filepath.Clean(dir), filepath.Clean(path))
	if err != nil {
		return false
	}
	return rel != "." && !strings.HasPrefix(rel, "..") && !filepath.IsAbs(rel)
}

func (c *Camera) runner() RunFunc {
	if c.Run != nil {
		return c.Run
	}
	return func(ctx context.Context, name string, args ...string) error {
		cmd := exec.CommandContext(ctx, name, args...)
		cmd.Stdout = io.Discard
		cmd.Stderr = io.Discard
		return cmd.Run()
	}
}

func (c *Camera) logger() *log.Logger {
	if c.Logger == nil {
		return log.New(io.Discard)
	}
	return c.Logger
}
