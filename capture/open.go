package capture

import (
	"errors"
	"image"
	"log/slog"
)

// Screen grabbers, replaced in tests.
var (
	grabScreen = Grab
	grabArea   = GrabRect
)

// ErrNoSource is returned by Open when no source could be produced.
var ErrNoSource = errors.New("no image source")

// Request selects the image to crop. Sources are tried in order: a screen
// grab, the file at Path, then Fallback. A non-empty Area limits the screen
// grab to that part of the screen.
type Request struct {
	Screen   bool
	Area     image.Rectangle
	Path     string
	Fallback func() (*Source, error)
}

// Open resolves r. A failing screen grab or file falls through to the next
// source with a warning, so a broken path still opens the fallback.
func Open(r Request, logger *slog.Logger) (*Source, error) {
	var errs []error
	if r.Screen {
		grab := grabScreen
		if !r.Area.Empty() {
			grab = func() (*Source, error) { return grabArea(r.Area) }
		}
		src, err := grab()
		if err == nil {
			return src, nil
		}
		errs = append(errs, err)
		warn(logger, "screen grab failed", err)
	}
	if r.Path != "" {
		src, err := Load(r.Path)
		if err == nil {
			return src, nil
		}
		errs = append(errs, err)
		warn(logger, "image load failed", err, "path", r.Path)
	}
	if r.Fallback != nil {
		src, err := r.Fallback()
		if err == nil {
			return src, nil
		}
		errs = append(errs, err)
	}
	return nil, errors.Join(append([]error{ErrNoSource}, errs...)...)
}

func warn(logger *slog.Logger, msg string, err error, args ...any) {
	if logger != nil {
		logger.Warn(msg, append([]any{"error", err}, args...)...)
	}
}
