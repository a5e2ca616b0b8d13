package app

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/soocke/cropper-go/assets"
	"github.com/soocke/cropper-go/capture"
	"github.com/soocke/cropper-go/config"
	"github.com/soocke/cropper-go/domain/crop"
	"github.com/soocke/cropper-go/ui/images"
	"github.com/soocke/cropper-go/ui/model"
	"github.com/soocke/cropper-go/ui/presenter"
	"github.com/soocke/cropper-go/ui/theme"
	"github.com/soocke/cropper-go/ui/view"
)

// backdropCacheSize bounds the prepared backdrops kept across appearance changes.
const backdropCacheSize = 8

// Options are command-line choices that are not part of the saved config.
type Options struct {
	Screen bool            // crop a screen grab instead of a file
	Area   image.Rectangle // part of the screen to grab; empty means all of it
}

// AppContainer assembles models, the overlay, presenters and the root view.
type AppContainer struct {
	Config  *config.Config
	CfgPath string
	Logger  *slog.Logger

	Source *capture.Source
	Placed crop.Rect // where the source sits in the viewport; also the bound rect

	Overlay    *crop.Overlay
	Crop       *model.CropModel
	Visibility *model.VisibilityModel
	Gestures   *model.GestureModel
	Backdrops  *images.BackdropCache
	RootView   *view.RootView

	// Presenters
	Driver              *presenter.KeyboardDriver
	Pointer             *presenter.PointerDriver
	OverlayPresenter    *presenter.OverlayPresenter
	VisibilityPresenter *presenter.VisibilityPresenter
	GesturePresenter    *presenter.GesturePresenter
	PreviewPresenter    *presenter.PreviewPresenter
	Loop                *presenter.Loop
}

// BuildContainer constructs all components. Side-effects limited to loading
// the source image; the view is built later on the Tk thread.
func BuildContainer(cfg *config.Config, cfgPath string, opts Options, logger *slog.Logger) (*AppContainer, error) {
	c := &AppContainer{Config: cfg, CfgPath: cfgPath, Logger: logger}

	src, err := capture.Open(capture.Request{
		Screen: opts.Screen,
		Area:   opts.Area,
		Path:   cfg.ImagePath,
		Fallback: func() (*capture.Source, error) {
			data, err := assets.Sample()
			if err != nil {
				return nil, err
			}
			return capture.Decode(assets.SampleName, data)
		},
	}, logger)
	if err != nil {
		return nil, err
	}
	c.Source = src

	overlay, err := crop.NewOverlay(crop.MetricsFromConfig(cfg), logger)
	if err != nil {
		return nil, fmt.Errorf("overlay: %w", err)
	}
	c.Overlay = overlay
	c.Crop = model.NewCropModel()
	c.Visibility = model.NewVisibilityModel(true)
	c.Gestures = model.NewGestureModel()
	if c.Backdrops, err = images.NewBackdropCache(backdropCacheSize); err != nil {
		return nil, fmt.Errorf("backdrop cache: %w", err)
	}

	c.RootView = view.NewRootView(cfg, cfgPath, logger)
	c.Driver = presenter.NewKeyboardDriver(overlay, cfg.NudgeStep, logger)
	c.Pointer = presenter.NewPointerDriver(overlay, logger)
	c.OverlayPresenter = presenter.NewOverlayPresenter(overlay, c.Crop, c.RootView, logger)
	c.VisibilityPresenter = presenter.NewVisibilityPresenter(c.Visibility, overlay, c.RootView)
	c.GesturePresenter = presenter.NewGesturePresenter(c.Gestures, c.Crop, c.RootView)
	c.PreviewPresenter = presenter.NewPreviewPresenter(c.Crop, c.Visibility, overlay, c.RootView, c.Backdrops, logger)

	c.placeSource()
	return c, nil
}

// placeSource fits the source into the viewport, restores the saved crop and
// applies the configured aspect ratio.
func (c *AppContainer) placeSource() {
	cfg := c.Config
	bounds := c.Source.Image.Bounds()
	c.Placed = images.Placement(bounds, cfg.ViewportWidth, cfg.ViewportHeight, cfg.BoundInset)

	c.Overlay.SetBoundRect(c.Placed)
	c.Overlay.SetImageAspect(c.Source.Aspect())
	c.OverlayPresenter.SetImage(c.Source.Describe(), bounds, c.Placed)
	c.PreviewPresenter.SetSource(c.Source.Name, c.Source.Image, c.Placed)
	c.PreviewPresenter.SetAppearance(c.appearance())

	c.Overlay.SetCropRect(images.InitialCrop(c.Placed, cfg.CropX, cfg.CropY, cfg.CropW, cfg.CropH, c.Overlay.Metrics().MinCropSize))
	if err := c.Driver.SetRatio(cfg.AspectRatio, c.Source.Aspect()); err != nil {
		if c.Logger != nil {
			c.Logger.Warn("aspect ratio ignored", "ratio", cfg.AspectRatio, "error", err)
		}
		cfg.AspectRatio = crop.Free.String()
	}
}

func (c *AppContainer) appearance() presenter.Appearance {
	return presenter.Appearance{
		Width:   c.Config.ViewportWidth,
		Height:  c.Config.ViewportHeight,
		Sigma:   c.Config.BlurSigma,
		Dim:     c.Config.OverlayDim,
		Palette: theme.OverlayPalette(),
	}
}

// ApplyConfig pushes edited settings into the running overlay. The viewport
// size is fixed for the lifetime of the window.
func (c *AppContainer) ApplyConfig(next *config.Config) error {
	if c.Overlay.State() == crop.StateDragging {
		return presenter.ErrGestureActive
	}
	if err := c.Overlay.SetMetrics(crop.MetricsFromConfig(next)); err != nil {
		return err
	}
	c.Driver.SetStep(next.NudgeStep)
	c.Config.OverlayDim, c.Config.BlurSigma = next.OverlayDim, next.BlurSigma
	c.PreviewPresenter.SetAppearance(c.appearance())
	return nil
}

// SelectRatio applies an aspect ratio preset and remembers it.
func (c *AppContainer) SelectRatio(preset string) {
	if err := c.Driver.SetRatio(preset, c.Source.Aspect()); err != nil {
		if c.Logger != nil {
			c.Logger.Warn("aspect ratio rejected", "ratio", preset, "error", err)
		}
		c.RootView.SetRatio(c.Config.AspectRatio)
		return
	}
	c.Config.AspectRatio = preset
}

// RefreshTheme re-renders with the colors of the current theme.
func (c *AppContainer) RefreshTheme() {
	c.PreviewPresenter.SetAppearance(c.appearance())
}

// PersistCrop stores the crop rectangle normalized to the image.
func (c *AppContainer) PersistCrop() {
	c.Config.CropX, c.Config.CropY, c.Config.CropW, c.Config.CropH = images.Normalize(c.Overlay.CropRect(), c.Placed)
}
