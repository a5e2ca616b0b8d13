package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

// ErrUnsupportedFormat is returned by Load and Save for file extensions other
// than .json and .toml.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// Config holds runtime configuration for the crop overlay and the host window.
// Fields may be loaded from a JSON or TOML file and overridden by command-line flags.
type Config struct {
	Debug bool `json:"debug" toml:"debug"`

	// Source
	ImagePath   string `json:"image_path" toml:"image_path"`
	AspectRatio string `json:"aspect_ratio" toml:"aspect_ratio"` // "free", "image" or "W:H"

	// Crop geometry (display units)
	MinCropWidth               float64 `json:"min_crop_width" toml:"min_crop_width"`
	MinCropHeight              float64 `json:"min_crop_height" toml:"min_crop_height"`
	CornerTouchWidth           float64 `json:"corner_touch_width" toml:"corner_touch_width"`
	CornerTouchHeight          float64 `json:"corner_touch_height" toml:"corner_touch_height"`
	EdgeTouchHorizontal        float64 `json:"edge_touch_horizontal" toml:"edge_touch_horizontal"`
	EdgeTouchVertical          float64 `json:"edge_touch_vertical" toml:"edge_touch_vertical"`
	CornerNormalSize           float64 `json:"corner_normal_size" toml:"corner_normal_size"`
	CornerHighlightedSize      float64 `json:"corner_highlighted_size" toml:"corner_highlighted_size"`
	CornerLineWidth            float64 `json:"corner_line_width" toml:"corner_line_width"`
	CornerHighlightedLineWidth float64 `json:"corner_highlighted_line_width" toml:"corner_highlighted_line_width"`
	EdgeLineWidth              float64 `json:"edge_line_width" toml:"edge_line_width"`
	EdgeHighlightedLineWidth   float64 `json:"edge_highlighted_line_width" toml:"edge_highlighted_line_width"`

	// Grid
	GridLinesHorizontal int  `json:"grid_lines_horizontal" toml:"grid_lines_horizontal"`
	GridLinesVertical   int  `json:"grid_lines_vertical" toml:"grid_lines_vertical"`
	AlwaysShowGrid      bool `json:"always_show_grid" toml:"always_show_grid"`

	// Overlay appearance
	OverlayDim float64 `json:"overlay_dim" toml:"overlay_dim"` // 0..1 darkening outside the crop rect
	BlurSigma  float64 `json:"blur_sigma" toml:"blur_sigma"`   // 0 disables blur

	// Host window
	ViewportWidth  int     `json:"viewport_width" toml:"viewport_width"`
	ViewportHeight int     `json:"viewport_height" toml:"viewport_height"`
	BoundInset     float64 `json:"bound_inset" toml:"bound_inset"`
	NudgeStep      float64 `json:"nudge_step" toml:"nudge_step"`

	// Last crop rectangle, normalized to the image (0..1). Zero width means none.
	CropX float64 `json:"crop_x" toml:"crop_x"`
	CropY float64 `json:"crop_y" toml:"crop_y"`
	CropW float64 `json:"crop_w" toml:"crop_w"`
	CropH float64 `json:"crop_h" toml:"crop_h"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:                      false,
		AspectRatio:                "free",
		MinCropWidth:               60,
		MinCropHeight:              60,
		CornerTouchWidth:           30,
		CornerTouchHeight:          30,
		EdgeTouchHorizontal:        20,
		EdgeTouchVertical:          20,
		CornerNormalSize:           20,
		CornerHighlightedSize:      30,
		CornerLineWidth:            3,
		CornerHighlightedLineWidth: 3,
		EdgeLineWidth:              1,
		EdgeHighlightedLineWidth:   1,
		GridLinesHorizontal:        2,
		GridLinesVertical:          2,
		AlwaysShowGrid:             false,
		OverlayDim:                 0.5,
		BlurSigma:                  4,
		ViewportWidth:              800,
		ViewportHeight:             560,
		BoundInset:                 12,
		NudgeStep:                  4,
	}
}

// Validate clamps/normalizes values to safe ranges. Crop geometry that is not
// strictly positive is reset to its default and reported in the returned error,
// since the overlay cannot operate on degenerate sizes.
func (c *Config) Validate() error {
	d := DefaultConfig()
	var errs []error
	positive := func(name string, v *float64, def float64) {
		if *v > 0 {
			return
		}
		errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, *v))
		*v = def
	}
	positive("min_crop_width", &c.MinCropWidth, d.MinCropWidth)
	positive("min_crop_height", &c.MinCropHeight, d.MinCropHeight)
	positive("corner_touch_width", &c.CornerTouchWidth, d.CornerTouchWidth)
	positive("corner_touch_height", &c.CornerTouchHeight, d.CornerTouchHeight)
	positive("edge_touch_horizontal", &c.EdgeTouchHorizontal, d.EdgeTouchHorizontal)
	positive("edge_touch_vertical", &c.EdgeTouchVertical, d.EdgeTouchVertical)
	positive("corner_normal_size", &c.CornerNormalSize, d.CornerNormalSize)
	positive("corner_highlighted_size", &c.CornerHighlightedSize, d.CornerHighlightedSize)
	positive("corner_line_width", &c.CornerLineWidth, d.CornerLineWidth)
	positive("corner_highlighted_line_width", &c.CornerHighlightedLineWidth, d.CornerHighlightedLineWidth)
	positive("edge_line_width", &c.EdgeLineWidth, d.EdgeLineWidth)
	positive("edge_highlighted_line_width", &c.EdgeHighlightedLineWidth, d.EdgeHighlightedLineWidth)

	if c.GridLinesHorizontal < 0 {
		c.GridLinesHorizontal = 0
	}
	if c.GridLinesVertical < 0 {
		c.GridLinesVertical = 0
	}
	if c.OverlayDim < 0 || c.OverlayDim > 1 {
		c.OverlayDim = d.OverlayDim
	}
	if c.BlurSigma < 0 {
		c.BlurSigma = 0
	}
	if c.ViewportWidth < 200 {
		c.ViewportWidth = d.ViewportWidth
	}
	if c.ViewportHeight < 150 {
		c.ViewportHeight = d.ViewportHeight
	}
	if c.BoundInset < 0 {
		c.BoundInset = 0
	}
	if c.NudgeStep <= 0 {
		c.NudgeStep = d.NudgeStep
	}
	if strings.TrimSpace(c.AspectRatio) == "" {
		c.AspectRatio = d.AspectRatio
	}
	if c.CropW <= 0 || c.CropH <= 0 || c.CropX < 0 || c.CropY < 0 || c.CropX+c.CropW > 1 || c.CropY+c.CropH > 1 {
		c.CropX, c.CropY, c.CropW, c.CropH = 0, 0, 0, 0
	}
	return errors.Join(errs...)
}

// HasCrop reports whether a persisted crop rectangle is available.
func (c *Config) HasCrop() bool { return c != nil && c.CropW > 0 && c.CropH > 0 }

// DefaultPath returns the per-user config file location.
func DefaultPath() (string, error) {
	return xdg.ConfigFile(filepath.Join("cropper-go", "config.json"))
}

// Load attempts to read configuration from the given JSON or TOML file path. If the
// file does not exist it returns DefaultConfig(). On decode or validation error it
// returns a usable config together with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	switch format(path) {
	case "json":
		err = json.Unmarshal(data, cfg)
	case "toml":
		err = toml.Unmarshal(data, cfg)
	default:
		return cfg, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return DefaultConfig(), fmt.Errorf("decode %s:%d:%d: %w", path, row, col, err)
		}
		return DefaultConfig(), fmt.Errorf("decode %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validate %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration to the given path, in JSON or TOML depending on
// the extension. Parent directories are created as needed.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	var (
		data []byte
		err  error
	)
	switch format(path) {
	case "json":
		data, err = json.MarshalIndent(c, "", "  ")
	case "toml":
		data, err = toml.Marshal(c)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}

func format(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", "":
		return "json"
	case ".toml":
		return "toml"
	default:
		return ""
	}
}
