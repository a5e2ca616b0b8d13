package theme

// Centralized theming for the cropper UI. Tk widget styles and the colors the
// overlay renderer draws with are switched together so the rendered frame
// matches the surrounding widgets.

import (
	"image/color"

	"github.com/soocke/cropper-go/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Light mode colors.
const (
	ColorBg        = "#f7f9fb" // app background
	ColorSurface   = "#ffffff" // panels, status bar
	ColorBorder    = "#d0d7de"
	ColorPrimary   = "#2563eb" // buttons, engaged handles
	ColorDanger    = "#dc2626"
	ColorAccent    = "#10b981"
	ColorText      = "#1e293b"
	ColorTextMuted = "#64748b"
)

// PaletteSnapshot represents resolved colors for the active mode.
type PaletteSnapshot struct {
	AppBg     string
	Surface   string
	Border    string
	Primary   string
	Danger    string
	Accent    string
	Text      string
	TextMuted string
}

// CurrentPalette returns colors for the current dark/light mode.
func CurrentPalette() PaletteSnapshot {
	if darkMode {
		return PaletteSnapshot{
			AppBg:     "#0f172a",
			Surface:   "#1e293b",
			Border:    "#334155",
			Primary:   "#3b82f6",
			Danger:    "#ef4444",
			Accent:    "#10b981",
			Text:      "#f1f5f9",
			TextMuted: "#94a3b8",
		}
	}
	return PaletteSnapshot{
		AppBg:     ColorBg,
		Surface:   ColorSurface,
		Border:    ColorBorder,
		Primary:   ColorPrimary,
		Danger:    ColorDanger,
		Accent:    ColorAccent,
		Text:      ColorText,
		TextMuted: ColorTextMuted,
	}
}

// OverlayPalette returns the renderer colors for the current mode.
func OverlayPalette() images.Palette {
	if darkMode {
		return images.Palette{
			Background: color.RGBA{0x0f, 0x17, 0x2a, 0xff},
			Handle:     color.RGBA{0xf1, 0xf5, 0xf9, 0xff},
			Highlight:  color.RGBA{0x3b, 0x82, 0xf6, 0xff},
			Grid:       color.RGBA{0xf1, 0xf5, 0xf9, 0x80},
		}
	}
	return images.Palette{
		Background: color.RGBA{0xd0, 0xd7, 0xde, 0xff},
		Handle:     color.RGBA{0xff, 0xff, 0xff, 0xff},
		Highlight:  color.RGBA{0x25, 0x63, 0xeb, 0xff},
		Grid:       color.RGBA{0xff, 0xff, 0xff, 0x80},
	}
}

// style names used with Style("primary.TButton") etc.
const (
	StylePrimaryButton = "primary.TButton"
	StyleDangerButton  = "danger.TButton"
	StyleStatusLabel   = "status.TLabel"
	StyleHandleLabel   = "handle.TLabel"
)

// internal flag for current mode
var darkMode bool

// InitStyles (re)applies styles for the current darkMode value.
func InitStyles() { applyStyles(darkMode) }

// SetDark switches dark mode and reapplies styles. Returns new mode value.
func SetDark(dark bool) bool {
	darkMode = dark
	applyStyles(darkMode)
	return darkMode
}

// ToggleDark flips dark mode and reapplies styles. Returns new mode value.
func ToggleDark() bool { return SetDark(!darkMode) }

// IsDark reports current mode.
func IsDark() bool { return darkMode }

func applyStyles(dark bool) {
	if dark {
		_ = ActivateTheme("azure dark")
	} else {
		_ = ActivateTheme("azure light")
	}
	p := CurrentPalette()
	App.Configure(Background(p.AppBg))

	StyleConfigure(StylePrimaryButton,
		Background(p.Primary),
		Foreground("white"),
		Padding("4p 3p"),
		Borderwidth(1),
		Relief("ridge"),
	)
	StyleConfigure(StyleDangerButton,
		Background(p.Danger),
		Foreground("white"),
		Padding("4p 3p"),
		Borderwidth(1),
		Relief("ridge"),
	)
	// Status bar under the viewport.
	StyleConfigure(StyleStatusLabel,
		Foreground(p.TextMuted),
		Background(p.Surface),
		Padding("4p 2p"),
	)
	// Name of the engaged handle.
	StyleConfigure(StyleHandleLabel,
		Foreground("white"),
		Background(p.Accent),
		Padding("4p 2p"),
		Borderwidth(1),
		Relief("groove"),
	)
}
