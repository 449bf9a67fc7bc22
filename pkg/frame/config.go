package frame

import (
	"encoding/json"
	"fmt"
)

// Layout defaults applied when a preset does not override them. Values come
// from the standard serramenti profiles used across the catalog.
const (
	DefaultFrameThickness = 70
	DefaultGlassInset     = 10
	DefaultSidePanelWidth = 600
)

// Generic sanity bounds (millimeters) enforced when no preset supplies its own.
const (
	GenericMinDimension = 100
	GenericMaxDimension = 10000
)

type OpeningSymbol string

const (
	OpeningSymbolCross    OpeningSymbol = "cross"
	OpeningSymbolArrow    OpeningSymbol = "arrow"
	OpeningSymbolDiagonal OpeningSymbol = "diagonal"
	OpeningSymbolNone     OpeningSymbol = "none"
)

// PresetConfig is the structured default_config payload stored on a frame
// preset. Frame-type presets carry the full geometric block; opening-type
// presets usually carry only the opening symbol.
type PresetConfig struct {
	NumPanels        int           `json:"num_panels,omitempty"`
	DefaultWidth     int           `json:"default_width,omitempty"`
	DefaultHeight    int           `json:"default_height,omitempty"`
	MinWidth         int           `json:"min_width,omitempty"`
	MaxWidth         int           `json:"max_width,omitempty"`
	MinHeight        int           `json:"min_height,omitempty"`
	MaxHeight        int           `json:"max_height,omitempty"`
	FrameThickness   int           `json:"frame_thickness,omitempty"`
	GlassInset       int           `json:"glass_inset,omitempty"`
	PanelWidths      []int         `json:"panel_widths,omitempty"`
	OpeningDirection string        `json:"opening_direction,omitempty"`
	OpeningSymbol    OpeningSymbol `json:"opening_symbol,omitempty"`
}

// ParseConfig decodes a raw default_config document. A nil or empty payload
// yields a nil config, which every consumer treats as "use defaults".
func ParseConfig(raw []byte) (*PresetConfig, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var cfg PresetConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("invalid preset config: %w", err)
	}

	return &cfg, nil
}

// frameThickness returns the mullion thickness to use for layout, falling
// back to the catalog default. Safe on a nil receiver.
func (c *PresetConfig) frameThickness() int {
	if c == nil || c.FrameThickness <= 0 {
		return DefaultFrameThickness
	}
	return c.FrameThickness
}

func (c *PresetConfig) glassInset() int {
	if c == nil || c.GlassInset <= 0 {
		return DefaultGlassInset
	}
	return c.GlassInset
}

func (c *PresetConfig) openingSymbol() OpeningSymbol {
	if c == nil || c.OpeningSymbol == "" {
		return OpeningSymbolCross
	}
	return c.OpeningSymbol
}
