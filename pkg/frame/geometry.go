package frame

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Rect is an axis-aligned region in frame-local millimeter coordinates,
// origin at the top-left corner of the frame.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Panel is one sash of a frame: its outer rectangle plus the inner glass
// rectangle, which is the panel shrunk by the glass inset on every side.
type Panel struct {
	Rect
	Glass Rect `json:"glass"`
}

// Mullion is the solid divider between two adjacent panels.
type Mullion struct {
	Rect
}

// PanelCount maps a frame-type code to its number of panels. Unknown codes
// fall back to a single panel instead of erroring: opening-type codes such as
// "battente" sometimes end up in the frame_type field and have no inherent
// panel count.
func PanelCount(frameType string) int {
	switch frameType {
	case "1_anta", "finestra_fissa":
		return 1
	case "2_ante":
		return 2
	case "3_ante":
		return 3
	default:
		return 1
	}
}

// SurfaceArea converts millimeter dimensions to square meters rounded to two
// decimals. Returns nil while either dimension is unset; the caller persists
// the nil as-is rather than a stale value.
func SurfaceArea(width, height *int) *decimal.Decimal {
	if width == nil || height == nil {
		return nil
	}

	area := decimal.NewFromInt(int64(*width) * int64(*height)).
		Div(decimal.NewFromInt(1_000_000)).
		Round(2)

	return &area
}

// LayoutPanels derives the renderable panel geometry for a frame. The
// returned panels are ordered left to right, with one mullion between each
// adjacent pair. cfg may be nil, in which case catalog defaults apply.
//
// For three-panel frames the preset's panel_widths triple, when present, is
// authoritative: its entries are treated as proportions and scaled onto the
// interior width (total width minus two mullions). Without a triple the side
// panels get the fixed default width and the center absorbs the remainder.
func LayoutPanels(frameType string, width, height int, cfg *PresetConfig) ([]Panel, []Mullion, error) {
	if width <= 0 || height <= 0 {
		return nil, nil, fmt.Errorf("frame dimensions must be positive, got %dx%d", width, height)
	}

	thickness := cfg.frameThickness()
	inset := cfg.glassInset()

	widths, err := panelWidths(frameType, width, thickness, cfg)
	if err != nil {
		return nil, nil, err
	}

	panels := make([]Panel, 0, len(widths))
	mullions := make([]Mullion, 0, len(widths)-1)

	x := 0
	for i, w := range widths {
		if i > 0 {
			mullions = append(mullions, Mullion{Rect{X: x, Y: 0, Width: thickness, Height: height}})
			x += thickness
		}

		glass, err := insetRect(Rect{X: x, Y: 0, Width: w, Height: height}, inset)
		if err != nil {
			return nil, nil, err
		}

		panels = append(panels, Panel{
			Rect:  Rect{X: x, Y: 0, Width: w, Height: height},
			Glass: glass,
		})
		x += w
	}

	return panels, mullions, nil
}

func panelWidths(frameType string, width, thickness int, cfg *PresetConfig) ([]int, error) {
	switch PanelCount(frameType) {
	case 2:
		panelWidth := (width - thickness) / 2
		if panelWidth <= 0 {
			return nil, fmt.Errorf("width %dmm leaves no room for two panels and a %dmm mullion", width, thickness)
		}
		// The divider absorbs any odd remainder so the widths stay integral.
		return []int{panelWidth, panelWidth}, nil
	case 3:
		interior := width - 2*thickness
		if interior <= 0 {
			return nil, fmt.Errorf("width %dmm leaves no room for three panels and two %dmm mullions", width, thickness)
		}

		if cfg != nil && len(cfg.PanelWidths) == 3 {
			return scaleTriple(cfg.PanelWidths, interior)
		}

		side := DefaultSidePanelWidth
		center := interior - 2*side
		if center <= 0 {
			return nil, fmt.Errorf("width %dmm too small for two %dmm side panels", width, side)
		}
		return []int{side, center, side}, nil
	default:
		return []int{width}, nil
	}
}

// scaleTriple distributes the interior width over the preset's panel_widths
// proportions, keeping the sum exact by assigning the remainder to the last
// panel.
func scaleTriple(proportions []int, interior int) ([]int, error) {
	total := 0
	for _, p := range proportions {
		if p <= 0 {
			return nil, fmt.Errorf("panel_widths entries must be positive, got %v", proportions)
		}
		total += p
	}

	widths := make([]int, len(proportions))
	assigned := 0
	for i, p := range proportions[:len(proportions)-1] {
		widths[i] = interior * p / total
		assigned += widths[i]
	}
	widths[len(widths)-1] = interior - assigned

	for _, w := range widths {
		if w <= 0 {
			return nil, fmt.Errorf("panel_widths %v scale to a non-positive panel at interior width %dmm", proportions, interior)
		}
	}

	return widths, nil
}

func insetRect(r Rect, inset int) (Rect, error) {
	if 2*inset > r.Width || 2*inset > r.Height {
		return Rect{}, fmt.Errorf("glass inset %dmm does not fit a %dx%dmm panel", inset, r.Width, r.Height)
	}

	return Rect{
		X:      r.X + inset,
		Y:      r.Y + inset,
		Width:  r.Width - 2*inset,
		Height: r.Height - 2*inset,
	}, nil
}
