package frame

import (
	"fmt"
	"strings"
)

// Schematic palette, matching the builder canvas.
const (
	colorFrame       = "#E5E5E5"
	colorFrameStroke = "#737373"
	colorDetail      = "#D4D4D4"
	colorDetailLine  = "#A3A3A3"
	colorGlass       = "#B3D9FF"
	colorGlassStroke = "#4A90E2"
)

// RenderSVG serializes a frame's computed layout as a standalone SVG
// schematic: one group per panel (frame border, inner detail, glass) plus the
// mullions and the preset's opening symbol. It is a plain consumer of
// LayoutPanels, kept here so every renderer draws from the same geometry.
func RenderSVG(frameType string, width, height int, cfg *PresetConfig) (string, error) {
	panels, mullions, err := LayoutPanels(frameType, width, height, cfg)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d">`+"\n", width, height)

	for _, m := range mullions {
		fmt.Fprintf(&b, `<rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>`+"\n",
			m.X, m.Y, m.Width, m.Height, colorDetailLine)
	}

	symbol := cfg.openingSymbol()
	if frameType == "finestra_fissa" {
		symbol = OpeningSymbolNone
	}

	for _, p := range panels {
		b.WriteString("<g>\n")
		fmt.Fprintf(&b, `<rect x="%d" y="%d" width="%d" height="%d" fill="%s" stroke="%s" stroke-width="4"/>`+"\n",
			p.X, p.Y, p.Width, p.Height, colorFrame, colorFrameStroke)
		fmt.Fprintf(&b, `<rect x="%d" y="%d" width="%d" height="%d" fill="%s" stroke="%s" stroke-width="2"/>`+"\n",
			p.X+3, p.Y+3, p.Width-6, p.Height-6, colorDetail, colorDetailLine)
		fmt.Fprintf(&b, `<rect x="%d" y="%d" width="%d" height="%d" fill="%s" fill-opacity="0.5" stroke="%s" stroke-width="2"/>`+"\n",
			p.Glass.X, p.Glass.Y, p.Glass.Width, p.Glass.Height, colorGlass, colorGlassStroke)
		writeOpeningSymbol(&b, p.Glass, symbol)
		b.WriteString("</g>\n")
	}

	b.WriteString("</svg>\n")
	return b.String(), nil
}

func writeOpeningSymbol(b *strings.Builder, glass Rect, symbol OpeningSymbol) {
	midX := glass.X + glass.Width/2
	midY := glass.Y + glass.Height/2

	switch symbol {
	case OpeningSymbolNone:
		return
	case OpeningSymbolArrow:
		// Sliding sash: horizontal arrow through the glass center.
		fmt.Fprintf(b, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="2" opacity="0.6"/>`+"\n",
			glass.X, midY, glass.X+glass.Width, midY, colorGlassStroke)
		fmt.Fprintf(b, `<polyline points="%d,%d %d,%d %d,%d" fill="none" stroke="%s" stroke-width="2" opacity="0.6"/>`+"\n",
			glass.X+glass.Width-40, midY-30, glass.X+glass.Width, midY, glass.X+glass.Width-40, midY+30, colorGlassStroke)
	case OpeningSymbolDiagonal:
		// Tilt-and-turn: diagonals from the bottom corners to the top center.
		fmt.Fprintf(b, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="2" opacity="0.6"/>`+"\n",
			glass.X, glass.Y+glass.Height, midX, glass.Y, colorGlassStroke)
		fmt.Fprintf(b, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="2" opacity="0.6"/>`+"\n",
			glass.X+glass.Width, glass.Y+glass.Height, midX, glass.Y, colorGlassStroke)
	default:
		// Hinged sash: cross through the glass plus the handle.
		fmt.Fprintf(b, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="2" opacity="0.6"/>`+"\n",
			midX, glass.Y, midX, glass.Y+glass.Height, colorGlassStroke)
		fmt.Fprintf(b, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="2" opacity="0.6"/>`+"\n",
			glass.X, midY, glass.X+glass.Width, midY, colorGlassStroke)
		fmt.Fprintf(b, `<circle cx="%d" cy="%d" r="20" fill="%s" opacity="0.3"/>`+"\n",
			midX, midY, colorGlassStroke)
	}
}
