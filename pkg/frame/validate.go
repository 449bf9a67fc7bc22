package frame

import "fmt"

// ValidationError reports a dimension outside its allowed range, with enough
// context for the caller to build a field-level response.
type ValidationError struct {
	Field string
	Value int
	Min   int
	Max   int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s must be between %d and %d mm, got %d", e.Field, e.Min, e.Max, e.Value)
}

// ValidateDimensions checks width and height against the preset's bounds.
// A nil cfg, or a cfg without bounds (opening-type presets), falls back to
// the generic sanity range. Unset dimensions pass: a frame may be created
// before the user has typed a size.
func ValidateDimensions(width, height *int, cfg *PresetConfig) error {
	minW, maxW := GenericMinDimension, GenericMaxDimension
	minH, maxH := GenericMinDimension, GenericMaxDimension
	if cfg != nil {
		if cfg.MinWidth > 0 && cfg.MaxWidth > 0 {
			minW, maxW = cfg.MinWidth, cfg.MaxWidth
		}
		if cfg.MinHeight > 0 && cfg.MaxHeight > 0 {
			minH, maxH = cfg.MinHeight, cfg.MaxHeight
		}
	}

	if width != nil && (*width < minW || *width > maxW) {
		return &ValidationError{Field: "width", Value: *width, Min: minW, Max: maxW}
	}
	if height != nil && (*height < minH || *height > maxH) {
		return &ValidationError{Field: "height", Value: *height, Min: minH, Max: maxH}
	}

	return nil
}
