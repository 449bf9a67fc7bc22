package frame

import (
	"errors"
	"testing"
)

func TestValidateDimensions(t *testing.T) {
	anta := &PresetConfig{
		MinWidth: 400, MaxWidth: 2000,
		MinHeight: 600, MaxHeight: 2500,
	}

	tests := []struct {
		name      string
		width     *int
		height    *int
		cfg       *PresetConfig
		wantField string
	}{
		{"within preset bounds", intPtr(1200), intPtr(1500), anta, ""},
		{"at lower bound", intPtr(400), intPtr(600), anta, ""},
		{"at upper bound", intPtr(2000), intPtr(2500), anta, ""},
		{"width too small", intPtr(399), intPtr(1500), anta, "width"},
		{"width too large", intPtr(2001), intPtr(1500), anta, "width"},
		{"height too small", intPtr(1200), intPtr(599), anta, "height"},
		{"height too large", intPtr(1200), intPtr(2501), anta, "height"},
		{"unset dimensions pass", nil, nil, anta, ""},
		{"only width set", intPtr(1200), nil, anta, ""},
		{"no preset generic bounds ok", intPtr(100), intPtr(10000), nil, ""},
		{"no preset below generic min", intPtr(99), intPtr(1500), nil, "width"},
		{"no preset above generic max", intPtr(1200), intPtr(10001), nil, "height"},
		{"preset without bounds falls back", intPtr(50), intPtr(1500), &PresetConfig{OpeningSymbol: OpeningSymbolArrow}, "width"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDimensions(tt.width, tt.height, tt.cfg)
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("ValidateDimensions() unexpected error: %v", err)
				}
				return
			}

			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("ValidateDimensions() = %v, want *ValidationError", err)
			}
			if ve.Field != tt.wantField {
				t.Errorf("ValidationError.Field = %q, want %q", ve.Field, tt.wantField)
			}
		})
	}
}
