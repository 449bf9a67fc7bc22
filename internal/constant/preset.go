package constant

// PresetCategory groups frame presets in the selection UI.
type PresetCategory string

const (
	// PresetCategoryImposte covers frame-type presets (panel layouts).
	PresetCategoryImposte PresetCategory = "imposte"
	// PresetCategoryApertura covers opening-type presets (how a panel opens).
	PresetCategoryApertura PresetCategory = "apertura"
)

// Frame type codes known to the geometry engine. Any other code falls back
// to a single panel.
const (
	FrameType1Anta         = "1_anta"
	FrameType2Ante         = "2_ante"
	FrameType3Ante         = "3_ante"
	FrameTypeFinestraFissa = "finestra_fissa"
)
