package model

import (
	"github.com/almrmi/serramenti/internal/constant"
	"github.com/almrmi/serramenti/pkg/frame"
	"gorm.io/datatypes"
)

// FramePreset is read-mostly reference data keyed by code. End users never
// create presets; cmd/migrate seeds them idempotently.
type FramePreset struct {
	BaseModel
	Code          string                  `gorm:"type:varchar(50);unique;not null" json:"code"`
	Name          string                  `gorm:"type:varchar(100);not null" json:"name"`
	Description   string                  `gorm:"type:text;default:null" json:"description"`
	IconPath      string                  `gorm:"type:varchar(255);default:null" json:"iconPath"`
	Category      constant.PresetCategory `gorm:"type:varchar(20);not null;index" json:"category"`
	DefaultConfig datatypes.JSON          `gorm:"type:jsonb;default:null" json:"defaultConfig"`
	IsActive      bool                    `gorm:"not null;default:true" json:"isActive"`
	SortOrder     int                     `gorm:"not null;default:0" json:"sortOrder"`
}

func (fp FramePreset) TableName() string {
	return "frame_presets"
}

// Config decodes the preset's default_config payload.
func (fp FramePreset) Config() (*frame.PresetConfig, error) {
	return frame.ParseConfig(fp.DefaultConfig)
}
