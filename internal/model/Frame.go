package model

import (
	"github.com/almrmi/serramenti/pkg/frame"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Frame is one window/door unit inside a project. position_order is a dense
// zero-based rank unique within the project; the frame repository owns every
// write that touches it.
type Frame struct {
	BaseModel
	FrameType     string           `gorm:"type:varchar(50);not null" json:"frameType" form:"frameType"`
	OpeningType   *string          `gorm:"type:varchar(50);default:null" json:"openingType" form:"openingType"`
	Width         *int             `gorm:"default:null" json:"width" form:"width"`
	Height        *int             `gorm:"default:null" json:"height" form:"height"`
	SurfaceArea   *decimal.Decimal `gorm:"type:numeric(10,2);default:null" json:"surfaceArea"`
	PositionOrder int              `gorm:"not null;uniqueIndex:idx_frames_project_position" json:"positionOrder"`
	Configuration datatypes.JSON   `gorm:"type:jsonb;default:null" json:"configuration"`

	ProjectID string  `gorm:"type:text;not null;uniqueIndex:idx_frames_project_position" json:"projectId"`
	Project   Project `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

func (f Frame) TableName() string {
	return "frames"
}

// RecomputeSurfaceArea refreshes the derived surface_area from the current
// dimensions. The repositories call this on every write that touches width or
// height so the stored value is never stale.
func (f *Frame) RecomputeSurfaceArea() {
	f.SurfaceArea = frame.SurfaceArea(f.Width, f.Height)
}
