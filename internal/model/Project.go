package model

import "github.com/almrmi/serramenti/internal/constant"

type Project struct {
	BaseModel
	Name        string                 `gorm:"type:varchar(255);not null;" json:"name" form:"name" binding:"required"`
	Description string                 `gorm:"type:text;default:null" json:"description" form:"description"`
	Status      constant.ProjectStatus `gorm:"type:varchar(20);not null;default:'draft'" json:"status" form:"status"`

	UserID string `gorm:"type:text;not null;index" json:"userId"`
	User   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ClientID *string `gorm:"type:text;default:null" json:"clientId"`
	Client   *Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client,omitempty"`

	// Ordered by position_order whenever loaded for the builder.
	Frames []Frame `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"frames,omitempty"`
}

func (p Project) TableName() string {
	return "projects"
}
