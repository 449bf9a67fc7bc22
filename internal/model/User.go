package model

type User struct {
	BaseModel
	Email        string `gorm:"unique;not null;type:varchar(255)" json:"email" form:"email" binding:"required"`
	PasswordHash string `gorm:"type:text;not null" json:"-"`
	FirstName    string `gorm:"type:varchar(30);not null;" json:"firstName" form:"firstName" binding:"required"`
	LastName     string `gorm:"type:varchar(30);not null;" json:"lastName" form:"lastName" binding:"required"`
}

func (u User) TableName() string {
	return "users"
}
