package models

type Group struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"type:varchar(100);not null"`
}

func (Group) TableName() string {
	return "user_groups"
}
