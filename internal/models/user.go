package models

type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
	SexOther  Sex = "other"
)

// Valid reports whether s is one of the three accepted values.
func (s Sex) Valid() bool {
	switch s {
	case SexMale, SexFemale, SexOther:
		return true
	default:
		return false
	}
}

type User struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Name      string `json:"name" gorm:"type:varchar(100);not null"`
	Surname   string `json:"surname" gorm:"type:varchar(100);not null"`
	BirthDate Date   `json:"birth_date" gorm:"column:birth_date;type:date;not null"`
	Sex       Sex    `json:"sex" gorm:"type:varchar(10);not null"`
}

func (User) TableName() string {
	return "users"
}
