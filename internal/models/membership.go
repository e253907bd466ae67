package models

// Membership is a bare (user, group) edge. It carries no identity of its
// own and no uniqueness constraint: inserting the same pair twice yields
// two rows, and removal deletes every matching row.
type Membership struct {
	UserID  uint `json:"user_id" gorm:"column:user_id;not null;index"`
	GroupID uint `json:"group_id" gorm:"column:group_id;not null;index"`
}

func (Membership) TableName() string {
	return "user_to_group"
}
