package models

// PredefinedRole is a global role template copied into a team at creation
// time. Templates live in fixed id ranges per account category:
// admin 1-3, business 4-6, hacker 7-10.
type PredefinedRole struct {
	ID          uint    `gorm:"column:predefined_role_id;primaryKey;autoIncrement" json:"predefined_role_id"`
	Name        string  `gorm:"column:name;size:255;unique;not null" json:"name"`
	Description *string `gorm:"column:description;size:255" json:"description"`
}

func (PredefinedRole) TableName() string {
	return "predefined_roles"
}

// PredefinedRoleIDsForCategory returns the template ids seeded into a new
// team created by a user of the given category. Unknown categories get nil.
func PredefinedRoleIDsForCategory(category string) []uint {
	switch category {
	case CategoryAdmin:
		return []uint{1, 2, 3}
	case CategoryBusiness:
		return []uint{4, 5, 6}
	case CategoryHacker:
		return []uint{7, 8, 9, 10}
	}
	return nil
}
