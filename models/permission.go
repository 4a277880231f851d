package models

// Permission is global reference data, seeded once at startup and never
// mutated by request handlers.
type Permission struct {
	ID          uint    `gorm:"column:permission_id;primaryKey;autoIncrement" json:"permission_id"`
	Name        string  `gorm:"column:name;size:255;unique;not null" json:"name"`
	Description *string `gorm:"column:description;size:255" json:"description"`
}

func (Permission) TableName() string {
	return "permissions"
}
