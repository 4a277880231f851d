package models

type TeamRole struct {
	ID          uint    `gorm:"column:team_role_id;primaryKey;autoIncrement" json:"team_role_id"`
	Name        string  `gorm:"column:team_role_name;size:255;not null" json:"team_role_name"`
	Description *string `gorm:"column:description;size:255" json:"description"`
	TeamID      uint    `gorm:"column:team_id;not null;index" json:"team_id"`

	Permissions []TeamRolePermission `gorm:"foreignKey:TeamRoleID" json:"-"`
}

func (TeamRole) TableName() string {
	return "team_roles"
}
