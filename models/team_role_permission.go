package models

// TeamRolePermission binds one permission to one team role. The pair is
// unique; handlers suppress duplicates on insert and the index backs them up.
type TeamRolePermission struct {
	ID           uint `gorm:"column:team_role_permission_id;primaryKey;autoIncrement" json:"team_role_permission_id"`
	TeamRoleID   uint `gorm:"column:team_role_id;not null;uniqueIndex:idx_role_permission" json:"team_role_id"`
	PermissionID uint `gorm:"column:permission_id;not null;uniqueIndex:idx_role_permission" json:"permission_id"`
}

func (TeamRolePermission) TableName() string {
	return "team_role_permissions"
}
