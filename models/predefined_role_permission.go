package models

type PredefinedRolePermission struct {
	ID               uint `gorm:"column:predefined_role_permission_id;primaryKey;autoIncrement" json:"predefined_role_permission_id"`
	PredefinedRoleID uint `gorm:"column:predefined_role_id;not null;index" json:"predefined_role_id"`
	PermissionID     uint `gorm:"column:permission_id;not null" json:"permission_id"`
}

func (PredefinedRolePermission) TableName() string {
	return "predefined_role_permissions"
}
