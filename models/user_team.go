package models

import "time"

// UserTeam is the single active (user, team, role) binding. The unique index
// on (user_id, team_id) lets role assignment upsert instead of racing a
// read-then-write.
type UserTeam struct {
	ID         uint      `gorm:"column:user_team_id;primaryKey;autoIncrement" json:"user_team_id"`
	UserID     uint      `gorm:"column:user_id;not null;uniqueIndex:idx_user_team" json:"user_id"`
	TeamID     uint      `gorm:"column:team_id;not null;uniqueIndex:idx_user_team" json:"team_id"`
	TeamRoleID uint      `gorm:"column:team_role_id;not null" json:"team_role_id"`
	JoinedAt   time.Time `gorm:"column:joined_at;autoCreateTime" json:"joined_at"`
}

func (UserTeam) TableName() string {
	return "user_teams"
}
