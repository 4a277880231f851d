package models

import "time"

type Team struct {
	ID          uint      `gorm:"column:team_id;primaryKey;autoIncrement" json:"team_id"`
	Name        string    `gorm:"column:team_name;size:255;not null" json:"team_name"`
	Description *string   `gorm:"column:team_description;type:text" json:"team_description"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	TeamRoles []TeamRole `gorm:"foreignKey:TeamID" json:"-"`
	UserTeams []UserTeam `gorm:"foreignKey:TeamID" json:"-"`
}

func (Team) TableName() string {
	return "teams"
}
