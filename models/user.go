package models

import "time"

// Account categories decide which predefined role templates seed a new team.
const (
	CategoryAdmin    = "admin"
	CategoryBusiness = "business"
	CategoryHacker   = "hacker"
)

type User struct {
	ID           uint      `gorm:"column:user_id;primaryKey;autoIncrement" json:"user_id"`
	Name         string    `gorm:"column:name;size:100;not null" json:"name"`
	Email        string    `gorm:"column:email;size:255;unique;not null" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;size:255;not null" json:"-"`
	Category     string    `gorm:"column:category;size:20;not null" json:"category"` // admin | business | hacker
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	UserTeams []UserTeam `gorm:"foreignKey:UserID" json:"-"`
}

func (User) TableName() string {
	return "users"
}
