package models

import "time"

const (
	InvitationPending  = "pending"
	InvitationAccepted = "accepted"
	InvitationDeclined = "declined"
)

type Invitation struct {
	ID            uint      `gorm:"column:invitation_id;primaryKey;autoIncrement" json:"invitation_id"`
	InviterUserID uint      `gorm:"column:inviter_user_id;not null" json:"inviter_user_id"`
	Email         string    `gorm:"column:email;size:255;not null" json:"email"`
	TeamRoleID    uint      `gorm:"column:team_role_id;not null;index" json:"team_role_id"`
	Token         string    `gorm:"column:token;size:255;unique;not null" json:"-"` // delivered by email, never in responses
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	ExpiresAt     time.Time `gorm:"column:expires_at;not null" json:"expires_at"`
	Status        string    `gorm:"column:status;size:20;default:'pending'" json:"status"` // pending | accepted | declined
}

func (Invitation) TableName() string {
	return "invitations"
}
