package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ctb-platform/team-server/config"
	"github.com/ctb-platform/team-server/logger"
	"github.com/ctb-platform/team-server/middleware"
	"github.com/ctb-platform/team-server/models"
)

const invitationTTL = 7 * 24 * time.Hour

// SendInvitation persists a pending invitation carrying the target role and
// an unguessable token. Email delivery and accept/decline handling are
// external; the token never appears in responses.
func SendInvitation(c *gin.Context) {
	u := c.MustGet(middleware.CtxUser).(models.User)

	var req struct {
		Email      string `json:"email" binding:"required,email"`
		TeamRoleID uint   `json:"team_role_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "A valid email and team_role_id are required"})
		return
	}

	var role models.TeamRole
	if err := config.DB.First(&role, req.TeamRoleID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Team role not found"})
		return
	}

	invitation := models.Invitation{
		InviterUserID: u.ID,
		Email:         req.Email,
		TeamRoleID:    req.TeamRoleID,
		Token:         uuid.NewString(),
		ExpiresAt:     time.Now().Add(invitationTTL),
		Status:        models.InvitationPending,
	}
	if err := config.DB.Create(&invitation).Error; err != nil {
		logger.L().Errorw("failed to create invitation", "inviter_user_id", u.ID, "team_role_id", req.TeamRoleID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":    true,
		"message":    "Invitation created successfully",
		"invitation": invitation,
	})
}
