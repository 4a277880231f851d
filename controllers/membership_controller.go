package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"

	"github.com/ctb-platform/team-server/config"
	"github.com/ctb-platform/team-server/logger"
	"github.com/ctb-platform/team-server/models"
)

// AssignTeamRole gives a user a role in a team. A user holds exactly one
// role per team: the write is an upsert on the (user_id, team_id) unique
// index, so a concurrent assignment for the same pair cannot produce a
// duplicate membership. The prior existence check only shapes the response.
func AssignTeamRole(c *gin.Context) {
	var req struct {
		UserID     uint `json:"userID" binding:"required"`
		TeamID     uint `json:"teamID" binding:"required"`
		TeamRoleID uint `json:"teamRoleID" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "userID, teamID and teamRoleID are required"})
		return
	}

	var existing int64
	err := config.DB.Model(&models.UserTeam{}).
		Where("user_id = ? AND team_id = ?", req.UserID, req.TeamID).
		Count(&existing).Error
	if err != nil {
		logger.L().Errorw("failed to check membership", "user_id", req.UserID, "team_id", req.TeamID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	if existing == 0 {
		var team models.Team
		if err := config.DB.First(&team, req.TeamID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Invalid team ID"})
			return
		}
		var user models.User
		if err := config.DB.First(&user, req.UserID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Invalid user ID"})
			return
		}
	}

	membership := models.UserTeam{
		UserID:     req.UserID,
		TeamID:     req.TeamID,
		TeamRoleID: req.TeamRoleID,
	}
	err = config.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "team_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"team_role_id"}),
	}).Create(&membership).Error
	if err != nil {
		logger.L().Errorw("failed to assign team role", "user_id", req.UserID, "team_id", req.TeamID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	if existing == 0 {
		c.JSON(http.StatusCreated, gin.H{
			"message":  "New role in user team created successfully",
			"userTeam": membership,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Team role updated successfully",
	})
}
