package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ctb-platform/team-server/config"
	"github.com/ctb-platform/team-server/logger"
	"github.com/ctb-platform/team-server/models"
)

// CreateTeamRoles copies every predefined role template into team roles for
// the given team, in one transaction. Distinct from team creation, which
// filters templates by the creator's category.
func CreateTeamRoles(c *gin.Context) {
	var req struct {
		TeamID uint `json:"teamID" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "teamID is required"})
		return
	}

	var team models.Team
	if err := config.DB.First(&team, req.TeamID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Team not found"})
		return
	}

	var inserted []models.TeamRole
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var templates []models.PredefinedRole
		err := tx.Order("predefined_role_id").Find(&templates).Error
		if err != nil {
			return err
		}

		inserted = make([]models.TeamRole, 0, len(templates))
		for _, tpl := range templates {
			desc := fmt.Sprintf("Team role based on predefined role: %s", tpl.Name)
			inserted = append(inserted, models.TeamRole{
				Name:        tpl.Name,
				Description: &desc,
				TeamID:      req.TeamID,
			})
		}
		if len(inserted) == 0 {
			return nil
		}
		return tx.Create(&inserted).Error
	})
	if err != nil {
		logger.L().Errorw("failed to create team roles", "team_id", req.TeamID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error creating team roles"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": inserted})
}

// GetSubroles lists the roles of one team as (role_id, role_name) pairs.
// An empty list is a valid result, not an error.
func GetSubroles(c *gin.Context) {
	teamID, err := strconv.Atoi(c.Param("teamId"))
	if err != nil || teamID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid team ID"})
		return
	}

	var roles []models.TeamRole
	if err := config.DB.Where("team_id = ?", teamID).Find(&roles).Error; err != nil {
		logger.L().Errorw("failed to fetch team roles", "team_id", teamID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "An error occurred while fetching the created roles"})
		return
	}

	formatted := make([]gin.H, 0, len(roles))
	for _, role := range roles {
		formatted = append(formatted, gin.H{
			"role_id":   role.ID,
			"role_name": role.Name,
		})
	}

	if len(formatted) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"success":      true,
			"role_created": formatted,
			"message":      "No subroles found for the given team ID.",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "role_created": formatted})
}

// AddSubrole inserts a bare custom role with no permissions attached;
// the caller attaches permissions separately.
func AddSubrole(c *gin.Context) {
	var req struct {
		RoleName string `json:"role_name"`
		TeamID   uint   `json:"team_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.RoleName == "" || req.TeamID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Role name and team ID are required",
		})
		return
	}

	role := models.TeamRole{
		Name:   req.RoleName,
		TeamID: req.TeamID,
	}
	if err := config.DB.Create(&role).Error; err != nil {
		logger.L().Errorw("failed to create subrole", "team_id", req.TeamID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Team role created successfully",
		"role":    role,
	})
}

// DeleteSubrole deletes a team role and cascades the same way team deletion
// does: invitations referencing the role and its permission bindings go in
// the same transaction, so no orphaned rows survive.
func DeleteSubrole(c *gin.Context) {
	roleID, err := strconv.Atoi(c.Param("roleID"))
	if err != nil || roleID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid role ID"})
		return
	}

	var role models.TeamRole
	if err := config.DB.First(&role, roleID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Team role not found"})
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("team_role_id = ?", roleID).Delete(&models.Invitation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("team_role_id = ?", roleID).Delete(&models.TeamRolePermission{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.TeamRole{}, roleID).Error
	})
	if err != nil {
		logger.L().Errorw("failed to delete team role", "team_role_id", roleID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while deleting the team role"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Team role deleted successfully"})
}
