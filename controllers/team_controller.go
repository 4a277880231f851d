package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ctb-platform/team-server/config"
	"github.com/ctb-platform/team-server/logger"
	"github.com/ctb-platform/team-server/middleware"
	"github.com/ctb-platform/team-server/models"
)

// CreateTeam inserts the team, copies the predefined role templates matching
// the creator's category into team roles (with their permission bindings),
// and binds the creator to the owner role. Everything runs in one
// transaction; any failure leaves no partial team behind.
func CreateTeam(c *gin.Context) {
	u := c.MustGet(middleware.CtxUser).(models.User)

	var req struct {
		TeamName        string  `json:"teamName" binding:"required"`
		TeamDescription *string `json:"teamDescription"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Team name is required"})
		return
	}

	templateIDs := models.PredefinedRoleIDsForCategory(u.Category)
	if templateIDs == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Unknown account category"})
		return
	}

	var team models.Team
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		team = models.Team{
			Name:        req.TeamName,
			Description: req.TeamDescription,
		}
		if err := tx.Create(&team).Error; err != nil {
			return err
		}

		var templates []models.PredefinedRole
		err := tx.Where("predefined_role_id IN ?", templateIDs).
			Order("predefined_role_id").
			Find(&templates).Error
		if err != nil {
			return err
		}
		if len(templates) == 0 {
			return errors.New("no predefined role templates for category " + u.Category)
		}

		// The role copied from the last template iterated becomes the owner
		// role. Templates are ordered by id, so the highest template id in
		// the category wins.
		var ownerRoleID uint
		for _, tpl := range templates {
			role := models.TeamRole{
				Name:        tpl.Name,
				Description: tpl.Description,
				TeamID:      team.ID,
			}
			if err := tx.Create(&role).Error; err != nil {
				return err
			}
			ownerRoleID = role.ID

			var templateBindings []models.PredefinedRolePermission
			err := tx.Where("predefined_role_id = ?", tpl.ID).Find(&templateBindings).Error
			if err != nil {
				return err
			}
			if len(templateBindings) == 0 {
				continue
			}

			rolePermissions := make([]models.TeamRolePermission, 0, len(templateBindings))
			for _, b := range templateBindings {
				rolePermissions = append(rolePermissions, models.TeamRolePermission{
					TeamRoleID:   role.ID,
					PermissionID: b.PermissionID,
				})
			}
			if err := tx.Create(&rolePermissions).Error; err != nil {
				return err
			}
		}

		owner := models.UserTeam{
			UserID:     u.ID,
			TeamID:     team.ID,
			TeamRoleID: ownerRoleID,
		}
		return tx.Create(&owner).Error
	})
	if err != nil {
		logger.L().Errorw("failed to create team", "user_id", u.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while creating the team"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": fmt.Sprintf("Team %s created successfully with predefined roles and permissions. Creator added as team owner.", req.TeamName),
		"team":    team,
	})
}

// EditTeam updates name/description in place. Single-row update, no
// transaction needed.
func EditTeam(c *gin.Context) {
	teamID, err := strconv.Atoi(c.Param("teamId"))
	if err != nil || teamID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid team ID"})
		return
	}

	var req struct {
		TeamName        string  `json:"teamName" binding:"required"`
		TeamDescription *string `json:"teamDescription"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Team name is required"})
		return
	}

	var team models.Team
	if err := config.DB.First(&team, teamID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Team not found"})
		return
	}

	team.Name = req.TeamName
	team.Description = req.TeamDescription
	if err := config.DB.Save(&team).Error; err != nil {
		logger.L().Errorw("failed to update team", "team_id", teamID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong while updating the team"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Team %s updated successfully", team.Name),
		"team":    team,
	})
}

// GetUserTeams lists the caller's teams ordered by join time descending.
func GetUserTeams(c *gin.Context) {
	u := c.MustGet(middleware.CtxUser).(models.User)

	var memberships []models.UserTeam
	err := config.DB.Where("user_id = ?", u.ID).
		Order("joined_at DESC").
		Find(&memberships).Error
	if err != nil {
		logger.L().Errorw("failed to fetch memberships", "user_id", u.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "An error occurred while fetching user teams"})
		return
	}

	formatted := make([]gin.H, 0, len(memberships))
	if len(memberships) == 0 {
		c.JSON(http.StatusOK, gin.H{"success": true, "teams": formatted})
		return
	}

	teamIDs := make([]uint, 0, len(memberships))
	for _, m := range memberships {
		teamIDs = append(teamIDs, m.TeamID)
	}

	var teams []models.Team
	if err := config.DB.Where("team_id IN ?", teamIDs).Find(&teams).Error; err != nil {
		logger.L().Errorw("failed to fetch teams", "user_id", u.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "An error occurred while fetching user teams"})
		return
	}

	teamByID := make(map[uint]models.Team, len(teams))
	for _, t := range teams {
		teamByID[t.ID] = t
	}

	// Zip team details back in membership order.
	for _, m := range memberships {
		t, ok := teamByID[m.TeamID]
		if !ok {
			continue
		}
		formatted = append(formatted, gin.H{
			"team_id":          t.ID,
			"team_name":        t.Name,
			"team_description": t.Description,
			"joined_at":        m.JoinedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "teams": formatted})
}

// DeleteTeam cascades in foreign-key order inside one transaction:
// invitations referencing the team's roles, role-permission bindings,
// memberships, roles, then the team itself.
func DeleteTeam(c *gin.Context) {
	teamID, err := strconv.Atoi(c.Param("teamId"))
	if err != nil || teamID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid team ID"})
		return
	}

	var team models.Team
	if err := config.DB.First(&team, teamID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Team not found"})
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		var roleIDs []uint
		err := tx.Model(&models.TeamRole{}).
			Where("team_id = ?", teamID).
			Pluck("team_role_id", &roleIDs).Error
		if err != nil {
			return err
		}

		if len(roleIDs) > 0 {
			if err := tx.Where("team_role_id IN ?", roleIDs).Delete(&models.Invitation{}).Error; err != nil {
				return err
			}
			if err := tx.Where("team_role_id IN ?", roleIDs).Delete(&models.TeamRolePermission{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("team_id = ?", teamID).Delete(&models.UserTeam{}).Error; err != nil {
			return err
		}
		if err := tx.Where("team_id = ?", teamID).Delete(&models.TeamRole{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Team{}, teamID).Error
	})
	if err != nil {
		logger.L().Errorw("failed to delete team", "team_id", teamID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "An error occurred while deleting the team"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Team deleted successfully"})
}
