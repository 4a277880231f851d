package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ctb-platform/team-server/config"
	"github.com/ctb-platform/team-server/logger"
	"github.com/ctb-platform/team-server/middleware"
	"github.com/ctb-platform/team-server/models"
)

// AddPermissionsToRole attaches permissions to a team role in bulk. Existing
// bindings are filtered out first, so attaching an already-attached
// permission is a no-op, never an error or a duplicate row.
func AddPermissionsToRole(c *gin.Context) {
	var req struct {
		TeamRoleID    uint   `json:"teamRoleID" binding:"required"`
		PermissionIDs []uint `json:"permissionIDs" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "teamRoleID and permissionIDs are required"})
		return
	}

	var existing []models.TeamRolePermission
	err := config.DB.
		Where("team_role_id = ? AND permission_id IN ?", req.TeamRoleID, req.PermissionIDs).
		Find(&existing).Error
	if err != nil {
		logger.L().Errorw("failed to fetch existing bindings", "team_role_id", req.TeamRoleID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	alreadyBound := make(map[uint]bool, len(existing))
	for _, binding := range existing {
		alreadyBound[binding.PermissionID] = true
	}

	newBindings := make([]models.TeamRolePermission, 0, len(req.PermissionIDs))
	for _, permID := range req.PermissionIDs {
		if alreadyBound[permID] {
			continue
		}
		newBindings = append(newBindings, models.TeamRolePermission{
			TeamRoleID:   req.TeamRoleID,
			PermissionID: permID,
		})
	}

	if len(newBindings) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "All permissions already exist. No new permissions were assigned.",
		})
		return
	}

	if err := config.DB.Create(&newBindings).Error; err != nil {
		logger.L().Errorw("failed to assign permissions", "team_role_id", req.TeamRoleID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":        true,
		"message":        fmt.Sprintf("%d permissions assigned successfully", len(newBindings)),
		"newPermissions": newBindings,
	})
}

// RemovePermissionsFromRole detaches permissions in bulk and reports how many
// bindings were removed. Zero matches is a not-found result, not a failure.
func RemovePermissionsFromRole(c *gin.Context) {
	var req struct {
		TeamRoleID    uint   `json:"teamRoleID" binding:"required"`
		PermissionIDs []uint `json:"permissionIDs" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "teamRoleID and permissionIDs are required"})
		return
	}

	result := config.DB.
		Where("team_role_id = ? AND permission_id IN ?", req.TeamRoleID, req.PermissionIDs).
		Delete(&models.TeamRolePermission{})
	if result.Error != nil {
		logger.L().Errorw("failed to remove permissions", "team_role_id", req.TeamRoleID, "error", result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "No permissions found to remove",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("%d permissions removed successfully", result.RowsAffected),
	})
}

// GetUserRolesAndPermissions resolves every (team, role) membership of the
// caller together with the role's permission list. Four sequential bulk
// queries and an in-memory zip, one entry per membership; no deduplication
// or merging across teams.
func GetUserRolesAndPermissions(c *gin.Context) {
	u := c.MustGet(middleware.CtxUser).(models.User)

	var memberships []models.UserTeam
	if err := config.DB.Where("user_id = ?", u.ID).Find(&memberships).Error; err != nil {
		logger.L().Errorw("failed to fetch memberships", "user_id", u.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong while fetching the user roles and permissions!"})
		return
	}

	result := make([]gin.H, 0, len(memberships))
	if len(memberships) == 0 {
		c.JSON(http.StatusOK, result)
		return
	}

	teamIDs := make([]uint, 0, len(memberships))
	roleIDs := make([]uint, 0, len(memberships))
	for _, m := range memberships {
		teamIDs = append(teamIDs, m.TeamID)
		roleIDs = append(roleIDs, m.TeamRoleID)
	}

	var roleBindings []models.TeamRolePermission
	if err := config.DB.Where("team_role_id IN ?", roleIDs).Find(&roleBindings).Error; err != nil {
		logger.L().Errorw("failed to fetch role bindings", "user_id", u.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong while fetching the user roles and permissions!"})
		return
	}

	var roles []models.TeamRole
	if err := config.DB.Where("team_role_id IN ?", roleIDs).Find(&roles).Error; err != nil {
		logger.L().Errorw("failed to fetch roles", "user_id", u.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong while fetching the user roles and permissions!"})
		return
	}

	permIDs := make([]uint, 0, len(roleBindings))
	for _, b := range roleBindings {
		permIDs = append(permIDs, b.PermissionID)
	}
	var permissions []models.Permission
	if len(permIDs) > 0 {
		if err := config.DB.Where("permission_id IN ?", permIDs).Find(&permissions).Error; err != nil {
			logger.L().Errorw("failed to fetch permissions", "user_id", u.ID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong while fetching the user roles and permissions!"})
			return
		}
	}

	var teams []models.Team
	if err := config.DB.Where("team_id IN ?", teamIDs).Find(&teams).Error; err != nil {
		logger.L().Errorw("failed to fetch teams", "user_id", u.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong while fetching the user roles and permissions!"})
		return
	}

	roleNameByID := make(map[uint]string, len(roles))
	for _, r := range roles {
		roleNameByID[r.ID] = r.Name
	}
	permByID := make(map[uint]models.Permission, len(permissions))
	for _, p := range permissions {
		permByID[p.ID] = p
	}
	teamNameByID := make(map[uint]string, len(teams))
	for _, t := range teams {
		teamNameByID[t.ID] = t.Name
	}

	for _, m := range memberships {
		perms := make([]models.Permission, 0)
		for _, b := range roleBindings {
			if b.TeamRoleID != m.TeamRoleID {
				continue
			}
			if p, ok := permByID[b.PermissionID]; ok {
				perms = append(perms, p)
			}
		}
		result = append(result, gin.H{
			"team":        teamNameByID[m.TeamID],
			"role":        roleNameByID[m.TeamRoleID],
			"permissions": perms,
		})
	}

	c.JSON(http.StatusOK, result)
}
