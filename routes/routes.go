package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ctb-platform/team-server/controllers"
	"github.com/ctb-platform/team-server/middleware"
)

func SetupRoutes(r *gin.Engine) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/health", controllers.HealthCheck)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", controllers.Register)
			auth.POST("/login", controllers.Login)
		}

		protected := api.Group("/")
		protected.Use(middleware.AuthJWT())
		{
			protected.GET("/me", controllers.Me)
		}

		multiTenant := api.Group("/multi-tenant")
		multiTenant.Use(middleware.AuthJWT())
		{
			multiTenant.GET("/roles-permissions", controllers.GetUserRolesAndPermissions)
			multiTenant.POST("/add-permissions", controllers.AddPermissionsToRole)
			multiTenant.DELETE("/remove-permissions", controllers.RemovePermissionsFromRole)

			multiTenant.POST("/create-team", middleware.RateLimitTeamsCreate(), controllers.CreateTeam)
			multiTenant.PUT("/edit-team/:teamId", controllers.EditTeam)
			multiTenant.GET("/user-teams", controllers.GetUserTeams)
			multiTenant.DELETE("/delete-team/:teamId", controllers.DeleteTeam)

			multiTenant.POST("/create-role", controllers.CreateTeamRoles)
			multiTenant.PUT("/team-role", controllers.AssignTeamRole)
			multiTenant.GET("/subroles/:teamId", controllers.GetSubroles)
			multiTenant.POST("/add-subrole", controllers.AddSubrole)
			multiTenant.DELETE("/delete-subroles/:roleID", controllers.DeleteSubrole)
		}

		invitations := api.Group("/invitations")
		invitations.Use(middleware.AuthJWT())
		{
			invitations.POST("/send", controllers.SendInvitation)
		}
	}
}
