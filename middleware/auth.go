package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ctb-platform/team-server/config"
	"github.com/ctb-platform/team-server/models"
	"github.com/ctb-platform/team-server/utils"
)

// Context keys for values injected by AuthJWT.
const (
	CtxUser       = "user"
	CtxUserPublic = "userPublic"
)

// AuthJWT checks Authorization: Bearer <token>, validates the JWT, loads the
// user row and injects it into the context. Every handler behind this
// middleware can rely on the caller's id and account category being present.
func AuthJWT() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Missing or invalid Authorization header"})
			return
		}
		rawToken := strings.TrimSpace(authHeader[7:])

		claims, err := utils.VerifyToken(rawToken)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			return
		}

		// UserID in the claims is a string, parse it to look up the row by
		// primary key.
		uid, err := strconv.ParseUint(claims.UserID, 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid subject"})
			return
		}

		var user models.User
		if err := config.DB.First(&user, uid).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "User not found"})
			return
		}

		c.Set(CtxUser, user)
		c.Set(CtxUserPublic, gin.H{
			"id":         user.ID,
			"name":       user.Name,
			"email":      user.Email,
			"category":   user.Category,
			"created_at": user.CreatedAt,
		})

		c.Next()
	}
}
