package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ctb-platform/team-server/config"
	"github.com/ctb-platform/team-server/logger"
	"github.com/ctb-platform/team-server/middleware"
	"github.com/ctb-platform/team-server/models"
	"github.com/ctb-platform/team-server/utils"
)

type RegisterReq struct {
	Name     string `json:"name" binding:"required,min=1"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Category string `json:"category" binding:"required,oneof=admin business hacker"`
}

func Register(c *gin.Context) {
	var req RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var count int64
	config.DB.Model(&models.User{}).Where("email = ?", req.Email).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"message": "Email already registered"})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.L().Errorw("failed to hash password", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not create account"})
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Category:     req.Category,
	}

	if err := config.DB.Create(&user).Error; err != nil {
		logger.L().Errorw("failed to create user", "email", req.Email, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not create account"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user": gin.H{
			"id":         user.ID,
			"name":       user.Name,
			"email":      user.Email,
			"category":   user.Category,
			"created_at": user.CreatedAt,
		},
	})
}

type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
		return
	}

	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
		return
	}

	token, err := utils.GenerateToken(strconv.FormatUint(uint64(user.ID), 10), user.Category)
	if err != nil {
		logger.L().Errorw("failed to sign token", "user_id", user.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not sign token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": c.MustGet(middleware.CtxUserPublic)})
}
