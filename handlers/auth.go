package handlers

import (
	"net/http"
	"time"

	"webimmo/config"
	"webimmo/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// adminSessionDuration is how long an admin panel session stays valid.
const adminSessionDuration = 24 * time.Hour

type adminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AdminLoginHandler checks the configured credential and issues a session
// token for the admin panel.
func AdminLoginHandler(c *gin.Context) {
	var req adminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid login payload"})
		return
	}

	hash := config.AppConfig.AdminPasswordHash
	if hash == "" {
		zap.L().Error("Admin login attempted but no password hash is configured")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Admin access is not configured"})
		return
	}

	if req.Username != config.AppConfig.AdminUsername ||
		bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)) != nil {
		zap.L().Warn("Failed admin login attempt", zap.String("username", req.Username))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateAdminToken(req.Username, adminSessionDuration)
	if err != nil {
		zap.L().Error("Failed to generate admin token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":     token,
		"expiresIn": int(adminSessionDuration.Seconds()),
	})
}

// AdminSessionHandler confirms a valid session. It sits behind the admin
// middleware, so reaching it means the token checked out.
func AdminSessionHandler(c *gin.Context) {
	username, _ := c.Get("adminUser")
	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"username":      username,
	})
}
