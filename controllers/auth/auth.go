package authControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vasanthdommeti/Kiranna-Mart-Task/auth"
	"github.com/vasanthdommeti/Kiranna-Mart-Task/models"
	"github.com/vasanthdommeti/Kiranna-Mart-Task/store"
)

type SignInRequest struct {
	Provider string `json:"provider" binding:"required"` // "google", "facebook" or "email"
}

// POST /auth/sign-in
func SignIn(authStore *store.AuthStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SignInRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		user, err := authStore.SignIn(models.AuthProvider(req.Provider))
		if err != nil {
			if errors.Is(err, store.ErrInvalidProvider) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Sign-in failed"})
			return
		}

		token, err := auth.IssueSessionToken(user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"user":  user,
			"token": token,
		})
	}
}

// POST /auth/skip
func Skip(authStore *store.AuthStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		authStore.SkipAuth()

		guestID, token, err := auth.IssueGuestToken()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"guest_id": guestID,
			"token":    token,
		})
	}
}

// GET /auth/session
func Session(authStore *store.AuthStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user":           authStore.User(),
			"hasSkippedAuth": authStore.HasSkippedAuth(),
			"hasHydrated":    authStore.HasHydrated(),
		})
	}
}

// POST /user/logout
func Logout(authStore *store.AuthStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		authStore.Logout()
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}
