package router

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kshiteeshhh/qkart-backend/internal/service"
	"github.com/kshiteeshhh/qkart-backend/pkg/apierror"
	"github.com/kshiteeshhh/qkart-backend/pkg/global"
	"github.com/kshiteeshhh/qkart-backend/pkg/models"
)

const currentUserKey = "currentUser"

// RequestID propagates an inbound X-Request-Id header, minting one when
// the caller sent none.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-Id")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("requestID", requestID)
		c.Writer.Header().Set("X-Request-Id", requestID)
		c.Next()
	}
}

// RequireAuth resolves the bearer token to a user and stores it on the
// context for handlers downstream.
func RequireAuth(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.JSON(http.StatusUnauthorized, global.ErrorResponse("Please authenticate", nil))
			c.Abort()
			return
		}

		user, err := auth.VerifyAccessToken(c.Request.Context(), strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			apiErr := apierror.From(err)
			c.JSON(apiErr.Status, global.ErrorResponse(apiErr.Message, nil))
			c.Abort()
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the user stored by RequireAuth, or nil outside an
// authenticated route.
func CurrentUser(c *gin.Context) *models.User {
	value, ok := c.Get(currentUserKey)
	if !ok {
		return nil
	}
	user, _ := value.(*models.User)
	return user
}
