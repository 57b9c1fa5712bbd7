package auth

import (
	"net/http"
	"strings"

	apperrors "trackflow-backend/internal/errors"
	"trackflow-backend/internal/logger"
	"trackflow-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service    *AuthService
	cookieName string
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService, cookieName string) *AuthMiddleware {
	return &AuthMiddleware{service: service, cookieName: cookieName}
}

// RequireAuth validates the session token and sets user context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := m.tokenFromRequest(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrAuthenticationRequired.Error()})
			c.Abort()
			return
		}

		claims, err := m.service.ValidateJWT(c.Request.Context(), tokenString)
		if err != nil {
			if apperrors.IsAuthentication(err) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			} else {
				logger.WithContext(c.Request.Context()).WithError(err).Error("token validation failed")
				c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			}
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_name", claims.Name)
		c.Set("email", claims.Email)
		c.Set("auth_claims", claims)
		c.Request = c.Request.WithContext(logger.ContextWithUser(c.Request.Context(), claims.Email))

		c.Next()
	}
}

// tokenFromRequest prefers the Authorization header over the session cookie
func (m *AuthMiddleware) tokenFromRequest(c *gin.Context) (string, bool) {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return "", false
		}
		return tokenString, true
	}

	if m.cookieName != "" {
		if cookie, err := c.Cookie(m.cookieName); err == nil && cookie != "" {
			return cookie, true
		}
	}
	return "", false
}

// GetUserID is a helper function to extract user ID from context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

// GetAuthClaims is a helper function to extract full auth claims from context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	claims, exists := c.Get("auth_claims")
	if !exists {
		return nil, false
	}

	authClaims, ok := claims.(*AuthClaims)
	return authClaims, ok
}

// CurrentActor returns the authenticated user as a service actor
func CurrentActor(c *gin.Context) (service.Actor, bool) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		return service.Actor{}, false
	}
	return service.Actor{ID: claims.UserID, Name: claims.Name, Email: claims.Email}, true
}
