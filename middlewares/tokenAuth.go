package middlewares

import (
	"AyurCare/utils"
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// contextKey defines a custom context key type to store user details in the context.
type contextKey string

const (
	userIDKey    contextKey = "userID"
	userRoleKey  contextKey = "userRole"
	clinicIDKey  contextKey = "clinicID"
	patientIDKey contextKey = "patientID"
)

// TokenAuthMiddleware validates the token and adds the caller's identity,
// role and clinic to the request context.
func TokenAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.DefaultQuery("accessToken", "")
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing access token"})
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		ctx := context.WithValue(c.Request.Context(), userIDKey, claims.UserID)
		ctx = context.WithValue(ctx, userRoleKey, claims.Role)
		ctx = context.WithValue(ctx, clinicIDKey, claims.ClinicID)
		ctx = context.WithValue(ctx, patientIDKey, claims.PatientID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RoleAuthMiddleware restricts access to callers holding one of the allowed
// roles. Authorization is decided here once; handlers and services never
// re-check roles.
func RoleAuthMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, err := ExtractUserRoleFromContext(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User role not found in context"})
			c.Abort()
			return
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden: insufficient privileges"})
		c.Abort()
	}
}

// ExtractUserIDFromContext retrieves the userID from the context.
func ExtractUserIDFromContext(ctx context.Context) (string, error) {
	userID, ok := ctx.Value(userIDKey).(string)
	if !ok {
		return "", errors.New("user ID not found in context")
	}
	return userID, nil
}

// ExtractUserRoleFromContext retrieves the user role from the context.
func ExtractUserRoleFromContext(ctx context.Context) (string, error) {
	userRole, ok := ctx.Value(userRoleKey).(string)
	if !ok {
		return "", errors.New("user role not found in context")
	}
	return userRole, nil
}

// ExtractClinicIDFromContext retrieves the caller's clinic from the context.
func ExtractClinicIDFromContext(ctx context.Context) (string, error) {
	clinicID, ok := ctx.Value(clinicIDKey).(string)
	if !ok || clinicID == "" {
		return "", errors.New("clinic ID not found in context")
	}
	return clinicID, nil
}

// ExtractPatientIDFromContext retrieves the portal patient link, empty for
// staff callers.
func ExtractPatientIDFromContext(ctx context.Context) (string, error) {
	patientID, ok := ctx.Value(patientIDKey).(string)
	if !ok || patientID == "" {
		return "", errors.New("patient ID not found in context")
	}
	return patientID, nil
}
