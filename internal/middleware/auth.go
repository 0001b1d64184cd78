package middleware

import (
	"strings"

	"jobapply_backend/internal/auth"
	"jobapply_backend/internal/logger"
	"jobapply_backend/internal/models"
	"jobapply_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token. The SPA redirected to the
// sign-in page on a missing session; the API equivalent is a plain 401.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortWith(c, apperrors.NewUnauthorizedError("Authorization header missing or invalid"))
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			abortWith(c, apperrors.NewUnauthorizedError("Invalid token"))
			return
		}

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Set("userID", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// RequireRoles gates a route group to the given roles.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := make(map[models.UserRole]bool)
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		roleVal, exists := c.Get("role")
		if !exists {
			abortWith(c, apperrors.ErrInsufficientPermissions)
			return
		}

		role, ok := roleVal.(models.UserRole)
		if !ok {
			roleStr, isString := roleVal.(string)
			if !isString {
				abortWith(c, apperrors.ErrInsufficientPermissions)
				return
			}
			role = models.UserRole(roleStr)
		}

		if !roleSet[role] {
			abortWith(c, apperrors.ErrInsufficientPermissions)
			return
		}

		c.Next()
	}
}

// abortWith writes the uniform error envelope and stops the chain.
func abortWith(c *gin.Context, err *apperrors.AppError) {
	apperrors.HandleError(c, err)
	c.Abort()
}
