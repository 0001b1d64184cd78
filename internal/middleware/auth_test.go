package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"jobapply_backend/internal/auth"
	"jobapply_backend/internal/config"
	"jobapply_backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setMiddlewareTestConfig(t *testing.T) {
	t.Helper()
	prev := config.AppConfig
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	config.AppConfig = cfg
	t.Cleanup(func() { config.AppConfig = prev })
}

func protectedRouter(roles ...models.UserRole) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	group := router.Group("/secure")
	group.Use(AuthMiddleware())
	if len(roles) > 0 {
		group.Use(RequireRoles(roles...))
	}
	group.GET("", func(c *gin.Context) {
		userID, _ := c.Get("userID")
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return router
}

func do(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddlewareRejectsMissingAndBadTokens(t *testing.T) {
	setMiddlewareTestConfig(t)
	router := protectedRouter()

	assert.Equal(t, http.StatusUnauthorized, do(router, "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(router, "garbage").Code)
}

func TestAuthMiddlewarePassesClaimsThrough(t *testing.T) {
	setMiddlewareTestConfig(t)
	router := protectedRouter()

	token, err := auth.GenerateToken(&models.User{
		BaseModel: models.BaseModel{ID: "user-1"},
		Email:     "admin@example.com",
		Role:      models.UserRoleAdmin,
	})
	require.NoError(t, err)

	rec := do(router, token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "user-1")
}

func TestRequireRolesBlocksWrongRole(t *testing.T) {
	setMiddlewareTestConfig(t)
	router := protectedRouter(models.UserRoleAdmin)

	token, err := auth.GenerateToken(&models.User{
		BaseModel: models.BaseModel{ID: "user-2"},
		Email:     "reviewer@example.com",
		Role:      models.UserRoleReviewer,
	})
	require.NoError(t, err)

	rec := do(router, token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
}
