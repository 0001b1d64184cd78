package handlers

import (
	"net/http"

	"jobapply_backend/internal/middleware"
	"jobapply_backend/internal/services"
	"jobapply_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

func (h *AuthHandler) RegisterRoutes(api *gin.RouterGroup) {
	group := api.Group("/auth")
	{
		group.POST("/login", h.Login)
		group.POST("/logout", h.Logout)
		group.GET("/session", middleware.AuthMiddleware(), h.GetSession)
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Logout is a formality with stateless tokens: the client discards the
// token. Kept so the dashboard's sign-out call has somewhere to land.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}

// GetSession answers the dashboard's "who am I" check.
func (h *AuthHandler) GetSession(c *gin.Context) {
	userID, ok := h.GetAuthUserID(c)
	if !ok {
		return
	}

	session, err := h.authService.GetSession(c.Request.Context(), h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}
