package handlers

import (
	"net/http"

	"jobapply_backend/internal/middleware"
	"jobapply_backend/internal/models"
	"jobapply_backend/internal/services"
	"jobapply_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// AdminHandler is the review dashboard API: list everything, inspect
// one application, flip its status.
type AdminHandler struct {
	*BaseHandler
	reviewService services.ReviewService
}

func NewAdminHandler(base *BaseHandler, reviewService services.ReviewService) *AdminHandler {
	return &AdminHandler{
		BaseHandler:   base,
		reviewService: reviewService,
	}
}

func (h *AdminHandler) RegisterRoutes(api *gin.RouterGroup) {
	group := api.Group("/admin")
	group.Use(middleware.AuthMiddleware())
	group.Use(middleware.RequireRoles(models.UserRoleAdmin, models.UserRoleReviewer))
	{
		group.GET("/applications", h.ListApplications)
		group.GET("/applications/:id", h.GetApplication)
		group.PATCH("/applications/:id/status", h.UpdateStatus)
	}
}

// ListApplications returns the full review payload in one response.
func (h *AdminHandler) ListApplications(c *gin.Context) {
	list, err := h.reviewService.ListApplications(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *AdminHandler) GetApplication(c *gin.Context) {
	app, err := h.reviewService.GetApplication(c.Request.Context(), h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// UpdateStatus applies a status transition and echoes the new status.
func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	id := c.Param("id")
	status := models.ApplicationStatus(req.Status)

	if err := h.reviewService.SetStatus(c.Request.Context(), h.GetDB(c), id, status); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id, "status": status})
}
