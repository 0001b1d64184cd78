package handlers

import (
	"net/http"
	"strconv"

	"jobapply_backend/internal/services"
	"jobapply_backend/internal/wizard"
	"jobapply_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// ApplicationHandler accepts a complete application in one multipart
// request, bypassing the step-by-step wizard. Both paths feed the same
// orchestrator.
type ApplicationHandler struct {
	*BaseHandler
	appService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, appService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler: base,
		appService:  appService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/applications", h.Submit)
}

// Submit parses the multipart form into form data and runs the
// submission sequence.
func (h *ApplicationHandler) Submit(c *gin.Context) {
	data, err := h.parseForm(c)
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError(err.Error()))
		return
	}

	result, err := h.appService.Submit(c.Request.Context(), h.GetDB(c), data)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

func (h *ApplicationHandler) parseForm(c *gin.Context) (*wizard.FormData, error) {
	data := wizard.NewFormData()

	data.FullName = c.PostForm("full_name")
	data.Phone = c.PostForm("phone")
	data.JobType = c.PostForm("job_type")
	data.PortfolioURL = c.PostForm("portfolio_url")
	data.Notes = c.PostForm("notes")

	if ageStr := c.PostForm("age"); ageStr != "" {
		age, err := strconv.Atoi(ageStr)
		if err == nil {
			data.Age = age
		}
	}

	// Repeated "skills" fields; order of appearance is kept for display.
	data.Skills = c.PostFormArray("skills")
	if data.Skills == nil {
		data.Skills = []string{}
	}

	for i := 0; i < wizard.MaxProjects; i++ {
		data.Projects[i].Title = c.PostForm(fieldProjectTitle(i))
		data.Projects[i].Description = c.PostForm(fieldProjectDescription(i))
	}

	if form, err := c.MultipartForm(); err == nil && form != nil {
		if err := attachFormImages(form, &data); err != nil {
			return nil, err
		}
	}

	return &data, nil
}
