package handlers

import (
	"net/http"

	"jobapply_backend/internal/services"
	"jobapply_backend/internal/wizard"
	"jobapply_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// WizardHandler drives the multi-step application form over HTTP. The
// session holds all progress in memory; nothing is persisted until the
// final submit.
type WizardHandler struct {
	*BaseHandler
	store      *wizard.Store
	appService services.ApplicationService
}

func NewWizardHandler(base *BaseHandler, store *wizard.Store, appService services.ApplicationService) *WizardHandler {
	return &WizardHandler{
		BaseHandler: base,
		store:       store,
		appService:  appService,
	}
}

func (h *WizardHandler) RegisterRoutes(api *gin.RouterGroup) {
	group := api.Group("/wizard")
	{
		group.POST("", h.CreateSession)
		group.GET("/:id", h.GetSession)
		group.PATCH("/:id", h.UpdateFields)
		group.POST("/:id/advance", h.Advance)
		group.POST("/:id/retreat", h.Retreat)
		group.POST("/:id/submit", h.Submit)
	}
}

type wizardStateResponse struct {
	SessionID   string          `json:"session_id"`
	CurrentStep int             `json:"current_step"`
	TotalSteps  int             `json:"total_steps"`
	StepTitle   string          `json:"step_title"`
	Submitting  bool            `json:"submitting"`
	FormData    wizard.FormData `json:"form_data"`
}

func stateResponse(session *wizard.Session) wizardStateResponse {
	state, submitting := session.Snapshot()
	return wizardStateResponse{
		SessionID:   session.ID,
		CurrentStep: state.CurrentStep,
		TotalSteps:  wizard.TotalSteps,
		StepTitle:   wizard.StepTitle(state.CurrentStep),
		Submitting:  submitting,
		FormData:    state.Data,
	}
}

// CreateSession starts a fresh wizard at step 1.
func (h *WizardHandler) CreateSession(c *gin.Context) {
	session := h.store.Create()
	c.JSON(http.StatusCreated, stateResponse(session))
}

func (h *WizardHandler) GetSession(c *gin.Context) {
	session, err := h.store.Get(c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, apperrors.ErrWizardSessionNotFound)
		return
	}
	c.JSON(http.StatusOK, stateResponse(session))
}

// UpdateFields merges a partial form update into the session. Shallow
// replacement only: a supplied projects array replaces all slots.
func (h *WizardHandler) UpdateFields(c *gin.Context) {
	session, err := h.store.Get(c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, apperrors.ErrWizardSessionNotFound)
		return
	}

	var update wizard.FormUpdate
	if !h.BindAndValidateJSON(c, &update) {
		return
	}

	err = session.Mutate(func(s *wizard.State) error {
		s.UpdateFields(&update)
		return nil
	})
	if err != nil {
		apperrors.HandleError(c, apperrors.ErrSubmissionInProgress)
		return
	}

	c.JSON(http.StatusOK, stateResponse(session))
}

// Advance validates the current step, then moves forward. A boundary
// call on the last step is a no-op, not an error.
func (h *WizardHandler) Advance(c *gin.Context) {
	session, err := h.store.Get(c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, apperrors.ErrWizardSessionNotFound)
		return
	}

	err = session.Mutate(func(s *wizard.State) error {
		if err := wizard.ValidateStep(s.CurrentStep, &s.Data); err != nil {
			return err
		}
		s.Advance()
		return nil
	})
	if err != nil {
		if stepErr, ok := err.(*wizard.StepValidationError); ok {
			apperrors.HandleError(c, apperrors.ValidationError(stepErr.Fields()))
			return
		}
		apperrors.HandleError(c, apperrors.ErrSubmissionInProgress)
		return
	}

	c.JSON(http.StatusOK, stateResponse(session))
}

// Retreat moves one step back; a no-op on step 1.
func (h *WizardHandler) Retreat(c *gin.Context) {
	session, err := h.store.Get(c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, apperrors.ErrWizardSessionNotFound)
		return
	}

	err = session.Mutate(func(s *wizard.State) error {
		s.Retreat()
		return nil
	})
	if err != nil {
		apperrors.HandleError(c, apperrors.ErrSubmissionInProgress)
		return
	}

	c.JSON(http.StatusOK, stateResponse(session))
}

// Submit runs the submission orchestrator with the session's form data
// plus the images carried in this request's multipart body. On success
// the wizard resets to step 1; on failure the form data is preserved
// so the applicant can retry.
func (h *WizardHandler) Submit(c *gin.Context) {
	session, err := h.store.Get(c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, apperrors.ErrWizardSessionNotFound)
		return
	}

	if err := session.BeginSubmit(); err != nil {
		apperrors.HandleError(c, apperrors.ErrSubmissionInProgress)
		return
	}

	state, _ := session.Snapshot()
	data := state.Data

	// Detach the project slice so image refs stay request-local.
	projects := make([]wizard.ProjectForm, len(data.Projects))
	copy(projects, data.Projects)
	data.Projects = projects

	// Images are optional; a JSON-only submit simply has none.
	if form, err := c.MultipartForm(); err == nil && form != nil {
		if err := attachFormImages(form, &data); err != nil {
			session.EndSubmit(false)
			apperrors.HandleError(c, apperrors.NewBadRequestError(err.Error()))
			return
		}
	}

	result, err := h.appService.Submit(c.Request.Context(), h.GetDB(c), &data)
	if err != nil {
		session.EndSubmit(false)
		h.HandleServiceError(c, err)
		return
	}

	session.EndSubmit(true)
	c.JSON(http.StatusCreated, result)
}
