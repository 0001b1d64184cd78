package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"jobapply_backend/internal/middleware"
	"jobapply_backend/internal/services/dto"
	"jobapply_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApplicationTestServer(t *testing.T) (*gin.Engine, *fakeAppService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	appService := &fakeAppService{result: &dto.SubmissionResult{ApplicationID: "app-1"}}

	router := gin.New()
	router.Use(middleware.DBMiddleware(nil))

	api := router.Group("/api/v1")
	handler := NewApplicationHandler(NewBaseHandler(validator.New()), appService)
	handler.RegisterRoutes(api)

	return router, appService
}

func TestOneShotSubmitParsesMultipart(t *testing.T) {
	router, appService := newApplicationTestServer(t)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	require.NoError(t, w.WriteField("full_name", "Aigerim S"))
	require.NoError(t, w.WriteField("phone", "+77001234567"))
	require.NoError(t, w.WriteField("age", "27"))
	require.NoError(t, w.WriteField("job_type", "app_developer"))
	require.NoError(t, w.WriteField("notes", "available from June"))
	require.NoError(t, w.WriteField("skills", "go"))
	require.NoError(t, w.WriteField("skills", "flutter"))
	require.NoError(t, w.WriteField("project_0_title", "Delivery app"))
	require.NoError(t, w.WriteField("project_0_description", "iOS and Android"))

	part, err := w.CreateFormFile("profile_picture", "me.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("jpeg bytes"))
	require.NoError(t, err)

	part, err = w.CreateFormFile("project_0_main_image", "shot.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("png bytes"))
	require.NoError(t, err)

	part, err = w.CreateFormFile("project_0_additional_image_1", "extra.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("more png bytes"))
	require.NoError(t, err)

	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/applications", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	data := appService.received
	require.NotNil(t, data)
	assert.Equal(t, "Aigerim S", data.FullName)
	assert.Equal(t, 27, data.Age)
	assert.Equal(t, "app_developer", data.JobType)
	assert.Equal(t, []string{"go", "flutter"}, data.Skills)
	assert.Equal(t, "Delivery app", data.Projects[0].Title)

	require.NotNil(t, data.ProfilePicture)
	assert.Equal(t, "me.jpg", data.ProfilePicture.Name)
	assert.Equal(t, []byte("jpeg bytes"), data.ProfilePicture.Data)

	require.NotNil(t, data.Projects[0].MainImage)
	assert.Equal(t, "shot.png", data.Projects[0].MainImage.Name)

	// Slot 1 carries the file, slots 0 and 2 stay empty.
	assert.Nil(t, data.Projects[0].AdditionalImages[0])
	require.NotNil(t, data.Projects[0].AdditionalImages[1])
	assert.Equal(t, "extra.png", data.Projects[0].AdditionalImages[1].Name)
	assert.Nil(t, data.Projects[0].AdditionalImages[2])
}

func TestOneShotSubmitWithoutFiles(t *testing.T) {
	router, appService := newApplicationTestServer(t)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("full_name", "Dastan K"))
	require.NoError(t, w.WriteField("phone", "+77009876543"))
	require.NoError(t, w.WriteField("age", "31"))
	require.NoError(t, w.WriteField("job_type", "hosting_expert"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/applications", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	require.NotNil(t, appService.received)
	assert.Nil(t, appService.received.ProfilePicture)
	assert.Empty(t, appService.received.Skills)
}
