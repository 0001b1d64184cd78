package validator

import (
	"testing"

	"jobapply_backend/internal/services/dto"
	"jobapply_backend/internal/wizard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestValidateLoginRequest(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "secret",
	}))

	err := v.Validate(&dto.LoginRequest{Email: "not-an-email"})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)

	// Field names come from the JSON tags.
	assert.Contains(t, vErr.Errors, "email")
	assert.Contains(t, vErr.Errors, "password")
	assert.Equal(t, "this field is required", vErr.Errors["password"])
}

func TestJobTypeRule(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&wizard.FormUpdate{JobType: strPtr("web_developer")}))
	assert.NoError(t, v.Validate(&wizard.FormUpdate{JobType: strPtr("accounting_developer")}))

	err := v.Validate(&wizard.FormUpdate{JobType: strPtr("astronaut")})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Errors["job_type"], "must be one of")
}

func TestApplicationStatusRule(t *testing.T) {
	v := New()

	for _, status := range []string{"pending", "approved", "rejected"} {
		assert.NoError(t, v.Validate(&dto.UpdateStatusRequest{Status: status}), status)
	}

	err := v.Validate(&dto.UpdateStatusRequest{Status: "archived"})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Errors, "status")

	// Empty status fails "required", not the enum rule.
	err = v.Validate(&dto.UpdateStatusRequest{})
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "this field is required", vErr.Errors["status"])
}

func TestFormUpdateBounds(t *testing.T) {
	v := New()

	tooMany := make([]wizard.ProjectForm, wizard.MaxProjects+1)
	err := v.Validate(&wizard.FormUpdate{Projects: &tooMany})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Errors, "projects")

	err = v.Validate(&wizard.FormUpdate{PortfolioURL: strPtr("not a url")})
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "must be a valid URL", vErr.Errors["portfolio_url"])
}
