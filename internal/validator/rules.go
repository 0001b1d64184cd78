package validator

import (
	"jobapply_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules wires the domain rules into the validator.
func registerCustomRules(v *validator.Validate) error {
	if err := v.RegisterValidation("job_type", validateJobType); err != nil {
		return err
	}
	if err := v.RegisterValidation("application_status", validateApplicationStatus); err != nil {
		return err
	}
	return nil
}

// job_type: empty is allowed here so "required" stays a separate failure.
func validateJobType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ValidJobType(models.JobType(value))
}

func validateApplicationStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ValidApplicationStatus(models.ApplicationStatus(value))
}
