package wizard

import (
	"fmt"
	"strings"
)

// StepValidationError lists the required fields missing on a step.
type StepValidationError struct {
	Step    int
	Missing []string
}

func (e *StepValidationError) Error() string {
	return fmt.Sprintf("step %d (%s) incomplete: missing %s",
		e.Step, StepTitle(e.Step), strings.Join(e.Missing, ", "))
}

// Fields returns a field -> message map for the error envelope.
func (e *StepValidationError) Fields() map[string]string {
	fields := make(map[string]string, len(e.Missing))
	for _, name := range e.Missing {
		fields[name] = "this field is required"
	}
	return fields
}

// ValidateStep gates forward navigation. Only the personal-info step has
// required fields; every other step always passes.
//
// Age is a truthiness check carried over from the source form: zero is
// rejected the same as absent.
func ValidateStep(step int, data *FormData) error {
	if step != StepPersonalInfo {
		return nil
	}

	var missing []string
	if data.FullName == "" {
		missing = append(missing, "full_name")
	}
	if data.Phone == "" {
		missing = append(missing, "phone")
	}
	if data.Age == 0 {
		missing = append(missing, "age")
	}
	if data.JobType == "" {
		missing = append(missing, "job_type")
	}

	if len(missing) > 0 {
		return &StepValidationError{Step: step, Missing: missing}
	}
	return nil
}
