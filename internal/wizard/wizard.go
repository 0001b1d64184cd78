package wizard

// Step identifiers. The sequence is fixed; there is no skipping.
const (
	StepCompanyInfo  = 1
	StepPersonalInfo = 2
	StepProjects     = 3
	StepSkills       = 4
	StepNotes        = 5
	StepTrainingInfo = 6
	StepSubmission   = 7

	TotalSteps = 7
)

var stepTitles = map[int]string{
	StepCompanyInfo:  "company_info",
	StepPersonalInfo: "personal_info",
	StepProjects:     "projects",
	StepSkills:       "skills",
	StepNotes:        "notes",
	StepTrainingInfo: "training_info",
	StepSubmission:   "submission",
}

// StepTitle returns the machine name of a step, or "" for an unknown one.
func StepTitle(step int) string {
	return stepTitles[step]
}

// State is the transient wizard state. It is never persisted: a lost
// session means lost progress, by design.
type State struct {
	CurrentStep int      `json:"current_step"`
	Data        FormData `json:"form_data"`
}

// NewState starts a wizard at step 1 with empty defaults.
func NewState() *State {
	return &State{
		CurrentStep: 1,
		Data:        NewFormData(),
	}
}

// Advance moves one step forward. No-op on the last step. Advance does
// not validate; callers gate it with ValidateStep first.
func (s *State) Advance() {
	if s.CurrentStep < TotalSteps {
		s.CurrentStep++
	}
}

// Retreat moves one step back. No-op on step 1.
func (s *State) Retreat() {
	if s.CurrentStep > 1 {
		s.CurrentStep--
	}
}

// UpdateFields merges a partial update into the form data.
func (s *State) UpdateFields(u *FormUpdate) {
	s.Data.Apply(u)
}

// Reset restores the initial defaults after a successful submission.
func (s *State) Reset() {
	s.CurrentStep = 1
	s.Data = NewFormData()
}
