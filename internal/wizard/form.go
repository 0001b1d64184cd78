package wizard

// MaxProjects is the number of portfolio project slots offered by the
// form. Only slots with a non-empty title are ever persisted.
const MaxProjects = 3

// MaxAdditionalImages is the number of secondary image slots per project.
const MaxAdditionalImages = 3

// ImageFile is an in-memory image picked by the applicant but not yet
// uploaded anywhere. Nil means an empty slot.
type ImageFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// ProjectForm is one portfolio project slot of the in-progress form.
type ProjectForm struct {
	Title       string `json:"title"`
	Description string `json:"description"`

	MainImage        *ImageFile                     `json:"-"`
	AdditionalImages [MaxAdditionalImages]*ImageFile `json:"-"`
}

// FormData is the unsaved mirror of an application plus its projects.
// Nothing here touches the database until the final submit.
type FormData struct {
	FullName     string   `json:"full_name"`
	Phone        string   `json:"phone"`
	Age          int      `json:"age"`
	JobType      string   `json:"job_type"`
	PortfolioURL string   `json:"portfolio_url"`
	Skills       []string `json:"skills"`
	Notes        string   `json:"notes"`

	ProfilePicture *ImageFile `json:"-"`

	Projects []ProjectForm `json:"projects"`
}

// NewFormData returns the initial empty form: no scalars, no skills,
// three empty projects with all image slots nil.
func NewFormData() FormData {
	return FormData{
		Skills:   []string{},
		Projects: make([]ProjectForm, MaxProjects),
	}
}

// FormUpdate is a partial update. Nil fields are left untouched; set
// fields replace the current value wholesale. In particular Projects is
// not deep-merged: a caller replacing projects supplies the full slice.
type FormUpdate struct {
	FullName     *string        `json:"full_name"`
	Phone        *string        `json:"phone"`
	Age          *int           `json:"age"`
	JobType      *string        `json:"job_type" validate:"omitempty,job_type"`
	PortfolioURL *string        `json:"portfolio_url" validate:"omitempty,url"`
	Skills       *[]string      `json:"skills"`
	Notes        *string        `json:"notes"`
	Projects     *[]ProjectForm `json:"projects" validate:"omitempty,max=3"`
}

// Apply merges the update into the form by shallow key replacement.
func (f *FormData) Apply(u *FormUpdate) {
	if u.FullName != nil {
		f.FullName = *u.FullName
	}
	if u.Phone != nil {
		f.Phone = *u.Phone
	}
	if u.Age != nil {
		f.Age = *u.Age
	}
	if u.JobType != nil {
		f.JobType = *u.JobType
	}
	if u.PortfolioURL != nil {
		f.PortfolioURL = *u.PortfolioURL
	}
	if u.Skills != nil {
		f.Skills = *u.Skills
	}
	if u.Notes != nil {
		f.Notes = *u.Notes
	}
	if u.Projects != nil {
		f.Projects = *u.Projects
	}
}
