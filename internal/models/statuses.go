package models

type ApplicationStatus string
type JobType string
type UserRole string
type UserStatus string

const (
	// An application always starts pending; only the review flow moves it.
	// No transition is blocked: approved and rejected can both return to
	// pending.
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusRejected ApplicationStatus = "rejected"

	JobTypeWebDeveloper        JobType = "web_developer"
	JobTypeAppDeveloper        JobType = "app_developer"
	JobTypeHostingExpert       JobType = "hosting_expert"
	JobTypeAccountingDeveloper JobType = "accounting_developer"

	UserRoleAdmin    UserRole = "admin"
	UserRoleReviewer UserRole = "reviewer"

	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
)

// ValidApplicationStatus reports whether s is a known review status.
func ValidApplicationStatus(s ApplicationStatus) bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusApproved, ApplicationStatusRejected:
		return true
	}
	return false
}

// ValidJobType reports whether j is one of the offered positions.
func ValidJobType(j JobType) bool {
	switch j {
	case JobTypeWebDeveloper, JobTypeAppDeveloper, JobTypeHostingExpert, JobTypeAccountingDeveloper:
		return true
	}
	return false
}
