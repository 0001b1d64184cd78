package apperrors

import "net/http"

// Predefined errors for the application-intake domain.

// ErrWizardSessionNotFound - the wizard session id is unknown or expired.
var ErrWizardSessionNotFound = New(
	CodeNotFound,
	"wizard",
	"Wizard session not found or expired",
	http.StatusNotFound,
)

// ErrSubmissionInProgress - a submit was triggered while a previous one
// for the same session is still running.
var ErrSubmissionInProgress = New(
	CodeConflict,
	"wizard",
	"Submission already in progress",
	http.StatusConflict,
)

// ErrInvalidApplicationStatus - the requested status is not one of
// pending/approved/rejected.
var ErrInvalidApplicationStatus = New(
	CodeInvalidStatus,
	"review",
	"Invalid application status",
	http.StatusBadRequest,
)

// ErrApplicationNotFound - no application with the given id.
var ErrApplicationNotFound = New(
	CodeNotFound,
	"review",
	"Application not found",
	http.StatusNotFound,
)

// ErrFileTooLarge - upload exceeds the configured size limit.
var ErrFileTooLarge = New(
	CodeLimitExceeded,
	"upload",
	"File size exceeds the allowed limit",
	http.StatusRequestEntityTooLarge,
)

// ErrInvalidFileType - MIME type is not in the allow list.
var ErrInvalidFileType = New(
	CodeValidationFailed,
	"upload",
	"The provided file type is not allowed",
	http.StatusUnsupportedMediaType,
)

// ErrInvalidCredentials - login with wrong email or password.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrInsufficientPermissions - authenticated but not allowed.
var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)
