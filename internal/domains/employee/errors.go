package employee

import "errors"

var (
	// Business rule errors
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrDuplicateCode    = errors.New("employee with this code already exists")
	ErrDuplicateEmail   = errors.New("employee with this email already exists")

	// Database errors
	ErrDatabaseQuery = errors.New("database query error")
)

// ToErrorCode converts an error to its API error code.
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrEmployeeNotFound):
		return "EMPLOYEE_NOT_FOUND"
	case errors.Is(err, ErrDuplicateCode):
		return "DUPLICATE_EMPLOYEE_CODE"
	case errors.Is(err, ErrDuplicateEmail):
		return "DUPLICATE_EMAIL"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts an error to an HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrEmployeeNotFound):
		return 404
	case errors.Is(err, ErrDuplicateCode), errors.Is(err, ErrDuplicateEmail):
		return 409
	default:
		return 500
	}
}
