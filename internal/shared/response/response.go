package response

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Status is the three-valued outcome enum carried by every envelope.
type Status string

const (
	StatusSuccess  Status = "SUCCESS"
	StatusAccepted Status = "ACCEPTED"
	StatusError    Status = "ERROR"
)

// APIResponse is the uniform wrapper returned by every endpoint.
// Field order is fixed (statusCode, message, status, data, error) for wire
// stability; null/absent fields are omitted, never emitted as explicit nulls.
// Data and Error are mutually exclusive: success responses carry Data,
// error responses carry Error, never both.
type APIResponse struct {
	StatusCode int            `json:"statusCode,omitempty"`
	Message    string         `json:"message,omitempty"`
	Status     Status         `json:"status"`
	Data       interface{}    `json:"data,omitempty"`
	Error      *ErrorResponse `json:"error,omitempty"`
}

// ErrorResponse is the structured error returned on every failure.
type ErrorResponse struct {
	StatusCode   int                    `json:"statusCode"`
	ErrorCode    string                 `json:"errorCode,omitempty"`
	Message      string                 `json:"message"`
	RequestID    string                 `json:"requestId,omitempty"`
	Errors       []string               `json:"errors,omitempty"`
	ErrorDetails map[string]interface{} `json:"errorDetails,omitempty"`
	Timestamp    time.Time              `json:"timestamp"`
}

// NewErrorResponse creates a minimal structured error (statusCode + message).
// The timestamp defaults to the creation time.
func NewErrorResponse(statusCode int, message string) *ErrorResponse {
	return &ErrorResponse{
		StatusCode: statusCode,
		Message:    message,
		Timestamp:  time.Now(),
	}
}

// NewErrorResponseWithCode creates a structured error carrying an
// application-specific error code.
func NewErrorResponseWithCode(statusCode int, errorCode, message string) *ErrorResponse {
	return &ErrorResponse{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
		Timestamp:  time.Now(),
	}
}

// WithErrors attaches field-level error messages (validation issues).
func (e *ErrorResponse) WithErrors(errs []string) *ErrorResponse {
	e.Errors = errs
	return e
}

// WithDetails attaches structured error metadata.
func (e *ErrorResponse) WithDetails(details map[string]interface{}) *ErrorResponse {
	e.ErrorDetails = details
	return e
}

// WithRequestID attaches the request-tracking id.
func (e *ErrorResponse) WithRequestID(requestID string) *ErrorResponse {
	e.RequestID = requestID
	return e
}

// Success builds a success envelope with only status code and message.
func Success(statusCode int, message string) APIResponse {
	return APIResponse{
		StatusCode: statusCode,
		Message:    message,
		Status:     StatusSuccess,
	}
}

// SuccessWithData builds a success envelope carrying a payload.
func SuccessWithData(statusCode int, message string, data interface{}) APIResponse {
	return APIResponse{
		StatusCode: statusCode,
		Message:    message,
		Status:     StatusSuccess,
		Data:       data,
	}
}

// Accepted builds an acknowledgement envelope for deferred work.
func Accepted(statusCode int, message string) APIResponse {
	return APIResponse{
		StatusCode: statusCode,
		Message:    message,
		Status:     StatusAccepted,
	}
}

// Error builds an error envelope; statusCode and message are copied from
// the structured error so clients can read them at either level.
func Error(errResp *ErrorResponse) APIResponse {
	return APIResponse{
		StatusCode: errResp.StatusCode,
		Message:    errResp.Message,
		Status:     StatusError,
		Error:      errResp,
	}
}

// WriteSuccess serializes a success envelope to the client.
func WriteSuccess(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, SuccessWithData(statusCode, message, data))
}

// WriteAccepted serializes an accepted envelope to the client.
func WriteAccepted(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Accepted(statusCode, message))
}

// WriteError serializes an error envelope to the client.
func WriteError(c *gin.Context, errResp *ErrorResponse) {
	c.JSON(errResp.StatusCode, Error(errResp))
}
