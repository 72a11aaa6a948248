package handler

import (
	"net/http"

	"employee-service/internal/domains/employee"
	"employee-service/internal/shared/response"
	"employee-service/pkg/logger"

	"github.com/gin-gonic/gin"
)

// EmployeeHandler handles HTTP requests for the employee domain.
type EmployeeHandler struct {
	service employee.Service
}

// NewEmployeeHandler creates a new employee handler instance.
// Dependency injection pattern - receives the service from the container.
func NewEmployeeHandler(service employee.Service) *EmployeeHandler {
	return &EmployeeHandler{
		service: service,
	}
}

// GetAllEmployees handles GET /employee/all
func (h *EmployeeHandler) GetAllEmployees(c *gin.Context) {
	employees, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err, "Failed to retrieve employees")
		return
	}

	response.WriteSuccess(c, http.StatusOK, "Employees retrieved successfully", employees)
}

// CreateEmployee handles POST /employee/add
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req employee.EmployeeRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		errResp := response.NewErrorResponseWithCode(
			http.StatusBadRequest, "INVALID_PAYLOAD", "Invalid request payload").
			WithErrors([]string{err.Error()}).
			WithRequestID(c.GetString("request_id"))
		response.WriteError(c, errResp)
		return
	}

	if err := req.Validate(); err != nil {
		errResp := response.NewErrorResponseWithCode(
			http.StatusBadRequest, "VALIDATION_FAILED", "Employee validation failed").
			WithErrors(employee.ValidationMessages(err)).
			WithRequestID(c.GetString("request_id"))
		response.WriteError(c, errResp)
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.writeServiceError(c, err, "Failed to create employee")
		return
	}

	response.WriteSuccess(c, http.StatusCreated, "Employee created successfully", created)
}

// UpdateEmployee handles PATCH /employee/update
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	var req employee.EmployeeRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		errResp := response.NewErrorResponseWithCode(
			http.StatusBadRequest, "INVALID_PAYLOAD", "Invalid request payload").
			WithErrors([]string{err.Error()}).
			WithRequestID(c.GetString("request_id"))
		response.WriteError(c, errResp)
		return
	}

	if err := req.Validate(); err != nil {
		errResp := response.NewErrorResponseWithCode(
			http.StatusBadRequest, "VALIDATION_FAILED", "Employee validation failed").
			WithErrors(employee.ValidationMessages(err)).
			WithRequestID(c.GetString("request_id"))
		response.WriteError(c, errResp)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), &req)
	if err != nil {
		h.writeServiceError(c, err, "Failed to update employee")
		return
	}

	if !updated {
		h.writeNotFound(c, req.EmployeeCode)
		return
	}

	response.WriteSuccess(c, http.StatusOK, "Employee updated successfully", true)
}

// DeleteEmployee handles DELETE /employee/remove?employeeCode=<code>
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	employeeCode := c.Query("employeeCode")
	if employeeCode == "" {
		errResp := response.NewErrorResponseWithCode(
			http.StatusBadRequest, "VALIDATION_FAILED", "employeeCode query parameter is required").
			WithRequestID(c.GetString("request_id"))
		response.WriteError(c, errResp)
		return
	}

	deleted, err := h.service.Delete(c.Request.Context(), employeeCode)
	if err != nil {
		h.writeServiceError(c, err, "Failed to delete employee")
		return
	}

	if !deleted {
		h.writeNotFound(c, employeeCode)
		return
	}

	response.WriteSuccess(c, http.StatusOK, "Employee deleted successfully", true)
}

func (h *EmployeeHandler) writeNotFound(c *gin.Context, employeeCode string) {
	errResp := response.NewErrorResponseWithCode(
		http.StatusNotFound, "EMPLOYEE_NOT_FOUND", "Employee not found").
		WithDetails(map[string]interface{}{"employeeCode": employeeCode}).
		WithRequestID(c.GetString("request_id"))
	response.WriteError(c, errResp)
}

// writeServiceError maps domain errors to envelopes. Conflicts keep their
// message; unexpected faults get a generic one so internals never leak.
func (h *EmployeeHandler) writeServiceError(c *gin.Context, err error, fallback string) {
	statusCode := employee.ToHTTPStatus(err)

	message := fallback
	if statusCode != http.StatusInternalServerError {
		message = err.Error()
	} else {
		logger.Error(fallback, err)
	}

	errResp := response.NewErrorResponseWithCode(statusCode, employee.ToErrorCode(err), message).
		WithRequestID(c.GetString("request_id"))
	response.WriteError(c, errResp)
}
