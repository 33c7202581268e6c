package handlers

import (
	"errors"
	"log"

	"github.com/amirphl/cvm-forms/app/dto"
	businessflow "github.com/amirphl/cvm-forms/business_flow"
	"github.com/amirphl/cvm-forms/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

// FormHandlerInterface defines the contract for form registration handlers
type FormHandlerInterface interface {
	Submit(c fiber.Ctx) error
	List(c fiber.Ctx) error
	Get(c fiber.Ctx) error
	Stats(c fiber.Ctx) error
	Export(c fiber.Ctx) error
}

// FormHandler handles form registration HTTP requests
type FormHandler struct {
	formFlow   businessflow.FormFlow
	exportFlow businessflow.FormExportFlow
	validator  *validator.Validate
}

// NewFormHandler creates a new form handler
func NewFormHandler(formFlow businessflow.FormFlow, exportFlow businessflow.FormExportFlow) *FormHandler {
	return &FormHandler{
		formFlow:   formFlow,
		exportFlow: exportFlow,
		validator:  newValidator(),
	}
}

// Submit handles a new registration form submission
// @Summary Submit registration form
// @Description Validate and store a registration form, returning its generated identifier
// @Tags Forms
// @Accept json
// @Produce json
// @Param request body dto.FormSubmissionRequest true "Registration form"
// @Success 201 {object} dto.APIResponse{data=dto.FormSubmissionResponse} "Form submitted successfully"
// @Failure 400 {object} dto.APIResponse "Validation error"
// @Failure 409 {object} dto.APIResponse "Form already submitted with this email or mobile number"
// @Failure 429 {object} dto.APIResponse "Too many submissions"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/forms [post]
func (h *FormHandler) Submit(c fiber.Ctx) error {
	var req dto.FormSubmissionRequest
	if err := c.Bind().JSON(&req); err != nil {
		return ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	if err := h.validator.Struct(&req); err != nil {
		return ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrors(err))
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get(fiber.HeaderUserAgent))
	metadata.SetRequestID(requestID(c))

	ctx, cancel := createRequestContext(defaultRequestTimeout)
	defer cancel()

	result, err := h.formFlow.Submit(ctx, &req, metadata)
	if err != nil {
		return h.respondError(c, "submit", err)
	}

	return SuccessResponse(c, fiber.StatusCreated, result.Message, result)
}

// List returns stored submissions, newest first
// @Summary List form submissions
// @Description List submissions optionally filtered by district or constituency (case-insensitive substring)
// @Tags Forms
// @Produce json
// @Param district query string false "Native district filter"
// @Param constituency query string false "Assembly constituency filter"
// @Success 200 {object} dto.APIResponse{data=[]dto.FormSubmissionDTO} "Forms retrieved successfully"
// @Failure 400 {object} dto.APIResponse "Invalid query"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/forms [get]
func (h *FormHandler) List(c fiber.Ctx) error {
	var filter dto.ListFormSubmissionsFilter
	if err := c.Bind().Query(&filter); err != nil {
		return ErrorResponse(c, fiber.StatusBadRequest, "Invalid query parameters", "INVALID_QUERY", err.Error())
	}
	if err := h.validator.Struct(&filter); err != nil {
		return ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrors(err))
	}

	ctx, cancel := createRequestContext(defaultRequestTimeout)
	defer cancel()

	forms, err := h.formFlow.List(ctx, filter)
	if err != nil {
		return h.respondError(c, "list", err)
	}

	return SuccessResponse(c, fiber.StatusOK, "Forms retrieved successfully", forms)
}

// Get returns one submission by its generated identifier
// @Summary Get form submission
// @Description Get a single submission by its generated identifier (e.g. CVM240007)
// @Tags Forms
// @Produce json
// @Param id path string true "Form identifier"
// @Success 200 {object} dto.APIResponse{data=dto.FormSubmissionDTO} "Form retrieved successfully"
// @Failure 404 {object} dto.APIResponse "Form not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/forms/{id} [get]
func (h *FormHandler) Get(c fiber.Ctx) error {
	id := c.Params("id")
	if !utils.IsValidUserID(id) {
		return h.respondError(c, "get", businessflow.ErrSubmissionNotFound)
	}

	ctx, cancel := createRequestContext(defaultRequestTimeout)
	defer cancel()

	form, err := h.formFlow.Get(ctx, id)
	if err != nil {
		return h.respondError(c, "get", err)
	}

	return SuccessResponse(c, fiber.StatusOK, "Form retrieved successfully", form)
}

// Stats returns aggregate submission statistics
// @Summary Form statistics
// @Description Total submissions, submissions since local midnight and the top 10 districts
// @Tags Forms
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.FormStatsResponse} "Statistics retrieved successfully"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/forms/stats/summary [get]
func (h *FormHandler) Stats(c fiber.Ctx) error {
	ctx, cancel := createRequestContext(defaultRequestTimeout)
	defer cancel()

	stats, err := h.formFlow.Stats(ctx)
	if err != nil {
		return h.respondError(c, "stats", err)
	}

	return SuccessResponse(c, fiber.StatusOK, "Statistics retrieved successfully", stats)
}

// Export streams submissions as an Excel workbook
// @Summary Export form submissions
// @Description Download submissions as an xlsx workbook (admin only)
// @Tags Forms
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param district query string false "Native district filter"
// @Param constituency query string false "Assembly constituency filter"
// @Success 200 {file} file "Workbook"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Security BearerAuth
// @Router /api/forms/export [get]
func (h *FormHandler) Export(c fiber.Ctx) error {
	var filter dto.ListFormSubmissionsFilter
	if err := c.Bind().Query(&filter); err != nil {
		return ErrorResponse(c, fiber.StatusBadRequest, "Invalid query parameters", "INVALID_QUERY", err.Error())
	}
	if err := h.validator.Struct(&filter); err != nil {
		return ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", validationErrors(err))
	}

	ctx, cancel := createRequestContext(exportRequestTimeout)
	defer cancel()

	filename, data, err := h.exportFlow.ExportExcel(ctx, filter)
	if err != nil {
		return h.respondError(c, "export", err)
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, "attachment; filename="+filename)
	return c.Send(data)
}

// respondError maps business errors onto HTTP status codes
func (h *FormHandler) respondError(c fiber.Ctx, op string, err error) error {
	switch {
	case businessflow.IsInvalidSubmission(err):
		return ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", []string{err.Error()})
	case businessflow.IsDuplicateSubmission(err):
		return ErrorResponse(c, fiber.StatusConflict, businessflow.ErrDuplicateSubmission.Error(), "DUPLICATE_SUBMISSION", nil)
	case businessflow.IsSubmissionNotFound(err):
		return ErrorResponse(c, fiber.StatusNotFound, "Form not found", "FORM_NOT_FOUND", nil)
	}

	log.Printf(`{"level":"error","event":"form_%s_failed","request_id":"%s","error":%q}`, op, requestID(c), err.Error())

	code, message := "INTERNAL_ERROR", "Internal server error"
	var be *businessflow.BusinessError
	if errors.As(err, &be) {
		code, message = be.Code, be.Message
	}
	return ErrorResponse(c, fiber.StatusInternalServerError, message, code, nil)
}
