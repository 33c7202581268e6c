package handlers

import (
	"log"

	"github.com/amirphl/cvm-forms/app/dto"
	businessflow "github.com/amirphl/cvm-forms/business_flow"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

// AdminHandlerInterface defines the contract for admin auth handlers
type AdminHandlerInterface interface {
	InitCaptcha(c fiber.Ctx) error
	Login(c fiber.Ctx) error
}

// AdminHandler implements AdminHandlerInterface
type AdminHandler struct {
	flow      businessflow.AdminAuthFlow
	validator *validator.Validate
}

func NewAdminHandler(flow businessflow.AdminAuthFlow) *AdminHandler {
	return &AdminHandler{
		flow:      flow,
		validator: newValidator(),
	}
}

// InitCaptcha starts the admin login by returning a rotate captcha challenge
// @Summary Admin captcha init
// @Description Initialize rotate captcha for admin login (returns base64 images and challenge ID)
// @Tags Admin Authentication
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.AdminCaptchaInitResponse} "Captcha initialized"
// @Failure 503 {object} dto.APIResponse "Captcha not available"
// @Failure 500 {object} dto.APIResponse "Failed to initialize captcha"
// @Router /api/admin/auth/captcha/init [get]
func (h *AdminHandler) InitCaptcha(c fiber.Ctx) error {
	ctx, cancel := createRequestContext(defaultRequestTimeout)
	defer cancel()

	resp, err := h.flow.InitCaptcha(ctx)
	if err != nil {
		if businessflow.IsCaptchaNotAvailable(err) {
			return ErrorResponse(c, fiber.StatusServiceUnavailable, "Captcha not available", "CAPTCHA_NOT_AVAILABLE", nil)
		}
		log.Printf(`{"level":"error","event":"admin_captcha_init_failed","request_id":%q,"error":%q}`, requestID(c), err.Error())
		return ErrorResponse(c, fiber.StatusInternalServerError, "Admin captcha init failed", "ADMIN_CAPTCHA_INIT_FAILED", nil)
	}

	return SuccessResponse(c, fiber.StatusOK, "Captcha initialized", resp)
}

// Login verifies the captcha answer and the admin credentials and issues an access token
// @Summary Admin login
// @Description Verify captcha and authenticate admin with username/password
// @Tags Admin Authentication
// @Accept json
// @Produce json
// @Param request body dto.AdminLoginRequest true "Admin login data"
// @Success 200 {object} dto.APIResponse{data=dto.AdminLoginResponse} "Login successful"
// @Failure 400 {object} dto.APIResponse "Invalid request or captcha"
// @Failure 401 {object} dto.APIResponse "Invalid credentials"
// @Failure 403 {object} dto.APIResponse "Admin inactive"
// @Failure 429 {object} dto.APIResponse "Too many login attempts"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/admin/auth/login [post]
func (h *AdminHandler) Login(c fiber.Ctx) error {
	var req dto.AdminLoginRequest
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

	result, err := h.flow.Login(ctx, &req, metadata)
	if err != nil {
		switch {
		case businessflow.IsInvalidCaptcha(err):
			return ErrorResponse(c, fiber.StatusBadRequest, "Invalid captcha", "INVALID_CAPTCHA", nil)
		case businessflow.IsBadCredentials(err):
			// unknown usernames and wrong passwords look the same to the caller
			return ErrorResponse(c, fiber.StatusUnauthorized, "Invalid username or password", "INVALID_CREDENTIALS", nil)
		case businessflow.IsAdminInactive(err):
			return ErrorResponse(c, fiber.StatusForbidden, "Admin inactive", "ADMIN_INACTIVE", nil)
		}
		log.Printf(`{"level":"error","event":"admin_login_failed","request_id":%q,"error":%q}`, requestID(c), err.Error())
		return ErrorResponse(c, fiber.StatusInternalServerError, "Login failed", "LOGIN_FAILED", nil)
	}

	return SuccessResponse(c, fiber.StatusOK, "Login successful", result)
}
