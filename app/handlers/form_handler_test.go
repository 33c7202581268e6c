package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/amirphl/cvm-forms/app/dto"
	businessflow "github.com/amirphl/cvm-forms/business_flow"
	"github.com/amirphl/cvm-forms/business_flow/mocks"
	testingutil "github.com/amirphl/cvm-forms/testing"
	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   struct {
		Code    string          `json:"code"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
}

type FormHandlerSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	formFlow   *mocks.MockFormFlow
	exportFlow *mocks.MockFormExportFlow
	app        *fiber.App
}

func TestFormHandlerSuite(t *testing.T) {
	suite.Run(t, new(FormHandlerSuite))
}

func (s *FormHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.formFlow = mocks.NewMockFormFlow(s.ctrl)
	s.exportFlow = mocks.NewMockFormExportFlow(s.ctrl)

	h := NewFormHandler(s.formFlow, s.exportFlow)
	s.app = fiber.New()
	s.app.Post("/api/forms", h.Submit)
	s.app.Get("/api/forms", h.List)
	s.app.Get("/api/forms/stats/summary", h.Stats)
	s.app.Get("/api/forms/export", h.Export)
	s.app.Get("/api/forms/:id", h.Get)
}

func (s *FormHandlerSuite) do(method, target string, body any) (*http.Response, envelope) {
	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(b)
			s.Require().NoError(err)
			reader = bytes.NewReader(raw)
		}
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.app.Test(req)
	s.Require().NoError(err)

	var env envelope
	if strings.HasPrefix(resp.Header.Get("Content-Type"), fiber.MIMEApplicationJSON) {
		s.Require().NoError(json.NewDecoder(resp.Body).Decode(&env))
	}
	return resp, env
}

func (s *FormHandlerSuite) TestSubmitCreated() {
	req := testingutil.NewSubmissionRequest()
	submittedAt := time.Date(2024, time.March, 10, 10, 0, 0, 0, time.UTC)

	s.formFlow.EXPECT().
		Submit(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, got *dto.FormSubmissionRequest, md *businessflow.ClientMetadata) (*dto.FormSubmissionResponse, error) {
			s.Equal(req.Email, got.Email)
			s.NotNil(md)
			return &dto.FormSubmissionResponse{Message: "Form submitted successfully", ID: "CVM240001", SubmissionDate: submittedAt}, nil
		})

	resp, env := s.do(http.MethodPost, "/api/forms", req)
	s.Equal(http.StatusCreated, resp.StatusCode)
	s.True(env.Success)
	s.Equal("Form submitted successfully", env.Message)

	var data dto.FormSubmissionResponse
	s.Require().NoError(json.Unmarshal(env.Data, &data))
	s.Equal("CVM240001", data.ID)
	s.True(data.SubmissionDate.Equal(submittedAt))
	s.NotContains(string(env.Data), "email")
}

func (s *FormHandlerSuite) TestSubmitValidationFailures() {
	req := testingutil.NewSubmissionRequest()
	req.Email = "not-an-email"
	req.Mobile = "12345"
	req.Name = ""
	req.Gender = "unknown"
	req.YearOfCompletion = time.Now().Year() + 1

	resp, env := s.do(http.MethodPost, "/api/forms", req)
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.False(env.Success)
	s.Equal("VALIDATION_ERROR", env.Error.Code)

	var details []string
	s.Require().NoError(json.Unmarshal(env.Error.Details, &details))
	s.Contains(details, "Please provide a valid email")
	s.Contains(details, "Please provide a valid 10-digit mobile number")
	s.Contains(details, "name is required")
	s.Contains(details, "gender must be one of: male female other")
	s.Contains(details, "yearOfCompletion cannot be in the future")
}

func (s *FormHandlerSuite) TestSubmitWhitespaceOnlyFields() {
	req := testingutil.NewSubmissionRequest()
	req.Name = "   "
	req.NativeDistrict = "\t"
	req.InstitutionLocation = " \n "

	resp, env := s.do(http.MethodPost, "/api/forms", req)
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal("VALIDATION_ERROR", env.Error.Code)

	var details []string
	s.Require().NoError(json.Unmarshal(env.Error.Details, &details))
	s.ElementsMatch([]string{
		"name cannot be blank",
		"nativeDistrict cannot be blank",
		"institutionLocation cannot be blank",
	}, details)
}

func (s *FormHandlerSuite) TestSubmitFutureDateOfBirth() {
	req := testingutil.NewSubmissionRequest()
	req.DOB = time.Now().AddDate(1, 0, 0).Format("2006-01-02")

	resp, env := s.do(http.MethodPost, "/api/forms", req)
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Contains(string(env.Error.Details), "dob must be a valid date in the past")
}

func (s *FormHandlerSuite) TestSubmitMalformedBody() {
	resp, env := s.do(http.MethodPost, "/api/forms", "{not json")
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal("INVALID_REQUEST", env.Error.Code)
}

func (s *FormHandlerSuite) TestSubmitDuplicate() {
	s.formFlow.EXPECT().
		Submit(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, businessflow.NewBusinessError("DUPLICATE_SUBMISSION", "Duplicate submission", businessflow.ErrDuplicateSubmission))

	resp, env := s.do(http.MethodPost, "/api/forms", testingutil.NewSubmissionRequest())
	s.Equal(http.StatusConflict, resp.StatusCode)
	s.Equal("DUPLICATE_SUBMISSION", env.Error.Code)
	s.Equal("form already submitted with this email or mobile number", env.Message)
}

func (s *FormHandlerSuite) TestSubmitInternalFailure() {
	s.formFlow.EXPECT().
		Submit(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, businessflow.NewBusinessError("SEQUENCE_ALLOCATION_FAILED", "Failed to allocate form identifier",
			&businessflow.AllocationError{Sequence: "formUserId", Err: errors.New("db down")}))

	resp, env := s.do(http.MethodPost, "/api/forms", testingutil.NewSubmissionRequest())
	s.Equal(http.StatusInternalServerError, resp.StatusCode)
	s.Equal("SEQUENCE_ALLOCATION_FAILED", env.Error.Code)
	s.NotContains(env.Message, "db down")
}

func (s *FormHandlerSuite) TestListPassesFilters() {
	s.formFlow.EXPECT().
		List(gomock.Any(), dto.ListFormSubmissionsFilter{District: "al", Constituency: "north"}).
		Return([]dto.FormSubmissionDTO{{ID: "CVM240002", NativeDistrict: "Palakkad"}, {ID: "CVM240001", NativeDistrict: "Alappuzha"}}, nil)

	resp, env := s.do(http.MethodGet, "/api/forms?district=al&constituency=north", nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var data []dto.FormSubmissionDTO
	s.Require().NoError(json.Unmarshal(env.Data, &data))
	s.Require().Len(data, 2)
	s.Equal("CVM240002", data[0].ID)
}

func (s *FormHandlerSuite) TestListEmptyIsArray() {
	s.formFlow.EXPECT().List(gomock.Any(), gomock.Any()).Return([]dto.FormSubmissionDTO{}, nil)

	resp, env := s.do(http.MethodGet, "/api/forms", nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.JSONEq(`[]`, string(env.Data))
}

func (s *FormHandlerSuite) TestGet() {
	s.formFlow.EXPECT().Get(gomock.Any(), "CVM240007").Return(&dto.FormSubmissionDTO{ID: "CVM240007", Name: "Asha Verma"}, nil)

	resp, env := s.do(http.MethodGet, "/api/forms/CVM240007", nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var data dto.FormSubmissionDTO
	s.Require().NoError(json.Unmarshal(env.Data, &data))
	s.Equal("Asha Verma", data.Name)
}

func (s *FormHandlerSuite) TestGetNotFound() {
	s.formFlow.EXPECT().Get(gomock.Any(), "CVM249999").
		Return(nil, businessflow.NewBusinessError("FORM_NOT_FOUND", "Form not found", businessflow.ErrSubmissionNotFound))

	resp, env := s.do(http.MethodGet, "/api/forms/CVM249999", nil)
	s.Equal(http.StatusNotFound, resp.StatusCode)
	s.Equal("FORM_NOT_FOUND", env.Error.Code)
	s.Equal("Form not found", env.Message)
}

func (s *FormHandlerSuite) TestGetMalformedIDIsNotFound() {
	resp, env := s.do(http.MethodGet, "/api/forms/not-an-id", nil)
	s.Equal(http.StatusNotFound, resp.StatusCode)
	s.Equal("FORM_NOT_FOUND", env.Error.Code)
}

func (s *FormHandlerSuite) TestStats() {
	s.formFlow.EXPECT().Stats(gomock.Any()).Return(&dto.FormStatsResponse{
		TotalSubmissions: 10,
		TodaySubmissions: 4,
		TopDistricts:     []dto.DistrictCountDTO{{District: "Kollam", Count: 5}},
	}, nil)

	resp, env := s.do(http.MethodGet, "/api/forms/stats/summary", nil)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.JSONEq(`{"totalSubmissions":10,"todaySubmissions":4,"topDistricts":[{"district":"Kollam","count":5}]}`, string(env.Data))
}

func (s *FormHandlerSuite) TestStatsFailure() {
	s.formFlow.EXPECT().Stats(gomock.Any()).Return(nil, errors.New("boom"))

	resp, env := s.do(http.MethodGet, "/api/forms/stats/summary", nil)
	s.Equal(http.StatusInternalServerError, resp.StatusCode)
	s.Equal("INTERNAL_ERROR", env.Error.Code)
}

func (s *FormHandlerSuite) TestExport() {
	s.exportFlow.EXPECT().
		ExportExcel(gomock.Any(), dto.ListFormSubmissionsFilter{District: "kol"}).
		Return("form_submissions_20240310_090507.xlsx", []byte("xlsx-bytes"), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/forms/export?district=kol", nil)
	resp, err := s.app.Test(req)
	s.Require().NoError(err)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", resp.Header.Get("Content-Type"))
	s.Equal("attachment; filename=form_submissions_20240310_090507.xlsx", resp.Header.Get("Content-Disposition"))

	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	s.Equal("xlsx-bytes", string(body))
}

func TestGetValidationErrorMessage_UnknownTag(t *testing.T) {
	type sample struct {
		Code string `json:"code" validate:"uuid"`
	}
	err := newValidator().Struct(&sample{Code: "x"})
	require.Error(t, err)
	assert.Equal(t, []string{"code is invalid"}, validationErrors(err))
}

func TestMobileFormat(t *testing.T) {
	v := newValidator()
	tests := []struct {
		mobile string
		valid  bool
	}{
		{"9876543210", true},
		{"6000000000", true},
		{"5876543210", false},
		{"987654321", false},
		{"98765432100", false},
		{"98765abcde", false},
	}
	for _, tt := range tests {
		t.Run(tt.mobile, func(t *testing.T) {
			err := v.Var(tt.mobile, "mobile_format")
			assert.Equal(t, tt.valid, err == nil)
		})
	}
}
