// Package dto contains Data Transfer Objects for API request and response structures
package dto

import "time"

// FormSubmissionRequest represents the public registration form payload
type FormSubmissionRequest struct {
	// Identity
	Name         string `json:"name" validate:"required,notblank,max=100"`
	Gender       string `json:"gender" validate:"required,oneof=male female other"`
	DOB          string `json:"dob" validate:"required,past_date"`
	GuardianName string `json:"guardianName" validate:"required,notblank,max=100"`

	// Address
	PermanentAddress     string `json:"permanentAddress" validate:"required,notblank,max=500"`
	NativeDistrict       string `json:"nativeDistrict" validate:"required,notblank,max=100"`
	AssemblyConstituency string `json:"assemblyConstituency" validate:"required,notblank,max=100"`

	// Education
	Qualification       string `json:"qualification" validate:"required,notblank,max=100"`
	YearOfCompletion    int    `json:"yearOfCompletion" validate:"required,gte=1900,not_future_year"`
	InstitutionName     string `json:"institutionName" validate:"required,notblank,max=200"`
	InstitutionLocation string `json:"institutionLocation" validate:"required,notblank,max=200"`

	// Contact
	Mobile string `json:"mobile" validate:"required,mobile_format"`
	Email  string `json:"email" validate:"required,email,max=255"`
}

// FormSubmissionResponse is returned after a successful submission; it never carries the stored document
type FormSubmissionResponse struct {
	Message        string    `json:"-"`
	ID             string    `json:"id"`
	SubmissionDate time.Time `json:"submissionDate"`
}

// FormSubmissionDTO is the read model of a stored submission
type FormSubmissionDTO struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	Gender               string    `json:"gender"`
	DOB                  string    `json:"dob"`
	GuardianName         string    `json:"guardianName"`
	PermanentAddress     string    `json:"permanentAddress"`
	NativeDistrict       string    `json:"nativeDistrict"`
	AssemblyConstituency string    `json:"assemblyConstituency"`
	Qualification        string    `json:"qualification"`
	YearOfCompletion     int       `json:"yearOfCompletion"`
	InstitutionName      string    `json:"institutionName"`
	InstitutionLocation  string    `json:"institutionLocation"`
	Mobile               string    `json:"mobile"`
	Email                string    `json:"email"`
	SubmissionDate       time.Time `json:"submissionDate"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// ListFormSubmissionsFilter carries the optional list query filters
type ListFormSubmissionsFilter struct {
	District     string `query:"district" validate:"omitempty,max=100"`
	Constituency string `query:"constituency" validate:"omitempty,max=100"`
}

// DistrictCountDTO is one entry of the district breakdown
type DistrictCountDTO struct {
	District string `json:"district"`
	Count    int64  `json:"count"`
}

// FormStatsResponse is the aggregate statistics summary
type FormStatsResponse struct {
	TotalSubmissions int64              `json:"totalSubmissions"`
	TodaySubmissions int64              `json:"todaySubmissions"`
	TopDistricts     []DistrictCountDTO `json:"topDistricts"`
}
