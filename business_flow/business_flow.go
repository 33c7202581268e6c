// Package businessflow contains the business logic for the application.
package businessflow

import (
	"github.com/amirphl/cvm-forms/app/dto"
	"github.com/amirphl/cvm-forms/models"
	"github.com/amirphl/cvm-forms/utils"
)

const RequestIDKey = "X-Request-ID"

// ClientMetadata holds client-related information recorded alongside a submission
type ClientMetadata struct {
	IPAddress string `json:"ip_address"`
	UserAgent string `json:"user_agent"`
	RequestID string `json:"request_id,omitempty"`
}

// NewClientMetadata creates a new ClientMetadata instance with basic information
func NewClientMetadata(ipAddress, userAgent string) *ClientMetadata {
	return &ClientMetadata{
		IPAddress: ipAddress,
		UserAgent: userAgent,
	}
}

// SetRequestID sets the request ID
func (cm *ClientMetadata) SetRequestID(requestID string) {
	cm.RequestID = requestID
}

// ToFormSubmissionDTO converts a stored submission to its API read model
func ToFormSubmissionDTO(s models.FormSubmission) dto.FormSubmissionDTO {
	return dto.FormSubmissionDTO{
		ID:                   s.UserID,
		Name:                 s.Name,
		Gender:               s.Gender,
		DOB:                  s.DOB.Format(utils.DateLayout),
		GuardianName:         s.GuardianName,
		PermanentAddress:     s.PermanentAddress,
		NativeDistrict:       s.NativeDistrict,
		AssemblyConstituency: s.AssemblyConstituency,
		Qualification:        s.Qualification,
		YearOfCompletion:     s.YearOfCompletion,
		InstitutionName:      s.InstitutionName,
		InstitutionLocation:  s.InstitutionLocation,
		Mobile:               s.Mobile,
		Email:                s.Email,
		SubmissionDate:       s.SubmissionDate,
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            s.UpdatedAt,
	}
}

// ToDistrictCountDTOs converts grouped district rows
func ToDistrictCountDTOs(rows []models.DistrictCount) []dto.DistrictCountDTO {
	out := make([]dto.DistrictCountDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.DistrictCountDTO{District: r.District, Count: r.Count})
	}
	return out
}
