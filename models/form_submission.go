// Package models contains domain entities and persistence models for the form registration service
package models

import (
	"time"

	"github.com/google/uuid"
)

// Gender values accepted on a submission
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// FormSubmission is one persisted registration form. UserID is assigned once at
// creation from the sequence allocator and never recomputed.
type FormSubmission struct {
	ID     uint      `gorm:"primaryKey" json:"-"`
	UUID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uk_form_submissions_uuid" json:"uuid"`
	UserID string    `gorm:"size:32;not null;uniqueIndex:uk_form_submissions_user_id" json:"userId"`

	// Identity
	Name         string    `gorm:"size:100;not null" json:"name"`
	Gender       string    `gorm:"size:10;not null" json:"gender"`
	DOB          time.Time `gorm:"type:date;not null" json:"dob"`
	GuardianName string    `gorm:"size:100;not null" json:"guardianName"`

	// Address
	PermanentAddress     string `gorm:"size:500;not null" json:"permanentAddress"`
	NativeDistrict       string `gorm:"size:100;not null;index:idx_form_submissions_native_district" json:"nativeDistrict"`
	AssemblyConstituency string `gorm:"size:100;not null" json:"assemblyConstituency"`

	// Education
	Qualification       string `gorm:"size:100;not null" json:"qualification"`
	YearOfCompletion    int    `gorm:"not null" json:"yearOfCompletion"`
	InstitutionName     string `gorm:"size:200;not null" json:"institutionName"`
	InstitutionLocation string `gorm:"size:200;not null" json:"institutionLocation"`

	// Contact
	Mobile string `gorm:"size:10;not null;uniqueIndex:uk_form_submissions_mobile" json:"mobile"`
	Email  string `gorm:"size:255;not null;uniqueIndex:uk_form_submissions_email" json:"email"`

	// Metadata
	SubmissionDate time.Time `gorm:"not null;index:idx_form_submissions_submission_date,sort:desc" json:"submissionDate"`
	IPAddress      string    `gorm:"size:45" json:"-"`
	UserAgent      string    `gorm:"size:512" json:"-"`
	CreatedAt      time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"updatedAt"`
}

func (FormSubmission) TableName() string {
	return "form_submissions"
}

// FormSubmissionFilter represents filter criteria for submission queries.
// District and Constituency match case-insensitively as substrings.
type FormSubmissionFilter struct {
	UserID          *string
	Email           *string
	Mobile          *string
	District        *string
	Constituency    *string
	SubmittedAfter  *time.Time
	SubmittedBefore *time.Time
}

// DistrictCount is one row of the grouped district aggregate
type DistrictCount struct {
	District string `json:"district"`
	Count    int64  `json:"count"`
}
