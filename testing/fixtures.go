package testing

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/amirphl/cvm-forms/app/dto"
	"github.com/amirphl/cvm-forms/models"
	"github.com/amirphl/cvm-forms/utils"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var fixtureSeq atomic.Int64

// nextContact returns an email and mobile pair unique within the test binary
func nextContact() (string, string) {
	n := fixtureSeq.Add(1)
	return fmt.Sprintf("applicant.%d@example.com", n), fmt.Sprintf("9%09d", n)
}

// NewSubmissionRequest returns a valid form payload with unique contact details
func NewSubmissionRequest() *dto.FormSubmissionRequest {
	email, mobile := nextContact()
	return &dto.FormSubmissionRequest{
		Name:                 "Asha Verma",
		Gender:               models.GenderFemale,
		DOB:                  "1999-06-15",
		GuardianName:         "Ramesh Verma",
		PermanentAddress:     "12 Station Road, Ward 4",
		NativeDistrict:       "Alappuzha",
		AssemblyConstituency: "Ambalappuzha",
		Qualification:        "B.Sc",
		YearOfCompletion:     2020,
		InstitutionName:      "S.D. College",
		InstitutionLocation:  "Alappuzha",
		Mobile:               mobile,
		Email:                email,
	}
}

// TestFixtures provides helper methods for creating test data
type TestFixtures struct {
	DB *TestDB
}

// NewTestFixtures creates a new test fixtures instance
func NewTestFixtures(db *TestDB) *TestFixtures {
	return &TestFixtures{DB: db}
}

// CreateTestSubmission inserts a submission in the given district with a unique identifier and contacts
func (tf *TestFixtures) CreateTestSubmission(district string, submittedAt time.Time) (*models.FormSubmission, error) {
	email, mobile := nextContact()
	dob, _ := time.Parse(utils.DateLayout, "1998-01-20")

	submission := &models.FormSubmission{
		UUID:                 uuid.New(),
		UserID:               utils.FormatUserID(utils.DefaultUserIDPrefix, submittedAt.Year(), fixtureSeq.Add(1)),
		Name:                 "Test Applicant",
		Gender:               models.GenderMale,
		DOB:                  dob,
		GuardianName:         "Test Guardian",
		PermanentAddress:     "1 Test Street",
		NativeDistrict:       district,
		AssemblyConstituency: district + " North",
		Qualification:        "B.A",
		YearOfCompletion:     2019,
		InstitutionName:      "Test College",
		InstitutionLocation:  district,
		Mobile:               mobile,
		Email:                email,
		SubmissionDate:       submittedAt,
	}

	if err := tf.DB.DB.Create(submission).Error; err != nil {
		return nil, fmt.Errorf("failed to create test submission: %w", err)
	}

	return submission, nil
}

// CreateTestSubmissions inserts count submissions per district
func (tf *TestFixtures) CreateTestSubmissions(perDistrict map[string]int, submittedAt time.Time) error {
	for district, count := range perDistrict {
		for i := 0; i < count; i++ {
			if _, err := tf.CreateTestSubmission(district, submittedAt); err != nil {
				return err
			}
		}
	}
	return nil
}

// CreateTestAdmin inserts an admin account with a bcrypt hash of password
func (tf *TestFixtures) CreateTestAdmin(username, password string, active bool) (*models.Admin, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &models.Admin{
		UUID:         uuid.New(),
		Username:     username,
		PasswordHash: string(hash),
		IsActive:     utils.ToPtr(active),
	}
	if err := tf.DB.DB.Create(admin).Error; err != nil {
		return nil, fmt.Errorf("failed to create test admin: %w", err)
	}

	return admin, nil
}
