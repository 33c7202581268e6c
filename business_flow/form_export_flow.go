package businessflow

//go:generate mockgen -source=form_export_flow.go -destination=mocks/form_export_flow_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/amirphl/cvm-forms/app/dto"
	"github.com/amirphl/cvm-forms/repository"
	"github.com/amirphl/cvm-forms/utils"
	"github.com/xuri/excelize/v2"
)

const exportSheetName = "Submissions"

var exportHeader = []string{
	"id", "name", "gender", "dob", "guardian_name", "permanent_address", "native_district",
	"assembly_constituency", "qualification", "year_of_completion", "institution_name",
	"institution_location", "mobile", "email", "submission_date",
}

// FormExportFlow produces spreadsheet exports of stored submissions for administrators
type FormExportFlow interface {
	ExportExcel(ctx context.Context, filter dto.ListFormSubmissionsFilter) (string, []byte, error)
}

// FormExportFlowImpl implements FormExportFlow
type FormExportFlowImpl struct {
	submissionRepo repository.FormSubmissionRepository
	now            utils.Clock
}

// NewFormExportFlow creates a new export flow
func NewFormExportFlow(submissionRepo repository.FormSubmissionRepository) FormExportFlow {
	return &FormExportFlowImpl{
		submissionRepo: submissionRepo,
		now:            utils.SystemClock,
	}
}

// ExportExcel writes one row per submission, newest first, to a single-sheet workbook
func (f *FormExportFlowImpl) ExportExcel(ctx context.Context, filter dto.ListFormSubmissionsFilter) (string, []byte, error) {
	rows, err := f.submissionRepo.ByFilter(ctx, toSubmissionFilter(filter), "", 0, 0)
	if err != nil {
		return "", nil, NewBusinessError("FETCH_FORMS_FAILED", "Failed to fetch forms", errors.Join(ErrPersistenceFailed, err))
	}

	xl := excelize.NewFile()
	defer func() { _ = xl.Close() }()

	xl.SetSheetName(xl.GetSheetName(0), exportSheetName)
	if err := xl.SetSheetRow(exportSheetName, "A1", &exportHeader); err != nil {
		return "", nil, NewBusinessError("EXCEL_WRITE_ERROR", "Failed to write Excel file", err)
	}

	for i, r := range rows {
		record := []string{
			r.UserID,
			r.Name,
			r.Gender,
			r.DOB.Format(utils.DateLayout),
			r.GuardianName,
			r.PermanentAddress,
			r.NativeDistrict,
			r.AssemblyConstituency,
			r.Qualification,
			strconv.Itoa(r.YearOfCompletion),
			r.InstitutionName,
			r.InstitutionLocation,
			r.Mobile,
			r.Email,
			r.SubmissionDate.UTC().Format(time.RFC3339),
		}
		cellRef, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return "", nil, NewBusinessError("EXCEL_WRITE_ERROR", "Failed to write Excel file", err)
		}
		if err := xl.SetSheetRow(exportSheetName, cellRef, &record); err != nil {
			return "", nil, NewBusinessError("EXCEL_WRITE_ERROR", "Failed to write Excel file", err)
		}
	}

	buf, err := xl.WriteToBuffer()
	if err != nil {
		return "", nil, NewBusinessError("EXCEL_WRITE_ERROR", "Failed to write Excel file", err)
	}

	filename := fmt.Sprintf("form_submissions_%s.xlsx", f.now().Format("20060102_150405"))
	return filename, buf.Bytes(), nil
}
