package dto

import (
	"strings"
	"time"

	"assurance_backend/internals/constants"
	"assurance_backend/internals/features/students/model"
	helper "assurance_backend/internals/helpers"
)

/* =========================================================
   REQUEST
========================================================= */

// StudentRequest is used by POST and PUT (full replacement).
type StudentRequest struct {
	StudentID           string                    `json:"student_id" validate:"required,max=50"`
	FullName            string                    `json:"full_name" validate:"required,max=255"`
	DateOfBirth         *string                   `json:"date_of_birth" validate:"omitempty,date"`
	Gender              *constants.Gender         `json:"gender" validate:"omitempty,enum"`
	Email               *string                   `json:"email" validate:"omitempty,email,max=255"`
	Phone               *string                   `json:"phone" validate:"omitempty,max=50"`
	Address             *string                   `json:"address"`
	ParentGuardianName  *string                   `json:"parent_guardian_name" validate:"omitempty,max=255"`
	ParentGuardianPhone *string                   `json:"parent_guardian_phone" validate:"omitempty,max=50"`
	ParentGuardianEmail *string                   `json:"parent_guardian_email" validate:"omitempty,email,max=255"`
	EnrollmentCategory  *model.EnrollmentCategory `json:"enrollment_category" validate:"omitempty,enum"`
	EnrollmentDate      *string                   `json:"enrollment_date" validate:"omitempty,date"`
	Status              *model.StudentStatus      `json:"status" validate:"omitempty,enum"`
}

// Normalize trims strings and turns empty optionals into nil so that
// omitempty skips them.
func lowerPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.ToLower(*s)
	return &v
}

func (r *StudentRequest) Normalize() {
	r.StudentID = strings.TrimSpace(r.StudentID)
	r.FullName = strings.TrimSpace(r.FullName)
	r.DateOfBirth = helper.TrimPtr(r.DateOfBirth)
	r.Email = lowerPtr(helper.TrimPtr(r.Email))
	r.Phone = helper.TrimPtr(r.Phone)
	r.Address = helper.TrimPtr(r.Address)
	r.ParentGuardianName = helper.TrimPtr(r.ParentGuardianName)
	r.ParentGuardianPhone = helper.TrimPtr(r.ParentGuardianPhone)
	r.ParentGuardianEmail = lowerPtr(helper.TrimPtr(r.ParentGuardianEmail))
	r.EnrollmentDate = helper.TrimPtr(r.EnrollmentDate)
	if r.Gender != nil && *r.Gender == "" {
		r.Gender = nil
	}
	if r.EnrollmentCategory != nil && *r.EnrollmentCategory == "" {
		r.EnrollmentCategory = nil
	}
	if r.Status != nil && *r.Status == "" {
		r.Status = nil
	}
}

// ToModel assumes the request passed validation (dates already checked).
func (r StudentRequest) ToModel() *model.StudentModel {
	dob, _ := helper.ParseDatePtr(r.DateOfBirth)
	enrolled, _ := helper.ParseDatePtr(r.EnrollmentDate)
	m := &model.StudentModel{
		StudentID:           r.StudentID,
		FullName:            r.FullName,
		DateOfBirth:         dob,
		Gender:              r.Gender,
		Email:               r.Email,
		Phone:               r.Phone,
		Address:             r.Address,
		ParentGuardianName:  r.ParentGuardianName,
		ParentGuardianPhone: r.ParentGuardianPhone,
		ParentGuardianEmail: r.ParentGuardianEmail,
		EnrollmentCategory:  r.EnrollmentCategory,
		EnrollmentDate:      enrolled,
		Status:              model.StudentActive,
	}
	if r.Status != nil {
		m.Status = *r.Status
	}
	return m
}

/* =========================================================
   QUERY
========================================================= */

type ListStudentsQuery struct {
	Search             string
	EnrollmentCategory string
	Statuses           []string
}

/* =========================================================
   RESPONSE
========================================================= */

type StudentResponse struct {
	ID                  int64                     `json:"id"`
	StudentID           string                    `json:"student_id"`
	FullName            string                    `json:"full_name"`
	DateOfBirth         *string                   `json:"date_of_birth"`
	Gender              *constants.Gender         `json:"gender"`
	Email               *string                   `json:"email"`
	Phone               *string                   `json:"phone"`
	Address             *string                   `json:"address"`
	ParentGuardianName  *string                   `json:"parent_guardian_name"`
	ParentGuardianPhone *string                   `json:"parent_guardian_phone"`
	ParentGuardianEmail *string                   `json:"parent_guardian_email"`
	EnrollmentCategory  *model.EnrollmentCategory `json:"enrollment_category"`
	EnrollmentDate      *string                   `json:"enrollment_date"`
	Status              model.StudentStatus       `json:"status"`
	CreatedAt           time.Time                 `json:"created_at"`
	UpdatedAt           time.Time                 `json:"updated_at"`
}

func FromModel(m *model.StudentModel) StudentResponse {
	return StudentResponse{
		ID:                  m.ID,
		StudentID:           m.StudentID,
		FullName:            m.FullName,
		DateOfBirth:         helper.FormatDatePtr(m.DateOfBirth),
		Gender:              m.Gender,
		Email:               m.Email,
		Phone:               m.Phone,
		Address:             m.Address,
		ParentGuardianName:  m.ParentGuardianName,
		ParentGuardianPhone: m.ParentGuardianPhone,
		ParentGuardianEmail: m.ParentGuardianEmail,
		EnrollmentCategory:  m.EnrollmentCategory,
		EnrollmentDate:      helper.FormatDatePtr(m.EnrollmentDate),
		Status:              m.Status,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

func FromModels(rows []model.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}
