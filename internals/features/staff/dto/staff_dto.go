package dto

import (
	"strings"
	"time"

	"assurance_backend/internals/constants"
	"assurance_backend/internals/features/staff/model"
	helper "assurance_backend/internals/helpers"
)

type StaffRequest struct {
	StaffID       string             `json:"staff_id" validate:"required,max=50"`
	FullName      string             `json:"full_name" validate:"required,max=255"`
	Email         string             `json:"email" validate:"required,email,max=255"`
	Phone         *string            `json:"phone" validate:"omitempty,max=50"`
	Address       *string            `json:"address"`
	DateOfBirth   *string            `json:"date_of_birth" validate:"omitempty,date"`
	Gender        *constants.Gender  `json:"gender" validate:"omitempty,enum"`
	Qualification *string            `json:"qualification" validate:"omitempty,max=255"`
	HireDate      *string            `json:"hire_date" validate:"omitempty,date"`
	Status        *model.StaffStatus `json:"status" validate:"omitempty,enum"`
}

func (r *StaffRequest) Normalize() {
	r.StaffID = strings.TrimSpace(r.StaffID)
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Phone = helper.TrimPtr(r.Phone)
	r.Address = helper.TrimPtr(r.Address)
	r.DateOfBirth = helper.TrimPtr(r.DateOfBirth)
	r.Qualification = helper.TrimPtr(r.Qualification)
	r.HireDate = helper.TrimPtr(r.HireDate)
	if r.Gender != nil && *r.Gender == "" {
		r.Gender = nil
	}
	if r.Status != nil && *r.Status == "" {
		r.Status = nil
	}
}

func (r StaffRequest) ToModel() *model.StaffModel {
	dob, _ := helper.ParseDatePtr(r.DateOfBirth)
	hired, _ := helper.ParseDatePtr(r.HireDate)
	m := &model.StaffModel{
		StaffID:       r.StaffID,
		FullName:      r.FullName,
		Email:         r.Email,
		Phone:         r.Phone,
		Address:       r.Address,
		DateOfBirth:   dob,
		Gender:        r.Gender,
		Qualification: r.Qualification,
		HireDate:      hired,
		Status:        model.StaffActive,
	}
	if r.Status != nil {
		m.Status = *r.Status
	}
	return m
}

type ListStaffQuery struct {
	Search   string
	Statuses []string
}

type StaffResponse struct {
	ID            int64             `json:"id"`
	StaffID       string            `json:"staff_id"`
	FullName      string            `json:"full_name"`
	Email         string            `json:"email"`
	Phone         *string           `json:"phone"`
	Address       *string           `json:"address"`
	DateOfBirth   *string           `json:"date_of_birth"`
	Gender        *constants.Gender `json:"gender"`
	Qualification *string           `json:"qualification"`
	HireDate      *string           `json:"hire_date"`
	Status        model.StaffStatus `json:"status"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// StaffDetailResponse is GET /staff/:id; subjects is always present.
type StaffDetailResponse struct {
	StaffResponse
	Subjects []AssignedResponse `json:"subjects"`
}

type AssignedResponse struct {
	ID           int64   `json:"id"`
	SubjectName  string  `json:"subject_name"`
	SubjectCode  string  `json:"subject_code"`
	Description  *string `json:"description"`
	AssignedDate *string `json:"assigned_date"`
}

func FromModel(m *model.StaffModel) StaffResponse {
	return StaffResponse{
		ID:            m.ID,
		StaffID:       m.StaffID,
		FullName:      m.FullName,
		Email:         m.Email,
		Phone:         m.Phone,
		Address:       m.Address,
		DateOfBirth:   helper.FormatDatePtr(m.DateOfBirth),
		Gender:        m.Gender,
		Qualification: m.Qualification,
		HireDate:      helper.FormatDatePtr(m.HireDate),
		Status:        m.Status,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func FromModels(rows []model.StaffModel) []StaffResponse {
	out := make([]StaffResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}

func WithSubjects(m *model.StaffModel, subjects []model.AssignedSubject) StaffDetailResponse {
	resp := StaffDetailResponse{StaffResponse: FromModel(m)}
	resp.Subjects = make([]AssignedResponse, 0, len(subjects))
	for _, s := range subjects {
		resp.Subjects = append(resp.Subjects, AssignedResponse{
			ID:           s.ID,
			SubjectName:  s.SubjectName,
			SubjectCode:  s.SubjectCode,
			Description:  s.Description,
			AssignedDate: helper.FormatDatePtr(s.AssignedDate),
		})
	}
	return resp
}
