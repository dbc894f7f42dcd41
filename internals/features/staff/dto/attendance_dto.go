package dto

import (
	"strings"

	"assurance_backend/internals/features/staff/model"
	helper "assurance_backend/internals/helpers"
)

type AttendanceRequest struct {
	StaffID        int64                  `json:"staff_id" validate:"required,gt=0"`
	AttendanceDate string                 `json:"attendance_date" validate:"required,date"`
	Status         model.AttendanceStatus `json:"status" validate:"required,enum"`
	Notes          *string                `json:"notes"`
}

func (r *AttendanceRequest) Normalize() {
	r.AttendanceDate = strings.TrimSpace(r.AttendanceDate)
	r.Notes = helper.TrimPtr(r.Notes)
}

func (r AttendanceRequest) ToModel() *model.StaffAttendanceModel {
	d, _ := helper.ParseDate(r.AttendanceDate)
	return &model.StaffAttendanceModel{
		StaffID:        r.StaffID,
		AttendanceDate: d,
		Status:         r.Status,
		Notes:          r.Notes,
	}
}

type ListAttendanceQuery struct {
	StaffID  int64
	DateFrom string
	DateTo   string
}

type AttendanceResponse struct {
	ID             int64                  `json:"id"`
	StaffID        int64                  `json:"staff_id"`
	StaffCode      string                 `json:"staff_code,omitempty"`
	StaffName      string                 `json:"staff_name,omitempty"`
	AttendanceDate string                 `json:"attendance_date"`
	Status         model.AttendanceStatus `json:"status"`
	Notes          *string                `json:"notes"`
}

func FromAttendance(m *model.StaffAttendanceModel) AttendanceResponse {
	return AttendanceResponse{
		ID:             m.ID,
		StaffID:        m.StaffID,
		AttendanceDate: helper.FormatDate(m.AttendanceDate),
		Status:         m.Status,
		Notes:          m.Notes,
	}
}

func FromAttendanceRows(rows []model.AttendanceRow) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(rows))
	for i := range rows {
		r := FromAttendance(&rows[i].StaffAttendanceModel)
		r.StaffCode = rows[i].StaffCode
		r.StaffName = rows[i].StaffFullName
		out = append(out, r)
	}
	return out
}
