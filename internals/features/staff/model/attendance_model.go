package model

import "gorm.io/datatypes"

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "Present"
	AttendanceAbsent  AttendanceStatus = "Absent"
	AttendanceLate    AttendanceStatus = "Late"
	AttendanceOnLeave AttendanceStatus = "On Leave"
)

func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLate, AttendanceOnLeave:
		return true
	}
	return false
}

// StaffAttendanceModel: one row per (staff_id, attendance_date).
type StaffAttendanceModel struct {
	ID             int64            `gorm:"column:id;primaryKey;autoIncrement"`
	StaffID        int64            `gorm:"column:staff_id;not null"`
	AttendanceDate datatypes.Date   `gorm:"column:attendance_date;type:date;not null"`
	Status         AttendanceStatus `gorm:"column:status;size:20;not null"`
	Notes          *string          `gorm:"column:notes;type:text"`
}

func (StaffAttendanceModel) TableName() string { return "staff_attendance" }

// AttendanceRow is an attendance entry joined with the staff name.
type AttendanceRow struct {
	StaffAttendanceModel
	StaffCode     string `gorm:"column:staff_code"`
	StaffFullName string `gorm:"column:staff_full_name"`
}
