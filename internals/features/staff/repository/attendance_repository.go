package repository

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"assurance_backend/internals/features/staff/dto"
	"assurance_backend/internals/features/staff/model"
	helper "assurance_backend/internals/helpers"
)

// UpsertAttendance writes one row per (staff, date); a second mark for the
// same day replaces status and notes.
func UpsertAttendance(db *gorm.DB, a *model.StaffAttendanceModel) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "staff_id"}, {Name: "attendance_date"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "notes"}),
	}).Create(a).Error
}

// ListAttendance expects dates already validated as YYYY-MM-DD.
func ListAttendance(db *gorm.DB, f dto.ListAttendanceQuery) ([]model.AttendanceRow, error) {
	q := db.Table("staff_attendance AS sa").
		Select("sa.*, st.staff_id AS staff_code, st.full_name AS staff_full_name").
		Joins("JOIN staff st ON st.id = sa.staff_id")
	if f.StaffID > 0 {
		q = q.Where("sa.staff_id = ?", f.StaffID)
	}
	if f.DateFrom != "" {
		q = q.Where("sa.attendance_date >= ?", f.DateFrom)
	}
	if f.DateTo != "" {
		q = q.Where("sa.attendance_date <= ?", f.DateTo)
	}

	var rows []model.AttendanceRow
	err := q.Order("sa.attendance_date DESC, st.full_name").Scan(&rows).Error
	return rows, err
}

// AttendanceSummary counts statuses for one day, used by the staff overview.
func AttendanceSummary(db *gorm.DB, day time.Time) (map[model.AttendanceStatus]int64, error) {
	var rows []struct {
		Status model.AttendanceStatus
		Total  int64
	}
	err := db.Model(&model.StaffAttendanceModel{}).
		Select("status, COUNT(*) AS total").
		Where("attendance_date = ?", day.Format(helper.DateLayout)).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[model.AttendanceStatus]int64, len(rows))
	for _, r := range rows {
		out[r.Status] = r.Total
	}
	return out, nil
}
