package repository

import (
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"assurance_backend/internals/features/staff/dto"
	"assurance_backend/internals/features/staff/model"
	helper "assurance_backend/internals/helpers"
)

var staffUpdatableColumns = []string{
	"staff_id", "full_name", "email", "phone", "address", "date_of_birth",
	"gender", "qualification", "hire_date", "status", "updated_at",
}

func ListStaff(db *gorm.DB, f dto.ListStaffQuery, paging *helper.Paging) ([]model.StaffModel, int64, error) {
	q := db.Model(&model.StaffModel{})
	if s := strings.TrimSpace(f.Search); s != "" {
		pattern := helper.ContainsPattern(s)
		q = q.Where("(full_name ILIKE ? OR staff_id ILIKE ? OR email ILIKE ?)", pattern, pattern, pattern)
	}
	if len(f.Statuses) > 0 {
		q = q.Where("status = ANY(?)", pq.Array(f.Statuses))
	}

	var total int64
	if paging != nil {
		if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
			return nil, 0, err
		}
	}

	list := q.Session(&gorm.Session{}).Order("created_at DESC, id DESC")
	if paging != nil {
		list = list.Offset(paging.Offset).Limit(paging.Limit)
	}
	var rows []model.StaffModel
	if err := list.Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	if paging == nil {
		total = int64(len(rows))
	}
	return rows, total, nil
}

func GetStaff(db *gorm.DB, id int64) (*model.StaffModel, error) {
	var s model.StaffModel
	if err := db.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func CreateStaff(db *gorm.DB, s *model.StaffModel) error {
	return db.Create(s).Error
}

func UpdateStaff(db *gorm.DB, id int64, s *model.StaffModel) error {
	s.ID = id
	res := db.Model(s).Select(staffUpdatableColumns).Updates(s)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteStaff also removes attendance and subject assignments (FK cascade).
func DeleteStaff(db *gorm.DB, id int64) error {
	res := db.Delete(&model.StaffModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func SubjectsOfStaff(db *gorm.DB, staffID int64) ([]model.AssignedSubject, error) {
	var rows []model.AssignedSubject
	err := db.Table("staff_subjects AS ss").
		Select("s.id, s.subject_name, s.subject_code, s.description, ss.assigned_date").
		Joins("JOIN subjects s ON s.id = ss.subject_id").
		Where("ss.staff_id = ?", staffID).
		Order("s.subject_name").
		Scan(&rows).Error
	return rows, err
}
