package repository

import (
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"assurance_backend/internals/features/students/dto"
	"assurance_backend/internals/features/students/model"
	helper "assurance_backend/internals/helpers"
)

var updatableColumns = []string{
	"student_id", "full_name", "date_of_birth", "gender", "email", "phone", "address",
	"parent_guardian_name", "parent_guardian_phone", "parent_guardian_email",
	"enrollment_category", "enrollment_date", "status", "updated_at",
}

func applyFilters(q *gorm.DB, f dto.ListStudentsQuery) *gorm.DB {
	if s := strings.TrimSpace(f.Search); s != "" {
		pattern := helper.ContainsPattern(s)
		q = q.Where("(full_name ILIKE ? OR student_id ILIKE ? OR email ILIKE ?)", pattern, pattern, pattern)
	}
	if f.EnrollmentCategory != "" {
		q = q.Where("enrollment_category = ?", f.EnrollmentCategory)
	}
	if len(f.Statuses) > 0 {
		q = q.Where("status = ANY(?)", pq.Array(f.Statuses))
	}
	return q
}

// ListStudents returns rows newest first. paging nil means everything.
func ListStudents(db *gorm.DB, f dto.ListStudentsQuery, paging *helper.Paging) ([]model.StudentModel, int64, error) {
	base := applyFilters(db.Model(&model.StudentModel{}), f)

	var total int64
	if paging != nil {
		if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
			return nil, 0, err
		}
	}

	q := base.Session(&gorm.Session{}).Order("created_at DESC, id DESC")
	if paging != nil {
		q = q.Offset(paging.Offset).Limit(paging.Limit)
	}

	var rows []model.StudentModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	if paging == nil {
		total = int64(len(rows))
	}
	return rows, total, nil
}

func GetStudent(db *gorm.DB, id int64) (*model.StudentModel, error) {
	var s model.StudentModel
	if err := db.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func CreateStudent(db *gorm.DB, s *model.StudentModel) error {
	return db.Create(s).Error
}

// UpdateStudent overwrites every editable column. gorm.ErrRecordNotFound when
// the id does not exist.
func UpdateStudent(db *gorm.DB, id int64, s *model.StudentModel) error {
	s.ID = id
	res := db.Model(s).Select(updatableColumns).Updates(s)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteStudent cascades to fees and fee_structure rows.
func DeleteStudent(db *gorm.DB, id int64) error {
	res := db.Delete(&model.StudentModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
