package repository

import (
	"gorm.io/gorm"

	"assurance_backend/internals/features/staff/model"
)

func ListSubjects(db *gorm.DB) ([]model.SubjectModel, error) {
	var rows []model.SubjectModel
	err := db.Order("subject_name").Find(&rows).Error
	return rows, err
}

func CreateSubject(db *gorm.DB, s *model.SubjectModel) error {
	return db.Create(s).Error
}

func AssignSubject(db *gorm.DB, a *model.StaffSubjectModel) error {
	return db.Create(a).Error
}

// UnassignSubject: gorm.ErrRecordNotFound when the pair was not assigned.
func UnassignSubject(db *gorm.DB, staffID, subjectID int64) error {
	res := db.Where("staff_id = ? AND subject_id = ?", staffID, subjectID).
		Delete(&model.StaffSubjectModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
