// file: internals/features/students/model/student_model.go
package model

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"assurance_backend/internals/constants"
)

// --- ENUM enrollment_category ------------------------------------------------
type EnrollmentCategory string

const (
	EnrollmentMayJune EnrollmentCategory = "MayJune"
	EnrollmentNovDec  EnrollmentCategory = "NovDec"
)

func (e EnrollmentCategory) Valid() bool {
	switch e {
	case EnrollmentMayJune, EnrollmentNovDec:
		return true
	}
	return false
}

// --- ENUM student status -----------------------------------------------------
type StudentStatus string

const (
	StudentActive    StudentStatus = "Active"
	StudentInactive  StudentStatus = "Inactive"
	StudentGraduated StudentStatus = "Graduated"
)

func (s StudentStatus) Valid() bool {
	switch s {
	case StudentActive, StudentInactive, StudentGraduated:
		return true
	}
	return false
}

// StudentModel merepresentasikan tabel students
type StudentModel struct {
	ID                  int64               `gorm:"column:id;primaryKey;autoIncrement"`
	StudentID           string              `gorm:"column:student_id;size:50;not null;unique"`
	FullName            string              `gorm:"column:full_name;size:255;not null"`
	DateOfBirth         *datatypes.Date     `gorm:"column:date_of_birth;type:date"`
	Gender              *constants.Gender   `gorm:"column:gender;size:10"`
	Email               *string             `gorm:"column:email;size:255"`
	Phone               *string             `gorm:"column:phone;size:50"`
	Address             *string             `gorm:"column:address;type:text"`
	ParentGuardianName  *string             `gorm:"column:parent_guardian_name;size:255"`
	ParentGuardianPhone *string             `gorm:"column:parent_guardian_phone;size:50"`
	ParentGuardianEmail *string             `gorm:"column:parent_guardian_email;size:255"`
	EnrollmentCategory  *EnrollmentCategory `gorm:"column:enrollment_category;size:20"`
	EnrollmentDate      *datatypes.Date     `gorm:"column:enrollment_date;type:date"`
	Status              StudentStatus       `gorm:"column:status;size:20;not null;default:Active"`
	CreatedAt           time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt           time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}

func (StudentModel) TableName() string {
	return "students"
}

// BeforeSave: status kosong -> Active, selain itu harus valid
func (s *StudentModel) BeforeSave(tx *gorm.DB) error {
	if s.Status == "" {
		s.Status = StudentActive
	}
	if !s.Status.Valid() {
		return fmt.Errorf("invalid student status %q", s.Status)
	}
	return nil
}
