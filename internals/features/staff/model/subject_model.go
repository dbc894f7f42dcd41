package model

import (
	"time"

	"gorm.io/datatypes"
)

type SubjectModel struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	SubjectName string    `gorm:"column:subject_name;size:255;not null"`
	SubjectCode string    `gorm:"column:subject_code;size:50;not null;unique"`
	Description *string   `gorm:"column:description;type:text"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (SubjectModel) TableName() string { return "subjects" }

// StaffSubjectModel is the staff <-> subject assignment, unique per pair.
type StaffSubjectModel struct {
	ID           int64           `gorm:"column:id;primaryKey;autoIncrement"`
	StaffID      int64           `gorm:"column:staff_id;not null"`
	SubjectID    int64           `gorm:"column:subject_id;not null"`
	AssignedDate *datatypes.Date `gorm:"column:assigned_date;type:date;default:CURRENT_DATE"`
}

func (StaffSubjectModel) TableName() string { return "staff_subjects" }

// AssignedSubject is the read model for GET /staff/:id.
type AssignedSubject struct {
	ID           int64           `gorm:"column:id"`
	SubjectName  string          `gorm:"column:subject_name"`
	SubjectCode  string          `gorm:"column:subject_code"`
	Description  *string         `gorm:"column:description"`
	AssignedDate *datatypes.Date `gorm:"column:assigned_date"`
}
