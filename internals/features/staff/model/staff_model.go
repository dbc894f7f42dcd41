// file: internals/features/staff/model/staff_model.go
package model

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"assurance_backend/internals/constants"
)

type StaffStatus string

const (
	StaffActive   StaffStatus = "Active"
	StaffOnLeave  StaffStatus = "On Leave"
	StaffInactive StaffStatus = "Inactive"
)

func (s StaffStatus) Valid() bool {
	switch s {
	case StaffActive, StaffOnLeave, StaffInactive:
		return true
	}
	return false
}

type StaffModel struct {
	ID            int64             `gorm:"column:id;primaryKey;autoIncrement"`
	StaffID       string            `gorm:"column:staff_id;size:50;not null;unique"`
	FullName      string            `gorm:"column:full_name;size:255;not null"`
	Email         string            `gorm:"column:email;size:255;not null;unique"`
	Phone         *string           `gorm:"column:phone;size:50"`
	Address       *string           `gorm:"column:address;type:text"`
	DateOfBirth   *datatypes.Date   `gorm:"column:date_of_birth;type:date"`
	Gender        *constants.Gender `gorm:"column:gender;size:10"`
	Qualification *string           `gorm:"column:qualification;size:255"`
	HireDate      *datatypes.Date   `gorm:"column:hire_date;type:date"`
	Status        StaffStatus       `gorm:"column:status;size:20;not null;default:Active"`
	CreatedAt     time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}

func (StaffModel) TableName() string { return "staff" }

func (s *StaffModel) BeforeSave(tx *gorm.DB) error {
	if s.Status == "" {
		s.Status = StaffActive
	}
	if !s.Status.Valid() {
		return fmt.Errorf("invalid staff status %q", s.Status)
	}
	return nil
}
