package dto

import (
	"strings"

	"assurance_backend/internals/features/staff/model"
	helper "assurance_backend/internals/helpers"
)

type SubjectRequest struct {
	SubjectName string  `json:"subject_name" validate:"required,max=255"`
	SubjectCode string  `json:"subject_code" validate:"required,max=50"`
	Description *string `json:"description"`
}

// Normalize upper-cases the code so MATH101 and math101 collide.
func (r *SubjectRequest) Normalize() {
	r.SubjectName = strings.TrimSpace(r.SubjectName)
	r.SubjectCode = strings.ToUpper(strings.TrimSpace(r.SubjectCode))
	r.Description = helper.TrimPtr(r.Description)
}

func (r SubjectRequest) ToModel() *model.SubjectModel {
	return &model.SubjectModel{
		SubjectName: r.SubjectName,
		SubjectCode: r.SubjectCode,
		Description: r.Description,
	}
}

type SubjectResponse struct {
	ID          int64   `json:"id"`
	SubjectName string  `json:"subject_name"`
	SubjectCode string  `json:"subject_code"`
	Description *string `json:"description"`
}

func FromSubject(m *model.SubjectModel) SubjectResponse {
	return SubjectResponse{ID: m.ID, SubjectName: m.SubjectName, SubjectCode: m.SubjectCode, Description: m.Description}
}

func FromSubjects(rows []model.SubjectModel) []SubjectResponse {
	out := make([]SubjectResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromSubject(&rows[i]))
	}
	return out
}

type AssignSubjectRequest struct {
	SubjectID int64 `json:"subject_id" validate:"required,gt=0"`
}
