package subjects

import (
	"context"
	_ "embed"
	"fmt"
	"log"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"assurance_backend/internals/features/staff/model"
)

//go:embed data_subjects.json
var defaultSubjects []byte

type SubjectSeed struct {
	SubjectCode string `json:"subject_code"`
	SubjectName string `json:"subject_name"`
	Description string `json:"description"`
}

// SeedDefaultSubjects inserts the core subjects, leaving existing codes alone.
func SeedDefaultSubjects(ctx context.Context, db *gorm.DB) (int64, error) {
	var inputs []SubjectSeed
	if err := sonic.Unmarshal(defaultSubjects, &inputs); err != nil {
		return 0, fmt.Errorf("decode subjects: %w", err)
	}

	rows := make([]model.SubjectModel, 0, len(inputs))
	for _, in := range inputs {
		desc := in.Description
		rows = append(rows, model.SubjectModel{
			SubjectCode: in.SubjectCode,
			SubjectName: in.SubjectName,
			Description: &desc,
		})
	}

	res := db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "subject_code"}}, DoNothing: true}).
		Create(&rows)
	if res.Error != nil {
		return 0, fmt.Errorf("seed subjects: %w", res.Error)
	}
	if res.RowsAffected > 0 {
		log.Printf("[SEED] %d subjects inserted", res.RowsAffected)
	}
	return res.RowsAffected, nil
}
