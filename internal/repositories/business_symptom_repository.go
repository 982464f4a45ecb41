package repositories

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/aurelianno/advinow-interview-challenge/internal/models"
)

// LinkFilter holds the optional query filters. Nil fields impose no
// constraint; set fields are combined with AND.
type LinkFilter struct {
	BusinessID *int
	Diagnostic *bool
}

type BusinessSymptomRepository struct {
	db *gorm.DB
}

func NewBusinessSymptomRepository(db *gorm.DB) *BusinessSymptomRepository {
	return &BusinessSymptomRepository{db: db}
}

// UpsertBatch persists a staged import batch in a single transaction.
// Callers must deduplicate keys within each slice: a multi-row INSERT
// cannot touch the same conflict target twice.
func (r *BusinessSymptomRepository) UpsertBatch(
	ctx context.Context,
	businesses []models.Business,
	symptoms []models.Symptom,
	links []models.BusinessSymptom,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(businesses) > 0 {
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				DoUpdates: clause.AssignmentColumns([]string{"name"}),
			}).Create(&businesses).Error; err != nil {
				return err
			}
		}

		if len(symptoms) > 0 {
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "code"}},
				DoUpdates: clause.AssignmentColumns([]string{"name"}),
			}).Create(&symptoms).Error; err != nil {
				return err
			}
		}

		// Parents go in first so the link foreign keys are satisfied.
		// On conflict created_at is left alone; updated_at takes the
		// freshly generated insert value.
		if len(links) > 0 {
			if err := tx.Omit(clause.Associations).Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "business_id"}, {Name: "symptom_code"}},
				DoUpdates: clause.AssignmentColumns([]string{"diagnostic", "updated_at"}),
			}).Create(&links).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// FindLinks joins the three tables and returns the denormalized rows
// matching the filter. No ordering is guaranteed.
func (r *BusinessSymptomRepository) FindLinks(ctx context.Context, filter LinkFilter) ([]models.BusinessSymptomRow, error) {
	q := r.db.WithContext(ctx).
		Table("business_symptoms").
		Select("business_symptoms.business_id, businesses.name AS business_name, " +
			"business_symptoms.symptom_code, symptoms.name AS symptom_name, business_symptoms.diagnostic").
		Joins("JOIN businesses ON businesses.id = business_symptoms.business_id").
		Joins("JOIN symptoms ON symptoms.code = business_symptoms.symptom_code")

	if filter.BusinessID != nil {
		q = q.Where("business_symptoms.business_id = ?", *filter.BusinessID)
	}
	if filter.Diagnostic != nil {
		q = q.Where("business_symptoms.diagnostic = ?", *filter.Diagnostic)
	}

	var rows []models.BusinessSymptomRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
