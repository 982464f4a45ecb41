package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/aurelianno/advinow-interview-challenge/internal/models"
)

type ImportRunRepository struct {
	db *gorm.DB
}

func NewImportRunRepository(db *gorm.DB) *ImportRunRepository {
	return &ImportRunRepository{db: db}
}

func (r *ImportRunRepository) Create(ctx context.Context, run *models.ImportRun) error {
	return r.db.WithContext(ctx).Create(run).Error
}

func (r *ImportRunRepository) List(ctx context.Context) ([]models.ImportRun, error) {
	runs := make([]models.ImportRun, 0)
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&runs).Error
	if err != nil {
		return nil, err
	}
	return runs, nil
}
