package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/aurelianno/advinow-interview-challenge/internal/models"
	"github.com/aurelianno/advinow-interview-challenge/internal/repositories"
)

type LinkService struct {
	repo *repositories.BusinessSymptomRepository
	log  *logrus.Logger
}

func NewLinkService(repo *repositories.BusinessSymptomRepository, log *logrus.Logger) *LinkService {
	return &LinkService{repo: repo, log: log}
}

// ListLinks returns the joined business/symptom rows matching the filter.
// An empty match yields ErrNotFound.
func (s *LinkService) ListLinks(ctx context.Context, filter repositories.LinkFilter) ([]models.BusinessSymptomRow, error) {
	rows, err := s.repo.FindLinks(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("querying business-symptom links: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no business-symptom data found", ErrNotFound)
	}

	s.log.WithField("rows", len(rows)).Debug("business-symptom query served")
	return rows, nil
}
