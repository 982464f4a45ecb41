package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"

	"github.com/aurelianno/advinow-interview-challenge/internal/models"
	"github.com/aurelianno/advinow-interview-challenge/internal/repositories"
)

// Expected CSV header columns. Order in the file does not matter.
const (
	colBusinessID   = "Business ID"
	colBusinessName = "Business Name"
	colSymptomCode  = "Symptom Code"
	colSymptomName  = "Symptom Name"
	colDiagnostic   = "Symptom Diagnostic"
)

type ImportService struct {
	linkRepo *repositories.BusinessSymptomRepository
	runRepo  *repositories.ImportRunRepository
	log      *logrus.Logger
}

func NewImportService(
	linkRepo *repositories.BusinessSymptomRepository,
	runRepo *repositories.ImportRunRepository,
	log *logrus.Logger,
) *ImportService {
	return &ImportService{
		linkRepo: linkRepo,
		runRepo:  runRepo,
		log:      log,
	}
}

type ImportResult struct {
	Status        string `json:"status"`
	RowsProcessed int    `json:"rows_processed"`
}

// Import reads a CSV upload, stages one upsert per distinct key and commits
// the whole batch in a single transaction. Every attempt is recorded as an
// ImportRun, failed ones included.
func (s *ImportService) Import(ctx context.Context, filename string, file io.Reader) (*ImportResult, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("%w: reading upload: %v", ErrValidation, err)
	}

	batch, err := stageCSV(data)
	if err != nil {
		s.recordRun(ctx, filename, 0, "failed", err)
		return nil, err
	}

	if err := s.linkRepo.UpsertBatch(ctx, batch.businesses, batch.symptoms, batch.links); err != nil {
		wrapped := wrapImportErr(err)
		s.recordRun(ctx, filename, batch.rowCount, "failed", wrapped)
		return nil, wrapped
	}

	s.log.WithFields(logrus.Fields{
		"filename":   filename,
		"rows":       batch.rowCount,
		"businesses": len(batch.businesses),
		"symptoms":   len(batch.symptoms),
	}).Info("import complete")

	s.recordRun(ctx, filename, batch.rowCount, "completed", nil)

	return &ImportResult{Status: "import complete", RowsProcessed: batch.rowCount}, nil
}

// Runs returns the import audit trail, newest first.
func (s *ImportService) Runs(ctx context.Context) ([]models.ImportRun, error) {
	return s.runRepo.List(ctx)
}

func (s *ImportService) recordRun(ctx context.Context, filename string, rows int, status string, cause error) {
	run := &models.ImportRun{
		Filename:      filename,
		RowsProcessed: rows,
		Status:        status,
	}
	if cause != nil {
		msg := cause.Error()
		run.Error = &msg
	}
	// Audit writes are best effort and must not mask the import outcome.
	if err := s.runRepo.Create(ctx, run); err != nil {
		s.log.WithError(err).Warn("failed to record import run")
	}
}

type linkKey struct {
	businessID  int
	symptomCode string
}

// importBatch holds the staged upserts for one import. Each slice carries at
// most one entry per key; within a batch the last occurrence wins.
type importBatch struct {
	businesses []models.Business
	symptoms   []models.Symptom
	links      []models.BusinessSymptom
	rowCount   int
}

func stageCSV(data []byte) (*importBatch, error) {
	// Invalid byte sequences are dropped rather than rejected.
	data = bytes.ToValidUTF8(data, nil)

	reader := csv.NewReader(bytes.NewReader(data))

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		// Empty upload: zero data rows, a no-op commit.
		return &importBatch{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading header: %v", ErrValidation, err)
	}

	cols, err := headerIndex(header)
	if err != nil {
		return nil, err
	}

	batch := &importBatch{}
	bizPos := make(map[int]int)
	symPos := make(map[string]int)
	linkPos := make(map[linkKey]int)

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrValidation, batch.rowCount+1, err)
		}
		batch.rowCount++

		businessID, err := strconv.Atoi(strings.TrimSpace(record[cols.businessID]))
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: business id %q is not numeric",
				ErrValidation, batch.rowCount, record[cols.businessID])
		}

		businessName := strings.TrimSpace(record[cols.businessName])
		symptomCode := strings.TrimSpace(record[cols.symptomCode])
		symptomName := strings.TrimSpace(record[cols.symptomName])
		diagnostic := parseDiagnostic(record[cols.diagnostic])

		if pos, ok := bizPos[businessID]; ok {
			batch.businesses[pos].Name = businessName
		} else {
			bizPos[businessID] = len(batch.businesses)
			batch.businesses = append(batch.businesses, models.Business{
				ID:   businessID,
				Name: businessName,
			})
		}

		if pos, ok := symPos[symptomCode]; ok {
			batch.symptoms[pos].Name = symptomName
		} else {
			symPos[symptomCode] = len(batch.symptoms)
			batch.symptoms = append(batch.symptoms, models.Symptom{
				Code: symptomCode,
				Name: symptomName,
			})
		}

		key := linkKey{businessID: businessID, symptomCode: symptomCode}
		if pos, ok := linkPos[key]; ok {
			batch.links[pos].Diagnostic = diagnostic
		} else {
			linkPos[key] = len(batch.links)
			batch.links = append(batch.links, models.BusinessSymptom{
				BusinessID:  businessID,
				SymptomCode: symptomCode,
				Diagnostic:  diagnostic,
			})
		}
	}

	return batch, nil
}

type columnIndex struct {
	businessID   int
	businessName int
	symptomCode  int
	symptomName  int
	diagnostic   int
}

func headerIndex(header []string) (*columnIndex, error) {
	byName := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		byName[strings.TrimSpace(name)] = i
	}

	cols := &columnIndex{}
	for _, want := range []struct {
		name string
		dst  *int
	}{
		{colBusinessID, &cols.businessID},
		{colBusinessName, &cols.businessName},
		{colSymptomCode, &cols.symptomCode},
		{colSymptomName, &cols.symptomName},
		{colDiagnostic, &cols.diagnostic},
	} {
		i, ok := byName[want.name]
		if !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrValidation, want.name)
		}
		*want.dst = i
	}
	return cols, nil
}

// parseDiagnostic treats "true", "1" and "yes" (case-insensitive) as true.
// Anything else, malformed values included, defaults to false.
func parseDiagnostic(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "1", "yes":
		return true
	}
	return false
}

func wrapImportErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fmt.Errorf("%w: commit rejected (%s): %s", ErrImport, pgErr.Code, pgErr.Message)
	}
	return fmt.Errorf("%w: %v", ErrImport, err)
}
