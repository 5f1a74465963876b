package timetable

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"faculty-ops/internal/employee"
	"faculty-ops/internal/shared/contextutil"
	timetableerrors "faculty-ops/internal/timetable/errors"
)

var requiredColumns = []string{"faculty", "date", "day", "time", "subject", "class"}

type importRow struct {
	line   int
	fields map[string]string
}

//go:generate mockgen -source=timetable_service.go -destination=mock/timetable_service_mock.go -package=mock
type Service interface {
	Import(ctx context.Context, filename string, file io.Reader) (ImportReport, error)
	ListForEmployee(ctx context.Context, employeeID string) ([]EntryResponse, error)
}

type service struct {
	repo         Repository
	employeeRepo employee.Repository
	logger       *zap.Logger
}

func NewService(repo Repository, employeeRepo employee.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("timetable.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("timetable.service")
	}
	return &service{repo: repo, employeeRepo: employeeRepo, logger: l}
}

// Import parses the upload, resolves each row's faculty name against
// the roster, and persists the rows that matched. Unresolved rows are
// skipped with a warning; they never abort the batch.
func (s *service) Import(ctx context.Context, filename string, file io.Reader) (ImportReport, error) {
	rid := contextutil.GetRequestID(ctx)

	var (
		rows []importRow
		err  error
	)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		rows, err = parseCSV(file)
	case ".xlsx":
		rows, err = parseXLSX(file)
	default:
		return ImportReport{}, timetableerrors.ErrUnsupportedFileType
	}
	if err != nil {
		return ImportReport{}, err
	}

	report := ImportReport{Warnings: []string{}}
	entries := make([]Entry, 0, len(rows))
	for _, row := range rows {
		facultyName := row.fields["faculty"]
		emp, err := s.employeeRepo.FindByName(ctx, facultyName)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				report.Skipped++
				report.Warnings = append(report.Warnings,
					fmt.Sprintf("row %d: no employee found for faculty name %q", row.line, facultyName))
				continue
			}
			s.logger.Error("timetable import lookup failed",
				zap.String("request_id", rid),
				zap.Int("row", row.line),
				zap.Error(err),
			)
			return ImportReport{}, err
		}

		entries = append(entries, Entry{
			ID:         uuid.New(),
			EmployeeID: emp.ID,
			Date:       row.fields["date"],
			Day:        row.fields["day"],
			Time:       row.fields["time"],
			Subject:    row.fields["subject"],
			Class:      row.fields["class"],
			Faculty:    facultyName,
		})
	}

	if err := s.repo.CreateBatch(ctx, entries); err != nil {
		s.logger.Error("timetable import persist failed",
			zap.String("request_id", rid),
			zap.Error(err),
		)
		return ImportReport{}, err
	}
	report.Imported = len(entries)

	s.logger.Info("timetable import finished",
		zap.String("request_id", rid),
		zap.String("filename", filename),
		zap.Int("imported", report.Imported),
		zap.Int("skipped", report.Skipped),
	)

	return report, nil
}

func (s *service) ListForEmployee(ctx context.Context, employeeID string) ([]EntryResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, timetableerrors.ErrInvalidEmployeeID
	}

	entries, err := s.repo.FindByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	resp := make([]EntryResponse, len(entries))
	for i, e := range entries {
		resp[i] = EntryResponse{
			ID:      e.ID.String(),
			Date:    e.Date,
			Day:     e.Day,
			Time:    e.Time,
			Subject: e.Subject,
			Class:   e.Class,
			Faculty: e.Faculty,
		}
	}
	return resp, nil
}

func parseCSV(file io.Reader) ([]importRow, error) {
	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, timetableerrors.ErrEmptyFile
	}
	return rowsFromRecords(records)
}

func parseXLSX(file io.Reader) ([]importRow, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, timetableerrors.ErrUnsupportedFileType
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	records, err := f.GetRows(sheet)
	if err != nil {
		return nil, timetableerrors.ErrEmptyFile
	}
	return rowsFromRecords(records)
}

func rowsFromRecords(records [][]string) ([]importRow, error) {
	if len(records) < 2 {
		return nil, timetableerrors.ErrEmptyFile
	}

	colIndex, err := headerIndex(records[0])
	if err != nil {
		return nil, err
	}

	rows := make([]importRow, 0, len(records)-1)
	for i := 1; i < len(records); i++ {
		record := records[i]
		fields := make(map[string]string, len(requiredColumns))
		empty := true
		for _, col := range requiredColumns {
			idx := colIndex[col]
			if idx < len(record) {
				fields[col] = strings.TrimSpace(record[idx])
				if fields[col] != "" {
					empty = false
				}
			}
		}
		if empty {
			continue
		}
		rows = append(rows, importRow{line: i + 1, fields: fields})
	}

	if len(rows) == 0 {
		return nil, timetableerrors.ErrEmptyFile
	}
	return rows, nil
}

// headerIndex matches column names case-insensitively after trimming.
func headerIndex(header []string) (map[string]int, error) {
	colIndex := make(map[string]int, len(requiredColumns))
	for i, h := range header {
		colIndex[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range requiredColumns {
		if _, ok := colIndex[col]; !ok {
			return nil, timetableerrors.ErrMissingColumns
		}
	}
	return colIndex, nil
}
