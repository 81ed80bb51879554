package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/SAP-F-2025/transcript-service/internal/repositories"
)

type exportService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewExportService(repo repositories.Repository, logger *slog.Logger) ExportService {
	return &exportService{
		repo:   repo,
		logger: logger,
	}
}

const transcriptSheet = "Transcript"

// ExportTranscript renders every course record plus the CGPA summary into
// a spreadsheet. The caller owns the returned file and must close it.
func (s *exportService) ExportTranscript(ctx context.Context) (*excelize.File, error) {
	records, err := s.repo.Course().GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load records for export: %w", err)
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", transcriptSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	headers := []string{"ID", "Semester", "Course", "Unit", "Grade", "Grade Point"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(transcriptSheet, cell, header); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for i, record := range records {
		row := i + 2
		values := []interface{}{record.ID, record.Semester, record.CourseName, record.Unit, string(record.Grade), record.Grade.Points()}
		for j, value := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			if err := f.SetCellValue(transcriptSheet, cell, value); err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to write record row: %w", err)
			}
		}
	}

	summary := Aggregate(records, nil)
	summaryRow := len(records) + 3
	summaryCells := map[int]interface{}{
		1: "Summary",
		2: fmt.Sprintf("Total Units: %d", summary.TotalUnits),
		3: fmt.Sprintf("Total Grade Points: %d", summary.TotalGradePoints),
		4: fmt.Sprintf("CGPA: %.2f", summary.CGPA),
	}
	for col, value := range summaryCells {
		cell, _ := excelize.CoordinatesToCellName(col, summaryRow)
		if err := f.SetCellValue(transcriptSheet, cell, value); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to write summary row: %w", err)
		}
	}

	s.logger.Info("Exported transcript", "records", len(records))
	return f, nil
}
