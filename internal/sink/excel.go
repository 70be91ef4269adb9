package sink

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"shopeecat/internal/model"
)

const defaultSheet = "Categorias"

// ExcelSink grava as linhas em uma planilha xlsx, recriada a cada execução.
type ExcelSink struct {
	Path  string
	Sheet string
}

func (s *ExcelSink) Write(rows []model.CategoryRow) error {
	sheet := s.Sheet
	if sheet == "" {
		sheet = defaultSheet
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := f.SetSheetRow(sheet, "A1", toSheetRow(model.Columns)); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, toSheetRow(r.Values())); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if err := f.SaveAs(s.Path); err != nil {
		return fmt.Errorf("failed to save %s: %w", s.Path, err)
	}
	return nil
}

func toSheetRow(values []string) *[]interface{} {
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	return &row
}
