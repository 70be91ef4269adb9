package sink

import (
	"encoding/csv"
	"fmt"
	"os"

	"shopeecat/internal/model"
)

// utf8BOM deixa o arquivo abrível direto no Excel (equivale ao utf-8-sig).
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVSink grava as linhas em um arquivo CSV, recriado a cada execução.
type CSVSink struct {
	Path string
}

func (s *CSVSink) Write(rows []model.CategoryRow) error {
	f, err := os.Create(s.Path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", s.Path, err)
	}
	defer f.Close()

	if _, err := f.Write(utf8BOM); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(model.Columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, r := range rows {
		if err := w.Write(r.Values()); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", s.Path, err)
	}

	return nil
}
