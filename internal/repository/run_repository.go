package repository

import (
	"database/sql"

	"shopeecat/internal/model"
)

// RunRepository guarda o histórico de execuções do extrator em uma tabela
// append-only, separada da tabela de categorias que é substituída a cada run.
type RunRepository struct {
	DB *sql.DB
}

func (r *RunRepository) EnsureTable() error {
	_, err := r.DB.Exec(`
		CREATE TABLE IF NOT EXISTS extracao_runs (
			id UUID PRIMARY KEY,
			started_at TIMESTAMPTZ NOT NULL,
			finished_at TIMESTAMPTZ NOT NULL,
			total_rows INT NOT NULL,
			status TEXT NOT NULL
		)
	`)
	return err
}

func (r *RunRepository) Save(run model.ExtractionRun) error {
	_, err := r.DB.Exec(`
		INSERT INTO extracao_runs (id, started_at, finished_at, total_rows, status)
		VALUES ($1, $2, $3, $4, $5)
	`, run.ID, run.StartedAt, run.FinishedAt, run.TotalRows, run.Status)
	return err
}

func (r *RunRepository) Count() (int, error) {
	var n int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM extracao_runs`).Scan(&n)
	return n, err
}
