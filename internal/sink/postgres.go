package sink

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"shopeecat/internal/model"
)

// PostgresSink substitui a tabela de categorias a cada execução. Drop, create
// e carga rodam em uma única transação, então leitores nunca veem a tabela
// pela metade.
type PostgresSink struct {
	Conn  *pgx.Conn
	Table string
}

func (s *PostgresSink) Write(ctx context.Context, rows []model.CategoryRow) error {
	tx, err := s.Conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	table := pgx.Identifier{s.Table}
	if _, err := tx.Exec(ctx, "DROP TABLE IF EXISTS "+table.Sanitize()); err != nil {
		return fmt.Errorf("failed to drop %s: %w", s.Table, err)
	}

	createSQL := fmt.Sprintf(`
		CREATE TABLE %s (
			categoria TEXT,
			subcategoria TEXT,
			"3_nivel_categoria" TEXT,
			"4_nivel_categoria" TEXT,
			"5_nivel_categoria" TEXT,
			id_categoria TEXT,
			imagem_categoria TEXT
		)`, table.Sanitize())
	if _, err := tx.Exec(ctx, createSQL); err != nil {
		return fmt.Errorf("failed to create %s: %w", s.Table, err)
	}

	_, err = tx.CopyFrom(ctx, table, model.Columns,
		pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
			values := rows[i].Values()
			out := make([]any, len(values))
			for j, v := range values {
				out[j] = v
			}
			return out, nil
		}))
	if err != nil {
		return fmt.Errorf("failed to copy rows into %s: %w", s.Table, err)
	}

	return tx.Commit(ctx)
}
