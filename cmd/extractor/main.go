package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"shopeecat/internal/category"
	"shopeecat/internal/config"
	"shopeecat/internal/db"
	"shopeecat/internal/logging"
	"shopeecat/internal/model"
	"shopeecat/internal/observability"
	"shopeecat/internal/repository"
	"shopeecat/internal/shopee"
	"shopeecat/internal/sink"
)

// go run cmd/extractor/main.go -csv=categorias.csv -xlsx=categorias.xlsx -tabela=categorias_shopee
func main() {
	csvPath := flag.String("csv", "categorias_shopee_api.csv", "Arquivo CSV de saída")
	xlsxPath := flag.String("xlsx", "categorias_shopee_api.xlsx", "Arquivo Excel de saída")
	tabela := flag.String("tabela", "categorias_shopee", "Tabela de destino no Postgres")
	pageSize := flag.Int("size", 100, "Número de resultados por página da API")
	delay := flag.Duration("delay", 500*time.Millisecond, "Delay entre requisições de página")
	flag.Parse()

	cfg := config.Load()

	logger, err := logging.Setup(cfg.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "erro ao abrir arquivo de log:", err)
		os.Exit(1)
	}

	observability.Start(cfg.MetricsPort)

	runID := uuid.New().String()
	logger = logger.With().Str("run_id", runID).Logger()
	logger.Info().Msg("Iniciando extração das categorias da Shopee via API...")

	ctx := context.Background()
	started := time.Now()

	// Aborta a execução registrando o run como falho antes de sair.
	falhar := func(err error, totalRows int, msg string) {
		registrarRun(logger, cfg, registroDeRun(runID, started, totalRows, err))
		logger.Fatal().Err(err).Msg(msg)
	}

	client := shopee.NewClient(*pageSize, *delay)
	if err := client.Bootstrap(ctx); err != nil {
		logger.Warn().Err(err).Msg("Falha ao obter cookies de sessão, seguindo sem sessão")
	}

	fetch := func(ctx context.Context, parentID int64) ([]category.Node, error) {
		cats, err := client.ListChildren(ctx, parentID)
		if err != nil {
			return nil, err
		}
		nodes := make([]category.Node, 0, len(cats))
		for _, c := range cats {
			nodes = append(nodes, category.Node{
				ID:    c.CategoryID,
				Name:  c.CategoryName,
				Image: c.Image(),
			})
		}
		return nodes, nil
	}

	rows, err := category.Flatten(ctx, fetch)
	if err != nil {
		falhar(err, 0, "Erro ao extrair categorias")
	}
	observability.CategoriasExtraidas.Add(float64(len(rows)))

	if len(rows) == 0 {
		falhar(errors.New("nenhuma categoria extraída"), 0,
			"Nenhuma categoria foi extraída. Verifique os logs para mais detalhes.")
	}
	logger.Info().Int("total", len(rows)).Msg("Total de categorias extraídas")

	if err := (&sink.CSVSink{Path: *csvPath}).Write(rows); err != nil {
		falhar(err, len(rows), "Erro ao salvar CSV")
	}
	logStats(logger, rows, *csvPath)

	if err := (&sink.ExcelSink{Path: *xlsxPath}).Write(rows); err != nil {
		falhar(err, len(rows), "Erro ao salvar Excel")
	}
	logger.Info().Str("arquivo", *xlsxPath).Msg("Dados salvos com sucesso no arquivo")

	pgConn, err := db.NewPgx(ctx, cfg.DatabaseURL())
	if err != nil {
		falhar(err, len(rows), "Erro ao conectar no Postgres")
	}
	defer pgConn.Close(ctx)

	if err := (&sink.PostgresSink{Conn: pgConn, Table: *tabela}).Write(ctx, rows); err != nil {
		falhar(err, len(rows), "Erro ao salvar no Postgres")
	}
	logger.Info().Str("tabela", *tabela).Msg("Dados salvos com sucesso no Postgres")

	registrarRun(logger, cfg, registroDeRun(runID, started, len(rows), nil))

	logger.Info().Msg("Processo concluído com sucesso!")
}

// registroDeRun monta o registro da execução: status de falha quando houve
// erro, sucesso caso contrário.
func registroDeRun(runID string, started time.Time, totalRows int, err error) model.ExtractionRun {
	status := model.RunStatusSuccess
	if err != nil {
		status = model.RunStatusFailure
	}
	return model.ExtractionRun{
		ID:         runID,
		StartedAt:  started,
		FinishedAt: time.Now(),
		TotalRows:  totalRows,
		Status:     status,
	}
}

// registrarRun grava o histórico da execução; falha aqui não invalida os
// dados já persistidos, então só gera warning.
func registrarRun(logger zerolog.Logger, cfg *config.Config, run model.ExtractionRun) {
	sqlDB, err := db.New(cfg.DatabaseURL())
	if err != nil {
		logger.Warn().Err(err).Msg("Erro ao conectar para registrar a execução")
		return
	}
	defer sqlDB.Close()

	repo := &repository.RunRepository{DB: sqlDB}
	if err := repo.EnsureTable(); err != nil {
		logger.Warn().Err(err).Msg("Erro ao criar tabela de execuções")
		return
	}
	if n, err := repo.Count(); err == nil {
		logger.Info().Int("execucoes_anteriores", n).Msg("Histórico de execuções")
	}
	if err := repo.Save(run); err != nil {
		logger.Warn().Err(err).Msg("Erro ao registrar a execução")
	}
}

func logStats(logger zerolog.Logger, rows []model.CategoryRow, path string) {
	categorias := map[string]struct{}{}
	subcategorias := map[string]struct{}{}
	for _, r := range rows {
		categorias[r.Categoria] = struct{}{}
		if r.Subcategoria != "" {
			subcategorias[r.Subcategoria] = struct{}{}
		}
	}
	logger.Info().
		Str("arquivo", path).
		Int("registros", len(rows)).
		Int("categorias_principais", len(categorias)).
		Int("subcategorias", len(subcategorias)).
		Msg("Dados salvos com sucesso no arquivo")
}
