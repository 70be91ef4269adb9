package model

import (
	"strconv"
	"time"
)

// Columns é o conjunto fixo de colunas de saída, na ordem dos sinks.
var Columns = []string{
	"categoria",
	"subcategoria",
	"3_nivel_categoria",
	"4_nivel_categoria",
	"5_nivel_categoria",
	"id_categoria",
	"imagem_categoria",
}

// CategoryRow é uma linha achatada da taxonomia: o nome de cada nível
// ancestral até o nó terminal, mais o id e a imagem do terminal. Níveis não
// alcançados ficam vazios.
type CategoryRow struct {
	Categoria       string
	Subcategoria    string
	TerceiroNivel   string
	QuartoNivel     string
	QuintoNivel     string
	IDCategoria     string
	ImagemCategoria string
}

// NewCategoryRow monta a linha a partir da cadeia de nomes raiz→terminal.
// id 0 vira campo vazio, seguindo o tratamento permissivo dos dados da API.
func NewCategoryRow(chain []string, id int64, image string) CategoryRow {
	var levels [5]string
	for i := 0; i < len(chain) && i < len(levels); i++ {
		levels[i] = chain[i]
	}

	idStr := ""
	if id != 0 {
		idStr = strconv.FormatInt(id, 10)
	}

	return CategoryRow{
		Categoria:       levels[0],
		Subcategoria:    levels[1],
		TerceiroNivel:   levels[2],
		QuartoNivel:     levels[3],
		QuintoNivel:     levels[4],
		IDCategoria:     idStr,
		ImagemCategoria: image,
	}
}

// Values returns the row's fields in Columns order.
func (r CategoryRow) Values() []string {
	return []string{
		r.Categoria,
		r.Subcategoria,
		r.TerceiroNivel,
		r.QuartoNivel,
		r.QuintoNivel,
		r.IDCategoria,
		r.ImagemCategoria,
	}
}

// Status possíveis de uma execução registrada.
const (
	RunStatusSuccess = "S"
	RunStatusFailure = "N"
)

// ExtractionRun registra uma execução do extrator, bem ou mal sucedida.
type ExtractionRun struct {
	ID         string
	StartedAt  time.Time
	FinishedAt time.Time
	TotalRows  int
	Status     string
}
