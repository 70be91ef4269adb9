package category_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopeecat/internal/category"
)

// fetchFromTree monta um FetchFunc sobre uma árvore estática em memória,
// registrando os parent ids consultados.
func fetchFromTree(tree map[int64][]category.Node, consultados *[]int64) category.FetchFunc {
	return func(_ context.Context, parentID int64) ([]category.Node, error) {
		if consultados != nil {
			*consultados = append(*consultados, parentID)
		}
		return tree[parentID], nil
	}
}

func TestFlattenCenarioBasico(t *testing.T) {
	// A (id=1) sem filhos; B (id=2) com um filho C (id=3).
	tree := map[int64][]category.Node{
		category.RootParentID: {{ID: 1, Name: "A"}, {ID: 2, Name: "B"}},
		2:                     {{ID: 3, Name: "C"}},
	}

	rows, err := category.Flatten(context.Background(), fetchFromTree(tree, nil))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "A", rows[0].Categoria)
	assert.Equal(t, "", rows[0].Subcategoria)
	assert.Equal(t, "1", rows[0].IDCategoria)

	assert.Equal(t, "B", rows[1].Categoria)
	assert.Equal(t, "C", rows[1].Subcategoria)
	assert.Equal(t, "", rows[1].TerceiroNivel)
	assert.Equal(t, "3", rows[1].IDCategoria)
}

func TestFlattenOrdemProfundidade(t *testing.T) {
	tree := map[int64][]category.Node{
		category.RootParentID: {{ID: 10, Name: "A"}, {ID: 20, Name: "B"}},
		10:                    {{ID: 11, Name: "A1"}, {ID: 12, Name: "A2"}},
		20:                    {{ID: 21, Name: "B1"}},
	}

	rows, err := category.Flatten(context.Background(), fetchFromTree(tree, nil))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// Percurso em profundidade, da esquerda para a direita.
	assert.Equal(t, "A1", rows[0].Subcategoria)
	assert.Equal(t, "A2", rows[1].Subcategoria)
	assert.Equal(t, "B", rows[2].Categoria)
	assert.Equal(t, "B1", rows[2].Subcategoria)
}

func TestFlattenLinhasIgualTerminais(t *testing.T) {
	// 2 raízes, uma com 3 folhas e outra folha direta: 4 terminais.
	tree := map[int64][]category.Node{
		category.RootParentID: {{ID: 1, Name: "X"}, {ID: 2, Name: "Y"}},
		1:                     {{ID: 3, Name: "X1"}, {ID: 4, Name: "X2"}, {ID: 5, Name: "X3"}},
	}

	rows, err := category.Flatten(context.Background(), fetchFromTree(tree, nil))
	require.NoError(t, err)
	assert.Len(t, rows, 4)
}

func TestFlattenLimiteDeProfundidade(t *testing.T) {
	// Cadeia de 6 nós aninhados: só os 5 primeiros níveis entram na linha e
	// os filhos do quinto nível nunca são consultados.
	tree := map[int64][]category.Node{
		category.RootParentID: {{ID: 1, Name: "N1"}},
		1:                     {{ID: 2, Name: "N2"}},
		2:                     {{ID: 3, Name: "N3"}},
		3:                     {{ID: 4, Name: "N4"}},
		4:                     {{ID: 5, Name: "N5", Image: "n5.png"}},
		5:                     {{ID: 6, Name: "N6"}},
	}

	var consultados []int64
	rows, err := category.Flatten(context.Background(), fetchFromTree(tree, &consultados))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	r := rows[0]
	assert.Equal(t, "N1", r.Categoria)
	assert.Equal(t, "N2", r.Subcategoria)
	assert.Equal(t, "N3", r.TerceiroNivel)
	assert.Equal(t, "N4", r.QuartoNivel)
	assert.Equal(t, "N5", r.QuintoNivel)
	assert.Equal(t, "5", r.IDCategoria)
	assert.Equal(t, "n5.png", r.ImagemCategoria)

	assert.NotContains(t, consultados, int64(5))
	assert.NotContains(t, consultados, int64(6))
}

func TestFlattenIdempotente(t *testing.T) {
	tree := map[int64][]category.Node{
		category.RootParentID: {{ID: 1, Name: "A"}, {ID: 2, Name: "B"}},
		2:                     {{ID: 3, Name: "C"}, {ID: 4, Name: "D"}},
	}

	primeira, err := category.Flatten(context.Background(), fetchFromTree(tree, nil))
	require.NoError(t, err)
	segunda, err := category.Flatten(context.Background(), fetchFromTree(tree, nil))
	require.NoError(t, err)

	assert.Equal(t, primeira, segunda)
}

func TestFlattenCamposVazios(t *testing.T) {
	// Nó sem nome e sem id: a linha sai com campos em branco, não é descartada.
	tree := map[int64][]category.Node{
		category.RootParentID: {{}, {ID: 2, Name: "B"}},
	}

	var consultados []int64
	rows, err := category.Flatten(context.Background(), fetchFromTree(tree, &consultados))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "", rows[0].Categoria)
	assert.Equal(t, "", rows[0].IDCategoria)
	// id 0 não pode ser usado como chave de busca de filhos.
	assert.Equal(t, []int64{category.RootParentID, 2}, consultados)
}

func TestFlattenPropagaErroDoFetch(t *testing.T) {
	errAPI := errors.New("API status 500 na página 1")
	fetch := func(_ context.Context, parentID int64) ([]category.Node, error) {
		if parentID == category.RootParentID {
			return []category.Node{{ID: 7, Name: "A"}}, nil
		}
		return nil, errAPI
	}

	rows, err := category.Flatten(context.Background(), fetch)
	require.ErrorIs(t, err, errAPI)
	assert.Nil(t, rows)
}

func TestFlattenArvoreVazia(t *testing.T) {
	rows, err := category.Flatten(context.Background(), fetchFromTree(nil, nil))
	require.NoError(t, err)
	assert.Empty(t, rows)
}
