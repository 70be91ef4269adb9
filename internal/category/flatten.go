package category

import (
	"context"

	"shopeecat/internal/model"
)

// MaxDepth é o nível mais fundo rastreado na taxonomia do marketplace.
const MaxDepth = 5

// RootParentID is the sentinel passed to a FetchFunc to list the top level.
const RootParentID int64 = 0

// Node é uma entrada da taxonomia em um nível qualquer. Os filhos nunca vêm
// embutidos: são descobertos via FetchFunc, um nível por chamada.
type Node struct {
	ID    int64
	Name  string
	Image string
}

// FetchFunc lists the direct children of a category id.
type FetchFunc func(ctx context.Context, parentID int64) ([]Node, error)

// Flatten percorre a árvore de categorias via fetch e devolve uma linha por
// caminho raiz→nó terminal, na ordem de um percurso em profundidade da
// esquerda para a direita. Um nó é terminal quando não tem filhos ou está no
// nível MaxDepth; abaixo desse nível nada é sequer consultado. Nós com id 0
// também são terminais, já que não há chave para buscar os filhos.
//
// A travessia usa uma pilha explícita em vez de recursão. Erros do fetch
// sobem intactos; não há retry aqui.
func Flatten(ctx context.Context, fetch FetchFunc) ([]model.CategoryRow, error) {
	roots, err := fetch(ctx, RootParentID)
	if err != nil {
		return nil, err
	}

	type frame struct {
		node  Node
		chain []string
		depth int
	}

	stack := make([]frame, 0, len(roots))
	push := func(nodes []Node, chain []string, depth int) {
		// Empilha em ordem inversa para preservar a ordem da API no percurso.
		for i := len(nodes) - 1; i >= 0; i-- {
			stack = append(stack, frame{node: nodes[i], chain: chain, depth: depth})
		}
	}
	push(roots, nil, 1)

	var rows []model.CategoryRow
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		chain := make([]string, len(f.chain), len(f.chain)+1)
		copy(chain, f.chain)
		chain = append(chain, f.node.Name)

		var children []Node
		if f.depth < MaxDepth && f.node.ID != 0 {
			children, err = fetch(ctx, f.node.ID)
			if err != nil {
				return nil, err
			}
		}

		if len(children) == 0 {
			rows = append(rows, model.NewCategoryRow(chain, f.node.ID, f.node.Image))
			continue
		}
		push(children, chain, f.depth+1)
	}

	return rows, nil
}
