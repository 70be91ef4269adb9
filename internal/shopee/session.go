package shopee

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"
)

// Bootstrap visita a página do guia de categorias para obter os cookies de
// sessão usados pela API. O chamador decide se a falha é fatal; a API costuma
// responder mesmo sem sessão.
func (c *Client) Bootstrap(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.GuideURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request for %s: %w", c.GuideURL, err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", c.GuideURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("guia de categorias respondeu status %d", resp.StatusCode)
	}

	// Confere que a resposta é mesmo a página do guia antes de confiar nos
	// cookies que vieram com ela.
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to parse guide page: %w", err)
	}
	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		return fmt.Errorf("página do guia sem título, resposta inesperada")
	}

	log.Info().Str("titulo", title).Msg("Cookies de sessão obtidos com sucesso")
	return nil
}
