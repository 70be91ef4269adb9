package shopee

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"time"

	"shopeecat/internal/observability"
)

const (
	defaultBaseURL  = "https://seller.shopee.com.br/help/api/v3/global_category/list/"
	defaultGuideURL = "https://seller.shopee.com.br/edu/category-guide/"

	// Headers para simular um navegador real
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/121.0.0.0 Safari/537.36"

	defaultPageSize = 100
)

// Client consulta a API interna de categorias do seller center.
type Client struct {
	BaseURL   string
	GuideURL  string
	PageSize  int
	PageDelay time.Duration

	httpClient *http.Client
}

func NewClient(pageSize int, pageDelay time.Duration) *Client {
	// Tamanho de página precisa ser positivo: ele é divisor no cálculo do
	// total de páginas.
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	// O jar guarda os cookies de sessão obtidos no Bootstrap.
	jar, _ := cookiejar.New(nil)
	return &Client{
		BaseURL:   defaultBaseURL,
		GuideURL:  defaultGuideURL,
		PageSize:  pageSize,
		PageDelay: pageDelay,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
			Jar:     jar,
		},
	}
}

// ListChildren busca todas as categorias filhas diretas de parentID,
// percorrendo a paginação da API. parentID 0 retorna o nível raiz.
func (c *Client) ListChildren(ctx context.Context, parentID int64) ([]GlobalCategory, error) {
	var cats []GlobalCategory

	page := 1
	totalPages := 1
	for page <= totalPages {
		data, err := c.fetchPage(ctx, parentID, page)
		if err != nil {
			observability.ErrosAPITotal.Inc()
			return nil, err
		}
		observability.PaginasAPITotal.Inc()

		cats = append(cats, data.GlobalCats...)
		totalPages = (data.Total + c.PageSize - 1) / c.PageSize
		page++

		// Pequeno delay entre requisições para não sobrecarregar a API
		if page <= totalPages && c.PageDelay > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.PageDelay):
			}
		}
	}

	return cats, nil
}

func (c *Client) fetchPage(ctx context.Context, parentID int64, page int) (*ListData, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", c.BaseURL, err)
	}

	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(c.PageSize))
	if parentID != 0 {
		q.Set("parent_id", strconv.FormatInt(parentID, 10))
	}
	req.URL.RawQuery = q.Encode()
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch page %d: %w", page, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API status %d na página %d", resp.StatusCode, page)
	}

	var result ListResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode page %d: %w", page, err)
	}
	if result.Data == nil || result.Data.GlobalCats == nil {
		return nil, fmt.Errorf("estrutura da API diferente do esperado na página %d", page)
	}

	return result.Data, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json, text/plain, */*")
	req.Header.Set("Accept-Language", "pt-BR,pt;q=0.9,en-US;q=0.8,en;q=0.7")
	req.Header.Set("Referer", c.GuideURL)
	req.Header.Set("Origin", "https://seller.shopee.com.br")
}
