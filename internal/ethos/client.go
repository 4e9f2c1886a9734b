package ethos

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"spidergraph/internal/domain"
)

const (
	// activityPageSize es el tamaño de pagina pedido al upstream.
	activityPageSize = 500
	// activityCap limita la acumulacion total; el upstream no es confiable
	// y no puede forzar crecimiento de memoria ni tormentas de requests.
	activityCap = 5000
)

// Client habla con la API de Ethos (search v1, activities v2).
type Client struct {
	v1BaseURL string
	v2BaseURL string
	client    *http.Client
	logger    *zap.Logger
}

// NewClient construye el cliente con timeouts explicitos por llamada.
func NewClient(v1BaseURL, v2BaseURL string, logger *zap.Logger) *Client {
	return &Client{
		v1BaseURL: strings.TrimRight(v1BaseURL, "/"),
		v2BaseURL: strings.TrimRight(v2BaseURL, "/"),
		client:    &http.Client{Timeout: 30 * time.Second},
		logger:    logger,
	}
}

// Search reenvia la query al search upstream y devuelve el JSON tal cual.
func (c *Client) Search(ctx context.Context, query, limit, offset string) (json.RawMessage, error) {
	searchURL := fmt.Sprintf("%s/search?query=%s&limit=%s&offset=%s",
		c.v1BaseURL, url.QueryEscape(query), url.QueryEscape(limit), url.QueryEscape(offset))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create search request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read search response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("ethos search: status=%d", resp.StatusCode)
	}

	return json.RawMessage(body), nil
}

// SearchProfiles parsea la respuesta del search en structs tipados.
// Se usa para resolver el display name en el preview.
func (c *Client) SearchProfiles(ctx context.Context, query string, limit int) ([]domain.SearchResult, error) {
	raw, err := c.Search(ctx, query, fmt.Sprintf("%d", limit), "0")
	if err != nil {
		return nil, err
	}
	var parsed domain.SearchResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse search response: %w", err)
	}
	if !parsed.OK {
		return nil, fmt.Errorf("ethos search: upstream not ok")
	}
	return parsed.Data.Values, nil
}

type activitiesRequest struct {
	Userkey           string   `json:"userkey"`
	Filter            []string `json:"filter"`
	ExcludeHistorical bool     `json:"excludeHistorical"`
	OrderBy           struct {
		Field     string `json:"field"`
		Direction string `json:"direction"`
	} `json:"orderBy"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// CollectActivities pagina el endpoint de actividades recibidas hasta que
// llega una pagina corta o se alcanza el tope de seguridad, y filtra a
// reviews y vouches. Orden tal como lo entrega el upstream (timestamp
// descendente por pagina, paginas concatenadas); no se reordena.
// Cualquier fallo de pagina aborta la coleccion completa.
func (c *Client) CollectActivities(ctx context.Context, userkey string) ([]domain.Activity, error) {
	var all []domain.Activity
	offset := 0

	for {
		page, err := c.fetchActivityPage(ctx, userkey, activityPageSize, offset)
		if err != nil {
			return nil, err
		}

		if c.logger != nil {
			c.logger.Debug("activities page",
				zap.String("userkey", userkey),
				zap.Int("offset", offset),
				zap.Int("received", len(page)),
			)
		}

		all = append(all, page...)

		// Pagina corta: no hay mas datos.
		if len(page) < activityPageSize {
			break
		}

		offset += activityPageSize
		if offset >= activityCap {
			if c.logger != nil {
				c.logger.Warn("activity cap reached", zap.String("userkey", userkey), zap.Int("collected", len(all)))
			}
			break
		}
	}

	filtered := make([]domain.Activity, 0, len(all))
	for _, a := range all {
		if a.Type == domain.ActivityKindReview || a.Type == domain.ActivityKindVouch {
			filtered = append(filtered, a)
		}
	}

	return filtered, nil
}

func (c *Client) fetchActivityPage(ctx context.Context, userkey string, limit, offset int) ([]domain.Activity, error) {
	reqBody := activitiesRequest{
		Userkey:           userkey,
		Filter:            []string{domain.ActivityKindReview, domain.ActivityKindVouch},
		ExcludeHistorical: false,
		Limit:             limit,
		Offset:            offset,
	}
	reqBody.OrderBy.Field = "timestamp"
	reqBody.OrderBy.Direction = "desc"

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal activities request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.v2BaseURL+"/activities/profile/received", bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("create activities request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "*/*")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("activities request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read activities response: %w", err)
	}

	if resp.StatusCode >= 400 {
		if c.logger != nil {
			c.logger.Error("ethos activities error", zap.Int("status", resp.StatusCode), zap.ByteString("body", respBody))
		}
		return nil, fmt.Errorf("ethos activities: status=%d", resp.StatusCode)
	}

	var page domain.ActivitiesPage
	if err := json.Unmarshal(respBody, &page); err != nil {
		return nil, fmt.Errorf("parse activities response: %w", err)
	}

	return page.Values, nil
}

// PageSize expone el tamaño de pagina para armar la respuesta HTTP.
func (c *Client) PageSize() int {
	return activityPageSize
}
