// Package client adalah data provider untuk API classroom:
// menerjemahkan operasi list/create abstrak menjadi HTTP call
// dengan konvensi query param & envelope yang sama dengan server.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// HTTPError membawa pesan server + status code untuk ditampilkan UI.
type HTTPError struct {
	Message    string
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

type ListOptions struct {
	Page    int
	Limit   int
	Filters map[string]string // key filter spesifik resource: search, department, subject, teacher, role
}

type ListResult struct {
	Data  []json.RawMessage
	Total int64
}

// listEnvelope menoleransi dua bentuk balasan server:
// {data, pagination:{total,...}} dan {data, limit, total, totalPages}.
type listEnvelope struct {
	Data       []json.RawMessage `json:"data"`
	Pagination *struct {
		Total int64 `json:"total"`
	} `json:"pagination"`
	Total *int64 `json:"total"`
}

type createEnvelope struct {
	Data json.RawMessage `json:"data"`
}

type errorEnvelope struct {
	Message string `json:"message"`
}

// GetList → GET /api/<resource>?page=&limit=&<filters>.
// Blok pagination boleh absen: total jatuh ke len(data).
func (c *Client) GetList(ctx context.Context, resource string, opts ListOptions) (ListResult, error) {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit < 1 {
		opts.Limit = 10
	}

	q := url.Values{}
	q.Set("page", strconv.Itoa(opts.Page))
	q.Set("limit", strconv.Itoa(opts.Limit))
	for k, v := range opts.Filters {
		if strings.TrimSpace(v) != "" {
			q.Set(k, v)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/api/"+resource+"?"+q.Encode(), nil)
	if err != nil {
		return ListResult{}, err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return ListResult{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return ListResult{}, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return ListResult{}, buildHTTPError(resp.StatusCode, body)
	}

	var env listEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return ListResult{}, err
	}

	out := ListResult{Data: env.Data}
	switch {
	case env.Pagination != nil:
		out.Total = env.Pagination.Total
	case env.Total != nil:
		out.Total = *env.Total
	default:
		out.Total = int64(len(env.Data))
	}
	return out, nil
}

// Create → POST /api/<resource>, unwrap field "data".
func (c *Client) Create(ctx context.Context, resource string, payload any) (json.RawMessage, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/"+resource, bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, buildHTTPError(resp.StatusCode, body)
	}

	var env createEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// buildHTTPError mempromosikan balasan non-2xx jadi error terstruktur.
func buildHTTPError(status int, body []byte) *HTTPError {
	msg := "Request failed"
	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err == nil && strings.TrimSpace(env.Message) != "" {
		msg = env.Message
	}
	return &HTTPError{Message: msg, StatusCode: status}
}
