package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL)
}

func TestGetListQueryParams(t *testing.T) {
	var gotQuery map[string]string
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		assert.Equal(t, "/api/subjects", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{"data": []any{}})
	})

	_, err := c.GetList(context.Background(), "subjects", ListOptions{
		Page:    2,
		Limit:   25,
		Filters: map[string]string{"search": "calc", "department": "Math", "empty": "  "},
	})
	assert.NoError(t, err)
	assert.Equal(t, "2", gotQuery["page"])
	assert.Equal(t, "25", gotQuery["limit"])
	assert.Equal(t, "calc", gotQuery["search"])
	assert.Equal(t, "Math", gotQuery["department"])
	assert.NotContains(t, gotQuery, "empty", "filter kosong tidak ikut terkirim")
}

func TestGetListEnvelopes(t *testing.T) {
	tests := []struct {
		name      string
		payload   string
		wantTotal int64
		wantLen   int
	}{
		{
			name:      "nested pagination block",
			payload:   `{"data":[{"id":1},{"id":2}],"pagination":{"page":1,"limit":10,"total":42,"totalPages":5}}`,
			wantTotal: 42,
			wantLen:   2,
		},
		{
			name:      "flat subjects envelope",
			payload:   `{"data":[{"id":1}],"limit":10,"total":7,"totalPages":1}`,
			wantTotal: 7,
			wantLen:   1,
		},
		{
			name:      "missing pagination falls back to len(data)",
			payload:   `{"data":[{"id":1},{"id":2},{"id":3}]}`,
			wantTotal: 3,
			wantLen:   3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.payload))
			})
			got, err := c.GetList(context.Background(), "subjects", ListOptions{})
			assert.NoError(t, err)
			assert.Equal(t, tt.wantTotal, got.Total)
			assert.Len(t, got.Data, tt.wantLen)
		})
	}
}

func TestGetListPromotesServerError(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Invalid class id"}`))
	})

	_, err := c.GetList(context.Background(), "classes", ListOptions{})
	var httpErr *HTTPError
	assert.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.StatusCode)
	assert.Equal(t, "Invalid class id", httpErr.Message)
}

func TestGetListErrorWithoutMessageBody(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`not json`))
	})

	_, err := c.GetList(context.Background(), "classes", ListOptions{})
	var httpErr *HTTPError
	assert.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.StatusCode)
	assert.Equal(t, "Request failed", httpErr.Message)
}

func TestCreateUnwrapsData(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/classes", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Linear Algebra A", body["name"])

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{"id":17}}`))
	})

	raw, err := c.Create(context.Background(), "classes", map[string]any{"name": "Linear Algebra A"})
	assert.NoError(t, err)

	var created struct {
		ID int `json:"id"`
	}
	assert.NoError(t, json.Unmarshal(raw, &created))
	assert.Equal(t, 17, created.ID)
}
