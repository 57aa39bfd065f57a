package services

import (
	"bufio"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"storeapi/models"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type esRequest struct {
	method string
	path   string
	body   string
}

// fakeElastic answers like an Elasticsearch node and records every request.
type fakeElastic struct {
	mu       sync.Mutex
	requests []esRequest
	status   int
	body     string
}

func (f *fakeElastic) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b, _ := io.ReadAll(r.Body)
	f.mu.Lock()
	f.requests = append(f.requests, esRequest{method: r.Method, path: r.URL.Path, body: string(b)})
	status, body := f.status, f.body
	f.mu.Unlock()

	w.Header().Set("X-Elastic-Product", "Elasticsearch")
	w.Header().Set("Content-Type", "application/json")
	if status == 0 {
		status = http.StatusOK
	}
	if body == "" {
		body = `{"result":"created","errors":false}`
	}
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func newElasticIndex(t *testing.T, fake *fakeElastic) *ElasticProductIndex {
	t.Helper()
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	client, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{srv.URL}})
	require.NoError(t, err)
	return NewElasticProductIndex(client, "")
}

func TestElasticProductIndexIndex(t *testing.T) {
	fake := &fakeElastic{}
	index := newElasticIndex(t, fake)
	p := models.Product{ID: uuid.New(), Title: "Ant Farm", Slug: "ant-farm", Price: decimal.RequireFromString("12.50")}

	require.NoError(t, index.Index(context.Background(), p))

	require.Len(t, fake.requests, 1)
	req := fake.requests[0]
	assert.Equal(t, http.MethodPut, req.method)
	assert.Equal(t, "/products/_doc/"+p.ID.String(), req.path)

	var doc productDocument
	require.NoError(t, json.Unmarshal([]byte(req.body), &doc))
	assert.Equal(t, "Ant Farm", doc.Title)
	assert.Equal(t, "12.5", doc.Price)
}

func TestElasticProductIndexErrors(t *testing.T) {
	fake := &fakeElastic{status: http.StatusBadRequest, body: `{"error":"mapper_parsing_exception"}`}
	index := newElasticIndex(t, fake)

	err := index.Index(context.Background(), models.Product{ID: uuid.New(), Title: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mapper_parsing_exception")
}

func TestElasticProductIndexRemove(t *testing.T) {
	id := uuid.New()

	fake := &fakeElastic{}
	require.NoError(t, newElasticIndex(t, fake).Remove(context.Background(), id))
	assert.Equal(t, http.MethodDelete, fake.requests[0].method)
	assert.Equal(t, "/products/_doc/"+id.String(), fake.requests[0].path)

	missing := &fakeElastic{status: http.StatusNotFound, body: `{"result":"not_found"}`}
	assert.NoError(t, newElasticIndex(t, missing).Remove(context.Background(), id))
}

func TestElasticProductIndexIndexAll(t *testing.T) {
	fake := &fakeElastic{}
	index := newElasticIndex(t, fake)
	products := []models.Product{
		{ID: uuid.New(), Title: "Ant Farm", Price: decimal.NewFromInt(25)},
		{ID: uuid.New(), Title: "Beetle Kit", Price: decimal.NewFromInt(30)},
	}

	require.NoError(t, index.IndexAll(context.Background(), nil))
	assert.Empty(t, fake.requests)

	require.NoError(t, index.IndexAll(context.Background(), products))
	require.Len(t, fake.requests, 1)
	assert.Equal(t, "/_bulk", fake.requests[0].path)

	var lines []string
	sc := bufio.NewScanner(strings.NewReader(fake.requests[0].body))
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], `"_id":"`+products[0].ID.String()+`"`)
	assert.Contains(t, lines[3], `"title":"Beetle Kit"`)

	rejected := &fakeElastic{body: `{"errors":true}`}
	assert.Error(t, newElasticIndex(t, rejected).IndexAll(context.Background(), products))
}
