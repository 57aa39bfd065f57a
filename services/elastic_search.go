package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"storeapi/models"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/elastic/go-elasticsearch/v8/esutil"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

const DefaultProductIndex = "products"

// ProductIndex mirrors the catalog into a search engine. Catalog search
// itself always runs against the database.
type ProductIndex interface {
	Index(ctx context.Context, product models.Product) error
	Remove(ctx context.Context, id uuid.UUID) error
	IndexAll(ctx context.Context, products []models.Product) error
}

// ElasticProductIndex keeps one Elasticsearch document per product.
type ElasticProductIndex struct {
	es    *elasticsearch.Client
	index string
}

func NewElasticProductIndex(es *elasticsearch.Client, index string) *ElasticProductIndex {
	if index == "" {
		index = DefaultProductIndex
	}
	return &ElasticProductIndex{es: es, index: index}
}

type productDocument struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Slug        string `json:"slug"`
	Price       string `json:"price"`
}

func toProductDocument(p models.Product) productDocument {
	return productDocument{
		ID:          p.ID.String(),
		Title:       p.Title,
		Description: p.Description,
		Slug:        p.Slug,
		Price:       p.Price.String(),
	}
}

func (x *ElasticProductIndex) Index(ctx context.Context, product models.Product) error {
	res, err := x.es.Index(x.index,
		esutil.NewJSONReader(toProductDocument(product)),
		x.es.Index.WithDocumentID(product.ID.String()),
		x.es.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("indexing product %s: %w", product.ID, err)
	}
	return checkResponse(res, "indexing product "+product.ID.String())
}

// Remove deletes the product document; a missing document is not an error.
func (x *ElasticProductIndex) Remove(ctx context.Context, id uuid.UUID) error {
	res, err := x.es.Delete(x.index, id.String(), x.es.Delete.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("removing product %s: %w", id, err)
	}
	if res.StatusCode == 404 {
		res.Body.Close()
		return nil
	}
	return checkResponse(res, "removing product "+id.String())
}

// IndexAll sends every product in one bulk request.
func (x *ElasticProductIndex) IndexAll(ctx context.Context, products []models.Product) error {
	if len(products) == 0 {
		return nil
	}

	var buf bytes.Buffer
	for _, p := range products {
		meta := map[string]map[string]string{"index": {"_index": x.index, "_id": p.ID.String()}}
		for _, line := range []interface{}{meta, toProductDocument(p)} {
			b, err := json.Marshal(line)
			if err != nil {
				return err
			}
			buf.Write(b)
			buf.WriteByte('\n')
		}
	}

	res, err := x.es.Bulk(&buf, x.es.Bulk.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("bulk indexing products: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("bulk indexing products: %s", res.Status())
	}

	var body struct {
		Errors bool `json:"errors"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return err
	}
	if body.Errors {
		return fmt.Errorf("bulk indexing products: some documents were rejected")
	}
	return nil
}

func checkResponse(res *esapi.Response, action string) error {
	defer res.Body.Close()
	if !res.IsError() {
		return nil
	}
	msg, _ := io.ReadAll(io.LimitReader(res.Body, 512))
	return fmt.Errorf("%s: %s %s", action, res.Status(), strings.TrimSpace(string(msg)))
}
