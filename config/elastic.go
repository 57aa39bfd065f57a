package config

import (
	"log"
	"strings"

	"github.com/elastic/go-elasticsearch/v8"
)

var ElasticClient *elasticsearch.Client

// ConnectElastic builds the Elasticsearch client used for the product
// index. Without ELASTIC_ADDRESSES it returns nil and the index is disabled.
func ConnectElastic(cfg Config) (*elasticsearch.Client, error) {
	if len(cfg.ElasticAddresses) == 0 {
		log.Println("ELASTIC_ADDRESSES not set, product index disabled")
		return nil, nil
	}

	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: cfg.ElasticAddresses,
		Username:  cfg.ElasticUser,
		Password:  cfg.ElasticPassword,
	})
	if err != nil {
		return nil, err
	}

	res, err := es.Info()
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.IsError() {
		log.Printf("Warning: Elasticsearch info returned %s", res.Status())
	}

	log.Println("Connected to Elasticsearch:", strings.Join(cfg.ElasticAddresses, ","))
	return es, nil
}
