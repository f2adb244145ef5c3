// Package es keeps the site search index in Elasticsearch.
package es

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"ai-solutions-go/internal/config"
	"ai-solutions-go/internal/model"
	"ai-solutions-go/pkg/log"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
)

// ESClient is the shared client set by InitES.
var ESClient *elasticsearch.Client

const indexMapping = `{
	"mappings": {
		"properties": {
			"doc_id":    { "type": "keyword" },
			"kind":      { "type": "keyword" },
			"item_id":   { "type": "long" },
			"title":     { "type": "text" },
			"body":      { "type": "text" },
			"image_url": { "type": "keyword", "index": false }
		}
	}
}`

// InitES creates ESClient and the search index when it is missing.
func InitES(esCfg config.ElasticsearchConfig) error {
	cfg := elasticsearch.Config{
		Addresses: []string{esCfg.Addresses},
		Username:  esCfg.Username,
		Password:  esCfg.Password,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		},
	}
	client, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return err
	}
	ESClient = client
	return createIndexIfNotExists(client, esCfg.IndexName)
}

func createIndexIfNotExists(client *elasticsearch.Client, indexName string) error {
	res, err := client.Indices.Exists([]string{indexName})
	if err != nil {
		return fmt.Errorf("check index %q: %w", indexName, err)
	}
	res.Body.Close()
	if res.StatusCode == http.StatusOK {
		log.Infof("index '%s' already exists", indexName)
		return nil
	}
	if res.StatusCode != http.StatusNotFound {
		return fmt.Errorf("unexpected status %d checking index %q", res.StatusCode, indexName)
	}

	res, err = client.Indices.Create(indexName, client.Indices.Create.WithBody(strings.NewReader(indexMapping)))
	if err != nil {
		return fmt.Errorf("create index %q: %w", indexName, err)
	}
	defer res.Body.Close()
	if res.IsError() {
		log.Errorf("elasticsearch rejected index creation: %s", res.String())
		return errors.New("elasticsearch returned an error creating the index")
	}
	log.Infof("index '%s' created", indexName)
	return nil
}

// Index reads and writes one search index.
type Index struct {
	client *elasticsearch.Client
	name   string
}

// NewIndex binds client to the index called name.
func NewIndex(client *elasticsearch.Client, name string) *Index {
	return &Index{client: client, name: name}
}

// Upsert indexes doc under its DocID, replacing any previous version.
func (i *Index) Upsert(ctx context.Context, doc model.SearchDocument) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	req := esapi.IndexRequest{
		Index:      i.name,
		DocumentID: doc.DocID,
		Body:       bytes.NewReader(body),
		Refresh:    "true",
	}
	res, err := req.Do(ctx, i.client)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.IsError() {
		log.Errorf("failed to index %s: %s", doc.DocID, res.String())
		return fmt.Errorf("index document %s: %s", doc.DocID, res.Status())
	}
	return nil
}

// Delete removes the document. A missing document is not an error.
func (i *Index) Delete(ctx context.Context, docID string) error {
	req := esapi.DeleteRequest{Index: i.name, DocumentID: docID, Refresh: "true"}
	res, err := req.Do(ctx, i.client)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.IsError() && res.StatusCode != http.StatusNotFound {
		return fmt.Errorf("delete document %s: %s", docID, res.Status())
	}
	return nil
}

type searchResponse struct {
	Hits struct {
		Hits []struct {
			Score  float64              `json:"_score"`
			Source model.SearchDocument `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

// Search runs a multi_match query over title and body, title weighted double.
func (i *Index) Search(ctx context.Context, query string, size int) ([]model.SearchHit, error) {
	body, err := json.Marshal(buildSearchQuery(query, size))
	if err != nil {
		return nil, err
	}
	res, err := i.client.Search(
		i.client.Search.WithContext(ctx),
		i.client.Search.WithIndex(i.name),
		i.client.Search.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, fmt.Errorf("search: %s", res.Status())
	}
	return decodeHits(res.Body)
}

func buildSearchQuery(query string, size int) map[string]interface{} {
	return map[string]interface{}{
		"size": size,
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  query,
				"fields": []string{"title^2", "body"},
			},
		},
	}
}

func decodeHits(r io.Reader) ([]model.SearchHit, error) {
	var sr searchResponse
	if err := json.NewDecoder(r).Decode(&sr); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	hits := make([]model.SearchHit, 0, len(sr.Hits.Hits))
	for _, h := range sr.Hits.Hits {
		hits = append(hits, model.SearchHit{
			Kind:   h.Source.Kind,
			ItemID: h.Source.ItemID,
			Title:  h.Source.Title,
			Body:   h.Source.Body,
			Score:  h.Score,
		})
	}
	return hits, nil
}
