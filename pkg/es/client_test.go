package es

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ai-solutions-go/internal/model"

	"github.com/elastic/go-elasticsearch/v8"
)

func newTestIndex(t *testing.T, handler http.HandlerFunc) *Index {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	client, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{srv.URL}})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return NewIndex(client, "site_content")
}

func TestSearch(t *testing.T) {
	var gotBody map[string]interface{}
	idx := newTestIndex(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/site_content/_search") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = io.WriteString(w, `{"hits":{"hits":[
			{"_score":2.5,"_source":{"doc_id":"service-1","kind":"service","item_id":1,"title":"AI Chatbots","body":"Conversational agents."}}
		]}}`)
	})

	hits, err := idx.Search(context.Background(), "chatbot", 5)
	if err != nil {
		t.Fatalf("Search err: %v", err)
	}
	if len(hits) != 1 || hits[0].Kind != model.KindService || hits[0].ItemID != 1 || hits[0].Score != 2.5 {
		t.Fatalf("unexpected hits %+v", hits)
	}
	if gotBody["size"].(float64) != 5 {
		t.Errorf("size not sent: %v", gotBody)
	}
}

func TestUpsertAndDelete(t *testing.T) {
	var methods []string
	idx := newTestIndex(t, func(w http.ResponseWriter, r *http.Request) {
		methods = append(methods, r.Method+" "+r.URL.Path)
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"result":"not_found"}`)
			return
		}
		_, _ = io.WriteString(w, `{"result":"created"}`)
	})

	if err := idx.Upsert(context.Background(), model.SearchDocument{DocID: "article-3", Kind: model.KindArticle, ItemID: 3}); err != nil {
		t.Fatalf("Upsert err: %v", err)
	}
	if err := idx.Delete(context.Background(), "article-3"); err != nil {
		t.Fatalf("Delete of missing document should succeed, got %v", err)
	}
	if len(methods) != 2 || methods[0] != "PUT /site_content/_doc/article-3" || methods[1] != "DELETE /site_content/_doc/article-3" {
		t.Fatalf("unexpected requests %v", methods)
	}
}
