package pipeline

import (
	"context"
	"errors"
	"testing"

	"ai-solutions-go/internal/model"
	"ai-solutions-go/internal/repository"
	"ai-solutions-go/pkg/database"
	"ai-solutions-go/pkg/tasks"
)

type fakeIndex struct {
	docs    map[string]model.SearchDocument
	deleted []string
	err     error
}

func (f *fakeIndex) Upsert(_ context.Context, doc model.SearchDocument) error {
	if f.err != nil {
		return f.err
	}
	if f.docs == nil {
		f.docs = map[string]model.SearchDocument{}
	}
	f.docs[doc.DocID] = doc
	return nil
}

func (f *fakeIndex) Delete(_ context.Context, docID string) error {
	f.deleted = append(f.deleted, docID)
	delete(f.docs, docID)
	return f.err
}

type fakeNotifications struct {
	counts map[string]int64
}

func (f *fakeNotifications) Increment(_ context.Context, kind string) (int64, error) {
	if f.counts == nil {
		f.counts = map[string]int64{}
	}
	f.counts[kind]++
	return f.counts[kind], nil
}

func (f *fakeNotifications) Counters(context.Context) (map[string]int64, error) { return f.counts, nil }

func (f *fakeNotifications) Reset(_ context.Context, kind string) error {
	delete(f.counts, kind)
	return nil
}

type fixture struct {
	proc     *Processor
	index    *fakeIndex
	notes    *fakeNotifications
	services repository.ServiceRepository
	articles repository.ArticleRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := database.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	f := &fixture{
		index:    &fakeIndex{},
		notes:    &fakeNotifications{},
		services: repository.NewServiceRepository(db),
		articles: repository.NewArticleRepository(db),
	}
	f.proc = NewProcessor(f.index, f.notes, f.services, repository.NewProjectRepository(db), f.articles, repository.NewEventRepository(db))
	return f
}

func TestProcessIndexesService(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	svc := &model.Service{Title: "AI Chatbots", ShortDescription: "Conversational agents.", LongDescription: "Bots that talk.", KeyBenefits: []string{"24/7"}}
	if err := f.services.Create(ctx, svc); err != nil {
		t.Fatal(err)
	}

	if err := f.proc.Process(ctx, tasks.ContentChanged(model.KindService, svc.ID, tasks.ActionUpsert)); err != nil {
		t.Fatalf("Process err: %v", err)
	}
	doc, ok := f.index.docs[DocID(model.KindService, svc.ID)]
	if !ok {
		t.Fatal("service not indexed")
	}
	if doc.Title != "AI Chatbots" || doc.Body != "Conversational agents.\nBots that talk.\n24/7" {
		t.Errorf("unexpected document %+v", doc)
	}
}

func TestProcessDeleteAndMissingItem(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if err := f.proc.Process(ctx, tasks.ContentChanged(model.KindArticle, 9, tasks.ActionDelete)); err != nil {
		t.Fatalf("Process delete err: %v", err)
	}
	if err := f.proc.Process(ctx, tasks.ContentChanged(model.KindArticle, 10, tasks.ActionUpsert)); err != nil {
		t.Fatalf("Process upsert of missing item err: %v", err)
	}
	want := []string{"article-9", "article-10"}
	if len(f.index.deleted) != 2 || f.index.deleted[0] != want[0] || f.index.deleted[1] != want[1] {
		t.Fatalf("expected deletes %v, got %v", want, f.index.deleted)
	}
}

func TestProcessSkipsUnindexedKinds(t *testing.T) {
	f := newFixture(t)
	if err := f.proc.Process(context.Background(), tasks.ContentChanged(model.KindGallery, 1, tasks.ActionUpsert)); err != nil {
		t.Fatalf("Process err: %v", err)
	}
	if len(f.index.docs) != 0 || len(f.index.deleted) != 0 {
		t.Fatal("gallery images should not touch the index")
	}
}

func TestProcessCountsSubmissions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if err := f.proc.Process(ctx, tasks.SubmissionReceived(model.KindContact, "1")); err != nil {
			t.Fatalf("Process err: %v", err)
		}
	}
	if f.notes.counts[model.KindContact] != 2 {
		t.Fatalf("expected 2 unseen contacts, got %v", f.notes.counts)
	}
}

func TestProcessPropagatesIndexFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := &model.Article{Title: "Automation", Excerpt: "Where AI is heading.", Content: "Long form content here."}
	if err := f.articles.Create(ctx, a); err != nil {
		t.Fatal(err)
	}
	f.index.err = errors.New("cluster red")
	if err := f.proc.Process(ctx, tasks.ContentChanged(model.KindArticle, a.ID, tasks.ActionUpsert)); err == nil {
		t.Fatal("expected index failure to propagate so the event is retried")
	}
}
