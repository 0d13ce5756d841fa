package reindex

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/expertmatch/internal/domain"
)

// --- Mocks ---

type mockRecords struct {
	expert domain.Expert
	err    error
}

func (m *mockRecords) GetExpert(_ context.Context, _ int64) (domain.Expert, error) {
	return m.expert, m.err
}

type mockIndex struct {
	mu          sync.Mutex
	upsertCalls int
	failFirst   int // fail this many upserts before succeeding
	upsertErr   error
	lastID      int64
	lastVector  []float32

	deleted chan int64
	done    chan struct{}
}

func (m *mockIndex) Upsert(_ context.Context, expertID int64, vector []float32) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.upsertCalls++
	m.lastID = expertID
	m.lastVector = vector

	if m.done != nil && m.upsertCalls == 1 {
		defer close(m.done)
	}
	if m.upsertCalls <= m.failFirst {
		return errors.New("transient index failure")
	}
	return m.upsertErr
}

func (m *mockIndex) Delete(_ context.Context, expertID int64) error {
	if m.deleted != nil {
		m.deleted <- expertID
	}
	return nil
}

func (m *mockIndex) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.upsertCalls
}

type mockEmbedder struct {
	vec      []float32
	lastText string
}

func (m *mockEmbedder) Embed(_ context.Context, text string) (domain.EmbeddingResult, error) {
	m.lastText = text
	return domain.EmbeddingResult{Embedding: m.vec}, nil
}

func newTestReindexer(t *testing.T, records Records, index Index, embed Embedder, opts ...Option) *Reindexer {
	t.Helper()
	r, err := New(records, index, embed, 2, zap.NewNop(), opts...)
	if err != nil {
		t.Fatalf("new reindexer: %v", err)
	}
	t.Cleanup(r.Close)
	return r
}

// --- Tests ---

func TestReindex_UpsertsEmbeddedMatchText(t *testing.T) {
	records := &mockRecords{expert: domain.Expert{
		ID:        5,
		Biography: "researcher",
		Publications: []domain.Publication{
			{Title: "Paper"},
		},
	}}
	index := &mockIndex{}
	embed := &mockEmbedder{vec: []float32{0.1, 0.9}}
	r := newTestReindexer(t, records, index, embed)

	if err := r.Reindex(context.Background(), 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if embed.lastText != "researcher Paper" {
		t.Errorf("embedded text = %q", embed.lastText)
	}
	if index.lastID != 5 {
		t.Errorf("upserted id = %d, want 5", index.lastID)
	}
	if len(index.lastVector) != 2 {
		t.Errorf("vector = %v", index.lastVector)
	}
}

func TestReindex_RetriesTransientFailures(t *testing.T) {
	records := &mockRecords{expert: domain.Expert{ID: 1}}
	index := &mockIndex{failFirst: 2}
	r := newTestReindexer(t, records, index, &mockEmbedder{vec: []float32{1}},
		WithMaxAttempts(3))

	if err := r.Reindex(context.Background(), 1); err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
	if index.calls() != 3 {
		t.Errorf("upsert calls = %d, want 3", index.calls())
	}
}

func TestReindex_GivesUpAfterMaxAttempts(t *testing.T) {
	records := &mockRecords{expert: domain.Expert{ID: 1}}
	index := &mockIndex{upsertErr: errors.New("index down")}
	r := newTestReindexer(t, records, index, &mockEmbedder{vec: []float32{1}},
		WithMaxAttempts(2))

	if err := r.Reindex(context.Background(), 1); err == nil {
		t.Fatal("expected error after exhausting attempts")
	}
	if index.calls() != 2 {
		t.Errorf("upsert calls = %d, want 2", index.calls())
	}
}

func TestReindex_ExpertFetchError(t *testing.T) {
	records := &mockRecords{err: domain.ErrExpertNotFound}
	index := &mockIndex{}
	r := newTestReindexer(t, records, index, &mockEmbedder{vec: []float32{1}})

	if err := r.Reindex(context.Background(), 1); !errors.Is(err, domain.ErrExpertNotFound) {
		t.Errorf("expected ErrExpertNotFound, got %v", err)
	}
	if index.calls() != 0 {
		t.Error("upsert should not run when the expert is missing")
	}
}

func TestEnqueue_RunsAsyncAndSwallowsFailure(t *testing.T) {
	records := &mockRecords{expert: domain.Expert{ID: 9}}
	index := &mockIndex{upsertErr: errors.New("index down"), done: make(chan struct{})}
	r := newTestReindexer(t, records, index, &mockEmbedder{vec: []float32{1}},
		WithMaxAttempts(1))

	// Must not block or surface the failure.
	r.Enqueue(9)

	select {
	case <-index.done:
	case <-time.After(2 * time.Second):
		t.Fatal("reindex job never ran")
	}
}

func TestRemove_DeletesVector(t *testing.T) {
	records := &mockRecords{}
	index := &mockIndex{deleted: make(chan int64, 1)}
	r := newTestReindexer(t, records, index, &mockEmbedder{vec: []float32{1}})

	r.Remove(4)

	select {
	case id := <-index.deleted:
		if id != 4 {
			t.Errorf("deleted id = %d, want 4", id)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("delete job never ran")
	}
}
