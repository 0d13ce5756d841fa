package match

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/kailas-cloud/expertmatch/internal/domain"
)

// --- Mocks ---

type mockRecords struct {
	project    domain.Project
	projectErr error

	experts  []domain.Expert
	batchErr error
	lastIDs  []int64
}

func (m *mockRecords) GetProject(_ context.Context, _ int64) (domain.Project, error) {
	return m.project, m.projectErr
}

func (m *mockRecords) GetExpertsByIDs(_ context.Context, ids []int64) ([]domain.Expert, error) {
	m.lastIDs = ids
	return m.experts, m.batchErr
}

type mockIndex struct {
	hits  []domain.ExpertHit
	err   error
	lastK int
}

func (m *mockIndex) Query(_ context.Context, _ []float32, k int) ([]domain.ExpertHit, error) {
	m.lastK = k
	return m.hits, m.err
}

type mockEmbedder struct {
	vec      []float32
	err      error
	lastText string
}

func (m *mockEmbedder) Embed(_ context.Context, text string) (domain.EmbeddingResult, error) {
	m.lastText = text
	if m.err != nil {
		return domain.EmbeddingResult{}, m.err
	}
	return domain.EmbeddingResult{Embedding: m.vec}, nil
}

func testProject() domain.Project {
	return domain.Project{ID: 1, OrganizationName: "Org", Description: "project"}
}

// --- Tests ---

func TestMatch_RankFidelity(t *testing.T) {
	// The store returns Alice before Bob; the index ranks Bob first. The
	// result must follow the index rank.
	records := &mockRecords{
		project: testProject(),
		experts: []domain.Expert{
			{ID: 1, Name: "Alice"},
			{ID: 2, Name: "Bob"},
		},
	}
	index := &mockIndex{hits: []domain.ExpertHit{
		{ExpertID: 2, Score: -0.1},
		{ExpertID: 1, Score: -0.4},
	}}
	embed := &mockEmbedder{vec: []float32{0.1, 0.2}}
	svc := New(records, index, embed, zap.NewNop())

	result, err := svc.Match(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Experts) != 2 {
		t.Fatalf("got %d experts, want 2", len(result.Experts))
	}
	if result.Experts[0].Name != "Bob" || result.Experts[1].Name != "Alice" {
		t.Errorf("order = [%s, %s], want [Bob, Alice]",
			result.Experts[0].Name, result.Experts[1].Name)
	}
	if result.Project.ID != 1 {
		t.Errorf("project id = %d, want 1", result.Project.ID)
	}
}

func TestMatch_ProjectNotFound(t *testing.T) {
	records := &mockRecords{projectErr: domain.ErrProjectNotFound}
	svc := New(records, &mockIndex{}, &mockEmbedder{vec: []float32{1}}, zap.NewNop())

	_, err := svc.Match(context.Background(), 404)
	if !errors.Is(err, domain.ErrProjectNotFound) {
		t.Errorf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestMatch_IndexUnavailable(t *testing.T) {
	records := &mockRecords{project: testProject()}
	index := &mockIndex{err: domain.ErrIndexUnavailable}
	svc := New(records, index, &mockEmbedder{vec: []float32{1}}, zap.NewNop())

	result, err := svc.Match(context.Background(), 1)
	if !errors.Is(err, domain.ErrIndexUnavailable) {
		t.Fatalf("expected ErrIndexUnavailable, got %v", err)
	}
	if len(result.Experts) != 0 {
		t.Error("no expert list may be returned on index failure")
	}
}

func TestMatch_EmptyHitsIsValid(t *testing.T) {
	records := &mockRecords{project: testProject()}
	index := &mockIndex{hits: nil}
	svc := New(records, index, &mockEmbedder{vec: []float32{1}}, zap.NewNop())

	result, err := svc.Match(context.Background(), 1)
	if err != nil {
		t.Fatalf("zero matches must not be an error: %v", err)
	}
	if result.Experts == nil || len(result.Experts) != 0 {
		t.Errorf("experts = %v, want empty non-nil list", result.Experts)
	}
	if records.lastIDs != nil {
		t.Error("batch fetch should be skipped for zero hits")
	}
}

func TestMatch_DropsIDsMissingFromStore(t *testing.T) {
	records := &mockRecords{
		project: testProject(),
		experts: []domain.Expert{{ID: 1, Name: "Alice"}},
	}
	index := &mockIndex{hits: []domain.ExpertHit{
		{ExpertID: 7, Score: -0.1}, // stale index entry
		{ExpertID: 1, Score: -0.2},
	}}
	svc := New(records, index, &mockEmbedder{vec: []float32{1}}, zap.NewNop())

	result, err := svc.Match(context.Background(), 1)
	if err != nil {
		t.Fatalf("inconsistency must not fail the request: %v", err)
	}
	if len(result.Experts) != 1 || result.Experts[0].Name != "Alice" {
		t.Errorf("experts = %+v, want [Alice]", result.Experts)
	}
}

func TestMatch_EmbedsProjectText(t *testing.T) {
	records := &mockRecords{project: domain.Project{
		ID:             1,
		Description:    "build a ranking engine",
		Qualifications: "go experience",
	}}
	index := &mockIndex{}
	embed := &mockEmbedder{vec: []float32{1}}
	svc := New(records, index, embed, zap.NewNop())

	if _, err := svc.Match(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if embed.lastText != "build a ranking engine go experience" {
		t.Errorf("embedded text = %q", embed.lastText)
	}
}

func TestMatch_EmbedError(t *testing.T) {
	records := &mockRecords{project: testProject()}
	embed := &mockEmbedder{err: errors.New("provider down")}
	svc := New(records, &mockIndex{}, embed, zap.NewNop())

	if _, err := svc.Match(context.Background(), 1); err == nil {
		t.Fatal("expected error from embedding failure")
	}
}

func TestMatch_UsesConfiguredTopK(t *testing.T) {
	records := &mockRecords{project: testProject()}
	index := &mockIndex{}
	svc := New(records, index, &mockEmbedder{vec: []float32{1}}, zap.NewNop()).WithTopK(3)

	if _, err := svc.Match(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if index.lastK != 3 {
		t.Errorf("k = %d, want 3", index.lastK)
	}
}

func TestMatch_BatchFetchError(t *testing.T) {
	records := &mockRecords{
		project:  testProject(),
		batchErr: errors.New("db down"),
	}
	index := &mockIndex{hits: []domain.ExpertHit{{ExpertID: 1, Score: -0.5}}}
	svc := New(records, index, &mockEmbedder{vec: []float32{1}}, zap.NewNop())

	if _, err := svc.Match(context.Background(), 1); err == nil {
		t.Fatal("expected error from batch fetch failure")
	}
}
