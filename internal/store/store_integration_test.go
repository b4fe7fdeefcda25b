package store

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/salescoach/backend/internal/models"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	s, err := New(context.Background(), url)
	if err != nil {
		t.Fatalf("db connect: %v", err)
	}
	t.Cleanup(s.Close)
	if err := s.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	return s
}

func TestCustomerLifecycleIntegration(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	id, err := s.CreateCustomer(ctx, models.Customer{
		Name:        "김민수",
		Company:     "민수식당",
		Notes:       "명동 지점",
		CreatedAt:   "2025-01-10",
		LastContact: "2025-01-10",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := s.GetCustomer(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "김민수" || got.Company != "민수식당" {
		t.Fatalf("unexpected customer: %+v", got)
	}
	if got.Status != models.StatusLead {
		t.Fatalf("expected default status %q, got %q", models.StatusLead, got.Status)
	}

	status := models.StatusConsulting
	if err := s.UpdateCustomer(ctx, id, models.CustomerPatch{Status: &status}); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err = s.GetCustomer(ctx, id)
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if got.Status != models.StatusConsulting {
		t.Fatalf("status not patched: %q", got.Status)
	}
	if got.Company != "민수식당" {
		t.Fatalf("patch clobbered untouched field: %q", got.Company)
	}

	if err := s.ArchiveCustomer(ctx, id); err != nil {
		t.Fatalf("archive: %v", err)
	}
	if _, err := s.GetCustomer(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after archive, got %v", err)
	}
}

func TestScriptUseCountIntegration(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	id, err := s.CreateScript(ctx, models.Script{
		Title:    "테스트 스크립트",
		Category: "인사",
		Content:  "안녕하세요",
		IsActive: true,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer s.ArchiveScript(ctx, id)

	// Concurrent increments must not lose updates.
	const n = 8
	errc := make(chan error, n)
	for i := 0; i < n; i++ {
		go func() {
			errc <- s.IncrementScriptUseCount(ctx, id)
		}()
	}
	for i := 0; i < n; i++ {
		if err := <-errc; err != nil {
			t.Fatalf("increment: %v", err)
		}
	}

	scripts, err := s.ListScripts(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, sc := range scripts {
		if sc.ID == id {
			if sc.UseCount != n {
				t.Fatalf("expected use count %d, got %d", n, sc.UseCount)
			}
			return
		}
	}
	t.Fatalf("created script missing from list")
}

func TestListScriptsExcludesInactiveIntegration(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	id, err := s.CreateScript(ctx, models.Script{
		Title:    "비활성 스크립트",
		Category: "기타",
		Content:  "내용",
		IsActive: false,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer s.ArchiveScript(ctx, id)

	scripts, err := s.ListScripts(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, sc := range scripts {
		if sc.ID == id {
			t.Fatalf("inactive script returned by list")
		}
	}
}

func TestStagesOrderedIntegration(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	stages, err := s.ListStages(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for i := 1; i < len(stages); i++ {
		if stages[i-1].Order > stages[i].Order {
			t.Fatalf("stages out of order at %d: %d > %d", i, stages[i-1].Order, stages[i].Order)
		}
	}
}

func TestUpdateMissingRecordIntegration(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	name := "없는 고객"
	err := s.UpdateCustomer(ctx, "00000000-0000-0000-0000-000000000000", models.CustomerPatch{Name: &name})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
