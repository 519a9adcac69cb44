package store

import (
	"context"
	"testing"

	"github.com/teampath/learnhub-backend/internal/kv"
	"github.com/teampath/learnhub-backend/internal/logger"
	"github.com/teampath/learnhub-backend/internal/types"
)

func newTestModuleStore(t *testing.T) ModuleStore {
	t.Helper()
	return NewModuleStore(kv.NewMemory(), logger.NewNop())
}

func mod(id string, progress int) types.LearningModule {
	return types.LearningModule{
		ID:       id,
		Title:    "Module " + id,
		Type:     types.ModuleTypeVideo,
		Progress: progress,
		Tags:     []string{},
	}
}

func TestLoadAbsent(t *testing.T) {
	ms := newTestModuleStore(t)
	ctx := context.Background()

	if modules, ok := ms.Load(ctx, "emp-001"); ok || modules != nil {
		t.Fatalf("expected absent collection, got ok=%v modules=%v", ok, modules)
	}
	if _, ok := ms.Load(ctx, ""); ok {
		t.Fatal("expected absent collection for missing user id")
	}
}

func TestAddIsIdempotent(t *testing.T) {
	ms := newTestModuleStore(t)
	ctx := context.Background()

	first := mod("mod-001", 30)
	if err := ms.Add(ctx, "emp-001", first); err != nil {
		t.Fatal(err)
	}
	duplicate := mod("mod-001", 99)
	if err := ms.Add(ctx, "emp-001", duplicate); err != nil {
		t.Fatal(err)
	}

	modules, ok := ms.Load(ctx, "emp-001")
	if !ok {
		t.Fatal("expected initialized collection")
	}
	if len(modules) != 1 {
		t.Fatalf("expected exactly one entry, got %d", len(modules))
	}
	if modules[0].Progress != 30 {
		t.Fatalf("duplicate add should not change content, got progress=%d", modules[0].Progress)
	}
}

func TestAddPrepends(t *testing.T) {
	ms := newTestModuleStore(t)
	ctx := context.Background()

	_ = ms.Add(ctx, "emp-001", mod("mod-001", 0))
	_ = ms.Add(ctx, "emp-001", mod("mod-002", 0))

	modules, _ := ms.Load(ctx, "emp-001")
	if modules[0].ID != "mod-002" || modules[1].ID != "mod-001" {
		t.Fatalf("expected newest first, got %s, %s", modules[0].ID, modules[1].ID)
	}
}

func TestUpsert(t *testing.T) {
	ms := newTestModuleStore(t)
	ctx := context.Background()

	_ = ms.Add(ctx, "emp-001", mod("mod-001", 10))

	updated := mod("mod-001", 55)
	updated.Title = "Renamed"
	if err := ms.Upsert(ctx, "emp-001", updated); err != nil {
		t.Fatal(err)
	}

	modules, _ := ms.Load(ctx, "emp-001")
	if len(modules) != 1 {
		t.Fatalf("expected one entry, got %d", len(modules))
	}
	if modules[0].Title != "Renamed" || modules[0].Progress != 55 {
		t.Fatalf("expected replaced entry, got %+v", modules[0])
	}

	if err := ms.Upsert(ctx, "emp-001", mod("mod-002", 0)); err != nil {
		t.Fatal(err)
	}
	modules, _ = ms.Load(ctx, "emp-001")
	if len(modules) != 2 || modules[0].ID != "mod-002" {
		t.Fatalf("expected new entry prepended, got %+v", modules)
	}
}

func TestUpdateProgress(t *testing.T) {
	ms := newTestModuleStore(t)
	ctx := context.Background()

	_ = ms.Add(ctx, "emp-001", mod("mod-001", 10))

	if err := ms.UpdateProgress(ctx, "emp-001", "mod-001", 70, nil); err != nil {
		t.Fatal(err)
	}
	modules, _ := ms.Load(ctx, "emp-001")
	if modules[0].Progress != 70 {
		t.Fatalf("expected progress 70, got %d", modules[0].Progress)
	}

	// Unknown module with no fallback is a no-op.
	if err := ms.UpdateProgress(ctx, "emp-001", "mod-404", 50, nil); err != nil {
		t.Fatal(err)
	}
	modules, _ = ms.Load(ctx, "emp-001")
	if len(modules) != 1 {
		t.Fatalf("expected no new entry, got %d", len(modules))
	}

	// Unknown module with fallback seeds a new entry at the given progress.
	fallback := mod("mod-002", 0)
	if err := ms.UpdateProgress(ctx, "emp-001", "mod-002", 25, &fallback); err != nil {
		t.Fatal(err)
	}
	modules, _ = ms.Load(ctx, "emp-001")
	if len(modules) != 2 || modules[0].ID != "mod-002" || modules[0].Progress != 25 {
		t.Fatalf("expected seeded entry at front, got %+v", modules)
	}
}

func TestRemove(t *testing.T) {
	ms := newTestModuleStore(t)
	ctx := context.Background()

	_ = ms.Add(ctx, "emp-001", mod("mod-001", 0))
	_ = ms.Add(ctx, "emp-001", mod("mod-002", 0))

	if err := ms.Remove(ctx, "emp-001", "mod-001"); err != nil {
		t.Fatal(err)
	}
	modules, _ := ms.Load(ctx, "emp-001")
	if len(modules) != 1 || modules[0].ID != "mod-002" {
		t.Fatalf("expected only mod-002 left, got %+v", modules)
	}

	// Removing a non-member id is a no-op.
	if err := ms.Remove(ctx, "emp-001", "mod-404"); err != nil {
		t.Fatal(err)
	}
	modules, _ = ms.Load(ctx, "emp-001")
	if len(modules) != 1 {
		t.Fatalf("expected collection untouched, got %+v", modules)
	}
}

func TestResetCompleted(t *testing.T) {
	ms := newTestModuleStore(t)
	ctx := context.Background()

	_ = ms.Save(ctx, "emp-001", []types.LearningModule{
		mod("mod-001", 100),
		mod("mod-002", 60),
		mod("mod-003", 100),
	})

	if err := ms.ResetCompleted(ctx, "emp-001", 80); err != nil {
		t.Fatal(err)
	}

	modules, _ := ms.Load(ctx, "emp-001")
	want := []int{80, 60, 80}
	for i, m := range modules {
		if m.Progress != want[i] {
			t.Fatalf("entry %d: expected progress %d, got %d", i, want[i], m.Progress)
		}
	}

	// Absent collection is a no-op.
	if err := ms.ResetCompleted(ctx, "emp-404", 80); err != nil {
		t.Fatal(err)
	}
}
