package services

import (
	"fmt"
	"testing"

	"github.com/teampath/learnhub-backend/internal/types"
)

func catalogModule(id, category string, progress int, popularity float64, tags ...string) types.LearningModule {
	return types.LearningModule{
		ID:              id,
		Title:           "Module " + id,
		Category:        category,
		Progress:        progress,
		PopularityScore: popularity,
		Tags:            tags,
	}
}

func TestRecommendedSortsByPopularity(t *testing.T) {
	all := []types.LearningModule{
		catalogModule("low", "Eng", 0, 10),
		catalogModule("high", "Eng", 0, 90),
		catalogModule("mid", "Eng", 0, 50),
		catalogModule("none", "Eng", 0, 0),
	}
	buckets := Recommend(types.User{Department: "Product"}, all)

	wantOrder := []string{"high", "mid", "low", "none"}
	for i, id := range wantOrder {
		if buckets.Recommended[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, buckets.Recommended[i].ID)
		}
	}
}

func TestRecommendedTopTen(t *testing.T) {
	var all []types.LearningModule
	for i := 0; i < 15; i++ {
		all = append(all, catalogModule(fmt.Sprintf("m%02d", i), "Eng", 0, float64(i)))
	}
	buckets := Recommend(types.User{Department: "Eng"}, all)
	if len(buckets.Recommended) != 10 {
		t.Fatalf("expected top 10, got %d", len(buckets.Recommended))
	}
	if buckets.Recommended[0].ID != "m14" {
		t.Fatalf("expected most popular first, got %s", buckets.Recommended[0].ID)
	}
}

func TestNewAndNoteworthyIsLastEight(t *testing.T) {
	var all []types.LearningModule
	for i := 0; i < 12; i++ {
		all = append(all, catalogModule(fmt.Sprintf("m%02d", i), "Eng", 0, 0))
	}
	buckets := Recommend(types.User{Department: "Eng"}, all)
	if len(buckets.NewAndNoteworthy) != 8 {
		t.Fatalf("expected 8 entries, got %d", len(buckets.NewAndNoteworthy))
	}
	if buckets.NewAndNoteworthy[0].ID != "m04" || buckets.NewAndNoteworthy[7].ID != "m11" {
		t.Fatalf("expected last 8 in input order, got %s..%s",
			buckets.NewAndNoteworthy[0].ID, buckets.NewAndNoteworthy[7].ID)
	}
}

func TestPopularInDeptMatchesFirstToken(t *testing.T) {
	all := []types.LearningModule{
		catalogModule("a", "Product Engineering", 0, 0),
		catalogModule("b", "Platform Engineering", 0, 0),
		catalogModule("c", "PRODUCT Design", 0, 0),
	}
	buckets := Recommend(types.User{Department: "Product Development"}, all)
	if len(buckets.PopularInDept) != 2 {
		t.Fatalf("expected 2 matches, got %+v", buckets.PopularInDept)
	}
	if buckets.PopularInDept[0].ID != "a" || buckets.PopularInDept[1].ID != "c" {
		t.Fatalf("expected case-insensitive matches in input order, got %+v", buckets.PopularInDept)
	}
}

func TestBecauseYouCompleted(t *testing.T) {
	a := catalogModule("A", "Eng", 100, 0, "x", "y")
	b := catalogModule("B", "Eng", 50, 0, "y", "z")
	c := catalogModule("C", "Eng", 0, 0, "q")
	buckets := Recommend(types.User{Department: "Eng"}, []types.LearningModule{a, b, c})

	if len(buckets.BecauseYouCompleted) != 1 {
		t.Fatalf("expected exactly one suggestion, got %+v", buckets.BecauseYouCompleted)
	}
	if buckets.BecauseYouCompleted[0].ID != "B" {
		t.Fatalf("expected B (shares tag y, not completed), got %s", buckets.BecauseYouCompleted[0].ID)
	}
}

func TestRecommendEmptyInput(t *testing.T) {
	buckets := Recommend(types.User{Department: ""}, nil)
	if len(buckets.Recommended) != 0 || len(buckets.NewAndNoteworthy) != 0 ||
		len(buckets.PopularInDept) != 0 || len(buckets.BecauseYouCompleted) != 0 {
		t.Fatalf("expected empty buckets, got %+v", buckets)
	}
}
