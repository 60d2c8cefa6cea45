package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/okian/scout/internal/domain/engine"
	"github.com/okian/scout/internal/domain/model"
	"github.com/okian/scout/internal/domain/population"
)

func rec(code, name, team string, season int, avg, pa float64) model.RawStatRecord {
	return model.RawStatRecord{
		PlayerCode: code,
		Name:       name,
		Team:       team,
		Season:     season,
		Role:       model.RoleBatter,
		Values: map[string]float64{
			"batting_average":         avg,
			"walk_rate":               avg * 30,
			model.KeyPlateAppearances: pa,
		},
	}
}

func graded(t *testing.T) []*engine.SeasonResult {
	t.Helper()
	records := []model.RawStatRecord{
		rec("b01", "Kim Hyun-soo", "LG", 2024, 0.250, 500),
		rec("b02", "Kim Do-yeong", "KIA", 2024, 0.350, 600),
		rec("b03", "Park Hae-min", "LG", 2024, 0.300, 550),
		rec("b01", "Kim Hyun-soo", "LG", 2023, 0.280, 480),
		rec("b04", "Choi Jeong", "SSG", 2023, 0.260, 470),
	}
	results, err := engine.New(engine.WithWorkers(2)).GradeAll(context.Background(), records)
	if err != nil {
		t.Fatalf("grade: %v", err)
	}
	return results
}

func TestSnapshotStore_Empty(t *testing.T) {
	ctx := context.Background()
	store := NewSnapshotStore()

	if count := store.Count(ctx); count != 0 {
		t.Errorf("expected count 0, got %d", count)
	}
	if seasons := store.Seasons(ctx); len(seasons) != 0 {
		t.Errorf("expected no seasons, got %v", seasons)
	}
	if _, err := store.Profile(ctx, model.RoleBatter, 2024, "b01"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := store.Summary(ctx, 2024); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSnapshotStore_Replace(t *testing.T) {
	ctx := context.Background()
	store := NewSnapshotStore()
	store.Replace(ctx, graded(t))

	if count := store.Count(ctx); count != 5 {
		t.Errorf("expected count 5, got %d", count)
	}
	seasons := store.Seasons(ctx)
	if len(seasons) != 2 || seasons[0] != 2023 || seasons[1] != 2024 {
		t.Errorf("unexpected seasons %v", seasons)
	}

	p, err := store.Profile(ctx, model.RoleBatter, 2024, "b02")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "Kim Do-yeong" || p.Season != 2024 {
		t.Errorf("unexpected profile %+v", p)
	}
	if _, err := store.Profile(ctx, model.RolePitcher, 2024, "b02"); !errors.Is(err, ErrNotFound) {
		t.Errorf("batter code under pitcher role should be ErrNotFound, got %v", err)
	}

	profiles, err := store.Profiles(ctx, model.RoleBatter, 2023)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(profiles) != 2 || profiles[0].PlayerCode != "b01" || profiles[1].PlayerCode != "b04" {
		t.Errorf("unexpected 2023 profiles %v", profiles)
	}

	summary, err := store.Summary(ctx, 2024)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Season != 2024 {
		t.Errorf("expected summary season 2024, got %d", summary.Season)
	}

	// a second Replace drops the old seasons entirely
	store.Replace(ctx, graded(t)[:1])
	if _, err := store.Profile(ctx, model.RoleBatter, 2024, "b02"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected 2024 to be gone after replace, got %v", err)
	}
	if count := store.Count(ctx); count != 2 {
		t.Errorf("expected count 2, got %d", count)
	}
}

func TestSnapshotStore_TopN(t *testing.T) {
	ctx := context.Background()
	store := NewSnapshotStore(WithMaxLimit(10))
	store.Replace(ctx, graded(t))

	entries, err := store.TopN(ctx, model.RoleBatter, 2024, "batting_average", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].PlayerCode != "b02" || entries[0].Rank != 1 {
		t.Errorf("expected b02 first, got %+v", entries[0])
	}
	if entries[1].PlayerCode != "b03" || entries[1].Rank != 2 {
		t.Errorf("expected b03 second, got %+v", entries[1])
	}

	if _, err := store.TopN(ctx, model.RoleBatter, 2024, population.FieldOverall, 0); !errors.Is(err, ErrInvalidLimit) {
		t.Errorf("expected ErrInvalidLimit for 0, got %v", err)
	}
	if _, err := store.TopN(ctx, model.RoleBatter, 2024, population.FieldOverall, 11); !errors.Is(err, ErrInvalidLimit) {
		t.Errorf("expected ErrInvalidLimit above max, got %v", err)
	}
	if _, err := store.TopN(ctx, model.RoleBatter, 2024, "no_such_field", 5); !errors.Is(err, population.ErrUnknownField) {
		t.Errorf("expected ErrUnknownField, got %v", err)
	}
	if _, err := store.TopN(ctx, model.RoleBatter, 1999, population.FieldOverall, 5); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown season, got %v", err)
	}
}

func TestSnapshotStore_Search(t *testing.T) {
	ctx := context.Background()
	store := NewSnapshotStore()
	store.Replace(ctx, graded(t))

	hits, err := store.Search(ctx, model.RoleBatter, 2024, "kim", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hits) != 2 {
		t.Fatalf("expected 2 hits, got %v", hits)
	}
	// "Kim Do-yeong" and "Kim Hyun-soo" are both 12 runes, so the tie falls to player code
	if hits[0].PlayerCode != "b01" || hits[1].PlayerCode != "b02" {
		t.Errorf("unexpected order %v", hits)
	}

	hits, err = store.Search(ctx, model.RoleBatter, 2024, "PARK", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hits) != 1 || hits[0].PlayerCode != "b03" {
		t.Errorf("expected case-insensitive match on b03, got %v", hits)
	}

	hits, err = store.Search(ctx, model.RoleBatter, 2024, "kim", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hits) != 1 {
		t.Errorf("expected limit to cap hits, got %v", hits)
	}

	hits, err = store.Search(ctx, model.RoleBatter, 2024, "   ", 10)
	if err != nil || len(hits) != 0 {
		t.Errorf("blank query should return no hits, got %v %v", hits, err)
	}
}

func TestSnapshotStore_ConcurrentReplace(t *testing.T) {
	ctx := context.Background()
	store := NewSnapshotStore()
	results := graded(t)
	store.Replace(ctx, results)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				store.Replace(ctx, results)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if _, err := store.Profile(ctx, model.RoleBatter, 2024, "b01"); err != nil {
					t.Errorf("reader saw a partial snapshot: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()
}
