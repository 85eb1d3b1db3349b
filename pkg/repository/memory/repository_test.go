package memory_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"play-economy/pkg/repository"
	"play-economy/pkg/repository/memory"
)

type widget struct {
	ID        string    `json:"id"`
	Owner     string    `json:"owner"`
	Kind      string    `json:"kind"`
	Count     int       `json:"count"`
	CreatedAt time.Time `json:"createdAt"`
}

func (w widget) GetID() string { return w.ID }

func TestCreateAndGetOne(t *testing.T) {
	ctx := context.Background()
	repo := memory.New[widget]()

	w := widget{ID: "w-1", Owner: "u-1", Kind: "potion", Count: 2, CreatedAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)}
	if err := repo.Create(ctx, w); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetOne(ctx, "w-1")
	if err != nil {
		t.Fatalf("GetOne: %v", err)
	}
	if got != w {
		t.Fatalf("expected %+v, got %+v", w, got)
	}

	t.Run("duplicate id", func(t *testing.T) {
		if err := repo.Create(ctx, w); !errors.Is(err, repository.ErrAlreadyExists) {
			t.Fatalf("expected ErrAlreadyExists, got %v", err)
		}
	})

	t.Run("missing id", func(t *testing.T) {
		if _, err := repo.GetOne(ctx, "nope"); !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("empty id", func(t *testing.T) {
		if _, err := repo.GetOne(ctx, ""); !errors.Is(err, repository.ErrInvalidArgument) {
			t.Fatalf("expected ErrInvalidArgument, got %v", err)
		}
	})
}

func TestCreateRejectsEmptyEntity(t *testing.T) {
	ctx := context.Background()
	repo := memory.New[widget]()

	if err := repo.Create(ctx, widget{}); !errors.Is(err, repository.ErrInvalidArgument) {
		t.Errorf("zero value: expected ErrInvalidArgument, got %v", err)
	}
	if err := repo.Create(ctx, widget{Owner: "u-1"}); !errors.Is(err, repository.ErrInvalidArgument) {
		t.Errorf("empty id: expected ErrInvalidArgument, got %v", err)
	}
	if err := repo.Update(ctx, widget{}); !errors.Is(err, repository.ErrInvalidArgument) {
		t.Errorf("update zero value: expected ErrInvalidArgument, got %v", err)
	}
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	repo := memory.New[widget]()
	repo.Create(ctx, widget{ID: "w-1", Owner: "u-1", Count: 1})

	t.Run("replaces full record", func(t *testing.T) {
		if err := repo.Update(ctx, widget{ID: "w-1", Owner: "u-2"}); err != nil {
			t.Fatalf("Update: %v", err)
		}
		got, _ := repo.GetOne(ctx, "w-1")
		if got.Owner != "u-2" || got.Count != 0 {
			t.Fatalf("expected full replacement, got %+v", got)
		}
	})

	t.Run("nonexistent id is a no-op", func(t *testing.T) {
		if err := repo.Update(ctx, widget{ID: "w-404", Owner: "u-1"}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		all, _ := repo.GetAll(ctx)
		if len(all) != 1 {
			t.Fatalf("expected 1 record, got %d", len(all))
		}
		if _, err := repo.GetOne(ctx, "w-404"); !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("update must not create records, got %v", err)
		}
	})
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	repo := memory.New[widget]()
	repo.Create(ctx, widget{ID: "w-1", Owner: "u-1"})

	if err := repo.Remove(ctx, "w-404"); err != nil {
		t.Fatalf("remove of missing id should be a no-op, got %v", err)
	}
	if all, _ := repo.GetAll(ctx); len(all) != 1 {
		t.Fatalf("expected 1 record, got %d", len(all))
	}

	if err := repo.Remove(ctx, "w-1"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := repo.GetOne(ctx, "w-1"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after remove, got %v", err)
	}
}

func TestUpsert(t *testing.T) {
	ctx := context.Background()
	repo := memory.New[widget]()

	for i := 0; i < 2; i++ {
		if err := repo.Upsert(ctx, widget{ID: "w-1", Kind: "potion"}); err != nil {
			t.Fatalf("Upsert: %v", err)
		}
	}
	all, _ := repo.GetAll(ctx)
	if len(all) != 1 {
		t.Fatalf("expected exactly one record, got %d", len(all))
	}
}

func TestQueries(t *testing.T) {
	ctx := context.Background()
	repo := memory.New[widget]()
	repo.Create(ctx, widget{ID: "w-1", Owner: "u-1", Kind: "potion"})
	repo.Create(ctx, widget{ID: "w-2", Owner: "u-1", Kind: "sword"})
	repo.Create(ctx, widget{ID: "w-3", Owner: "u-2", Kind: "potion"})

	t.Run("GetAll eq", func(t *testing.T) {
		got, err := repo.GetAll(ctx, repository.Eq("owner", "u-1"))
		if err != nil {
			t.Fatalf("GetAll: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2, got %d", len(got))
		}
	})

	t.Run("GetAll in", func(t *testing.T) {
		got, err := repo.GetAll(ctx, repository.In(repository.FieldID, []string{"w-1", "w-3", "w-9"}))
		if err != nil {
			t.Fatalf("GetAll: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2, got %d", len(got))
		}
	})

	t.Run("GetAll and", func(t *testing.T) {
		got, _ := repo.GetAll(ctx, repository.Eq("owner", "u-1"), repository.Eq("kind", "sword"))
		if len(got) != 1 || got[0].ID != "w-2" {
			t.Fatalf("expected only w-2, got %+v", got)
		}
	})

	t.Run("FindOne single", func(t *testing.T) {
		got, err := repo.FindOne(ctx, repository.Eq("owner", "u-2"))
		if err != nil {
			t.Fatalf("FindOne: %v", err)
		}
		if got.ID != "w-3" {
			t.Fatalf("expected w-3, got %s", got.ID)
		}
	})

	t.Run("FindOne ambiguous", func(t *testing.T) {
		if _, err := repo.FindOne(ctx, repository.Eq("kind", "potion")); !errors.Is(err, repository.ErrAmbiguousResult) {
			t.Fatalf("expected ErrAmbiguousResult, got %v", err)
		}
	})

	t.Run("FindOne none", func(t *testing.T) {
		if _, err := repo.FindOne(ctx, repository.Eq("kind", "shield")); !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("unknown operator", func(t *testing.T) {
		_, err := repo.GetAll(ctx, repository.Filter{Field: "kind", Op: "gt", Value: 1})
		if !errors.Is(err, repository.ErrInvalidArgument) {
			t.Fatalf("expected ErrInvalidArgument, got %v", err)
		}
	})
}

func TestIncrement(t *testing.T) {
	ctx := context.Background()

	t.Run("inserts seed then accumulates", func(t *testing.T) {
		repo := memory.New[widget]()
		first := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

		got, err := repo.Increment(ctx, widget{ID: "w-1", Owner: "u-1", Kind: "potion", Count: 3, CreatedAt: first},
			"count", 3, repository.Eq("owner", "u-1"), repository.Eq("kind", "potion"))
		if err != nil {
			t.Fatalf("Increment: %v", err)
		}
		if got.Count != 3 {
			t.Fatalf("expected 3, got %d", got.Count)
		}

		got, err = repo.Increment(ctx, widget{ID: "w-2", Owner: "u-1", Kind: "potion", Count: 2, CreatedAt: first.Add(time.Hour)},
			"count", 2, repository.Eq("owner", "u-1"), repository.Eq("kind", "potion"))
		if err != nil {
			t.Fatalf("Increment: %v", err)
		}
		if got.ID != "w-1" || got.Count != 5 || !got.CreatedAt.Equal(first) {
			t.Fatalf("expected w-1 with count 5 and first timestamp, got %+v", got)
		}
		if all, _ := repo.GetAll(ctx); len(all) != 1 {
			t.Fatalf("expected a single record, got %d", len(all))
		}
	})

	t.Run("concurrent increments are not lost", func(t *testing.T) {
		repo := memory.New[widget]()
		const n = 100

		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				seed := widget{ID: fmt.Sprintf("seed-%d", i), Owner: "u-1", Kind: "potion", Count: 1}
				if _, err := repo.Increment(ctx, seed, "count", 1, repository.Eq("owner", "u-1"), repository.Eq("kind", "potion")); err != nil {
					t.Errorf("Increment: %v", err)
				}
			}(i)
		}
		wg.Wait()

		got, err := repo.FindOne(ctx, repository.Eq("owner", "u-1"), repository.Eq("kind", "potion"))
		if err != nil {
			t.Fatalf("FindOne: %v", err)
		}
		if got.Count != n {
			t.Fatalf("expected %d, got %d", n, got.Count)
		}
	})

	t.Run("ambiguous match", func(t *testing.T) {
		repo := memory.New[widget]()
		repo.Create(ctx, widget{ID: "w-1", Owner: "u-1"})
		repo.Create(ctx, widget{ID: "w-2", Owner: "u-1"})

		_, err := repo.Increment(ctx, widget{ID: "w-3", Owner: "u-1", Count: 1}, "count", 1, repository.Eq("owner", "u-1"))
		if !errors.Is(err, repository.ErrAmbiguousResult) {
			t.Fatalf("expected ErrAmbiguousResult, got %v", err)
		}
	})

	t.Run("rejects non-equality filters", func(t *testing.T) {
		repo := memory.New[widget]()
		_, err := repo.Increment(ctx, widget{ID: "w-1", Count: 1}, "count", 1, repository.In("owner", []string{"u-1"}))
		if !errors.Is(err, repository.ErrInvalidArgument) {
			t.Fatalf("expected ErrInvalidArgument, got %v", err)
		}
	})
}
