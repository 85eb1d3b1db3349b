package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"play-economy/internal/catalog"
	"play-economy/internal/catalog/usecase"
	"play-economy/internal/model"
	"play-economy/pkg/clock"
	"play-economy/pkg/repository"
	"play-economy/pkg/repository/memory"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockPublisher struct {
	events []model.Event
	fail   bool
}

func (m *mockPublisher) Publish(ctx context.Context, e model.Event) error {
	if m.fail {
		return errors.New("broker down")
	}
	m.events = append(m.events, e)
	return nil
}

var now = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func setup() (catalog.UseCase, repository.Repository[model.Item], *mockPublisher) {
	repo := memory.New[model.Item]()
	pub := &mockPublisher{}
	return usecase.New(repo, pub, clock.NewFixed(now), &mockLogger{}), repo, pub
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("persists then publishes", func(t *testing.T) {
		uc, repo, pub := setup()
		out, err := uc.Create(ctx, catalog.CreateItemInput{Name: "Potion", Description: "Restores a small amount of HP", Price: 5})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if _, err := uuid.Parse(out.Item.ID); err != nil {
			t.Errorf("expected uuid id, got %q", out.Item.ID)
		}
		if !out.Item.CreatedDate.Equal(now) {
			t.Errorf("expected createdDate %v, got %v", now, out.Item.CreatedDate)
		}

		stored, err := repo.GetOne(ctx, out.Item.ID)
		if err != nil || stored.Name != "Potion" {
			t.Fatalf("expected stored item, got %+v (%v)", stored, err)
		}

		want := model.CatalogItemCreated{ID: out.Item.ID, Name: "Potion", Description: "Restores a small amount of HP"}
		if len(pub.events) != 1 || pub.events[0] != want {
			t.Errorf("expected %+v, got %+v", want, pub.events)
		}
	})

	t.Run("invalid input publishes nothing", func(t *testing.T) {
		uc, repo, pub := setup()
		inputs := []catalog.CreateItemInput{
			{Name: "", Price: 5},
			{Name: "   ", Price: 5},
			{Name: "Potion", Price: -1},
		}
		for _, in := range inputs {
			if _, err := uc.Create(ctx, in); !errors.Is(err, catalog.ErrInvalidItem) {
				t.Errorf("%+v: expected ErrInvalidItem, got %v", in, err)
			}
		}
		if all, _ := repo.GetAll(ctx); len(all) != 0 {
			t.Errorf("expected nothing stored, got %d", len(all))
		}
		if len(pub.events) != 0 {
			t.Errorf("expected no events, got %d", len(pub.events))
		}
	})

	t.Run("publish failure keeps the write", func(t *testing.T) {
		uc, repo, pub := setup()
		pub.fail = true
		out, err := uc.Create(ctx, catalog.CreateItemInput{Name: "Potion", Price: 5})
		if !errors.Is(err, catalog.ErrPublishFailed) {
			t.Fatalf("expected ErrPublishFailed, got %v", err)
		}
		if out.Item.ID == "" {
			t.Fatal("expected output to carry the written item")
		}
		if _, err := repo.GetOne(ctx, out.Item.ID); err != nil {
			t.Errorf("expected item to stay stored, got %v", err)
		}
	})
}

func TestDetailAndList(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := setup()

	created, _ := uc.Create(ctx, catalog.CreateItemInput{Name: "Potion", Price: 5})
	uc.Create(ctx, catalog.CreateItemInput{Name: "Antidote", Price: 7})

	list, err := uc.List(ctx)
	if err != nil || len(list.Items) != 2 {
		t.Fatalf("expected 2 items, got %d (%v)", len(list.Items), err)
	}

	detail, err := uc.Detail(ctx, created.Item.ID)
	if err != nil || detail.Item != created.Item {
		t.Fatalf("expected %+v, got %+v (%v)", created.Item, detail.Item, err)
	}

	if _, err := uc.Detail(ctx, uuid.NewString()); !errors.Is(err, catalog.ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got %v", err)
	}
	if _, err := uc.Detail(ctx, "not-a-uuid"); !errors.Is(err, catalog.ErrInvalidID) {
		t.Errorf("expected ErrInvalidID, got %v", err)
	}
}

func TestNonCanonicalIDs(t *testing.T) {
	ctx := context.Background()
	uc, repo, pub := setup()
	created, _ := uc.Create(ctx, catalog.CreateItemInput{Name: "Potion", Price: 5})
	id := created.Item.ID

	for _, spelling := range []string{strings.ToUpper(id), strings.ReplaceAll(id, "-", ""), "urn:uuid:" + id, "{" + id + "}"} {
		detail, err := uc.Detail(ctx, spelling)
		if err != nil || detail.Item.ID != id {
			t.Errorf("Detail(%q): expected %s, got %+v (%v)", spelling, id, detail.Item, err)
		}
	}

	out, err := uc.Update(ctx, catalog.UpdateItemInput{ID: strings.ToUpper(id), Name: "Hi-Potion", Price: 9})
	if err != nil || out.Item.ID != id {
		t.Fatalf("Update: expected id %s, got %+v (%v)", id, out.Item, err)
	}

	if err := uc.Delete(ctx, "{"+id+"}"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetOne(ctx, id); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected item removed, got %v", err)
	}
	if last := pub.events[len(pub.events)-1]; last != (model.CatalogItemDeleted{ID: id}) {
		t.Errorf("expected delete event for %s, got %+v", id, last)
	}
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("full replace keeps id and createdDate", func(t *testing.T) {
		uc, _, pub := setup()
		created, _ := uc.Create(ctx, catalog.CreateItemInput{Name: "Potion", Description: "Restores HP", Price: 5})

		out, err := uc.Update(ctx, catalog.UpdateItemInput{ID: created.Item.ID, Name: "Hi-Potion", Price: 9})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		want := model.Item{ID: created.Item.ID, Name: "Hi-Potion", Description: "", Price: 9, CreatedDate: now}
		if out.Item != want {
			t.Errorf("expected %+v, got %+v", want, out.Item)
		}

		last := pub.events[len(pub.events)-1]
		if last != (model.CatalogItemUpdated{ID: created.Item.ID, Name: "Hi-Potion"}) {
			t.Errorf("unexpected event %+v", last)
		}
	})

	t.Run("missing item", func(t *testing.T) {
		uc, _, pub := setup()
		_, err := uc.Update(ctx, catalog.UpdateItemInput{ID: uuid.NewString(), Name: "Potion", Price: 1})
		if !errors.Is(err, catalog.ErrItemNotFound) {
			t.Errorf("expected ErrItemNotFound, got %v", err)
		}
		if len(pub.events) != 0 {
			t.Errorf("expected no events, got %d", len(pub.events))
		}
	})

	t.Run("invalid input", func(t *testing.T) {
		uc, _, _ := setup()
		created, _ := uc.Create(ctx, catalog.CreateItemInput{Name: "Potion", Price: 5})
		if _, err := uc.Update(ctx, catalog.UpdateItemInput{ID: created.Item.ID, Name: "Potion", Price: -3}); !errors.Is(err, catalog.ErrInvalidItem) {
			t.Errorf("expected ErrInvalidItem, got %v", err)
		}
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes then publishes", func(t *testing.T) {
		uc, repo, pub := setup()
		created, _ := uc.Create(ctx, catalog.CreateItemInput{Name: "Potion", Price: 5})

		if err := uc.Delete(ctx, created.Item.ID); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if _, err := repo.GetOne(ctx, created.Item.ID); !errors.Is(err, repository.ErrNotFound) {
			t.Errorf("expected item removed, got %v", err)
		}
		if last := pub.events[len(pub.events)-1]; last != (model.CatalogItemDeleted{ID: created.Item.ID}) {
			t.Errorf("unexpected event %+v", last)
		}
	})

	t.Run("missing item", func(t *testing.T) {
		uc, _, _ := setup()
		if err := uc.Delete(ctx, uuid.NewString()); !errors.Is(err, catalog.ErrItemNotFound) {
			t.Errorf("expected ErrItemNotFound, got %v", err)
		}
	})

	t.Run("publish failure keeps the removal", func(t *testing.T) {
		uc, repo, pub := setup()
		created, _ := uc.Create(ctx, catalog.CreateItemInput{Name: "Potion", Price: 5})
		pub.fail = true

		if err := uc.Delete(ctx, created.Item.ID); !errors.Is(err, catalog.ErrPublishFailed) {
			t.Fatalf("expected ErrPublishFailed, got %v", err)
		}
		if _, err := repo.GetOne(ctx, created.Item.ID); !errors.Is(err, repository.ErrNotFound) {
			t.Errorf("expected item removed, got %v", err)
		}
	})
}
