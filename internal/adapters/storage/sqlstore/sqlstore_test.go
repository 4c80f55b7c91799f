package sqlstore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"guarderia-felina/internal/domain/billing"
	"guarderia-felina/internal/domain/clients"
	"guarderia-felina/internal/domain/guarderias"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "guarderia-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	db, err := OpenSQLite(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func seedClient(t *testing.T, ctx context.Context, repo *ClientsRepo, id string, cats ...string) clients.Client {
	t.Helper()
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	c := clients.Client{ID: id, Name: "Cliente " + id, Phone: "300", PhotoConsent: true, CreatedAt: now, UpdatedAt: now}
	for i, name := range cats {
		c.Cats = append(c.Cats, clients.Cat{
			ID:               id + "-cat-" + string(rune('a'+i)),
			ClientID:         id,
			Name:             name,
			MedicalCondition: clients.DefaultMedicalCondition,
		})
	}
	if err := repo.Create(ctx, c); err != nil {
		t.Fatalf("create client: %v", err)
	}
	return c
}

func TestSQLStore(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	clientsRepo := NewClientsRepo(db)
	guarderiasRepo := NewGuarderiasRepo(db)
	store := NewBillingStore(db)

	seedClient(t, ctx, clientsRepo, "c1", "Michi", "Luna")

	g := guarderias.Guarderia{
		ID:        "g1",
		ClientID:  "c1",
		CreatedAt: time.Date(2025, 3, 1, 11, 0, 0, 0, time.UTC),
		Visits: []guarderias.Visit{
			{ID: "v2", Date: time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), Time: "09:00"},
			{ID: "v1", Date: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)},
		},
	}

	t.Run("client round trip keeps cats and consent", func(t *testing.T) {
		got, err := clientsRepo.GetByID(ctx, "c1")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if !got.PhotoConsent || len(got.Cats) != 2 || got.Cats[0].Name != "Michi" {
			t.Fatalf("unexpected client: %+v", got)
		}
	})

	t.Run("guarderia requires existing client", func(t *testing.T) {
		bad := g
		bad.ID = "g-bad"
		bad.ClientID = "nope"
		if err := guarderiasRepo.Create(ctx, bad); !errors.Is(err, guarderias.ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("guarderia stored with sorted visits", func(t *testing.T) {
		if err := guarderiasRepo.Create(ctx, g); err != nil {
			t.Fatalf("create: %v", err)
		}
		got, err := guarderiasRepo.GetByID(ctx, "g1")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if len(got.Visits) != 2 || got.Visits[0].ID != "v1" || got.Visits[1].Time != "09:00" {
			t.Fatalf("unexpected visits: %+v", got.Visits)
		}
	})

	t.Run("billing snapshot joins client cats and visits", func(t *testing.T) {
		bookings, err := store.ListBookings(ctx)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(bookings) != 1 || bookings[0].CatCount() != 2 || len(bookings[0].Visits) != 2 {
			t.Fatalf("unexpected bookings: %+v", bookings)
		}
	})

	t.Run("payments append list delete", func(t *testing.T) {
		at := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
		p := billing.Payment{ID: "p1", BookingID: "g1", Amount: 60000, Method: billing.MethodCash, PaidAt: at}
		if err := store.AppendPayment(ctx, p); err != nil {
			t.Fatalf("append: %v", err)
		}
		if err := store.AppendPayment(ctx, billing.Payment{ID: "p2", BookingID: "missing", Amount: 1, PaidAt: at}); !errors.Is(err, billing.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}

		items, err := store.ListPayments(ctx, "g1")
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(items) != 1 || items[0].Amount != 60000 || !items[0].PaidAt.Equal(at) || items[0].Method != billing.MethodCash {
			t.Fatalf("unexpected payments: %+v", items)
		}

		if err := store.DeletePayment(ctx, "p1"); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if err := store.DeletePayment(ctx, "p1"); !errors.Is(err, billing.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("update replaces cats and changes price at read time", func(t *testing.T) {
		c, _ := clientsRepo.GetByID(ctx, "c1")
		c.Cats = c.Cats[:1]
		c.UpdatedAt = c.UpdatedAt.Add(time.Hour)
		if err := clientsRepo.Update(ctx, c); err != nil {
			t.Fatalf("update: %v", err)
		}

		bookings, _ := store.ListBookings(ctx)
		if bookings[0].CatCount() != 1 {
			t.Fatalf("expected 1 cat, got %d", bookings[0].CatCount())
		}

		if err := clientsRepo.Update(ctx, clients.Client{ID: "nope", Name: "x"}); !errors.Is(err, clients.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("delete booking cascades payments", func(t *testing.T) {
		_ = store.AppendPayment(ctx, billing.Payment{ID: "p3", BookingID: "g1", Amount: 10, Method: billing.MethodTransfer, PaidAt: time.Now()})

		if err := store.DeleteBooking(ctx, "g1"); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if err := store.DeleteBooking(ctx, "g1"); !errors.Is(err, billing.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}

		payments, _ := store.ListPayments(ctx, "")
		if len(payments) != 0 {
			t.Fatalf("expected no payments, got %d", len(payments))
		}
	})
}

func TestClientsRepo_ListAndDelete(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewClientsRepo(db)

	older := seedClient(t, ctx, repo, "c1", "Michi")
	newer := clients.Client{ID: "c2", Name: "Beto", CreatedAt: older.CreatedAt.Add(time.Hour), UpdatedAt: older.CreatedAt.Add(time.Hour)}
	if err := repo.Create(ctx, newer); err != nil {
		t.Fatalf("create: %v", err)
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].ID != "c2" {
		t.Fatalf("expected newest first, got %+v", list)
	}
	if list[0].Cats == nil {
		t.Fatalf("cats must be empty, not nil")
	}

	g := guarderias.Guarderia{ID: "g1", ClientID: "c1", CreatedAt: time.Now(), Visits: []guarderias.Visit{{ID: "v1", Date: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)}}}
	if err := NewGuarderiasRepo(db).Create(ctx, g); err != nil {
		t.Fatalf("create guarderia: %v", err)
	}

	if err := repo.Delete(ctx, "c1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, "c1"); !errors.Is(err, clients.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := NewGuarderiasRepo(db).GetByID(ctx, "g1"); !errors.Is(err, guarderias.ErrNotFound) {
		t.Fatalf("expected guarderia deleted, got %v", err)
	}
	if err := repo.Delete(ctx, "c1"); !errors.Is(err, clients.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
