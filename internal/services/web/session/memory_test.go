package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestMemoryStoreLifecycle(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemoryStore(func() time.Time { return now })
	ctx := context.Background()

	created, err := store.Create(ctx, Session{Subject: "1", AccessToken: "tok", ExpiresAt: now.Add(time.Hour)})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.ID == "" {
		t.Fatal("Create() did not assign an id")
	}

	got, err := store.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.AccessToken != "tok" {
		t.Fatalf("AccessToken = %q, want %q", got.AccessToken, "tok")
	}

	if err := store.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := store.Get(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get() after delete error = %v, want ErrNotFound", err)
	}
	if err := store.Delete(ctx, created.ID); err != nil {
		t.Fatalf("second Delete() error = %v", err)
	}
}

func TestMemoryStoreEvictsExpired(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := now
	store := NewMemoryStore(func() time.Time { return clock })
	created, err := store.Create(context.Background(), Session{Subject: "1", ExpiresAt: now.Add(time.Minute)})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	clock = now.Add(time.Minute)
	if _, err := store.Get(context.Background(), created.ID); !errors.Is(err, ErrExpired) {
		t.Fatalf("Get() error = %v, want ErrExpired", err)
	}
	if store.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", store.Len())
	}
}

func TestMemoryStoreRejectsIncompleteSession(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore(nil)
	if _, err := store.Create(context.Background(), Session{ExpiresAt: time.Now().Add(time.Hour)}); err == nil {
		t.Fatal("expected missing subject error")
	}
	if _, err := store.Create(context.Background(), Session{Subject: "1"}); err == nil {
		t.Fatal("expected missing expiry error")
	}
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore(nil)
	ctx := context.Background()
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, err := store.Create(ctx, Session{Subject: "1", ExpiresAt: time.Now().Add(time.Hour)})
			if err != nil {
				t.Errorf("Create() error = %v", err)
				return
			}
			if _, err := store.Get(ctx, s.ID); err != nil {
				t.Errorf("Get() error = %v", err)
			}
			_ = store.Delete(ctx, s.ID)
		}()
	}
	wg.Wait()
	if store.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", store.Len())
	}
}
