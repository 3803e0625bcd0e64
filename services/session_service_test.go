package services

import (
	"context"
	"testing"
	"time"

	"buyfish/shopapi"
)

func TestNilStoreMeansUnauthenticated(t *testing.T) {
	shop := shopapi.NewClient("http://127.0.0.1:0", time.Second)
	sessions := NewSessionService(shop, nil, time.Hour)
	ctx := context.Background()

	session, err := sessions.Restore(ctx, "some-id")
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if session != nil {
		t.Fatalf("expected nil session, got %+v", session)
	}

	// writes are accepted and dropped, never errors
	if err := sessions.Destroy(ctx, "some-id"); err != nil {
		t.Fatalf("Destroy: %v", err)
	}
}

func TestRestoreIgnoresEmptySessionID(t *testing.T) {
	shop := shopapi.NewClient("http://127.0.0.1:0", time.Second)
	sessions := NewSessionService(shop, nil, time.Hour)

	session, err := sessions.Restore(context.Background(), "")
	if err != nil || session != nil {
		t.Fatalf("got %+v, %v", session, err)
	}
}

func TestNewSessionIDsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 64; i++ {
		id := NewSessionID()
		if len(id) != 32 {
			t.Fatalf("id length %d", len(id))
		}
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}
