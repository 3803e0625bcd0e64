package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"buyfish/models"
	"buyfish/shopapi"
)

// fakeCartBackend emulates the shop backend's cart endpoints against an
// in-memory item list.
type fakeCartBackend struct {
	items       []models.CartItem
	failGet     bool
	failUpdate  bool
	failRemove  bool
	failAdd     bool
	updateCalls int
	removeCalls int
}

func (b *fakeCartBackend) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/cart/get/", func(w http.ResponseWriter, r *http.Request) {
		if b.failGet {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    map[string]interface{}{"items": b.items},
		})
	})

	mux.HandleFunc("/cart/update-cart", func(w http.ResponseWriter, r *http.Request) {
		b.updateCalls++
		if b.failUpdate {
			json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "message": "update rejected"})
			return
		}
		var req struct {
			ProductID string `json:"productId"`
			Quantity  int    `json:"quantity"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		for i := range b.items {
			if b.items[i].ProductID == req.ProductID {
				b.items[i].Quantity = req.Quantity
			}
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
	})

	mux.HandleFunc("/cart/add", func(w http.ResponseWriter, r *http.Request) {
		if b.failAdd {
			json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "message": "add rejected"})
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
	})

	mux.HandleFunc("/cart/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			http.NotFound(w, r)
			return
		}
		b.removeCalls++
		if b.failRemove {
			json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "message": "remove rejected"})
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
	})

	return mux
}

func newCartFixture(t *testing.T, backend *fakeCartBackend) (*CartMirror, func()) {
	t.Helper()
	server := httptest.NewServer(backend.handler())
	mirror := NewCartMirror(shopapi.NewClient(server.URL, 2*time.Second), "user-1")
	return mirror, server.Close
}

func item(id string, price float64, qty int) models.CartItem {
	return models.CartItem{ProductID: id, Title: id, Price: price, Quantity: qty}
}

func TestTotalAlwaysSumOfPriceTimesQuantity(t *testing.T) {
	backend := &fakeCartBackend{items: []models.CartItem{
		item("salmon", 12.5, 2),
		item("tuna", 8.0, 1),
		item("crab", 30.0, 3),
	}}
	mirror, done := newCartFixture(t, backend)
	defer done()

	ctx := context.Background()
	if err := mirror.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}

	steps := []func() error{
		func() error { _, err := mirror.ChangeQuantity(ctx, "salmon", DirectionIncrease); return err },
		func() error { _, err := mirror.ChangeQuantity(ctx, "tuna", DirectionDecrease); return err },
		func() error { return mirror.Remove(ctx, "crab") },
		func() error { _, err := mirror.ChangeQuantity(ctx, "salmon", DirectionIncrease); return err },
	}
	for i, step := range steps {
		if err := step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		want := models.CartTotal(mirror.Items())
		if got := mirror.Total(); got != want {
			t.Fatalf("step %d: total %v, want %v", i, got, want)
		}
	}

	// salmon went 2 -> 4, tuna stayed at 1, crab removed
	if got := mirror.Total(); got != 12.5*4+8.0*1 {
		t.Fatalf("final total %v", got)
	}
}

func TestDecreaseFloorsAtOne(t *testing.T) {
	backend := &fakeCartBackend{items: []models.CartItem{item("salmon", 10, 1)}}
	mirror, done := newCartFixture(t, backend)
	defer done()

	ctx := context.Background()
	if err := mirror.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}

	qty, err := mirror.ChangeQuantity(ctx, "salmon", DirectionDecrease)
	if err != nil {
		t.Fatalf("decrease: %v", err)
	}
	if qty != 1 {
		t.Fatalf("quantity %d, want 1", qty)
	}
	if mirror.Items()[0].Quantity != 1 {
		t.Fatalf("mirror quantity %d, want 1", mirror.Items()[0].Quantity)
	}
}

func TestRemoveLastItemLeavesEmptyCart(t *testing.T) {
	backend := &fakeCartBackend{items: []models.CartItem{item("salmon", 10, 2)}}
	mirror, done := newCartFixture(t, backend)
	defer done()

	ctx := context.Background()
	if err := mirror.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := mirror.Remove(ctx, "salmon"); err != nil {
		t.Fatalf("remove: %v", err)
	}

	if len(mirror.Items()) != 0 {
		t.Fatalf("items left: %d", len(mirror.Items()))
	}
	if mirror.Total() != 0 {
		t.Fatalf("total %v, want 0", mirror.Total())
	}
}

func TestChangeQuantityUnknownItem(t *testing.T) {
	backend := &fakeCartBackend{items: []models.CartItem{item("salmon", 10, 2)}}
	mirror, done := newCartFixture(t, backend)
	defer done()

	ctx := context.Background()
	mirror.Load(ctx)

	_, err := mirror.ChangeQuantity(ctx, "eel", DirectionIncrease)
	if err != ErrItemNotFound {
		t.Fatalf("err = %v, want ErrItemNotFound", err)
	}
	if backend.updateCalls != 0 {
		t.Fatalf("update calls %d, want 0", backend.updateCalls)
	}
}

func TestFailedPersistKeepsOptimisticQuantity(t *testing.T) {
	backend := &fakeCartBackend{
		items:      []models.CartItem{item("salmon", 10, 2)},
		failUpdate: true,
	}
	mirror, done := newCartFixture(t, backend)
	defer done()

	ctx := context.Background()
	mirror.Load(ctx)

	qty, err := mirror.ChangeQuantity(ctx, "salmon", DirectionIncrease)
	if err == nil {
		t.Fatal("expected persist error")
	}
	if qty != 3 {
		t.Fatalf("quantity %d, want optimistic 3", qty)
	}
	// no rollback: the mirror keeps the value that failed to persist
	if mirror.Items()[0].Quantity != 3 {
		t.Fatalf("mirror quantity %d, want 3", mirror.Items()[0].Quantity)
	}
	if mirror.Total() != 30 {
		t.Fatalf("total %v, want 30", mirror.Total())
	}
}

func TestFailedRemoveKeepsOptimisticRemoval(t *testing.T) {
	backend := &fakeCartBackend{
		items:      []models.CartItem{item("salmon", 10, 2), item("tuna", 5, 1)},
		failRemove: true,
	}
	mirror, done := newCartFixture(t, backend)
	defer done()

	ctx := context.Background()
	mirror.Load(ctx)

	if err := mirror.Remove(ctx, "salmon"); err == nil {
		t.Fatal("expected persist error")
	}
	if len(mirror.Items()) != 1 || mirror.Items()[0].ProductID != "tuna" {
		t.Fatalf("unexpected mirror contents: %+v", mirror.Items())
	}
}

func TestFailedLoadLeavesPriorStateUntouched(t *testing.T) {
	backend := &fakeCartBackend{items: []models.CartItem{item("salmon", 10, 2)}}
	mirror, done := newCartFixture(t, backend)
	defer done()

	ctx := context.Background()
	if err := mirror.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}

	backend.failGet = true
	if err := mirror.Load(ctx); err == nil {
		t.Fatal("expected load error")
	}
	if len(mirror.Items()) != 1 || mirror.Total() != 20 {
		t.Fatalf("prior state lost: %+v", mirror.Items())
	}
}

func TestAddItemTracksQuantity(t *testing.T) {
	backend := &fakeCartBackend{}
	mirror, done := newCartFixture(t, backend)
	defer done()

	ctx := context.Background()
	if err := mirror.AddItem(ctx, "salmon", 0); err != nil {
		t.Fatalf("add: %v", err)
	}
	if got := mirror.Tracked()["salmon"]; got != 1 {
		t.Fatalf("tracked quantity %d, want 1", got)
	}

	if err := mirror.AddItem(ctx, "tuna", 4); err != nil {
		t.Fatalf("add: %v", err)
	}
	if got := mirror.Tracked()["tuna"]; got != 4 {
		t.Fatalf("tracked quantity %d, want 4", got)
	}
}

func TestAddItemRejectedLeavesTrackingEmpty(t *testing.T) {
	backend := &fakeCartBackend{failAdd: true}
	mirror, done := newCartFixture(t, backend)
	defer done()

	if err := mirror.AddItem(context.Background(), "salmon", 1); err == nil {
		t.Fatal("expected error")
	}
	if len(mirror.Tracked()) != 0 {
		t.Fatalf("tracking not empty: %v", mirror.Tracked())
	}
}
