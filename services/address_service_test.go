package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"buyfish/models"
	"buyfish/shopapi"
)

type fakeAddressBackend struct {
	addresses   []models.Address
	addCalls    int
	updateCalls int
	lastUpdate  string
}

func (b *fakeAddressBackend) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/address/get/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "data": b.addresses})
	})

	mux.HandleFunc("/address/add", func(w http.ResponseWriter, r *http.Request) {
		b.addCalls++
		var fields models.AddressFields
		json.NewDecoder(r.Body).Decode(&fields)
		created := models.Address{
			ID:      "addr-new",
			UserID:  "user-1",
			Address: fields.Address,
			City:    fields.City,
			Pincode: fields.Pincode,
			Phone:   fields.Phone,
			Notes:   fields.Notes,
		}
		b.addresses = append(b.addresses, created)
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "data": created})
	})

	mux.HandleFunc("/address/update/", func(w http.ResponseWriter, r *http.Request) {
		b.updateCalls++
		parts := strings.Split(r.URL.Path, "/")
		b.lastUpdate = parts[len(parts)-1]
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
	})

	mux.HandleFunc("/address/delete/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
	})

	return mux
}

func newAddressFixture(t *testing.T, backend *fakeAddressBackend) (*AddressBook, func()) {
	t.Helper()
	server := httptest.NewServer(backend.handler())
	book := NewAddressBook(shopapi.NewClient(server.URL, 2*time.Second), "user-1")
	return book, server.Close
}

func TestSaveCreatesWhenNotEditing(t *testing.T) {
	backend := &fakeAddressBackend{}
	book, done := newAddressFixture(t, backend)
	defer done()

	saved, err := book.Save(context.Background(), "", models.AddressFields{
		Address: "12 Harbour Road",
		City:    "Kochi",
		Pincode: "682001",
		Phone:   "9876543210",
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if backend.addCalls != 1 || backend.updateCalls != 0 {
		t.Fatalf("calls add=%d update=%d", backend.addCalls, backend.updateCalls)
	}
	if saved.ID != "addr-new" || saved.City != "Kochi" {
		t.Fatalf("created: %+v", saved)
	}
}

func TestSaveUpdatesWhenEditing(t *testing.T) {
	backend := &fakeAddressBackend{}
	book, done := newAddressFixture(t, backend)
	defer done()

	saved, err := book.Save(context.Background(), "addr-7", models.AddressFields{
		Address: "99 Pier Lane",
		City:    "Goa",
		Pincode: "403001",
		Phone:   "9000000000",
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if backend.updateCalls != 1 || backend.addCalls != 0 {
		t.Fatalf("calls add=%d update=%d", backend.addCalls, backend.updateCalls)
	}
	if backend.lastUpdate != "addr-7" {
		t.Fatalf("updated id %q", backend.lastUpdate)
	}
	if saved.ID != "addr-7" || saved.City != "Goa" {
		t.Fatalf("updated: %+v", saved)
	}
}

func TestFindResolvesByID(t *testing.T) {
	backend := &fakeAddressBackend{addresses: []models.Address{
		{ID: "addr-1", City: "Kochi"},
		{ID: "addr-2", City: "Goa"},
	}}
	book, done := newAddressFixture(t, backend)
	defer done()

	found, err := book.Find(context.Background(), "addr-2")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found == nil || found.City != "Goa" {
		t.Fatalf("found: %+v", found)
	}

	missing, err := book.Find(context.Background(), "addr-9")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil, got %+v", missing)
	}
}
