package store_test

import (
	"context"
	"testing"

	"github.com/banjos/restaurant-api/internal/store"
	"github.com/banjos/restaurant-api/internal/store/storetest"
)

func newStore() *store.Store {
	return store.New(storetest.New(), "test-table")
}

func TestPutGetRoundTrip(t *testing.T) {
	s := newStore()
	ctx := context.Background()

	item := store.Item{
		store.PartitionAttr: store.S("Branches"),
		store.SortAttr:      store.S("b-1"),
		"name":              store.S("Downtown"),
		"seating_capacity":  store.N(40),
		"wifi_availability": store.Bool(true),
	}
	if err := s.Put(ctx, item); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := s.Get(ctx, "Branches", "b-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected item, got nil")
	}
	if store.GetS(got, "name") != "Downtown" {
		t.Errorf("name = %q, want Downtown", store.GetS(got, "name"))
	}
	if store.GetN(got, "seating_capacity") != 40 {
		t.Errorf("seating_capacity = %d, want 40", store.GetN(got, "seating_capacity"))
	}
	if !store.GetBool(got, "wifi_availability") {
		t.Error("wifi_availability = false, want true")
	}
}

func TestGetMissingReturnsNil(t *testing.T) {
	s := newStore()
	got, err := s.Get(context.Background(), "Branches", "nope")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestUpdateChangesOnlyNamedFields(t *testing.T) {
	s := newStore()
	ctx := context.Background()

	if err := s.Put(ctx, store.Item{
		store.PartitionAttr: store.S("Menu"),
		store.SortAttr:      store.S("m-1"),
		"name":              store.S("Burger"),
		"price":             store.F(9.5),
	}); err != nil {
		t.Fatalf("put: %v", err)
	}

	if err := s.Update(ctx, "Menu", "m-1", store.Item{"price": store.F(10.5)}); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := s.Get(ctx, "Menu", "m-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if store.GetF(got, "price") != 10.5 {
		t.Errorf("price = %v, want 10.5", store.GetF(got, "price"))
	}
	if store.GetS(got, "name") != "Burger" {
		t.Errorf("name = %q, want Burger (untouched)", store.GetS(got, "name"))
	}
}

func TestUpdateMissingKeyCreatesPartialItem(t *testing.T) {
	s := newStore()
	ctx := context.Background()

	if err := s.Update(ctx, "Menu", "ghost", store.Item{"price": store.F(5)}); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := s.Get(ctx, "Menu", "ghost")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected partial item to have been created")
	}
	if store.GetF(got, "price") != 5 {
		t.Errorf("price = %v, want 5", store.GetF(got, "price"))
	}
	if store.GetS(got, "name") != "" {
		t.Errorf("name = %q, want empty on partial item", store.GetS(got, "name"))
	}
}

func TestUpdateEmptyChangesIsNoop(t *testing.T) {
	s := newStore()
	if err := s.Update(context.Background(), "Menu", "m-1", store.Item{}); err != nil {
		t.Fatalf("update with no changes: %v", err)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	s := newStore()
	ctx := context.Background()

	if err := s.Put(ctx, store.Item{
		store.PartitionAttr: store.S("Images"),
		store.SortAttr:      store.S("i-1"),
	}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := s.Delete(ctx, "Images", "i-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := s.Delete(ctx, "Images", "i-1"); err != nil {
		t.Fatalf("second delete: %v", err)
	}
	got, err := s.Get(ctx, "Images", "i-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Fatal("expected item gone after delete")
	}
}

func TestScanTypeFiltersByPartition(t *testing.T) {
	s := newStore()
	ctx := context.Background()

	for _, pair := range [][2]string{
		{"Branches", "b-1"}, {"Branches", "b-2"}, {"Menu", "m-1"},
	} {
		if err := s.Put(ctx, store.Item{
			store.PartitionAttr: store.S(pair[0]),
			store.SortAttr:      store.S(pair[1]),
		}); err != nil {
			t.Fatalf("put %v: %v", pair, err)
		}
	}

	branches, err := s.ScanType(ctx, "Branches")
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(branches) != 2 {
		t.Fatalf("got %d Branches items, want 2", len(branches))
	}
	for _, it := range branches {
		if store.GetS(it, store.PartitionAttr) != "Branches" {
			t.Errorf("leaked item of type %q", store.GetS(it, store.PartitionAttr))
		}
	}
}
