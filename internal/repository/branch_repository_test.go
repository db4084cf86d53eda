package repository

import (
	"context"
	"testing"

	"github.com/banjos/restaurant-api/internal/model"
	"github.com/banjos/restaurant-api/internal/store"
	"github.com/banjos/restaurant-api/internal/store/storetest"
)

func newBranchRepo() *BranchRepo {
	return NewBranchRepo(store.New(storetest.New(), "test"))
}

func TestBranchRoundTrip(t *testing.T) {
	r := newBranchRepo()
	ctx := context.Background()

	b, err := r.Create(ctx, model.Branch{
		Name:                "Downtown",
		Latitude:            41.7,
		Longitude:           -86.2,
		Address:             "1 Main St",
		City:                "South Bend",
		Country:             "US",
		SeatingCapacity:     60,
		ParkingAvailability: true,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if b.BranchStatus != "open" {
		t.Errorf("branch_status = %q, want default open", b.BranchStatus)
	}

	got, err := r.GetByID(ctx, b.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Downtown" || got.Latitude != 41.7 || got.SeatingCapacity != 60 || !got.ParkingAvailability {
		t.Errorf("round trip mismatch: %+v", got)
	}

	list, err := r.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("list has %d entries, want 1", len(list))
	}
}

func TestBranchPartialUpdate(t *testing.T) {
	r := newBranchRepo()
	ctx := context.Background()

	b, err := r.Create(ctx, model.Branch{
		Name: "Downtown", Address: "1 Main St", City: "South Bend", Country: "US",
		SeatingCapacity: 60,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	status := "closed"
	seats := 80
	got, err := r.Update(ctx, b.ID, model.BranchUpdate{BranchStatus: &status, SeatingCapacity: &seats})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.BranchStatus != "closed" || got.SeatingCapacity != 80 {
		t.Errorf("updated fields wrong: %+v", got)
	}
	if got.Name != "Downtown" || got.City != "South Bend" {
		t.Errorf("unset fields changed: %+v", got)
	}
}

func TestBranchMissingID(t *testing.T) {
	r := newBranchRepo()
	ctx := context.Background()

	if _, err := r.GetByID(ctx, "nope"); err != ErrNotFound {
		t.Errorf("get: err = %v, want ErrNotFound", err)
	}
	if _, err := r.Update(ctx, "nope", model.BranchUpdate{}); err != ErrNotFound {
		t.Errorf("update: err = %v, want ErrNotFound", err)
	}
	if err := r.Delete(ctx, "nope"); err != ErrNotFound {
		t.Errorf("delete: err = %v, want ErrNotFound", err)
	}
}
