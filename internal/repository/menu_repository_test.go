package repository

import (
	"context"
	"testing"

	"github.com/banjos/restaurant-api/internal/model"
	"github.com/banjos/restaurant-api/internal/store"
	"github.com/banjos/restaurant-api/internal/store/storetest"
)

func newMenuRepo() *MenuRepo {
	return NewMenuRepo(store.New(storetest.New(), "test"))
}

func TestMenuItemNullableParcelPrice(t *testing.T) {
	r := newMenuRepo()
	ctx := context.Background()

	plain, err := r.Create(ctx, model.MenuItem{
		Name: "Burger", CategoryName: "Mains", Price: 9.5, IsAvailable: true,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := r.GetByID(ctx, plain.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ParcelPrice != nil {
		t.Errorf("parcel_price = %v, want nil", *got.ParcelPrice)
	}

	pp := 10.5
	priced, err := r.Create(ctx, model.MenuItem{
		Name: "Curry", CategoryName: "Mains", Price: 12, ParcelPrice: &pp,
	})
	if err != nil {
		t.Fatalf("create with parcel price: %v", err)
	}
	got, err = r.GetByID(ctx, priced.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ParcelPrice == nil || *got.ParcelPrice != 10.5 {
		t.Errorf("parcel_price = %v, want 10.5", got.ParcelPrice)
	}
}

func TestMenuItemParcelPriceCanBeCleared(t *testing.T) {
	r := newMenuRepo()
	ctx := context.Background()

	pp := 10.5
	m, err := r.Create(ctx, model.MenuItem{
		Name: "Curry", CategoryName: "Mains", Price: 12, ParcelPrice: &pp,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := r.Update(ctx, m.ID, model.MenuItemUpdate{ClearParcelPrice: true})
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if got.ParcelPrice != nil {
		t.Errorf("parcel_price = %v, want nil after clear", *got.ParcelPrice)
	}
	if got.Price != 12 || got.Name != "Curry" {
		t.Errorf("unrelated fields changed: %+v", got)
	}

	// Clear wins when both are set.
	again := 9.0
	got, err = r.Update(ctx, m.ID, model.MenuItemUpdate{ParcelPrice: &again, ClearParcelPrice: true})
	if err != nil {
		t.Fatalf("clear with value: %v", err)
	}
	if got.ParcelPrice != nil {
		t.Errorf("parcel_price = %v, want nil when clear marker set", *got.ParcelPrice)
	}
}

func TestMenuItemPartialUpdate(t *testing.T) {
	r := newMenuRepo()
	ctx := context.Background()

	m, err := r.Create(ctx, model.MenuItem{
		Name: "Burger", Description: "classic", CategoryName: "Mains",
		Price: 9.5, IsVeg: false, IsAvailable: true,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	price := 11.0
	avail := false
	got, err := r.Update(ctx, m.ID, model.MenuItemUpdate{Price: &price, IsAvailable: &avail})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Price != 11 || got.IsAvailable {
		t.Errorf("updated fields wrong: %+v", got)
	}
	if got.Name != "Burger" || got.Description != "classic" || got.CategoryName != "Mains" {
		t.Errorf("unset fields changed: %+v", got)
	}
	if got.UpdatedAt == m.UpdatedAt && got.UpdatedAt == "" {
		t.Error("updated_at not maintained")
	}
}

func TestCategoryCRUD(t *testing.T) {
	r := newMenuRepo()
	ctx := context.Background()

	cat, err := r.CreateCategory(ctx, "Desserts")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := r.GetCategory(ctx, cat.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Desserts" {
		t.Errorf("name = %q, want Desserts", got.Name)
	}

	if _, err := r.UpdateCategory(ctx, cat.ID, "Sweets"); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _ = r.GetCategory(ctx, cat.ID)
	if got.Name != "Sweets" {
		t.Errorf("name after update = %q, want Sweets", got.Name)
	}

	if err := r.DeleteCategory(ctx, cat.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := r.GetCategory(ctx, cat.ID); err != ErrNotFound {
		t.Errorf("get after delete: err = %v, want ErrNotFound", err)
	}
}

// Menu items and categories share the table but must not leak into each
// other's listings.
func TestMenuAndCategoryPartitionsAreDisjoint(t *testing.T) {
	r := newMenuRepo()
	ctx := context.Background()

	if _, err := r.Create(ctx, model.MenuItem{Name: "Burger", CategoryName: "Mains"}); err != nil {
		t.Fatalf("create item: %v", err)
	}
	if _, err := r.CreateCategory(ctx, "Mains"); err != nil {
		t.Fatalf("create category: %v", err)
	}

	items, err := r.List(ctx)
	if err != nil {
		t.Fatalf("list items: %v", err)
	}
	cats, err := r.ListCategories(ctx)
	if err != nil {
		t.Fatalf("list categories: %v", err)
	}
	if len(items) != 1 || len(cats) != 1 {
		t.Errorf("items = %d, categories = %d; want 1 and 1", len(items), len(cats))
	}
}
