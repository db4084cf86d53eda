package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/banjos/restaurant-api/internal/model"
	"github.com/banjos/restaurant-api/internal/store"
)

const (
	menuType       = "Menu"
	categoriesType = "Categories"
)

// MenuRepo persists Menu items and their Categories.
type MenuRepo struct{ Store *store.Store }

func NewMenuRepo(s *store.Store) *MenuRepo { return &MenuRepo{Store: s} }

func encodeMenuItem(m model.MenuItem) store.Item {
	return store.Item{
		store.PartitionAttr: store.S(menuType),
		store.SortAttr:      store.S(m.ID),
		"name":              store.S(m.Name),
		"description":       store.S(m.Description),
		"category_name":     store.S(m.CategoryName),
		"price":             store.F(m.Price),
		"parcel_price":      store.NullableF(m.ParcelPrice),
		"image_url":         store.S(m.ImageURL),
		"is_available":      store.Bool(m.IsAvailable),
		"is_veg":            store.Bool(m.IsVeg),
		"created_at":        store.S(m.CreatedAt),
		"updated_at":        store.S(m.UpdatedAt),
	}
}

func decodeMenuItem(item store.Item) model.MenuItem {
	return model.MenuItem{
		ID:           store.GetS(item, store.SortAttr),
		Name:         store.GetS(item, "name"),
		Description:  store.GetS(item, "description"),
		CategoryName: store.GetS(item, "category_name"),
		Price:        store.GetF(item, "price"),
		ParcelPrice:  store.GetNullableF(item, "parcel_price"),
		ImageURL:     store.GetS(item, "image_url"),
		IsAvailable:  store.GetBool(item, "is_available"),
		IsVeg:        store.GetBool(item, "is_veg"),
		CreatedAt:    store.GetS(item, "created_at"),
		UpdatedAt:    store.GetS(item, "updated_at"),
	}
}

func (r *MenuRepo) Create(ctx context.Context, m model.MenuItem) (model.MenuItem, error) {
	m.ID = uuid.NewString()
	now := time.Now().UTC().Format(time.RFC3339)
	m.CreatedAt, m.UpdatedAt = now, now
	if err := r.Store.Put(ctx, encodeMenuItem(m)); err != nil {
		return model.MenuItem{}, err
	}
	return m, nil
}

func (r *MenuRepo) GetByID(ctx context.Context, id string) (model.MenuItem, error) {
	item, err := r.Store.Get(ctx, menuType, id)
	if err != nil {
		return model.MenuItem{}, err
	}
	if item == nil {
		return model.MenuItem{}, ErrNotFound
	}
	return decodeMenuItem(item), nil
}

func (r *MenuRepo) List(ctx context.Context) ([]model.MenuItem, error) {
	items, err := r.Store.ScanType(ctx, menuType)
	if err != nil {
		return nil, err
	}
	out := make([]model.MenuItem, 0, len(items))
	for _, it := range items {
		out = append(out, decodeMenuItem(it))
	}
	return out, nil
}

func (r *MenuRepo) Update(ctx context.Context, id string, upd model.MenuItemUpdate) (model.MenuItem, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return model.MenuItem{}, err
	}

	changes := store.Item{}
	if upd.Name != nil {
		changes["name"] = store.S(*upd.Name)
	}
	if upd.Description != nil {
		changes["description"] = store.S(*upd.Description)
	}
	if upd.CategoryName != nil {
		changes["category_name"] = store.S(*upd.CategoryName)
	}
	if upd.Price != nil {
		changes["price"] = store.F(*upd.Price)
	}
	if upd.ClearParcelPrice {
		changes["parcel_price"] = store.NullableF(nil)
	} else if upd.ParcelPrice != nil {
		changes["parcel_price"] = store.F(*upd.ParcelPrice)
	}
	if upd.ImageURL != nil {
		changes["image_url"] = store.S(*upd.ImageURL)
	}
	if upd.IsAvailable != nil {
		changes["is_available"] = store.Bool(*upd.IsAvailable)
	}
	if upd.IsVeg != nil {
		changes["is_veg"] = store.Bool(*upd.IsVeg)
	}
	changes["updated_at"] = store.S(time.Now().UTC().Format(time.RFC3339))

	if err := r.Store.Update(ctx, menuType, id, changes); err != nil {
		return model.MenuItem{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *MenuRepo) Delete(ctx context.Context, id string) error {
	item, err := r.Store.Get(ctx, menuType, id)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrNotFound
	}
	return r.Store.Delete(ctx, menuType, id)
}

// --- Categories ---

func (r *MenuRepo) CreateCategory(ctx context.Context, name string) (model.Category, error) {
	c := model.Category{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	item := store.Item{
		store.PartitionAttr: store.S(categoriesType),
		store.SortAttr:      store.S(c.ID),
		"name":              store.S(c.Name),
		"created_at":        store.S(c.CreatedAt),
	}
	if err := r.Store.Put(ctx, item); err != nil {
		return model.Category{}, err
	}
	return c, nil
}

func decodeCategory(item store.Item) model.Category {
	return model.Category{
		ID:        store.GetS(item, store.SortAttr),
		Name:      store.GetS(item, "name"),
		CreatedAt: store.GetS(item, "created_at"),
	}
}

func (r *MenuRepo) GetCategory(ctx context.Context, id string) (model.Category, error) {
	item, err := r.Store.Get(ctx, categoriesType, id)
	if err != nil {
		return model.Category{}, err
	}
	if item == nil {
		return model.Category{}, ErrNotFound
	}
	return decodeCategory(item), nil
}

func (r *MenuRepo) ListCategories(ctx context.Context) ([]model.Category, error) {
	items, err := r.Store.ScanType(ctx, categoriesType)
	if err != nil {
		return nil, err
	}
	out := make([]model.Category, 0, len(items))
	for _, it := range items {
		out = append(out, decodeCategory(it))
	}
	return out, nil
}

func (r *MenuRepo) UpdateCategory(ctx context.Context, id, name string) (model.Category, error) {
	if _, err := r.GetCategory(ctx, id); err != nil {
		return model.Category{}, err
	}
	if err := r.Store.Update(ctx, categoriesType, id, store.Item{"name": store.S(name)}); err != nil {
		return model.Category{}, err
	}
	return r.GetCategory(ctx, id)
}

func (r *MenuRepo) DeleteCategory(ctx context.Context, id string) error {
	item, err := r.Store.Get(ctx, categoriesType, id)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrNotFound
	}
	return r.Store.Delete(ctx, categoriesType, id)
}
