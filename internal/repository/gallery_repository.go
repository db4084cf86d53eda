package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/banjos/restaurant-api/internal/model"
	"github.com/banjos/restaurant-api/internal/store"
)

const (
	galleryCategoriesType = "GalleryCategories"
	imagesType            = "Images"
)

// GalleryRepo persists GalleryCategories and Images items.
type GalleryRepo struct{ Store *store.Store }

func NewGalleryRepo(s *store.Store) *GalleryRepo { return &GalleryRepo{Store: s} }

func decodeGalleryCategory(item store.Item) model.GalleryCategory {
	return model.GalleryCategory{
		ID:        store.GetS(item, store.SortAttr),
		Name:      store.GetS(item, "name"),
		ImageURL:  store.GetS(item, "image_url"),
		CreatedAt: store.GetS(item, "created_at"),
	}
}

func (r *GalleryRepo) CreateCategory(ctx context.Context, name, imageURL string) (model.GalleryCategory, error) {
	c := model.GalleryCategory{
		ID:        uuid.NewString(),
		Name:      name,
		ImageURL:  imageURL,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	item := store.Item{
		store.PartitionAttr: store.S(galleryCategoriesType),
		store.SortAttr:      store.S(c.ID),
		"name":              store.S(c.Name),
		"image_url":         store.S(c.ImageURL),
		"created_at":        store.S(c.CreatedAt),
	}
	if err := r.Store.Put(ctx, item); err != nil {
		return model.GalleryCategory{}, err
	}
	return c, nil
}

func (r *GalleryRepo) GetCategory(ctx context.Context, id string) (model.GalleryCategory, error) {
	item, err := r.Store.Get(ctx, galleryCategoriesType, id)
	if err != nil {
		return model.GalleryCategory{}, err
	}
	if item == nil {
		return model.GalleryCategory{}, ErrNotFound
	}
	return decodeGalleryCategory(item), nil
}

func (r *GalleryRepo) ListCategories(ctx context.Context) ([]model.GalleryCategory, error) {
	items, err := r.Store.ScanType(ctx, galleryCategoriesType)
	if err != nil {
		return nil, err
	}
	out := make([]model.GalleryCategory, 0, len(items))
	for _, it := range items {
		out = append(out, decodeGalleryCategory(it))
	}
	return out, nil
}

// UpdateCategory sets only the provided fields; empty strings mean "leave
// unchanged" here since the multipart form omits untouched inputs.
func (r *GalleryRepo) UpdateCategory(ctx context.Context, id, name, imageURL string) (model.GalleryCategory, error) {
	if _, err := r.GetCategory(ctx, id); err != nil {
		return model.GalleryCategory{}, err
	}
	changes := store.Item{}
	if name != "" {
		changes["name"] = store.S(name)
	}
	if imageURL != "" {
		changes["image_url"] = store.S(imageURL)
	}
	if err := r.Store.Update(ctx, galleryCategoriesType, id, changes); err != nil {
		return model.GalleryCategory{}, err
	}
	return r.GetCategory(ctx, id)
}

func (r *GalleryRepo) DeleteCategory(ctx context.Context, id string) error {
	item, err := r.Store.Get(ctx, galleryCategoriesType, id)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrNotFound
	}
	return r.Store.Delete(ctx, galleryCategoriesType, id)
}

// --- Images ---

func decodeImage(item store.Item) model.Image {
	return model.Image{
		ID:          store.GetS(item, store.SortAttr),
		Name:        store.GetS(item, "name"),
		Description: store.GetS(item, "description"),
		CategoryID:  store.GetS(item, "category_id"),
		FilePath:    store.GetS(item, "file_path"),
		CreatedAt:   store.GetS(item, "created_at"),
	}
}

func (r *GalleryRepo) CreateImage(ctx context.Context, img model.Image) (model.Image, error) {
	img.ID = uuid.NewString()
	img.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	item := store.Item{
		store.PartitionAttr: store.S(imagesType),
		store.SortAttr:      store.S(img.ID),
		"name":              store.S(img.Name),
		"description":       store.S(img.Description),
		"category_id":       store.S(img.CategoryID),
		"file_path":         store.S(img.FilePath),
		"created_at":        store.S(img.CreatedAt),
	}
	if err := r.Store.Put(ctx, item); err != nil {
		return model.Image{}, err
	}
	return img, nil
}

func (r *GalleryRepo) GetImage(ctx context.Context, id string) (model.Image, error) {
	item, err := r.Store.Get(ctx, imagesType, id)
	if err != nil {
		return model.Image{}, err
	}
	if item == nil {
		return model.Image{}, ErrNotFound
	}
	return decodeImage(item), nil
}

func (r *GalleryRepo) ListImages(ctx context.Context) ([]model.Image, error) {
	items, err := r.Store.ScanType(ctx, imagesType)
	if err != nil {
		return nil, err
	}
	out := make([]model.Image, 0, len(items))
	for _, it := range items {
		out = append(out, decodeImage(it))
	}
	return out, nil
}

func (r *GalleryRepo) UpdateImage(ctx context.Context, id, name, description, categoryID, filePath string) (model.Image, error) {
	if _, err := r.GetImage(ctx, id); err != nil {
		return model.Image{}, err
	}
	changes := store.Item{}
	if name != "" {
		changes["name"] = store.S(name)
	}
	if description != "" {
		changes["description"] = store.S(description)
	}
	if categoryID != "" {
		changes["category_id"] = store.S(categoryID)
	}
	if filePath != "" {
		changes["file_path"] = store.S(filePath)
	}
	if err := r.Store.Update(ctx, imagesType, id, changes); err != nil {
		return model.Image{}, err
	}
	return r.GetImage(ctx, id)
}

func (r *GalleryRepo) DeleteImage(ctx context.Context, id string) error {
	item, err := r.Store.Get(ctx, imagesType, id)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrNotFound
	}
	return r.Store.Delete(ctx, imagesType, id)
}
