package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/banjos/restaurant-api/internal/model"
	"github.com/banjos/restaurant-api/internal/store"
)

const testimonialsType = "Testimonials"

// TestimonialRepo persists Testimonials items.
type TestimonialRepo struct{ Store *store.Store }

func NewTestimonialRepo(s *store.Store) *TestimonialRepo { return &TestimonialRepo{Store: s} }

func decodeTestimonial(item store.Item) model.Testimonial {
	return model.Testimonial{
		ID:          store.GetS(item, store.SortAttr),
		Name:        store.GetS(item, "name"),
		Email:       store.GetS(item, "email"),
		Description: store.GetS(item, "description"),
		Rating:      store.GetN(item, "rating"),
		Image:       store.GetS(item, "image"),
		Status:      store.GetS(item, "status"),
		CreatedAt:   store.GetS(item, "created_at"),
	}
}

// Create persists a testimonial with status "pending".
func (r *TestimonialRepo) Create(ctx context.Context, t model.Testimonial) (model.Testimonial, error) {
	t.ID = uuid.NewString()
	t.Status = "pending"
	t.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	item := store.Item{
		store.PartitionAttr: store.S(testimonialsType),
		store.SortAttr:      store.S(t.ID),
		"name":              store.S(t.Name),
		"email":             store.S(t.Email),
		"description":       store.S(t.Description),
		"rating":            store.N(t.Rating),
		"image":             store.S(t.Image),
		"status":            store.S(t.Status),
		"created_at":        store.S(t.CreatedAt),
	}
	if err := r.Store.Put(ctx, item); err != nil {
		return model.Testimonial{}, err
	}
	return t, nil
}

func (r *TestimonialRepo) GetByID(ctx context.Context, id string) (model.Testimonial, error) {
	item, err := r.Store.Get(ctx, testimonialsType, id)
	if err != nil {
		return model.Testimonial{}, err
	}
	if item == nil {
		return model.Testimonial{}, ErrNotFound
	}
	return decodeTestimonial(item), nil
}

func (r *TestimonialRepo) List(ctx context.Context) ([]model.Testimonial, error) {
	items, err := r.Store.ScanType(ctx, testimonialsType)
	if err != nil {
		return nil, err
	}
	out := make([]model.Testimonial, 0, len(items))
	for _, it := range items {
		out = append(out, decodeTestimonial(it))
	}
	return out, nil
}

func (r *TestimonialRepo) UpdateStatus(ctx context.Context, id, status string) (model.Testimonial, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return model.Testimonial{}, err
	}
	if err := r.Store.Update(ctx, testimonialsType, id, store.Item{"status": store.S(status)}); err != nil {
		return model.Testimonial{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *TestimonialRepo) Delete(ctx context.Context, id string) error {
	item, err := r.Store.Get(ctx, testimonialsType, id)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrNotFound
	}
	return r.Store.Delete(ctx, testimonialsType, id)
}
