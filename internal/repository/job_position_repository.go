package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/banjos/restaurant-api/internal/model"
	"github.com/banjos/restaurant-api/internal/store"
)

const jobPositionsType = "JobPositions"

// JobPositionRepo persists JobPositions items.
type JobPositionRepo struct{ Store *store.Store }

func NewJobPositionRepo(s *store.Store) *JobPositionRepo { return &JobPositionRepo{Store: s} }

func decodeJobPosition(item store.Item) model.JobPosition {
	return model.JobPosition{
		ID:          store.GetS(item, store.SortAttr),
		Title:       store.GetS(item, "title"),
		Description: store.GetS(item, "description"),
		MinSalary:   store.GetF(item, "min_salary"),
		MaxSalary:   store.GetF(item, "max_salary"),
		BranchName:  store.GetS(item, "branch_name"),
		JobType:     store.GetS(item, "job_type"),
		ImageURL:    store.GetS(item, "image_url"),
		CreatedAt:   store.GetS(item, "created_at"),
		UpdatedAt:   store.GetS(item, "updated_at"),
	}
}

func (r *JobPositionRepo) Create(ctx context.Context, p model.JobPosition) (model.JobPosition, error) {
	p.ID = uuid.NewString()
	now := time.Now().UTC().Format(time.RFC3339)
	p.CreatedAt, p.UpdatedAt = now, now

	item := store.Item{
		store.PartitionAttr: store.S(jobPositionsType),
		store.SortAttr:      store.S(p.ID),
		"title":             store.S(p.Title),
		"description":       store.S(p.Description),
		"min_salary":        store.F(p.MinSalary),
		"max_salary":        store.F(p.MaxSalary),
		"branch_name":       store.S(p.BranchName),
		"job_type":          store.S(p.JobType),
		"image_url":         store.S(p.ImageURL),
		"created_at":        store.S(p.CreatedAt),
		"updated_at":        store.S(p.UpdatedAt),
	}
	if err := r.Store.Put(ctx, item); err != nil {
		return model.JobPosition{}, err
	}
	return p, nil
}

func (r *JobPositionRepo) GetByID(ctx context.Context, id string) (model.JobPosition, error) {
	item, err := r.Store.Get(ctx, jobPositionsType, id)
	if err != nil {
		return model.JobPosition{}, err
	}
	if item == nil {
		return model.JobPosition{}, ErrNotFound
	}
	return decodeJobPosition(item), nil
}

func (r *JobPositionRepo) List(ctx context.Context) ([]model.JobPosition, error) {
	items, err := r.Store.ScanType(ctx, jobPositionsType)
	if err != nil {
		return nil, err
	}
	out := make([]model.JobPosition, 0, len(items))
	for _, it := range items {
		out = append(out, decodeJobPosition(it))
	}
	return out, nil
}

func (r *JobPositionRepo) Update(ctx context.Context, id string, upd model.JobPositionUpdate) (model.JobPosition, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return model.JobPosition{}, err
	}

	changes := store.Item{}
	if upd.Title != nil {
		changes["title"] = store.S(*upd.Title)
	}
	if upd.Description != nil {
		changes["description"] = store.S(*upd.Description)
	}
	if upd.MinSalary != nil {
		changes["min_salary"] = store.F(*upd.MinSalary)
	}
	if upd.MaxSalary != nil {
		changes["max_salary"] = store.F(*upd.MaxSalary)
	}
	if upd.BranchName != nil {
		changes["branch_name"] = store.S(*upd.BranchName)
	}
	if upd.JobType != nil {
		changes["job_type"] = store.S(*upd.JobType)
	}
	if upd.ImageURL != nil {
		changes["image_url"] = store.S(*upd.ImageURL)
	}
	changes["updated_at"] = store.S(time.Now().UTC().Format(time.RFC3339))

	if err := r.Store.Update(ctx, jobPositionsType, id, changes); err != nil {
		return model.JobPosition{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *JobPositionRepo) Delete(ctx context.Context, id string) error {
	item, err := r.Store.Get(ctx, jobPositionsType, id)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrNotFound
	}
	return r.Store.Delete(ctx, jobPositionsType, id)
}
