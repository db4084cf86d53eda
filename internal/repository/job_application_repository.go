package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/banjos/restaurant-api/internal/model"
	"github.com/banjos/restaurant-api/internal/store"
)

const jobApplicationsType = "JobApplications"

// JobApplicationRepo persists JobApplications items.
type JobApplicationRepo struct{ Store *store.Store }

func NewJobApplicationRepo(s *store.Store) *JobApplicationRepo {
	return &JobApplicationRepo{Store: s}
}

func decodeJobApplication(item store.Item) model.JobApplication {
	a := model.JobApplication{
		ID:               store.GetS(item, store.SortAttr),
		FullName:         store.GetS(item, "full_name"),
		Email:            store.GetS(item, "email"),
		Phone:            store.GetS(item, "phone"),
		Address:          store.GetS(item, "address"),
		JobPositionID:    store.GetS(item, "job_position_id"),
		JobPositionTitle: store.GetS(item, "job_position_title"),
		Experience:       store.GetS(item, "experience"),
		Skills:           store.GetS(item, "skills"),
		CoverLetter:      store.GetS(item, "cover_letter"),
		ResumeURL:        store.GetS(item, "resume_url"),
		Status:           store.GetS(item, "status"),
		CreatedAt:        store.GetS(item, "created_at"),
		UpdatedAt:        store.GetS(item, "updated_at"),
	}
	// Legacy items hold statuses outside the accepted set.
	if !model.ValidApplicationStatus(a.Status) {
		a.Status = model.ApplicationPending
	}
	return a
}

func (r *JobApplicationRepo) Create(ctx context.Context, a model.JobApplication) (model.JobApplication, error) {
	a.ID = uuid.NewString()
	now := time.Now().UTC().Format(time.RFC3339)
	a.CreatedAt, a.UpdatedAt = now, now
	if a.Status == "" {
		a.Status = model.ApplicationPending
	}

	item := store.Item{
		store.PartitionAttr:  store.S(jobApplicationsType),
		store.SortAttr:       store.S(a.ID),
		"full_name":          store.S(a.FullName),
		"email":              store.S(a.Email),
		"phone":              store.S(a.Phone),
		"address":            store.S(a.Address),
		"job_position_id":    store.S(a.JobPositionID),
		"job_position_title": store.S(a.JobPositionTitle),
		"experience":         store.S(a.Experience),
		"skills":             store.S(a.Skills),
		"cover_letter":       store.S(a.CoverLetter),
		"resume_url":         store.S(a.ResumeURL),
		"status":             store.S(a.Status),
		"created_at":         store.S(a.CreatedAt),
		"updated_at":         store.S(a.UpdatedAt),
	}
	if err := r.Store.Put(ctx, item); err != nil {
		return model.JobApplication{}, err
	}
	return a, nil
}

func (r *JobApplicationRepo) GetByID(ctx context.Context, id string) (model.JobApplication, error) {
	item, err := r.Store.Get(ctx, jobApplicationsType, id)
	if err != nil {
		return model.JobApplication{}, err
	}
	if item == nil {
		return model.JobApplication{}, ErrNotFound
	}
	return decodeJobApplication(item), nil
}

func (r *JobApplicationRepo) List(ctx context.Context) ([]model.JobApplication, error) {
	items, err := r.Store.ScanType(ctx, jobApplicationsType)
	if err != nil {
		return nil, err
	}
	out := make([]model.JobApplication, 0, len(items))
	for _, it := range items {
		out = append(out, decodeJobApplication(it))
	}
	return out, nil
}

// FilterByTitle returns applications whose position title matches exactly.
// Like every find-by-field here, it is a scan with client-side filtering.
func (r *JobApplicationRepo) FilterByTitle(ctx context.Context, title string) ([]model.JobApplication, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.JobApplication, 0)
	for _, a := range all {
		if a.JobPositionTitle == title {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *JobApplicationRepo) UpdateStatus(ctx context.Context, id, status string) (model.JobApplication, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return model.JobApplication{}, err
	}
	changes := store.Item{
		"status":     store.S(status),
		"updated_at": store.S(time.Now().UTC().Format(time.RFC3339)),
	}
	if err := r.Store.Update(ctx, jobApplicationsType, id, changes); err != nil {
		return model.JobApplication{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *JobApplicationRepo) Delete(ctx context.Context, id string) error {
	item, err := r.Store.Get(ctx, jobApplicationsType, id)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrNotFound
	}
	return r.Store.Delete(ctx, jobApplicationsType, id)
}
