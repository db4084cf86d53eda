package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/banjos/restaurant-api/internal/model"
	"github.com/banjos/restaurant-api/internal/store"
)

const franchiseType = "FranchiseRequests"

// FranchiseRepo persists FranchiseRequests items.
type FranchiseRepo struct{ Store *store.Store }

func NewFranchiseRepo(s *store.Store) *FranchiseRepo { return &FranchiseRepo{Store: s} }

func decodeFranchiseRequest(item store.Item) model.FranchiseRequest {
	return model.FranchiseRequest{
		ID:                       store.GetS(item, store.SortAttr),
		UserName:                 store.GetS(item, "user_name"),
		UserEmail:                store.GetS(item, "user_email"),
		UserPhone:                store.GetS(item, "user_phone"),
		RequestedCity:            store.GetS(item, "requested_city"),
		RequestedState:           store.GetS(item, "requested_state"),
		RequestedCountry:         store.GetS(item, "requested_country"),
		InvestmentBudget:         store.GetF(item, "investment_budget"),
		ExperienceInFoodBusiness: store.GetS(item, "experience_in_food_business"),
		AdditionalDetails:        store.GetS(item, "additional_details"),
		RequestStatus:            store.GetS(item, "request_status"),
		CreatedAt:                store.GetS(item, "created_at"),
		UpdatedAt:                store.GetS(item, "updated_at"),
	}
}

func (r *FranchiseRepo) Create(ctx context.Context, fr model.FranchiseRequest) (model.FranchiseRequest, error) {
	fr.ID = uuid.NewString()
	now := time.Now().UTC().Format(time.RFC3339)
	fr.CreatedAt, fr.UpdatedAt = now, now
	if fr.RequestStatus == "" {
		fr.RequestStatus = "pending"
	}

	item := store.Item{
		store.PartitionAttr:           store.S(franchiseType),
		store.SortAttr:                store.S(fr.ID),
		"user_name":                   store.S(fr.UserName),
		"user_email":                  store.S(fr.UserEmail),
		"user_phone":                  store.S(fr.UserPhone),
		"requested_city":              store.S(fr.RequestedCity),
		"requested_state":             store.S(fr.RequestedState),
		"requested_country":           store.S(fr.RequestedCountry),
		"investment_budget":           store.F(fr.InvestmentBudget),
		"experience_in_food_business": store.S(fr.ExperienceInFoodBusiness),
		"additional_details":          store.S(fr.AdditionalDetails),
		"request_status":              store.S(fr.RequestStatus),
		"created_at":                  store.S(fr.CreatedAt),
		"updated_at":                  store.S(fr.UpdatedAt),
	}
	if err := r.Store.Put(ctx, item); err != nil {
		return model.FranchiseRequest{}, err
	}
	return fr, nil
}

func (r *FranchiseRepo) GetByID(ctx context.Context, id string) (model.FranchiseRequest, error) {
	item, err := r.Store.Get(ctx, franchiseType, id)
	if err != nil {
		return model.FranchiseRequest{}, err
	}
	if item == nil {
		return model.FranchiseRequest{}, ErrNotFound
	}
	return decodeFranchiseRequest(item), nil
}

func (r *FranchiseRepo) List(ctx context.Context) ([]model.FranchiseRequest, error) {
	items, err := r.Store.ScanType(ctx, franchiseType)
	if err != nil {
		return nil, err
	}
	out := make([]model.FranchiseRequest, 0, len(items))
	for _, it := range items {
		out = append(out, decodeFranchiseRequest(it))
	}
	return out, nil
}

// UpdateStatus sets request_status only and refetches the record.
func (r *FranchiseRepo) UpdateStatus(ctx context.Context, id, status string) (model.FranchiseRequest, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return model.FranchiseRequest{}, err
	}
	changes := store.Item{
		"request_status": store.S(status),
		"updated_at":     store.S(time.Now().UTC().Format(time.RFC3339)),
	}
	if err := r.Store.Update(ctx, franchiseType, id, changes); err != nil {
		return model.FranchiseRequest{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *FranchiseRepo) Delete(ctx context.Context, id string) error {
	item, err := r.Store.Get(ctx, franchiseType, id)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrNotFound
	}
	return r.Store.Delete(ctx, franchiseType, id)
}
