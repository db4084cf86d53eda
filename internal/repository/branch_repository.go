package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/banjos/restaurant-api/internal/model"
	"github.com/banjos/restaurant-api/internal/store"
)

const branchesType = "Branches"

// BranchRepo persists Branches items.
type BranchRepo struct{ Store *store.Store }

func NewBranchRepo(s *store.Store) *BranchRepo { return &BranchRepo{Store: s} }

func encodeBranch(b model.Branch) store.Item {
	return store.Item{
		store.PartitionAttr:    store.S(branchesType),
		store.SortAttr:         store.S(b.ID),
		"name":                 store.S(b.Name),
		"latitude":             store.F(b.Latitude),
		"longitude":            store.F(b.Longitude),
		"address":              store.S(b.Address),
		"city":                 store.S(b.City),
		"state":                store.S(b.State),
		"country":              store.S(b.Country),
		"zipcode":              store.S(b.Zipcode),
		"phone_number":         store.S(b.PhoneNumber),
		"email":                store.S(b.Email),
		"opening_hours":        store.S(b.OpeningHours),
		"manager_name":         store.S(b.ManagerName),
		"branch_opening_date":  store.S(b.BranchOpeningDate),
		"branch_status":        store.S(b.BranchStatus),
		"seating_capacity":     store.N(b.SeatingCapacity),
		"parking_availability": store.Bool(b.ParkingAvailability),
		"wifi_availability":    store.Bool(b.WifiAvailability),
		"image_url":            store.S(b.ImageURL),
	}
}

func decodeBranch(item store.Item) model.Branch {
	return model.Branch{
		ID:                  store.GetS(item, store.SortAttr),
		Name:                store.GetS(item, "name"),
		Latitude:            store.GetF(item, "latitude"),
		Longitude:           store.GetF(item, "longitude"),
		Address:             store.GetS(item, "address"),
		City:                store.GetS(item, "city"),
		State:               store.GetS(item, "state"),
		Country:             store.GetS(item, "country"),
		Zipcode:             store.GetS(item, "zipcode"),
		PhoneNumber:         store.GetS(item, "phone_number"),
		Email:               store.GetS(item, "email"),
		OpeningHours:        store.GetS(item, "opening_hours"),
		ManagerName:         store.GetS(item, "manager_name"),
		BranchOpeningDate:   store.GetS(item, "branch_opening_date"),
		BranchStatus:        store.GetS(item, "branch_status"),
		SeatingCapacity:     store.GetN(item, "seating_capacity"),
		ParkingAvailability: store.GetBool(item, "parking_availability"),
		WifiAvailability:    store.GetBool(item, "wifi_availability"),
		ImageURL:            store.GetS(item, "image_url"),
	}
}

// Create generates an id and persists the branch.
func (r *BranchRepo) Create(ctx context.Context, b model.Branch) (model.Branch, error) {
	b.ID = uuid.NewString()
	if b.BranchStatus == "" {
		b.BranchStatus = "open"
	}
	if err := r.Store.Put(ctx, encodeBranch(b)); err != nil {
		return model.Branch{}, err
	}
	return b, nil
}

func (r *BranchRepo) GetByID(ctx context.Context, id string) (model.Branch, error) {
	item, err := r.Store.Get(ctx, branchesType, id)
	if err != nil {
		return model.Branch{}, err
	}
	if item == nil {
		return model.Branch{}, ErrNotFound
	}
	return decodeBranch(item), nil
}

func (r *BranchRepo) List(ctx context.Context) ([]model.Branch, error) {
	items, err := r.Store.ScanType(ctx, branchesType)
	if err != nil {
		return nil, err
	}
	branches := make([]model.Branch, 0, len(items))
	for _, it := range items {
		branches = append(branches, decodeBranch(it))
	}
	return branches, nil
}

// Update merges only the provided fields; unspecified fields keep their
// prior value.
func (r *BranchRepo) Update(ctx context.Context, id string, upd model.BranchUpdate) (model.Branch, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return model.Branch{}, err
	}

	changes := store.Item{}
	if upd.Name != nil {
		changes["name"] = store.S(*upd.Name)
	}
	if upd.Latitude != nil {
		changes["latitude"] = store.F(*upd.Latitude)
	}
	if upd.Longitude != nil {
		changes["longitude"] = store.F(*upd.Longitude)
	}
	if upd.Address != nil {
		changes["address"] = store.S(*upd.Address)
	}
	if upd.City != nil {
		changes["city"] = store.S(*upd.City)
	}
	if upd.State != nil {
		changes["state"] = store.S(*upd.State)
	}
	if upd.Country != nil {
		changes["country"] = store.S(*upd.Country)
	}
	if upd.Zipcode != nil {
		changes["zipcode"] = store.S(*upd.Zipcode)
	}
	if upd.PhoneNumber != nil {
		changes["phone_number"] = store.S(*upd.PhoneNumber)
	}
	if upd.Email != nil {
		changes["email"] = store.S(*upd.Email)
	}
	if upd.OpeningHours != nil {
		changes["opening_hours"] = store.S(*upd.OpeningHours)
	}
	if upd.ManagerName != nil {
		changes["manager_name"] = store.S(*upd.ManagerName)
	}
	if upd.BranchOpeningDate != nil {
		changes["branch_opening_date"] = store.S(*upd.BranchOpeningDate)
	}
	if upd.BranchStatus != nil {
		changes["branch_status"] = store.S(*upd.BranchStatus)
	}
	if upd.SeatingCapacity != nil {
		changes["seating_capacity"] = store.N(*upd.SeatingCapacity)
	}
	if upd.ParkingAvailability != nil {
		changes["parking_availability"] = store.Bool(*upd.ParkingAvailability)
	}
	if upd.WifiAvailability != nil {
		changes["wifi_availability"] = store.Bool(*upd.WifiAvailability)
	}
	if upd.ImageURL != nil {
		changes["image_url"] = store.S(*upd.ImageURL)
	}

	if err := r.Store.Update(ctx, branchesType, id, changes); err != nil {
		return model.Branch{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *BranchRepo) Delete(ctx context.Context, id string) error {
	item, err := r.Store.Get(ctx, branchesType, id)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrNotFound
	}
	return r.Store.Delete(ctx, branchesType, id)
}
